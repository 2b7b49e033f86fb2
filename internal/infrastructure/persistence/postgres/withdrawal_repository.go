package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/payout"
)

type WithdrawalRepository struct {
	pool *pgxpool.Pool
}

func NewWithdrawalRepository(pool *pgxpool.Pool) *WithdrawalRepository {
	return &WithdrawalRepository{pool: pool}
}

func (r *WithdrawalRepository) Save(ctx context.Context, withdrawal *domain.Withdrawal) error {
	if withdrawal == nil {
		return fmt.Errorf("withdrawal is nil")
	}

	const query = `
		INSERT INTO withdrawals (id, seller_id, amount, bank_name, account_number, ifsc, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		withdrawal.ID,
		withdrawal.SellerID,
		withdrawal.Amount,
		withdrawal.Bank.Name,
		withdrawal.Bank.Account,
		withdrawal.Bank.IFSC,
		withdrawal.RequestedAt,
	)
	return err
}

func (r *WithdrawalRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.Withdrawal, error) {
	const query = `
		SELECT id, seller_id, amount, bank_name, account_number, ifsc, requested_at
		FROM withdrawals
		WHERE seller_id = $1
		ORDER BY requested_at DESC, id;
	`
	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(
			&w.ID,
			&w.SellerID,
			&w.Amount,
			&w.Bank.Name,
			&w.Bank.Account,
			&w.Bank.IFSC,
			&w.RequestedAt,
		); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

// TotalBySeller sums the seller's requests; this is the amount already
// spoken for when computing the available balance.
func (r *WithdrawalRepository) TotalBySeller(ctx context.Context, sellerID string) (float64, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}

	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawals
		WHERE seller_id = $1;
	`
	var total float64
	if err := r.pool.QueryRow(ctx, query, sellerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *WithdrawalRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS withdrawals (
			id TEXT PRIMARY KEY,
			seller_id TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			bank_name TEXT NOT NULL,
			account_number TEXT NOT NULL,
			ifsc TEXT NOT NULL,
			requested_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
