package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}

	const query = `
		INSERT INTO products (id, seller_id, name, category, price, available_qty, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET seller_id = EXCLUDED.seller_id,
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			available_qty = EXCLUDED.available_qty,
			image = EXCLUDED.image;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.SellerID,
		product.Name,
		product.Category,
		product.Price,
		product.AvailableQty,
		product.Image,
		product.CreatedAt,
	)
	return err
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
		SELECT id, seller_id, name, category, price, available_qty, image, created_at
		FROM products
		WHERE id = $1;
	`
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.AvailableQty,
		&p.Image,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT id, seller_id, name, category, price, available_qty, image, created_at
		FROM products
		ORDER BY created_at, id;
	`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	const query = `
		SELECT id, seller_id, name, category, price, available_qty, image, created_at
		FROM products
		WHERE seller_id = $1
		ORDER BY created_at, id;
	`
	return r.queryProducts(ctx, query, sellerID)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = $1;`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.SellerID,
			&p.Name,
			&p.Category,
			&p.Price,
			&p.AvailableQty,
			&p.Image,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			seller_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			available_qty INT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
