package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}

	const query = `
		INSERT INTO users (id, name, email, phone, address, role, password_hash, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			password_hash = EXCLUDED.password_hash;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.Address,
		string(user.Role),
		user.PasswordHash,
		user.DateOfBirth,
		user.CreatedAt,
	)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
		SELECT id, name, email, phone, address, role, password_hash, date_of_birth, created_at
		FROM users
		WHERE id = $1;
	`
	return r.queryOne(ctx, query, id)
}

// FindByEmailAndRole is the login lookup. The same email may exist once
// per role, so both sides key the search.
func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	const query = `
		SELECT id, name, email, phone, address, role, password_hash, date_of_birth, created_at
		FROM users
		WHERE email = $1 AND role = $2;
	`
	return r.queryOne(ctx, query, email, string(role))
}

func (r *UserRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	var role string
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Address,
		&role,
		&u.PasswordHash,
		&u.DateOfBirth,
		&u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (r *UserRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			date_of_birth TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (email, role)
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
