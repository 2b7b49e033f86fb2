package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save writes the order header and its items in one transaction. Items
// are replaced wholesale; they never change after creation, so the
// rewrite only matters on the first insert.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	if err := r.ensureTables(ctx); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
		INSERT INTO orders (id, buyer_id, status, total, delivery_name, delivery_phone, delivery_address, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status;
	`
	if _, err := tx.Exec(ctx, orderQuery,
		order.ID,
		order.BuyerID,
		string(order.Status),
		order.Total,
		order.Delivery.Name,
		order.Delivery.Phone,
		order.Delivery.Address,
		order.PaymentMethod,
		order.CreatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1;`, order.ID); err != nil {
		return err
	}

	const itemQuery = `
		INSERT INTO order_items (order_id, product_id, seller_id, name, qty, price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, it := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			order.ID,
			it.ProductID,
			it.SellerID,
			it.Name,
			it.Qty,
			it.Price,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
		SELECT id, buyer_id, status, total, delivery_name, delivery_phone, delivery_address, payment_method, created_at
		FROM orders
		WHERE id = $1;
	`
	var o domain.Order
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.BuyerID,
		&status,
		&o.Total,
		&o.Delivery.Name,
		&o.Delivery.Phone,
		&o.Delivery.Address,
		&o.PaymentMethod,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)

	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	const query = `
		SELECT id, buyer_id, status, total, delivery_name, delivery_phone, delivery_address, payment_method, created_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC, id;
	`
	return r.queryOrders(ctx, query, buyerID)
}

func (r *OrderRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.Order, error) {
	const query = `
		SELECT DISTINCT o.id, o.buyer_id, o.status, o.total, o.delivery_name, o.delivery_phone, o.delivery_address, o.payment_method, o.created_at
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.seller_id = $1
		ORDER BY o.created_at DESC, o.id;
	`
	return r.queryOrders(ctx, query, sellerID)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(
			&o.ID,
			&o.BuyerID,
			&status,
			&o.Total,
			&o.Delivery.Name,
			&o.Delivery.Phone,
			&o.Delivery.Address,
			&o.PaymentMethod,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Status = domain.Status(status)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderID string) ([]domain.Item, error) {
	const query = `
		SELECT product_id, seller_id, name, qty, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id;
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ProductID, &it.SellerID, &it.Name, &it.Qty, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) ensureTables(ctx context.Context) error {
	const orders = `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			buyer_id TEXT NOT NULL,
			status TEXT NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			delivery_name TEXT NOT NULL,
			delivery_phone TEXT NOT NULL,
			delivery_address TEXT NOT NULL,
			payment_method TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := r.pool.Exec(ctx, orders); err != nil {
		return err
	}

	const items = `
		CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id TEXT NOT NULL,
			seller_id TEXT NOT NULL,
			name TEXT NOT NULL,
			qty INT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (order_id, product_id)
		);
	`
	_, err := r.pool.Exec(ctx, items)
	return err
}
