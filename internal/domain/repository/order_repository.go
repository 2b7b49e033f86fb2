package repository

import (
	"context"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
)

type OrderRepository interface {
	Save(ctx context.Context, order *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	FindByBuyer(ctx context.Context, buyerID string) ([]order.Order, error)
	FindBySeller(ctx context.Context, sellerID string) ([]order.Order, error)
}
