package repository

import (
	"context"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

type ProductRepository interface {
	Save(ctx context.Context, product *catalog.Product) error
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	FindAll(ctx context.Context) ([]catalog.Product, error)
	FindBySeller(ctx context.Context, sellerID string) ([]catalog.Product, error)
	Delete(ctx context.Context, id string) error
}
