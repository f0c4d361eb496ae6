package repository

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error)
}

// OutOfStockRepository registra y cuenta los avisos de ruptura de stock.
type OutOfStockRepository interface {
	Create(ctx context.Context, report *entity.OutOfStockReport) error
	CountByStore(ctx context.Context, storeID string) (int, error)
}
