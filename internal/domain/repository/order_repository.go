package repository

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Order, error)
	ConfirmPayment(ctx context.Context, id string) error
}
