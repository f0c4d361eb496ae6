package repository

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para líneas de carrito.
// Upsert reemplaza el documento completo de la línea (clave determinista
// clientId_productId); Delete sobre una línea inexistente no es error.
type CartRepository interface {
	Upsert(ctx context.Context, line *entity.CartLine) error
	GetByLineID(ctx context.Context, lineID string) (*entity.CartLine, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.CartLine, error)
	SetFound(ctx context.Context, lineID string, found bool) error
	Delete(ctx context.Context, lineID string) error
	DeleteByClient(ctx context.Context, clientID string) error
}
