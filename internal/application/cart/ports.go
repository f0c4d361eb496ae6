package cart

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// TxRunner ejecuta el cierre del carrito de forma atómica: creación del pedido
// y borrado de las líneas en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
