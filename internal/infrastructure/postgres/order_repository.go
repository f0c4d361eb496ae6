package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas del pedido se guardan como JSONB: el pedido es un documento
// cerrado, no se consulta por línea.
type OrderRepo struct {
	db executor
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db executor) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste un pedido nuevo.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	products, err := json.Marshal(order.Products)
	if err != nil {
		return fmt.Errorf("encode order products: %w", err)
	}
	query := `
		INSERT INTO orders (id, client_id, store_id, store_name, products, total,
			payment_confirmed, confirmed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.Exec(ctx, query,
		order.ID, order.ClientID, order.StoreID, order.StoreName, products, order.Total,
		order.PaymentConfirmed, order.ConfirmedBy, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, client_id, store_id, store_name, products, total,
			payment_confirmed, confirmed_by, created_at
		FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// ListByStore lista pedidos de una tienda, los más recientes primero.
func (r *OrderRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, client_id, store_id, store_name, products, total,
			payment_confirmed, confirmed_by, created_at
		FROM orders WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// ConfirmPayment marca el pedido como cobrado.
func (r *OrderRepo) ConfirmPayment(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET payment_confirmed = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var products []byte
	err := row.Scan(&o.ID, &o.ClientID, &o.StoreID, &o.StoreName, &products, &o.Total,
		&o.PaymentConfirmed, &o.ConfirmedBy, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(products, &o.Products); err != nil {
		return nil, fmt.Errorf("decode order products: %w", err)
	}
	return &o, nil
}
