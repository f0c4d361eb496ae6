package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// line_id es la clave primaria (clientId_productId): el upsert reemplaza la
// fila completa, igual que el documento remoto original.
type CartRepo struct {
	db executor
}

// NewCartRepository construye el adaptador de persistencia para líneas de carrito.
func NewCartRepository(db executor) *CartRepo {
	return &CartRepo{db: db}
}

// Upsert inserta o reemplaza por completo la línea con su clave determinista.
func (r *CartRepo) Upsert(ctx context.Context, line *entity.CartLine) error {
	query := `
		INSERT INTO cart_lines (line_id, client_id, store_id, store_name, product_id, product_name,
			price, size, color, quantity, found, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (line_id) DO UPDATE SET
			client_id = EXCLUDED.client_id, store_id = EXCLUDED.store_id,
			store_name = EXCLUDED.store_name, product_id = EXCLUDED.product_id,
			product_name = EXCLUDED.product_name, price = EXCLUDED.price,
			size = EXCLUDED.size, color = EXCLUDED.color,
			quantity = EXCLUDED.quantity, found = EXCLUDED.found, ts = EXCLUDED.ts`
	_, err := r.db.Exec(ctx, query,
		line.LineID, line.ClientID, line.StoreID, line.StoreName, line.ProductID, line.ProductName,
		line.Price, line.Size, line.Color, line.Quantity, line.Found, line.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert cart line: %w", err)
	}
	return nil
}

// GetByLineID obtiene una línea por su clave; nil si no existe.
func (r *CartRepo) GetByLineID(ctx context.Context, lineID string) (*entity.CartLine, error) {
	query := `
		SELECT line_id, client_id, store_id, store_name, product_id, product_name,
			price, size, color, quantity, found, ts
		FROM cart_lines WHERE line_id = $1`
	var l entity.CartLine
	err := r.db.QueryRow(ctx, query, lineID).Scan(
		&l.LineID, &l.ClientID, &l.StoreID, &l.StoreName, &l.ProductID, &l.ProductName,
		&l.Price, &l.Size, &l.Color, &l.Quantity, &l.Found, &l.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &l, nil
}

// ListByClient devuelve las líneas del cliente en orden de inserción.
func (r *CartRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.CartLine, error) {
	query := `
		SELECT line_id, client_id, store_id, store_name, product_id, product_name,
			price, size, color, quantity, found, ts
		FROM cart_lines WHERE client_id = $1 ORDER BY ts`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(
			&l.LineID, &l.ClientID, &l.StoreID, &l.StoreName, &l.ProductID, &l.ProductName,
			&l.Price, &l.Size, &l.Color, &l.Quantity, &l.Found, &l.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SetFound actualiza la marca de preparación de la línea.
func (r *CartRepo) SetFound(ctx context.Context, lineID string, found bool) error {
	_, err := r.db.Exec(ctx, `UPDATE cart_lines SET found = $2 WHERE line_id = $1`, lineID, found)
	if err != nil {
		return fmt.Errorf("set found: %w", err)
	}
	return nil
}

// Delete elimina una línea; no es error si no existe.
func (r *CartRepo) Delete(ctx context.Context, lineID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE line_id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// DeleteByClient elimina todas las líneas del cliente.
func (r *CartRepo) DeleteByClient(ctx context.Context, clientID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_lines WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete cart lines: %w", err)
	}
	return nil
}
