package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, store_name, name, price, sizes, colors, photos,
			main_photo, manager_username, manager_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.StoreID, p.StoreName, p.Name, p.Price, p.Sizes, p.Colors, p.Photos,
		p.MainPhoto, p.ManagerUsername, p.ManagerName, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, store_id, store_name, name, price, sizes, colors, photos,
			main_photo, manager_username, manager_name, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.StoreID, &p.StoreName, &p.Name, &p.Price, &p.Sizes, &p.Colors, &p.Photos,
		&p.MainPhoto, &p.ManagerUsername, &p.ManagerName, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// ListByStore lista productos de una tienda con paginación.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, store_id, store_name, name, price, sizes, colors, photos,
			main_photo, manager_username, manager_name, created_at
		FROM products WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.StoreName, &p.Name, &p.Price, &p.Sizes, &p.Colors, &p.Photos,
			&p.MainPhoto, &p.ManagerUsername, &p.ManagerName, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.OutOfStockRepository = (*OutOfStockRepo)(nil)

// OutOfStockRepo implementación del puerto OutOfStockRepository sobre PostgreSQL.
type OutOfStockRepo struct {
	pool *pgxpool.Pool
}

// NewOutOfStockRepository construye el adaptador de rupturas de stock.
func NewOutOfStockRepository(pool *pgxpool.Pool) *OutOfStockRepo {
	return &OutOfStockRepo{pool: pool}
}

// Create registra un aviso de ruptura de stock.
func (r *OutOfStockRepo) Create(ctx context.Context, report *entity.OutOfStockReport) error {
	query := `
		INSERT INTO out_of_stock (id, product_id, store_id, reported_by, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		report.ID, report.ProductID, report.StoreID, report.ReportedBy, report.Note, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert out_of_stock: %w", err)
	}
	return nil
}

// CountByStore cuenta los avisos de una tienda.
func (r *OutOfStockRepo) CountByStore(ctx context.Context, storeID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM out_of_stock WHERE store_id = $1`, storeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count out_of_stock: %w", err)
	}
	return count, nil
}
