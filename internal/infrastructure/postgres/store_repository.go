package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
// Managers y pickers se guardan como columnas JSONB, conservando el modelo de
// listas embebidas del documento original; cada escritura de staff toca solo
// la columna de su rol.
type StoreRepo struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(pool *pgxpool.Pool, log zerolog.Logger) *StoreRepo {
	return &StoreRepo{pool: pool, log: log}
}

// Create persiste una tienda nueva.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	managers, err := encodeStaff(store.Managers)
	if err != nil {
		return err
	}
	pickers, err := encodeStaff(store.Pickers)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO stores (id, name, address, is_active, managers, pickers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.pool.Exec(ctx, query,
		store.ID, store.Name, store.Address, store.IsActive, managers, pickers,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID, con su staff decodificado y validado.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `
		SELECT id, name, address, is_active, managers, pickers, created_at, updated_at
		FROM stores WHERE id = $1`
	store, err := r.scanStore(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return store, nil
}

// List devuelve todas las tiendas, o solo las activas.
func (r *StoreRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Store, error) {
	query := `
		SELECT id, name, address, is_active, managers, pickers, created_at, updated_at
		FROM stores`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		store, err := r.scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, store)
	}
	return list, rows.Err()
}

// ReplaceStaff sobreescribe únicamente la lista del rol indicado, sin tocar
// campos hermanos (semántica merge del documento original).
func (r *StoreRepo) ReplaceStaff(ctx context.Context, storeID, role string, staff []entity.Principal) error {
	var column string
	switch role {
	case entity.RoleManager:
		column = "managers"
	case entity.RolePicker:
		column = "pickers"
	default:
		return fmt.Errorf("rol de staff desconocido: %q", role)
	}
	encoded, err := encodeStaff(staff)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE stores SET %s = $2, updated_at = now() WHERE id = $1`, column)
	tag, err := r.pool.Exec(ctx, query, storeID, encoded)
	if err != nil {
		return fmt.Errorf("replace staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("replace staff: tienda %s no existe", storeID)
	}
	return nil
}

func encodeStaff(staff []entity.Principal) ([]byte, error) {
	if staff == nil {
		staff = []entity.Principal{}
	}
	encoded, err := json.Marshal(staff)
	if err != nil {
		return nil, fmt.Errorf("encode staff: %w", err)
	}
	return encoded, nil
}

// decodeStaff es la frontera tipada entre el JSONB semi-estructurado y las
// entidades del dominio: cada elemento se valida por separado y los registros
// malformados se descartan con log en vez de propagar campos vacíos.
func (r *StoreRepo) decodeStaff(raw []byte, storeID, column string) []entity.Principal {
	if len(raw) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		r.log.Warn().Err(err).Str("store_id", storeID).Str("column", column).
			Msg("lista de staff malformada, se ignora")
		return nil
	}
	staff := make([]entity.Principal, 0, len(elems))
	for i, elem := range elems {
		var p entity.Principal
		if err := json.Unmarshal(elem, &p); err != nil || p.Username == "" || p.ID == "" {
			r.log.Warn().Err(err).Str("store_id", storeID).Str("column", column).Int("index", i).
				Msg("registro de staff malformado, se descarta")
			continue
		}
		staff = append(staff, p)
	}
	return staff
}

func (r *StoreRepo) scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	var managers, pickers []byte
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.IsActive, &managers, &pickers, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Managers = r.decodeStaff(managers, s.ID, "managers")
	s.Pickers = r.decodeStaff(pickers, s.ID, "pickers")
	return &s, nil
}
