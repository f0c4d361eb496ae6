package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, display_name, photo_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, a.PhotoURL, a.Role, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID; nil si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email; nil si no existe.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

// UpdateProfile actualiza displayName y photoURL.
func (r *AccountRepo) UpdateProfile(ctx context.Context, id, displayName, photoURL string) error {
	query := `UPDATE accounts SET display_name = $2, photo_url = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, displayName, photoURL, time.Now())
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *AccountRepo) findOne(ctx context.Context, where string, arg any) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, display_name, photo_url, role, created_at, updated_at
		FROM accounts ` + where
	var a entity.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.PhotoURL, &a.Role,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
