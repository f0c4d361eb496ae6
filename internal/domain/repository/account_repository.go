package repository

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para cuentas de cliente/admin.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, id, displayName, photoURL string) error
}
