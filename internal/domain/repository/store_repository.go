package repository

import (
	"context"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// Las listas de staff se escriben por columna de rol: ReplaceStaff sobreescribe
// únicamente la lista del rol indicado, sin tocar campos hermanos (semántica
// merge del almacén de documentos original).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Store, error)
	ReplaceStaff(ctx context.Context, storeID, role string, staff []entity.Principal) error
}
