package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// StoreUseCase casos de uso de tiendas.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo}
}

// Create registra una tienda nueva, activa y sin staff.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	resp := toStoreResponse(store)
	return &resp, nil
}

// List devuelve las tiendas; con activeOnly solo las visibles para clientes.
func (uc *StoreUseCase) List(ctx context.Context, activeOnly bool) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	return out, nil
}

// GetByID devuelve una tienda por su ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	resp := toStoreResponse(store)
	return &resp, nil
}

func toStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}
