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

// ProductUseCase casos de uso de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, storeRepo repository.StoreRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, storeRepo: storeRepo}
}

// Create publica un producto asociado a la tienda y al manager de la sesión.
// El manager debe seguir presente en la lista de staff de su tienda.
func (uc *ProductUseCase) Create(ctx context.Context, session entity.Session, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	store, err := uc.storeRepo.GetByID(ctx, session.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	var manager *entity.Principal
	for i := range store.Managers {
		if store.Managers[i].Username == session.Username {
			manager = &store.Managers[i]
			break
		}
	}
	if manager == nil {
		return nil, domain.ErrForbidden
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	mainPhoto := in.MainPhoto
	if mainPhoto == "" && len(in.Photos) > 0 {
		mainPhoto = in.Photos[0]
	}
	product := &entity.Product{
		ID:              uuid.New().String(),
		StoreID:         store.ID,
		StoreName:       store.Name,
		Name:            in.Name,
		Price:           in.Price,
		Sizes:           in.Sizes,
		Colors:          in.Colors,
		Photos:          in.Photos,
		MainPhoto:       mainPhoto,
		ManagerUsername: manager.Username,
		ManagerName:     manager.Name,
		CreatedAt:       time.Now(),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// ListByStore devuelve los productos publicados en una tienda.
func (uc *ProductUseCase) ListByStore(ctx context.Context, storeID string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByStore(ctx, storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto por su ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		StoreID:         p.StoreID,
		StoreName:       p.StoreName,
		Name:            p.Name,
		Price:           p.Price,
		Sizes:           p.Sizes,
		Colors:          p.Colors,
		Photos:          p.Photos,
		MainPhoto:       p.MainPhoto,
		ManagerUsername: p.ManagerUsername,
		ManagerName:     p.ManagerName,
		CreatedAt:       p.CreatedAt,
	}
}
