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

// OrderUseCase casos de uso de pedidos y rupturas de stock (vista del manager
// y reportes del picker).
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	oosRepo   repository.OutOfStockRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, oosRepo repository.OutOfStockRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, oosRepo: oosRepo}
}

// ListByStore devuelve los pedidos de la tienda del manager.
func (uc *OrderUseCase) ListByStore(ctx context.Context, storeID string, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByStore(ctx, storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// GetByID devuelve un pedido. El manager solo ve pedidos de su tienda.
func (uc *OrderUseCase) GetByID(ctx context.Context, session entity.Session, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if session.Role == entity.RoleManager && order.StoreID != session.StoreID {
		return nil, domain.ErrForbidden
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// ConfirmPayment marca el pedido como cobrado.
func (uc *OrderUseCase) ConfirmPayment(ctx context.Context, session entity.Session, id string) (*dto.OrderResponse, error) {
	order, err := uc.GetByID(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if err := uc.orderRepo.ConfirmPayment(ctx, id); err != nil {
		return nil, err
	}
	order.PaymentConfirmed = true
	return order, nil
}

// ReportOutOfStock registra el aviso de un picker de que un producto no está
// disponible en estantería.
func (uc *OrderUseCase) ReportOutOfStock(ctx context.Context, session entity.Session, in dto.ReportOutOfStockRequest) error {
	report := &entity.OutOfStockReport{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		StoreID:    session.StoreID,
		ReportedBy: session.Username,
		Note:       in.Note,
		CreatedAt:  time.Now(),
	}
	return uc.oosRepo.Create(ctx, report)
}

// OutOfStockCount devuelve el conteo de rupturas de stock de la tienda.
func (uc *OrderUseCase) OutOfStockCount(ctx context.Context, storeID string) (*dto.OutOfStockCountResponse, error) {
	count, err := uc.oosRepo.CountByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &dto.OutOfStockCountResponse{StoreID: storeID, Count: count}, nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		ClientID:         o.ClientID,
		StoreID:          o.StoreID,
		StoreName:        o.StoreName,
		Products:         o.Products,
		Total:            o.Total,
		PaymentConfirmed: o.PaymentConfirmed,
		ConfirmedBy:      o.ConfirmedBy,
		CreatedAt:        o.CreatedAt,
	}
}
