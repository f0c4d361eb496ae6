package receipt

import (
	"context"
	"fmt"

	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// OrderReceiptGenerator es el puerto de generación del comprobante en PDF.
type OrderReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order, store *entity.Store) ([]byte, error)
}

// ReceiptUseCase genera el comprobante descargable de un pedido cerrado.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
	generator OrderReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	generator OrderReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, storeRepo: storeRepo, generator: generator}
}

// DownloadOrderReceipt recupera el pedido, verifica que quien lo pide puede
// verlo y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no es del cliente ni de la tienda del staff.
func (uc *ReceiptUseCase) DownloadOrderReceipt(
	ctx context.Context,
	session entity.Session,
	orderID string,
) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	switch session.Role {
	case entity.RoleClient:
		if order.ClientID != session.Username {
			return nil, "", domain.ErrForbidden
		}
	case entity.RoleManager, entity.RolePicker:
		if order.StoreID != session.StoreID {
			return nil, "", domain.ErrForbidden
		}
	}

	store, err := uc.storeRepo.GetByID(ctx, order.StoreID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateOrderReceipt(ctx, order, store)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("pedido_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
