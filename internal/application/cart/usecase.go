// Package cart implementa la reconciliación del carrito de un cliente: líneas
// con clave determinista clientId_productId (a lo sumo una línea por producto),
// merge de cantidades, borrado idempotente y el flujo de preparación del picker
// (found por línea, cierre atómico en pedido).
package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// CartUseCase casos de uso del carrito y del flujo de preparación.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository, txRunner TxRunner) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo, txRunner: txRunner}
}

// StartBuying inicia una sesión de compra. El clientID que ancla el carrito es
// el ID de la cuenta del cliente: así el carrito y el pedido resultante quedan
// ligados a la identidad del token, no a un identificador efímero.
func (uc *CartUseCase) StartBuying(_ context.Context, accountID string) (*dto.StartBuyingResponse, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, domain.ErrUnauthorized
	}
	return &dto.StartBuyingResponse{ClientID: accountID}, nil
}

// CancelBuying anula la compra en curso: elimina todas las líneas del cliente.
func (uc *CartUseCase) CancelBuying(ctx context.Context, clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return domain.ErrBuyingNotStarted
	}
	if err := uc.cartRepo.DeleteByClient(ctx, clientID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// AddOrMerge añade un producto al carrito. Exige sesión de compra iniciada y
// talla+color seleccionados. Si ya existe línea para el producto, suma la
// cantidad pedida y reescribe la línea completa; si no, crea una nueva con la
// clave determinista clientId_productId.
func (uc *CartUseCase) AddOrMerge(ctx context.Context, clientID string, in dto.AddCartLineRequest) (*dto.CartLineResponse, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, domain.ErrBuyingNotStarted
	}
	if strings.TrimSpace(in.Size) == "" || strings.TrimSpace(in.Color) == "" {
		return nil, domain.ErrSelectionIncomplete
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	lineID := entity.CartLineID(clientID, in.ProductID)
	line, err := uc.cartRepo.GetByLineID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line != nil {
		// Merge: se suma la cantidad, no se duplica la línea.
		line.Quantity += in.Quantity
		line.Timestamp = time.Now()
	} else {
		line = &entity.CartLine{
			LineID:      lineID,
			ClientID:    clientID,
			StoreID:     product.StoreID,
			StoreName:   product.StoreName,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Size:        in.Size,
			Color:       in.Color,
			Quantity:    in.Quantity,
			Timestamp:   time.Now(),
		}
	}
	if err := uc.cartRepo.Upsert(ctx, line); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	resp := toLineResponse(line)
	return &resp, nil
}

// List devuelve el carrito del cliente con el avance de preparación.
func (uc *CartUseCase) List(ctx context.Context, clientID string) (*dto.CartResponse, error) {
	lines, err := uc.cartRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{ClientID: clientID, Lines: make([]dto.CartLineResponse, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
		resp.TotalCount++
		if l.Found {
			resp.FoundCount++
		}
	}
	return resp, nil
}

// Remove elimina la línea del producto indicado. Es idempotente: si la línea
// no existe, no hace nada y no es un error.
func (uc *CartUseCase) Remove(ctx context.Context, clientID, productID string) error {
	if err := uc.cartRepo.Delete(ctx, entity.CartLineID(clientID, productID)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// SetFound marca o desmarca una línea como encontrada. Ambos sentidos exigen
// confirmación explícita: es una salvaguarda contra toques accidentales, no un
// mecanismo de integridad.
func (uc *CartUseCase) SetFound(ctx context.Context, clientID, lineID string, found, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	line, err := uc.cartRepo.GetByLineID(ctx, lineID)
	if err != nil {
		return err
	}
	if line == nil || line.ClientID != clientID {
		return domain.ErrNotFound
	}
	if line.Found == found {
		return nil
	}
	if err := uc.cartRepo.SetFound(ctx, lineID, found); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// ConfirmAll cierra el carrito: solo procede cuando todas las líneas están
// marcadas como encontradas. Crea el pedido y elimina las líneas en la misma
// transacción; el cierre es irreversible.
func (uc *CartUseCase) ConfirmAll(ctx context.Context, clientID, confirmedBy string) (*dto.OrderResponse, error) {
	lines, err := uc.cartRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrNotFound
	}
	for _, l := range lines {
		if !l.Found {
			return nil, domain.ErrIncompleteConfirmation
		}
	}

	order := buildOrder(clientID, confirmedBy, lines)
	err = uc.txRunner.Run(ctx, func(cartRepo repository.CartRepository, orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		return cartRepo.DeleteByClient(ctx, clientID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return toOrderResponse(order), nil
}

func buildOrder(clientID, confirmedBy string, lines []*entity.CartLine) *entity.Order {
	order := &entity.Order{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		StoreID:     lines[0].StoreID,
		StoreName:   lines[0].StoreName,
		Products:    make([]entity.OrderProduct, 0, len(lines)),
		Total:       decimal.Zero,
		ConfirmedBy: confirmedBy,
		CreatedAt:   time.Now(),
	}
	for _, l := range lines {
		order.Products = append(order.Products, entity.OrderProduct{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Price:       l.Price,
			Size:        l.Size,
			Color:       l.Color,
			Quantity:    l.Quantity,
		})
		order.Total = order.Total.Add(l.Subtotal())
	}
	return order
}

func toLineResponse(l *entity.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		LineID:      l.LineID,
		ClientID:    l.ClientID,
		StoreID:     l.StoreID,
		StoreName:   l.StoreName,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Price:       l.Price,
		Size:        l.Size,
		Color:       l.Color,
		Quantity:    l.Quantity,
		Found:       l.Found,
		Timestamp:   l.Timestamp,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
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
