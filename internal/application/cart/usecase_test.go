package cart_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	lines map[string]*entity.CartLine // por lineID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[string]*entity.CartLine)}
}

func (f *fakeCartRepo) Upsert(_ context.Context, line *entity.CartLine) error {
	cp := *line
	f.lines[line.LineID] = &cp
	return nil
}

func (f *fakeCartRepo) GetByLineID(_ context.Context, lineID string) (*entity.CartLine, error) {
	if l, ok := f.lines[lineID]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCartRepo) ListByClient(_ context.Context, clientID string) ([]*entity.CartLine, error) {
	var out []*entity.CartLine
	for _, l := range f.lines {
		if l.ClientID == clientID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeCartRepo) SetFound(_ context.Context, lineID string, found bool) error {
	l, ok := f.lines[lineID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Found = found
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, lineID string) error {
	delete(f.lines, lineID)
	return nil
}

func (f *fakeCartRepo) DeleteByClient(_ context.Context, clientID string) error {
	for id, l := range f.lines {
		if l.ClientID == clientID {
			delete(f.lines, id)
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByStore(_ context.Context, storeID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByStore(_ context.Context, storeID string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ConfirmPayment(_ context.Context, id string) error {
	for _, o := range f.orders {
		if o.ID == id {
			o.PaymentConfirmed = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner pasa los mismos fakes al callback; failWith permite simular
// un fallo transaccional.
type fakeTxRunner struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	failWith  error
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.CartRepository, repository.OrderRepository) error) error {
	if f.failWith != nil {
		return f.failWith
	}
	return fn(f.cartRepo, f.orderRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testClientID = "c-1"

func newTestCartUC() (*cart.CartUseCase, *fakeCartRepo, *fakeOrderRepo) {
	cartRepo := newFakeCartRepo()
	orderRepo := &fakeOrderRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {
			ID: "prod-1", StoreID: "s-1", StoreName: "Tienda Centro",
			Name: "Camiseta", Price: decimal.NewFromInt(25),
		},
		"prod-2": {
			ID: "prod-2", StoreID: "s-1", StoreName: "Tienda Centro",
			Name: "Pantalón", Price: decimal.NewFromInt(40),
		},
	}}
	txRunner := &fakeTxRunner{cartRepo: cartRepo, orderRepo: orderRepo}
	return cart.NewCartUseCase(cartRepo, productRepo, txRunner), cartRepo, orderRepo
}

func addLine(t *testing.T, uc *cart.CartUseCase, productID string, qty int) *dto.CartLineResponse {
	t.Helper()
	line, err := uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: productID, Size: "M", Color: "negro", Quantity: qty,
	})
	require.NoError(t, err)
	return line
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StartBuying
// ──────────────────────────────────────────────────────────────────────────────

// El clientID de la sesión de compra es el ID de la cuenta: el pedido que nazca
// de este carrito queda ligado a la identidad del token.
func TestStartBuying_AnclaElCarritoALaCuenta(t *testing.T) {
	uc, _, _ := newTestCartUC()

	out, err := uc.StartBuying(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", out.ClientID)

	_, err = uc.StartBuying(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddOrMerge
// ──────────────────────────────────────────────────────────────────────────────

func TestAddOrMerge_CreaLineaConClaveDeterminista(t *testing.T) {
	uc, _, _ := newTestCartUC()

	line := addLine(t, uc, "prod-1", 2)

	assert.Equal(t, testClientID+"_prod-1", line.LineID)
	assert.Equal(t, "Camiseta", line.ProductName)
	assert.Equal(t, 2, line.Quantity)
	assert.False(t, line.Found, "una línea nueva nunca nace encontrada")
}

func TestAddOrMerge_MismoProductoFusionaCantidades(t *testing.T) {
	uc, cartRepo, _ := newTestCartUC()

	addLine(t, uc, "prod-1", 2)
	line := addLine(t, uc, "prod-1", 3)

	assert.Equal(t, 5, line.Quantity, "las cantidades deben sumarse")
	assert.Len(t, cartRepo.lines, 1, "no debe duplicarse la línea del mismo producto")
}

func TestAddOrMerge_SinSesionDeCompra(t *testing.T) {
	uc, _, _ := newTestCartUC()

	_, err := uc.AddOrMerge(context.Background(), "  ", dto.AddCartLineRequest{
		ProductID: "prod-1", Size: "M", Color: "negro", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrBuyingNotStarted)
}

func TestAddOrMerge_SeleccionIncompleta(t *testing.T) {
	uc, _, _ := newTestCartUC()

	_, err := uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: "prod-1", Size: "", Color: "negro", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSelectionIncomplete)

	_, err = uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: "prod-1", Size: "M", Color: "   ", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSelectionIncomplete)
}

func TestAddOrMerge_CantidadInvalida(t *testing.T) {
	uc, _, _ := newTestCartUC()

	_, err := uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: "prod-1", Size: "M", Color: "negro", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddOrMerge_ProductoInexistente(t *testing.T) {
	uc, _, _ := newTestCartUC()

	_, err := uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: "no-existe", Size: "M", Color: "negro", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Remove / CancelBuying
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_EsIdempotente(t *testing.T) {
	uc, cartRepo, _ := newTestCartUC()
	addLine(t, uc, "prod-1", 1)

	require.NoError(t, uc.Remove(context.Background(), testClientID, "prod-1"))
	assert.Empty(t, cartRepo.lines)

	// Repetir el borrado no es un error.
	assert.NoError(t, uc.Remove(context.Background(), testClientID, "prod-1"))
	assert.NoError(t, uc.Remove(context.Background(), testClientID, "jamas-existio"))
}

func TestCancelBuying_VaciaElCarrito(t *testing.T) {
	uc, cartRepo, _ := newTestCartUC()
	addLine(t, uc, "prod-1", 1)
	addLine(t, uc, "prod-2", 2)

	require.NoError(t, uc.CancelBuying(context.Background(), testClientID))
	assert.Empty(t, cartRepo.lines)
}

func TestCancelBuying_SinSesion(t *testing.T) {
	uc, _, _ := newTestCartUC()
	assert.ErrorIs(t, uc.CancelBuying(context.Background(), ""), domain.ErrBuyingNotStarted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetFound
// ──────────────────────────────────────────────────────────────────────────────

func TestSetFound_ExigeConfirmacion(t *testing.T) {
	uc, _, _ := newTestCartUC()
	line := addLine(t, uc, "prod-1", 1)

	err := uc.SetFound(context.Background(), testClientID, line.LineID, true, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	// También para desmarcar.
	err = uc.SetFound(context.Background(), testClientID, line.LineID, false, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
}

func TestSetFound_MarcaYDesmarca(t *testing.T) {
	uc, cartRepo, _ := newTestCartUC()
	line := addLine(t, uc, "prod-1", 1)

	require.NoError(t, uc.SetFound(context.Background(), testClientID, line.LineID, true, true))
	assert.True(t, cartRepo.lines[line.LineID].Found)

	require.NoError(t, uc.SetFound(context.Background(), testClientID, line.LineID, false, true))
	assert.False(t, cartRepo.lines[line.LineID].Found)
}

func TestSetFound_LineaDeOtroCliente(t *testing.T) {
	uc, _, _ := newTestCartUC()
	line := addLine(t, uc, "prod-1", 1)

	err := uc.SetFound(context.Background(), "otro-cliente", line.LineID, true, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / ConfirmAll
// ──────────────────────────────────────────────────────────────────────────────

func TestList_CuentaElAvance(t *testing.T) {
	uc, _, _ := newTestCartUC()
	l1 := addLine(t, uc, "prod-1", 1)
	addLine(t, uc, "prod-2", 2)

	require.NoError(t, uc.SetFound(context.Background(), testClientID, l1.LineID, true, true))

	out, err := uc.List(context.Background(), testClientID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalCount)
	assert.Equal(t, 1, out.FoundCount)
}

func TestConfirmAll_CarritoVacio(t *testing.T) {
	uc, _, _ := newTestCartUC()

	_, err := uc.ConfirmAll(context.Background(), testClientID, "malo123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirmAll_LineasSinMarcar(t *testing.T) {
	uc, _, orderRepo := newTestCartUC()
	l1 := addLine(t, uc, "prod-1", 1)
	addLine(t, uc, "prod-2", 2)

	require.NoError(t, uc.SetFound(context.Background(), testClientID, l1.LineID, true, true))

	_, err := uc.ConfirmAll(context.Background(), testClientID, "malo123")
	assert.ErrorIs(t, err, domain.ErrIncompleteConfirmation)
	assert.Empty(t, orderRepo.orders, "no debe crearse pedido con líneas pendientes")
}

func TestConfirmAll_CreaPedidoYVaciaCarrito(t *testing.T) {
	uc, cartRepo, orderRepo := newTestCartUC()
	l1 := addLine(t, uc, "prod-1", 2) // 2 x 25 = 50
	l2 := addLine(t, uc, "prod-2", 1) // 1 x 40 = 40
	require.NoError(t, uc.SetFound(context.Background(), testClientID, l1.LineID, true, true))
	require.NoError(t, uc.SetFound(context.Background(), testClientID, l2.LineID, true, true))

	order, err := uc.ConfirmAll(context.Background(), testClientID, "malo123")
	require.NoError(t, err)

	assert.Equal(t, testClientID, order.ClientID)
	assert.Equal(t, "s-1", order.StoreID)
	assert.Equal(t, "malo123", order.ConfirmedBy)
	assert.False(t, order.PaymentConfirmed, "el pedido nace sin cobrar")
	assert.Len(t, order.Products, 2)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(90)), "total esperado 90, fue %s", order.Total)

	assert.Len(t, orderRepo.orders, 1, "el pedido debe quedar persistido")
	assert.Empty(t, cartRepo.lines, "el carrito debe quedar vacío tras el cierre")
}

func TestConfirmAll_FalloTransaccionalNoDejaEstado(t *testing.T) {
	cartRepo := newFakeCartRepo()
	orderRepo := &fakeOrderRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", StoreID: "s-1", Name: "Camiseta", Price: decimal.NewFromInt(25)},
	}}
	txRunner := &fakeTxRunner{cartRepo: cartRepo, orderRepo: orderRepo, failWith: errors.New("deadlock")}
	uc := cart.NewCartUseCase(cartRepo, productRepo, txRunner)

	line, err := uc.AddOrMerge(context.Background(), testClientID, dto.AddCartLineRequest{
		ProductID: "prod-1", Size: "M", Color: "negro", Quantity: 1,
	})
	require.NoError(t, err)
	require.NoError(t, uc.SetFound(context.Background(), testClientID, line.LineID, true, true))

	_, err = uc.ConfirmAll(context.Background(), testClientID, "malo123")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, orderRepo.orders)
	assert.Len(t, cartRepo.lines, 1, "si la transacción falla, el carrito queda intacto")
}
