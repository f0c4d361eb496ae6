package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	apphttp "github.com/Jeremytpk/storall/internal/interfaces/http"
	pkgjwt "github.com/Jeremytpk/storall/pkg/jwt"
)

// Fakes mínimos: las rutas bajo prueba solo leen el carrito.

type fakeCartRepo struct {
	lines map[string]*entity.CartLine
}

func (f *fakeCartRepo) Upsert(_ context.Context, line *entity.CartLine) error {
	f.lines[line.LineID] = line
	return nil
}

func (f *fakeCartRepo) GetByLineID(_ context.Context, lineID string) (*entity.CartLine, error) {
	return f.lines[lineID], nil
}

func (f *fakeCartRepo) ListByClient(_ context.Context, clientID string) ([]*entity.CartLine, error) {
	var out []*entity.CartLine
	for _, l := range f.lines {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) SetFound(_ context.Context, lineID string, found bool) error {
	if l, ok := f.lines[lineID]; ok {
		l.Found = found
	}
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

type fakeCartProductRepo struct{}

func (fakeCartProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }

func (fakeCartProductRepo) GetByID(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (fakeCartProductRepo) ListByStore(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func buildCartApp() *fiber.App {
	app := fiber.New()
	uc := cart.NewCartUseCase(&fakeCartRepo{lines: map[string]*entity.CartLine{}}, fakeCartProductRepo{}, nil)
	apphttp.Router(app, apphttp.RouterDeps{CartUC: uc, JWTSecret: testJWTSecret})
	return app
}

func clientToken(t *testing.T, accountID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, accountID, "", entity.RoleClient, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doCartRequest(t *testing.T, app *fiber.App, method, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// La sesión de compra devuelve el ID de la cuenta del token como client_id.
func TestCartStartBuying_DevuelveElIDDeLaCuenta(t *testing.T) {
	app := buildCartApp()

	resp := doCartRequest(t, app, http.MethodPost, "/api/cart/session", clientToken(t, "acc-1"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "acc-1", body["client_id"])
}

// Un token de cliente solo opera sobre su propio carrito: cualquier ruta con
// el clientId de otra cuenta responde 403.
func TestCartRoutes_CarritoAjenoRechazado(t *testing.T) {
	app := buildCartApp()
	token := clientToken(t, "acc-1")

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/cart/acc-2"},
		{http.MethodPost, "/api/cart/acc-2/lines"},
		{http.MethodDelete, "/api/cart/acc-2/lines/prod-1"},
		{http.MethodDelete, "/api/cart/session/acc-2"},
	}
	for _, tc := range cases {
		resp := doCartRequest(t, app, tc.method, tc.target, token)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.target)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "FORBIDDEN")
	}
}

func TestCartRoutes_CarritoPropioAccesible(t *testing.T) {
	app := buildCartApp()
	token := clientToken(t, "acc-1")

	resp := doCartRequest(t, app, http.MethodGet, "/api/cart/acc-1", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel := doCartRequest(t, app, http.MethodDelete, "/api/cart/session/acc-1", token)
	defer cancel.Body.Close()
	assert.Equal(t, http.StatusNoContent, cancel.StatusCode)
}

// Anular sin sesión de compra es un error del cliente, no del servidor.
func TestCartCancelBuying_SinSesionRetorna400(t *testing.T) {
	app := fiber.New()
	uc := cart.NewCartUseCase(&fakeCartRepo{lines: map[string]*entity.CartLine{}}, fakeCartProductRepo{}, nil)
	h := apphttp.NewCartHandler(uc)
	// Ruta sin clientId: la identidad vacía llega intacta al caso de uso.
	app.Delete("/cancel", h.CancelBuying)

	req := httptest.NewRequest(http.MethodDelete, "/cancel", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BUYING_NOT_STARTED")
}
