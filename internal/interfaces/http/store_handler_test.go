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

	"github.com/Jeremytpk/storall/internal/application/staff"
	"github.com/Jeremytpk/storall/internal/application/usecase"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	apphttp "github.com/Jeremytpk/storall/internal/interfaces/http"
)

type fakeStoreListRepo struct {
	stores []*entity.Store
}

func (f *fakeStoreListRepo) Create(_ context.Context, s *entity.Store) error {
	f.stores = append(f.stores, s)
	return nil
}

func (f *fakeStoreListRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreListRepo) List(_ context.Context, activeOnly bool) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(f.stores))
	for _, s := range f.stores {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStoreListRepo) ReplaceStaff(_ context.Context, _, _ string, _ []entity.Principal) error {
	return nil
}

func buildStoreApp() *fiber.App {
	repo := &fakeStoreListRepo{stores: []*entity.Store{
		{ID: "s-1", Name: "Tienda Centro", IsActive: true},
		{ID: "s-2", Name: "Tienda Cerrada", IsActive: false},
	}}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StoreUC:   usecase.NewStoreUseCase(repo),
		StaffUC:   staff.NewStaffUseCase(repo, staff.Options{}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func listStores(t *testing.T, app *fiber.App, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeStores(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// El listado público solo expone las tiendas activas.
func TestStoreList_PublicoSoloActivas(t *testing.T) {
	app := buildStoreApp()

	resp := listStores(t, app, "/api/stores", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	stores := decodeStores(t, resp)
	require.Len(t, stores, 1)
	assert.Equal(t, "s-1", stores[0]["id"])
}

// El listado completo (incluye inactivas) es exclusivo del admin.
func TestStoreList_TodasExigeAdmin(t *testing.T) {
	app := buildStoreApp()

	sinToken := listStores(t, app, "/api/stores?all=1", "")
	defer sinToken.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, sinToken.StatusCode)

	comoCliente := listStores(t, app, "/api/stores?all=1", tokenForRole(t, entity.RoleClient))
	defer comoCliente.Body.Close()
	assert.Equal(t, http.StatusForbidden, comoCliente.StatusCode)
	body, _ := io.ReadAll(comoCliente.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestStoreList_TodasComoAdmin(t *testing.T) {
	app := buildStoreApp()

	resp := listStores(t, app, "/api/stores?all=1", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeStores(t, resp), 2, "el admin ve también las tiendas inactivas")
}
