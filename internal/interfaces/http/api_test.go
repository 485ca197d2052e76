package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Pedidos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	seq      int64
	products []*entity.Product
}

func (f *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memProductRepo) Create(product *entity.Product) error {
	f.seq++
	product.ID = f.seq
	cp := *product
	f.products = append(f.products, &cp)
	return nil
}

func (f *memProductRepo) DecrementStock(id int64, quantity int) (bool, error) {
	for _, p := range f.products {
		if p.ID == id {
			p.Stock -= quantity
			return true, nil
		}
	}
	return false, nil
}

type memStoreRepo struct {
	seq    int64
	stores []*entity.Store
}

func (f *memStoreRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(f.stores))
	for _, s := range f.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *memStoreRepo) Create(store *entity.Store) error {
	f.seq++
	store.ID = f.seq
	cp := *store
	f.stores = append(f.stores, &cp)
	return nil
}

type memOrderRepo struct {
	seq    int64
	orders []*entity.Order
}

func (f *memOrderRepo) List() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *memOrderRepo) Create(order *entity.Order) error {
	f.seq++
	order.ID = f.seq
	cp := *order
	f.orders = append(f.orders, &cp)
	return nil
}

type memDetailRepo struct {
	seq  int64
	rows []*entity.Detail
}

func (f *memDetailRepo) List() ([]*entity.Detail, error) {
	out := make([]*entity.Detail, 0, len(f.rows))
	for _, d := range f.rows {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *memDetailRepo) CreateBatch(details []*entity.Detail) error {
	for _, d := range details {
		f.seq++
		d.ID = f.seq
		cp := *d
		f.rows = append(f.rows, &cp)
	}
	return nil
}

type memTxRunner struct {
	repo *memDetailRepo
}

func (r *memTxRunner) RunDetails(ctx context.Context, fn func(repo repository.DetailRepository) error) error {
	prevSeq := r.repo.seq
	prevRows := make([]*entity.Detail, len(r.repo.rows))
	copy(prevRows, r.repo.rows)
	if err := fn(r.repo); err != nil {
		r.repo.seq = prevSeq
		r.repo.rows = prevRows
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación con los mismos handlers y rutas que cmd/api,
// pero con repos en memoria.
func buildTestApp() *fiber.App {
	detailRepo := &memDetailRepo{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(&memProductRepo{}),
		StoreUC:   usecase.NewStoreUseCase(&memStoreRepo{}),
		OrderUC:   usecase.NewOrderUseCase(&memOrderRepo{}),
		DetailUC:  usecase.NewDetailUseCase(detailRepo, &memTxRunner{repo: detailRepo}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo del contrato: price y stock llegan como números, nunca
// como cadenas.
func TestProducts_CrearYConsultar_PrecioNumerico(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Widget", "price": 9.99, "description": "A widget", "stock": 10,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Equal(t, float64(1), created["id"])
	assert.InDelta(t, 9.99, created["price"].(float64), 1e-9, "price debe ser número JSON")
	assert.Equal(t, float64(10), created["stock"])

	resp = doJSON(t, app, http.MethodGet, "/products/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	decodeBody(t, resp, &got)
	assert.InDelta(t, 9.99, got["price"].(float64), 1e-9)
}

func TestProducts_GetInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/products/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un id desconocido debe responder 404 controlado, nunca tumbar la petición")

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(http.StatusNotFound), body["codigo"])
	assert.Contains(t, body["error"], "99")
}

func TestProducts_DescontarStock_OK(t *testing.T) {
	app := buildTestApp()

	doJSON(t, app, http.MethodPost, "/products", map[string]any{
		"name": "Widget", "price": 9.99, "description": "A widget", "stock": 10,
	}).Body.Close()

	resp := doJSON(t, app, http.MethodPatch, "/products/1/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, raw, "el éxito del descuento responde sin cuerpo")

	resp = doJSON(t, app, http.MethodGet, "/products", nil)
	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, float64(7), list[0]["stock"])
}

func TestProducts_DescontarStock_IdInexistente_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/products/42/1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "42", "el mensaje debe nombrar el id faltante")
}

func TestProducts_DescontarStock_CantidadNoNumerica_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/products/1/abc", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stores y Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestStores_RegistrarYListar(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/stores", map[string]any{
		"name": "Sucursal Centro", "address": "Calle 10 #5-20", "city": "Bogotá", "openingHours": "8:00-18:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/stores", nil)
	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "8:00-18:00", list[0]["openingHours"])
}

func TestOrders_Crear_TotalNumerico(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/orders", map[string]any{
		"name": "Order1", "date": "2024-01-01", "pickup": false, "storeId": 1,
		"shippingAddress": "123 St", "city": "Metropolis", "total": 42.50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.InDelta(t, 42.5, created["total"].(float64), 1e-9, "total debe ser número JSON")
	assert.Equal(t, false, created["pickup"])
	assert.Equal(t, float64(1), created["storeId"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Details
// ──────────────────────────────────────────────────────────────────────────────

func TestDetails_LoteVacio_RespondeSecuenciaVacia(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/details/add/batch", []any{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	decodeBody(t, resp, &out)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	resp = doJSON(t, app, http.MethodGet, "/details/get/all", nil)
	var list []map[string]any
	decodeBody(t, resp, &list)
	assert.Empty(t, list, "el lote vacío no persiste nada")
}

func TestDetails_Lote_AsignaIdsEnOrden(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/details/add/batch", []map[string]any{
		{"orderId": 1, "productId": 10, "quantity": 2, "subtotal": 19.98},
		{"orderId": 1, "productId": 11, "quantity": 1, "subtotal": 5.25},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	decodeBody(t, resp, &out)
	require.Len(t, out, 2)
	assert.Equal(t, float64(1), out[0]["id"])
	assert.Equal(t, float64(2), out[1]["id"])
	assert.InDelta(t, 19.98, out[0]["subtotal"].(float64), 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback
// ──────────────────────────────────────────────────────────────────────────────

func TestFallback_URLNoEncontrada(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "URL no encontrada", body["error"])
	assert.Equal(t, float64(404), body["codigo"])
}
