package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StoreUC   *usecase.StoreUseCase
	OrderUC   *usecase.OrderUseCase
	DetailUC  *usecase.DetailUseCase
}

// Router registra las rutas de la API. Conserva las URLs del servicio
// original, incluidas las de detalles (/details/get/all, /details/add/batch).
func Router(app *fiber.App, deps RouterDeps) {
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id/:qty", productHandler.DecrementStock)

	stores := app.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)

	orders := app.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)

	details := app.Group("/details")
	detailHandler := NewDetailHandler(deps.DetailUC)
	details.Get("/get/all", detailHandler.List)
	details.Post("/add/batch", detailHandler.CreateBatch)

	// Fallback 404 con el cuerpo del servicio original.
	app.Use(func(c *fiber.Ctx) error {
		return errorJSON(c, fiber.StatusNotFound, "URL no encontrada")
	})
}

// errorJSON responde con el cuerpo de error {codigo, error} del servicio
// original. Toda petición recibe exactamente una respuesta.
func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Codigo: status, Error: msg})
}
