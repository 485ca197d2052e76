package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "error consultando productos")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "error consultando el producto")
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("no existe un producto con el id %d", id))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, "la base rechazó los datos del producto")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "error registrando el producto")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DecrementStock godoc
// @Summary      Descontar stock de un producto
// @Description  Descuento condicionado a que el producto exista. La política
// @Description  heredada no rechaza descuentos que dejen el stock negativo.
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Param        qty  path  int  true  "Cantidad a descontar"
// @Success      200  "Stock actualizado, sin cuerpo"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products/{id}/{qty} [patch]
func (h *ProductHandler) DecrementStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	qty, err := c.ParamsInt("qty")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cantidad inválida")
	}
	applied, err := h.uc.DecrementStock(int64(id), qty)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "error actualizando el stock")
	}
	if !applied {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("no existe un producto con el id %d", id))
	}
	// Igual que el servicio original: 200 sin cuerpo.
	return c.Status(fiber.StatusOK).SendString("")
}
