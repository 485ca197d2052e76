package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "error consultando pedidos")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, "la base rechazó los datos del pedido")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "error registrando el pedido")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
