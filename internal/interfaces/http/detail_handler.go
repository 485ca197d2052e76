package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// DetailHandler maneja las peticiones HTTP para los renglones de pedido.
type DetailHandler struct {
	uc *usecase.DetailUseCase
}

// NewDetailHandler construye el handler.
func NewDetailHandler(uc *usecase.DetailUseCase) *DetailHandler {
	return &DetailHandler{uc: uc}
}

// List godoc
// @Summary      Listar detalles de pedidos
// @Tags         details
// @Produce      json
// @Success      200  {array}   dto.DetailResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /details/get/all [get]
func (h *DetailHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "error consultando detalles")
	}
	return c.JSON(out)
}

// CreateBatch godoc
// @Summary      Insertar detalles por lote
// @Description  Lote todo-o-nada: si la base rechaza cualquier renglón no se
// @Description  persiste ninguno. Un arreglo vacío es un no-op válido.
// @Tags         details
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreateDetailRequest  true  "Renglones del pedido"
// @Success      200   {array}   dto.DetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /details/add/batch [post]
func (h *DetailHandler) CreateBatch(c *fiber.Ctx) error {
	var in []dto.CreateDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido: se espera un arreglo de renglones")
	}
	out, err := h.uc.CreateBatch(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, "la base rechazó el lote: ningún renglón fue registrado")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "error registrando el lote de detalles")
	}
	return c.JSON(out)
}
