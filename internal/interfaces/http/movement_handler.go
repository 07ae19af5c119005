package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/application/inventory"
)

// MovementHandler maneja el libro de movimientos de stock (protegido).
type MovementHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	queryUC    *inventory.MovementQueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(registerUC *inventory.RegisterMovementUseCase, queryUC *inventory.MovementQueryUseCase) *MovementHandler {
	return &MovementHandler{registerUC: registerUC, queryUC: queryUC}
}

// Register godoc
// @Summary      Registrar movimiento de stock (entry/exit)
// @Description  Una salida que dejaría el stock negativo se rechaza con código insufficient_stock y no altera nada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (fecha descendente)
// @Description  Incluye el historial de productos ya eliminados.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.List(GetUserID(c), c.Query("product_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
