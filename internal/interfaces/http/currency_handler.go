package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/currency"
	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
)

// CurrencyHandler maneja la conversión de moneda (protegido).
type CurrencyHandler struct {
	uc *currency.ConvertUseCase
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(uc *currency.ConvertUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// Convert godoc
// @Summary      Convertir un monto entre monedas
// @Description  Usa la tasa del proveedor externo con caché de 1 hora; si el proveedor está caído se usa la última tasa conocida.
// @Tags         currency
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertRequest  true  "Monto y par de monedas"
// @Success      200   {object}  dto.ConvertResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/currency/convert [post]
func (h *CurrencyHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Convert(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Rates godoc
// @Summary      Tasas del proveedor para una moneda base
// @Tags         currency
// @Security     Bearer
// @Produce      json
// @Param        base  path  string  true  "Moneda base (ej. MZN)"
// @Success      200   {object}  dto.RatesResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/currency/rates/{base} [get]
func (h *CurrencyHandler) Rates(c *fiber.Ctx) error {
	out, err := h.uc.Rates(c.Context(), c.Params("base"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
