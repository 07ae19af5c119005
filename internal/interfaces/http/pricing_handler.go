package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain/pricing"
)

// PricingHandler expone la calculadora de precios (protegido).
// Endpoint delgado sobre el servicio de dominio, sin estado.
type PricingHandler struct{}

// NewPricingHandler construye el handler.
func NewPricingHandler() *PricingHandler { return &PricingHandler{} }

// Calculate godoc
// @Summary      Calcular ganancia, margen y markup
// @Description  margin = ganancia / venta * 100; markup = ganancia / compra * 100. Divisores en cero devuelven 0.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PricingRequest  true  "Precios de compra y venta"
// @Success      200   {object}  dto.PricingResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/calculate [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.PricingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "los precios no pueden ser negativos"})
	}
	return c.JSON(dto.PricingResponse{
		Profit: pricing.Profit(in.SalePrice, in.PurchasePrice),
		Margin: pricing.Margin(in.SalePrice, in.PurchasePrice),
		Markup: pricing.Markup(in.SalePrice, in.PurchasePrice),
	})
}
