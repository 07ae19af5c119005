package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/reports"
)

// ReportHandler maneja los reportes agregados (protegido).
type ReportHandler struct {
	uc *reports.SummaryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.SummaryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del inventario
// @Description  Valores de stock, conteos de movimientos y productos bajo el umbral de alerta. Se recalcula en cada petición.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen del inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/summary/pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.SummaryPDF(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-inventario.pdf"`)
	return c.Send(pdfBytes)
}
