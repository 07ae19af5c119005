package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/application/support"
)

// SupportHandler maneja el formulario de contacto (protegido).
type SupportHandler struct {
	uc *support.ContactUseCase
}

// NewSupportHandler construye el handler.
func NewSupportHandler(uc *support.ContactUseCase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// Contact godoc
// @Summary      Enviar mensaje de soporte
// @Tags         support
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupportContactRequest  true  "Asunto y mensaje"
// @Success      201   {object}  dto.SupportContactResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/support/contact [post]
func (h *SupportHandler) Contact(c *fiber.Ctx) error {
	var in dto.SupportContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Send(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
