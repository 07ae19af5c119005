package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// CreateSession godoc
// @Summary      Canjear session_id por una sesión
// @Description  Intercambia el session_id del redirect OAuth por el token de sesión. También lo deja en la cookie session_token (httpOnly).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSessionRequest  true  "session_id del redirect"
// @Success      200   {object}  dto.SessionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auth/session [post]
func (h *AuthHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ExchangeSession(c.Context(), in.SessionID)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    out.SessionToken,
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetSessionToken(c)); err != nil {
		return respondDomainError(c, err)
	}
	// Expira la cookie del lado del navegador.
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}
