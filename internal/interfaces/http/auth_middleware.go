package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
)

// Locals keys para la sesión autenticada en Fiber.
const (
	LocalUserID       = "user_id"
	LocalSessionToken = "session_token"
	LocalUser         = "user"
)

// SessionCookieName cookie donde el frontend guarda el token de sesión.
const SessionCookieName = "session_token"

// AuthMiddleware resuelve el token de sesión (cookie session_token o header
// Authorization: Bearer) contra las sesiones persistidas y deja el usuario
// en c.Locals. La cookie tiene prioridad sobre el header.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token de sesión requerido"})
		}
		user, err := authUC.Authenticate(token)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada"})
			}
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalUserID, user.UserID)
		c.Locals(LocalSessionToken, token)
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// extractToken busca el token en la cookie y luego en el header Authorization.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionToken devuelve el token de la sesión autenticada.
func GetSessionToken(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUser devuelve el usuario autenticado dejado por el middleware.
func GetUser(c *fiber.Ctx) *dto.UserResponse {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.UserResponse)
	return u
}
