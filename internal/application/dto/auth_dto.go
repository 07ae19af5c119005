package dto

import "time"

// CreateSessionRequest body para POST /api/auth/session.
// El session_id proviene del redirect OAuth del frontend.
type CreateSessionRequest struct {
	SessionID string `json:"session_id"`
}

// UserResponse salida de un usuario autenticado.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse salida del intercambio de sesión: usuario + token opaco.
type SessionResponse struct {
	User         UserResponse `json:"user"`
	SessionToken string       `json:"session_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}
