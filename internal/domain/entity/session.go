package entity

import "time"

// Session representa una sesión activa. El token es opaco (lo emite el
// proveedor OAuth) y se persiste para poder revocarlo en logout.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
