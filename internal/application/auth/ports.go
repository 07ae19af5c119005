package auth

import "context"

// SessionData datos que entrega el proveedor OAuth al canjear un session_id.
type SessionData struct {
	SessionToken string
	Email        string
	Name         string
	Picture      string
}

// SessionDataProvider puerto del proveedor externo de autenticación.
// El intercambio OAuth completo (redirect, consentimiento) vive en el
// proveedor; aquí solo se canjea el session_id resultante.
type SessionDataProvider interface {
	FetchSessionData(ctx context.Context, sessionID string) (*SessionData, error)
}
