// Package authprovider implementa el cliente HTTP del proveedor externo de
// sesiones OAuth. El proveedor hace todo el baile OAuth con Google; esta
// aplicación solo canjea el session_id del redirect por los datos de sesión.
package authprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
)

var _ auth.SessionDataProvider = (*Client)(nil)

// Client cliente del endpoint de session-data del proveedor.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient construye el cliente. url es el endpoint completo de canje.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchSessionData canjea el session_id (header X-Session-ID) por los datos
// de la sesión: token opaco + identidad del usuario.
func (c *Client) FetchSessionData(ctx context.Context, sessionID string) (*auth.SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("canjear sesión: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proveedor de sesiones respondió %d", resp.StatusCode)
	}

	var body struct {
		SessionToken string `json:"session_token"`
		Email        string `json:"email"`
		Name         string `json:"name"`
		Picture      string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	if body.SessionToken == "" || body.Email == "" {
		return nil, fmt.Errorf("respuesta del proveedor incompleta")
	}

	return &auth.SessionData{
		SessionToken: body.SessionToken,
		Email:        body.Email,
		Name:         body.Name,
		Picture:      body.Picture,
	}, nil
}
