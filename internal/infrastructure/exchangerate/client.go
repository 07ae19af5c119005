// Package exchangerate implementa el cliente HTTP del proveedor externo de
// tasas de cambio (formato /v4/latest/{base} con un mapa "rates").
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/controle-venda-api/internal/application/currency"
)

var _ currency.RateProvider = (*Client)(nil)

// Client cliente del proveedor de tasas.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin slash final; el código de la
// moneda base se agrega como último segmento del path.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRates obtiene las tasas multiplicativas respecto a base.
func (c *Client) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar tasas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proveedor de tasas respondió %d", resp.StatusCode)
	}

	var body struct {
		Base  string                     `json:"base"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decodificar tasas: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("respuesta del proveedor sin tasas")
	}
	return body.Rates, nil
}
