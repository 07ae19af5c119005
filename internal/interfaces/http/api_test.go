package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Middleware de autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenInventado_Retorna401(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	req.Header.Set("Authorization", "Bearer token-inventado")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAuth_TokenPorCookie_Funciona(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: testToken})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "la cookie session_token autentica igual que el Bearer")

	var user dto.UserResponse
	decodeBody(t, resp, &user)
	assert.Equal(t, testUserID, user.UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSession_DevuelveTokenYCookie(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/session",
		dto.CreateSessionRequest{SessionID: "abc"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cookieSet bool
	for _, c := range resp.Cookies() {
		if c.Name == "session_token" && c.Value != "" {
			cookieSet = true
			assert.True(t, c.HttpOnly, "la cookie de sesión debe ser httpOnly")
		}
	}
	assert.True(t, cookieSet, "el canje debe dejar la cookie session_token")

	var out dto.SessionResponse
	decodeBody(t, resp, &out)
	assert.NotEmpty(t, out.SessionToken)
	assert.Equal(t, "maria@example.com", out.User.Email)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), out.ExpiresAt, time.Minute)
}

func TestLogout_RevocaElToken(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// El mismo token ya no sirve.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func createProduct(t *testing.T, app *fiber.App, barcode string) dto.ProductResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name":           "Arroz 5kg",
		"barcode":        barcode,
		"purchase_price": "100",
		"sale_price":     "150",
		"currency":       "MZN",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ProductResponse
	decodeBody(t, resp, &out)
	return out
}

func TestProductCreate_Retorna201(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	assert.Contains(t, created.ProductID, "prod_")
	assert.Equal(t, 0, created.CurrentStock)
}

func TestProductCreate_BarcodeDuplicado_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name":           "Otro",
		"barcode":        "7891234567895",
		"purchase_price": "10",
		"sale_price":     "20",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "DUPLICATE_BARCODE", body.Code)
}

func TestProductCreate_PrecioNegativo_Retorna422(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", map[string]any{
		"name":           "Malo",
		"barcode":        "123",
		"purchase_price": "-5",
		"sale_price":     "20",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestProductGet_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/prod_000000000000", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBarcodeLookup_EtiquetadoFoundNotFound(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodGet, "/api/products/barcode/7891234567895", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var found dto.BarcodeLookupResponse
	decodeBody(t, resp, &found)
	assert.True(t, found.Found)
	require.NotNil(t, found.Product)
	assert.Equal(t, created.ProductID, found.Product.ProductID)

	resp = doJSON(t, app, http.MethodGet, "/api/products/barcode/0000000000000", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "no encontrado sigue siendo 200")
	var notFound dto.BarcodeLookupResponse
	decodeBody(t, resp, &notFound)
	assert.False(t, notFound.Found)
	assert.Nil(t, notFound.Product)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movements
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_EntradaYSalida(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
		ProductID: created.ProductID,
		Type:      "entry",
		Quantity:  10,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var mov dto.MovementResponse
	decodeBody(t, resp, &mov)
	assert.Contains(t, mov.MovementID, "mov_")

	resp = doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
		ProductID: created.ProductID,
		Type:      "exit",
		Quantity:  4,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// El stock refleja la suma neta.
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created.ProductID, nil)
	var product dto.ProductResponse
	decodeBody(t, resp, &product)
	assert.Equal(t, 6, product.CurrentStock)
}

func TestMovements_StockInsuficiente_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
		ProductID: created.ProductID,
		Type:      "exit",
		Quantity:  1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "insufficient_stock", body.Code,
		"el código va en minúsculas: el frontend lo usa como clave")
}

func TestMovements_TipoInvalido_Retorna422(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
		ProductID: created.ProductID,
		Type:      "ajuste",
		Quantity:  1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMovements_ListaFiltradaPorProducto(t *testing.T) {
	app := buildTestApp(t)
	first := createProduct(t, app, "7891234567895")
	second := createProduct(t, app, "7891234567801")

	for _, id := range []string{first.ProductID, second.ProductID} {
		resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
			ProductID: id,
			Type:      "entry",
			Quantity:  5,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/movements/?product_id="+first.ProductID, nil)
	var movs []dto.MovementResponse
	decodeBody(t, resp, &movs)
	require.Len(t, movs, 1)
	assert.Equal(t, first.ProductID, movs[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports / Currency / Pricing / Support
// ──────────────────────────────────────────────────────────────────────────────

func TestReportsSummary_Retorna200(t *testing.T) {
	app := buildTestApp(t)
	created := createProduct(t, app, "7891234567895")

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", dto.CreateMovementRequest{
		ProductID: created.ProductID,
		Type:      "entry",
		Quantity:  5,
	})
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/reports/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var summary dto.SummaryResponse
	decodeBody(t, resp, &summary)
	assert.Equal(t, 1, summary.ProductsCount)
	// 5 unidades a 150 de venta
	assert.Equal(t, "750.00", summary.TotalStockValue.StringFixed(2))
	assert.Equal(t, 1, summary.TotalEntries)
	assert.Equal(t, 1, summary.LowStockCount, "5 < 10: entra en alerta")
}

func TestReportsSummaryPDF_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/summary/pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestCurrencyConvert_Retorna200(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/currency/convert", map[string]any{
		"amount":        "1000",
		"from_currency": "MZN",
		"to_currency":   "USD",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ConvertResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "16.00", out.ConvertedAmount.StringFixed(2))
}

func TestCurrencyConvert_MonedaInvalida_Retorna422(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/currency/convert", map[string]any{
		"amount":        "1000",
		"from_currency": "MZN",
		"to_currency":   "XYZ",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCurrencyRates_Retorna200(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/currency/rates/MZN", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.RatesResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "MZN", out.Base)
	assert.NotEmpty(t, out.Rates)
}

func TestPricingCalculate_Retorna200(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/pricing/calculate", map[string]any{
		"purchase_price": "100",
		"sale_price":     "150",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PricingResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "50.00", out.Profit.StringFixed(2))
	assert.Equal(t, "33.33", out.Margin.StringFixed(2))
	assert.Equal(t, "50.00", out.Markup.StringFixed(2))
}

func TestSupportContact_Retorna201(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/support/contact", dto.SupportContactRequest{
		Subject: "Duda",
		Message: "¿Cómo exporto el resumen?",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.SupportContactResponse
	decodeBody(t, resp, &out)
	assert.Contains(t, out.MessageID, "msg_")
}
