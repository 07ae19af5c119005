package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
	appcurrency "github.com/tu-usuario/controle-venda-api/internal/application/currency"
	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/application/inventory"
	"github.com/tu-usuario/controle-venda-api/internal/application/reports"
	"github.com/tu-usuario/controle-venda-api/internal/application/support"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/controle-venda-api/internal/interfaces/http"
	"github.com/tu-usuario/controle-venda-api/pkg/logger"
)

const (
	testUserID = "user_aaaaaaaaaaaa"
	testToken  = "tok-test-session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (los puertos completos, para montar el router real)
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByUserAndID(userID, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok && p.UserID == userID {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetByUserAndBarcode(userID, barcode string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.UserID == userID && p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(userID, id string) (*entity.Product, error) {
	return r.GetByUserAndID(userID, id)
}

func (r *memProductRepo) Update(p *entity.Product) error { return r.Create(p) }

func (r *memProductRepo) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.CurrentStock = stock
	}
	return nil
}

func (r *memProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok && p.UserID == userID {
		delete(r.products, id)
	}
	return nil
}

type memMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByUser(userID, productID string) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.UserID != userID {
			continue
		}
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovementRepo) CountByType(userID, movementType string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.movements {
		if m.UserID == userID && m.Type == movementType {
			n++
		}
	}
	return n, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memSessionRepo struct {
	sessions map[string]*entity.Session
}

func (r *memSessionRepo) Create(s *entity.Session) error {
	cp := *s
	r.sessions[s.Token] = &cp
	return nil
}

func (r *memSessionRepo) GetByToken(token string) (*entity.Session, error) {
	if s, ok := r.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSessionRepo) DeleteByToken(token string) error {
	delete(r.sessions, token)
	return nil
}

type memSupportRepo struct {
	messages []*entity.SupportMessage
}

func (r *memSupportRepo) Create(m *entity.SupportMessage) error {
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

type memTxRunner struct {
	mu        sync.Mutex
	products  *memProductRepo
	movements *memMovementRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// El caso de uso no escribe nada en la rama de error, así que la
	// emulación no necesita rollback real.
	return fn(r.products, r.movements)
}

type stubSessionProvider struct{}

func (stubSessionProvider) FetchSessionData(_ context.Context, sessionID string) (*auth.SessionData, error) {
	return &auth.SessionData{
		SessionToken: "tok-del-proveedor-" + sessionID,
		Email:        "maria@example.com",
		Name:         "María",
	}, nil
}

type stubRateProvider struct{}

func (stubRateProvider) FetchRates(_ context.Context, _ string) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("0.016"),
		"EUR": decimal.RequireFromString("0.014"),
	}, nil
}

type noopRateCache struct{}

func (noopRateCache) GetFresh(_ context.Context, _, _ string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (noopRateCache) GetStale(_ context.Context, _, _ string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (noopRateCache) Store(_ context.Context, _, _ string, _ decimal.Decimal) error {
	return nil
}

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateSummaryPDF(_ context.Context, _ *dto.SummaryResponse) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test: router real sobre fakes, con una sesión sembrada
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta la API completa sobre fakes en memoria. Deja sembrado el
// usuario testUserID con la sesión activa testToken.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	products := &memProductRepo{products: make(map[string]*entity.Product)}
	movements := &memMovementRepo{}
	users := &memUserRepo{users: make(map[string]*entity.User)}
	sessions := &memSessionRepo{sessions: make(map[string]*entity.Session)}

	require.NoError(t, users.Create(&entity.User{
		ID:        testUserID,
		Email:     "maria@example.com",
		Name:      "María",
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, sessions.Create(&entity.Session{
		Token:     testToken,
		UserID:    testUserID,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}))

	authUC := auth.NewAuthUseCase(users, sessions, stubSessionProvider{}, 7)
	summaryUC := reports.NewSummaryUseCase(products, movements, 10, stubPDFGenerator{})
	currencyUC := appcurrency.NewConvertUseCase(stubRateProvider{}, noopRateCache{}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        inventory.NewProductUseCase(products),
		RegisterMovement: inventory.NewRegisterMovementUseCase(&memTxRunner{products: products, movements: movements}),
		MovementQuery:    inventory.NewMovementQueryUseCase(movements),
		SummaryUC:        summaryUC,
		CurrencyUC:       currencyUC,
		SupportUC:        support.NewContactUseCase(&memSupportRepo{}),
	})
	return app
}

// doJSON lanza una petición autenticada (Bearer testToken) con body JSON opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
