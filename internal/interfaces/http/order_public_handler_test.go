package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/application/orders"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	apphttp "github.com/gestorpro/gestorpro-api/internal/interfaces/http"
	"github.com/gestorpro/gestorpro-api/pkg/logger"
)

// ── stubs de repositório (só o caminho de leitura importa aqui) ─────────────

type stubOrderRepo struct{ byID map[string]*entity.Order }

func (s *stubOrderRepo) Create(*entity.Order) error                    { return nil }
func (s *stubOrderRepo) CreateItem(*entity.OrderItem) error            { return nil }
func (s *stubOrderRepo) Update(*entity.Order) error                    { return nil }
func (s *stubOrderRepo) ReplaceItems(string, []entity.OrderItem) error { return nil }
func (s *stubOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
func (s *stubOrderRepo) ListByWorkspace(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) ListByPeriod(string, time.Time, time.Time) ([]*entity.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) Delete(string) error { return nil }

type stubClientRepo struct{ byID map[string]*entity.Client }

func (s *stubClientRepo) Create(*entity.Client) error { return nil }
func (s *stubClientRepo) Update(*entity.Client) error { return nil }
func (s *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (s *stubClientRepo) ListByWorkspace(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) Delete(string) error { return nil }

type stubSettingsRepo struct{}

func (stubSettingsRepo) Get(string) (*entity.Settings, error) { return nil, nil }
func (stubSettingsRepo) Save(*entity.Settings) error          { return nil }
func (stubSettingsRepo) NextOrderNumber(string) (int, error)  { return 1, nil }

type stubTx struct{}

func (stubTx) RunInTx(func(orders.TxRepos) error) error { return nil }

// ── montagem ────────────────────────────────────────────────────────────────

const pubOrderID = "00000000-0000-0000-0000-0000000000aa"

func buildOrderApp(t *testing.T) *fiber.App {
	t.Helper()

	orderRepo := &stubOrderRepo{byID: map[string]*entity.Order{
		pubOrderID: {
			ID:          pubOrderID,
			WorkspaceID: testWorkspaceID,
			ClientID:    "cli-1",
			Number:      "0042",
			Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			Status:      entity.StatusReady,
			Items: []entity.OrderItem{{
				ID:        "item-1",
				OrderID:   pubOrderID,
				Name:      "Banner 2x1m",
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.RequireFromString("120.00"),
				UnitCost:  decimal.RequireFromString("45.00"),
			}},
			Discount:     decimal.RequireFromString("10.00"),
			DiscountType: entity.DiscountMoney,
			TrackingCode: "BR987654321XX",
			TrackingURL:  "https://rastreio.exemplo.com/BR987654321XX",
		},
	}}
	clientRepo := &stubClientRepo{byID: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", WorkspaceID: testWorkspaceID, Name: "João Pereira"},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := orders.NewUseCase(stubTx{}, orderRepo, clientRepo, stubSettingsRepo{}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:   uc,
		JWTSecret: testJWTSecret,
	})
	return app
}

// ── testes ──────────────────────────────────────────────────────────────────

func TestPedidoPublico_AcessivelSemTokenESemValoresFinanceiros(t *testing.T) {
	app := buildOrderApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/public/orders/"+pubOrderID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "0042", body["number"])
	assert.Equal(t, "2026-08-10", body["date"])
	assert.Equal(t, entity.StatusReady, body["status"])
	assert.Equal(t, "Pronto", body["status_label"])
	assert.Equal(t, "João Pereira", body["client_name"])
	assert.Equal(t, "João", body["client_first_name"])
	assert.Equal(t, "BR987654321XX", body["tracking_code"])
	assert.Equal(t, "https://rastreio.exemplo.com/BR987654321XX", body["tracking_url"])

	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Banner 2x1m", item["name"])

	// a área pública jamais expõe preço, custo, desconto ou totais
	for _, proibido := range []string{"unit_price", "unit_cost", "discount", "totals", "total", "profit", "freight"} {
		assert.NotContains(t, string(raw), proibido)
	}
}

func TestPedidoPublico_IDDesconhecidoRetorna404(t *testing.T) {
	app := buildOrderApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/public/orders/nao-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPedidoPublico_RotaProtegidaContinuaExigindoToken(t *testing.T) {
	app := buildOrderApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+pubOrderID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
