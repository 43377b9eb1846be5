package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/application/reports"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
)

const ws = "ws-1"

// ── fakes em memória ────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(*entity.Order) error                    { return nil }
func (f *fakeOrderRepo) CreateItem(*entity.OrderItem) error            { return nil }
func (f *fakeOrderRepo) Update(*entity.Order) error                    { return nil }
func (f *fakeOrderRepo) ReplaceItems(string, []entity.OrderItem) error { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeOrderRepo) ListByWorkspace(string, int, int) ([]*entity.Order, error) {
	return f.orders, nil
}
func (f *fakeOrderRepo) ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.WorkspaceID != workspaceID {
			continue
		}
		if o.Date.IsZero() || (!o.Date.Before(from) && !o.Date.After(to)) {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) Delete(string) error { return nil }

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(*entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Update(*entity.Expense) error { return nil }
func (f *fakeExpenseRepo) GetByID(string) (*entity.Expense, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeExpenseRepo) ListByWorkspace(string, int, int) ([]*entity.Expense, error) {
	return f.expenses, nil
}
func (f *fakeExpenseRepo) ListByPeriod(workspaceID string, from, to time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.WorkspaceID != workspaceID {
			continue
		}
		if e.Date.IsZero() || (!e.Date.Before(from) && !e.Date.After(to)) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeExpenseRepo) Delete(string) error { return nil }

type fakeSettingsRepo struct {
	s *entity.Settings
}

func (f *fakeSettingsRepo) Get(string) (*entity.Settings, error) { return f.s, nil }
func (f *fakeSettingsRepo) Save(s *entity.Settings) error        { f.s = s; return nil }
func (f *fakeSettingsRepo) NextOrderNumber(string) (int, error)  { return 1, nil }

// ── helpers ─────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dia(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func pedido(id string, d int, status string, preco, custo string) *entity.Order {
	return &entity.Order{
		ID:          id,
		WorkspaceID: ws,
		Date:        dia(d),
		Status:      status,
		Items: []entity.OrderItem{
			{Quantity: dec("1"), UnitPrice: dec(preco), UnitCost: dec(custo)},
		},
		DiscountType: entity.DiscountMoney,
	}
}

func novoUseCase(orders []*entity.Order, expenses []*entity.Expense) *reports.UseCase {
	return reports.NewUseCase(
		&fakeOrderRepo{orders: orders},
		&fakeExpenseRepo{expenses: expenses},
		&fakeSettingsRepo{s: entity.DefaultSettings(ws)},
	)
}

// ── testes ──────────────────────────────────────────────────────────────────

func TestRelatorioMensal_FechamentoDoMes(t *testing.T) {
	uc := novoUseCase(
		[]*entity.Order{
			pedido("p1", 5, entity.StatusDelivered, "100.00", "40.00"),
			pedido("p2", 20, entity.StatusApproved, "50.00", "10.00"),
			pedido("p3", 8, entity.StatusCanceled, "999.00", "1.00"), // cancelado nunca conta
			pedido("p4", 9, entity.StatusDraft, "500.00", "1.00"),    // rascunho fora do conjunto de venda
		},
		[]*entity.Expense{
			{ID: "e1", WorkspaceID: ws, Date: dia(3), Category: "Aluguel", Amount: dec("30.00")},
		},
	)

	resp, err := uc.Monthly(ws, "2026-08")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", resp.Period)
	assert.Equal(t, "agosto 2026", resp.Label)
	assert.Equal(t, 2, resp.OrderCount)
	assert.True(t, resp.TotalRevenue.Equal(dec("150.00")), "receita: %s", resp.TotalRevenue)
	assert.True(t, resp.TotalCostGoods.Equal(dec("50.00")))
	assert.True(t, resp.TotalExpenses.Equal(dec("30.00")))
	assert.True(t, resp.NetProfit.Equal(dec("70.00")), "líquido: %s", resp.NetProfit)

	require.Len(t, resp.DailySeries, 31)
	assert.True(t, resp.DailySeries[4].Revenue.Equal(dec("100.00")))
	assert.True(t, resp.DailySeries[19].Revenue.Equal(dec("50.00")))
	assert.True(t, resp.ExpensesByCategory["Aluguel"].Equal(dec("30.00")))
}

func TestRelatorioMensal_MesVazioVemZeradoComSerieCompleta(t *testing.T) {
	uc := novoUseCase(nil, nil)

	resp, err := uc.Monthly(ws, "2026-02")
	require.NoError(t, err)

	assert.True(t, resp.TotalRevenue.IsZero())
	assert.True(t, resp.NetProfit.IsZero())
	assert.True(t, resp.Margin.IsZero())
	assert.Len(t, resp.DailySeries, 28)
	assert.Empty(t, resp.Skipped)
}

func TestRelatorioMensal_RegistroSemDataViraDiagnostico(t *testing.T) {
	semData := pedido("p-sem-data", 1, entity.StatusDelivered, "10.00", "1.00")
	semData.Date = time.Time{}

	uc := novoUseCase([]*entity.Order{semData}, nil)

	resp, err := uc.Monthly(ws, "2026-08")
	require.NoError(t, err)

	assert.True(t, resp.TotalRevenue.IsZero())
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "order", resp.Skipped[0].Kind)
	assert.Equal(t, "p-sem-data", resp.Skipped[0].ID)
}

func TestRelatorioMensal_PeriodoInvalido(t *testing.T) {
	uc := novoUseCase(nil, nil)

	_, err := uc.Monthly(ws, "08/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRelatorioMensal_DashboardEImpressaoUsamOsMesmosNumeros(t *testing.T) {
	uc := novoUseCase(
		[]*entity.Order{pedido("p1", 5, entity.StatusDelivered, "200.00", "80.00")},
		[]*entity.Expense{
			{ID: "e1", WorkspaceID: ws, Date: dia(2), Category: "Impostos", Amount: dec("20.00")},
		},
	)

	api, err := uc.Monthly(ws, "2026-08")
	require.NoError(t, err)
	interno, _, err := uc.MonthlyEntity(ws, "2026-08")
	require.NoError(t, err)

	assert.True(t, api.TotalRevenue.Equal(interno.TotalRevenue))
	assert.True(t, api.NetProfit.Equal(interno.NetProfit))
	assert.True(t, api.Margin.Equal(interno.Margin))
	assert.Equal(t, api.OrderCount, interno.OrderCount)
}
