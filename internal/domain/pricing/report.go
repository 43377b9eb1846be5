package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
)

// Config configuração do agregador, resolvida uma única vez a partir das
// Settings do workspace (nunca re-derivada em cada ponto de leitura).
type Config struct {
	// StatusesConsideredSale é o conjunto de status que contam como venda.
	// Vazio significa que nenhum pedido conta (padrão conservador).
	StatusesConsideredSale []string
	ClampDiscount          bool
}

// ConfigFromSettings extrai a configuração do agregador. Aceita nil.
func ConfigFromSettings(s *entity.Settings) Config {
	if s == nil {
		return Config{}
	}
	return Config{
		StatusesConsideredSale: s.StatusesConsideredSale,
		ClampDiscount:          s.ClampDiscount,
	}
}

// DailyPoint é um dia do mês na série diária do relatório.
// Profit é o lucro operacional dos pedidos do dia (receita menos custo de
// mercadoria e frete absorvido), sem rateio das despesas fixas do mês.
type DailyPoint struct {
	Day     int
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// SkippedRecord registra um pedido ou despesa excluído da agregação por
// falta de data. É diagnóstico para o chamador exibir, não erro.
type SkippedRecord struct {
	Kind   string // "order" | "expense"
	ID     string
	Reason string
}

// Report é o resultado da agregação mensal. Dashboard e relatório impresso
// consomem exatamente esta estrutura, então nunca divergem.
type Report struct {
	Period Period

	TotalRevenue     decimal.Decimal
	TotalCostGoods   decimal.Decimal // CMV: Σ custo de itens dos pedidos elegíveis
	TotalFreightCost decimal.Decimal // Σ frete dos pedidos em que o frete NÃO foi cobrado
	TotalExpenses    decimal.Decimal
	NetProfit        decimal.Decimal
	Margin           decimal.Decimal // percentual; zero quando não há receita
	OrderCount       int

	// DailySeries tem exatamente DaysInMonth entradas, em ordem crescente
	// de dia; dias sem movimento permanecem zerados, nunca omitidos.
	DailySeries []DailyPoint

	// ExpensesByCategory soma despesas por categoria; categorias ausentes
	// não têm entrada (mapa, não preenchido com zeros).
	ExpensesByCategory map[string]decimal.Decimal

	Skipped []SkippedRecord
}

// ComputeMonthlyReport agrega pedidos e despesas de um mês.
//
// Elegibilidade:
//   - pedido: data dentro do período E status no conjunto configurado E
//     status diferente de CANCELED (exclusão fixa, independente do conjunto);
//   - despesa: data dentro do período (sem filtro de status).
//
// Registros sem data não entram em nenhum total e são devolvidos em Skipped.
// Entrada vazia devolve um relatório todo zerado com a série diária completa.
func ComputeMonthlyReport(period Period, orders []entity.Order, expenses []entity.Expense, cfg Config) *Report {
	saleSet := make(map[string]struct{}, len(cfg.StatusesConsideredSale))
	for _, s := range cfg.StatusesConsideredSale {
		saleSet[s] = struct{}{}
	}
	opts := Options{ClampDiscount: cfg.ClampDiscount}

	report := &Report{
		Period:             period,
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	days := period.DaysInMonth()
	report.DailySeries = make([]DailyPoint, days)
	for i := range report.DailySeries {
		report.DailySeries[i] = DailyPoint{Day: i + 1, Revenue: decimal.Zero, Profit: decimal.Zero}
	}

	for i := range orders {
		o := &orders[i]
		if o.Date.IsZero() {
			report.Skipped = append(report.Skipped, SkippedRecord{
				Kind: "order", ID: o.ID, Reason: "data ausente ou inválida",
			})
			continue
		}
		if !period.Contains(o.Date) {
			continue
		}
		if o.Status == entity.StatusCanceled {
			continue
		}
		if _, ok := saleSet[o.Status]; !ok {
			continue
		}

		totals := ComputeOrderTotals(o, opts)
		report.TotalRevenue = report.TotalRevenue.Add(totals.TotalRevenue)
		report.TotalCostGoods = report.TotalCostGoods.Add(totals.ItemCost)
		report.TotalFreightCost = report.TotalFreightCost.Add(totals.FreightCost)
		report.OrderCount++

		day := o.Date.Day()
		point := &report.DailySeries[day-1]
		point.Revenue = point.Revenue.Add(totals.TotalRevenue)
		point.Profit = point.Profit.Add(totals.Profit)
	}

	for i := range expenses {
		e := &expenses[i]
		if e.Date.IsZero() {
			report.Skipped = append(report.Skipped, SkippedRecord{
				Kind: "expense", ID: e.ID, Reason: "data ausente ou inválida",
			})
			continue
		}
		if !period.Contains(e.Date) {
			continue
		}
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
		report.ExpensesByCategory[e.Category] = report.ExpensesByCategory[e.Category].Add(e.Amount)
	}

	report.NetProfit = report.TotalRevenue.
		Sub(report.TotalCostGoods).
		Sub(report.TotalFreightCost).
		Sub(report.TotalExpenses)

	if report.TotalRevenue.IsPositive() {
		report.Margin = report.NetProfit.Div(report.TotalRevenue).Mul(hundred)
	} else {
		report.Margin = decimal.Zero
	}

	return report
}
