package dto

import "github.com/shopspring/decimal"

// DailyPointResponse um dia da série diária do mês (sempre DaysInMonth pontos,
// dias sem venda zerados).
type DailyPointResponse struct {
	Day     int             `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// SkippedRecordResponse registro ignorado pelo agregador por dado inválido.
type SkippedRecordResponse struct {
	Kind   string `json:"kind"` // order | expense
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// MonthlyReportResponse é o fechamento financeiro do mês. Dashboard e
// relatório imprimível consomem exatamente esta estrutura: os números são
// sempre idênticos entre as duas telas.
type MonthlyReportResponse struct {
	Period string `json:"period"` // YYYY-MM
	Label  string `json:"label"`  // "agosto 2026"

	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCostGoods   decimal.Decimal `json:"total_cost_goods"`
	TotalFreightCost decimal.Decimal `json:"total_freight_cost"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	Margin           decimal.Decimal `json:"margin"` // percentual, 0 sem receita

	OrderCount int `json:"order_count"`

	DailySeries        []DailyPointResponse       `json:"daily_series"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	Skipped            []SkippedRecordResponse    `json:"skipped,omitempty"`
}
