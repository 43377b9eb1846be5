package reports

import (
	"fmt"
	"time"

	"github.com/gestorpro/gestorpro-api/internal/application/dto"
	"github.com/gestorpro/gestorpro-api/internal/domain"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
	"github.com/gestorpro/gestorpro-api/internal/domain/repository"
)

// UseCase fechamento financeiro mensal. O dashboard e o relatório imprimível
// passam pelos mesmos métodos, então exibem sempre os mesmos números.
type UseCase struct {
	orders   repository.OrderRepository
	expenses repository.ExpenseRepository
	settings repository.SettingsRepository
}

// NewUseCase injeta as dependências do agregador.
func NewUseCase(
	orders repository.OrderRepository,
	expenses repository.ExpenseRepository,
	settings repository.SettingsRepository,
) *UseCase {
	return &UseCase{orders: orders, expenses: expenses, settings: settings}
}

// Monthly agrega o mês pedido ("YYYY-MM"; vazio usa o mês corrente) e devolve
// o relatório pronto para a API.
func (uc *UseCase) Monthly(workspaceID, periodStr string) (*dto.MonthlyReportResponse, error) {
	report, _, err := uc.compute(workspaceID, periodStr)
	if err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// MonthlyEntity devolve o relatório agregado e as configurações do workspace
// para consumo interno (geração de PDF).
func (uc *UseCase) MonthlyEntity(workspaceID, periodStr string) (*pricing.Report, *entity.Settings, error) {
	report, settings, err := uc.compute(workspaceID, periodStr)
	if err != nil {
		return nil, nil, err
	}
	return report, settings, nil
}

func (uc *UseCase) compute(workspaceID, periodStr string) (*pricing.Report, *entity.Settings, error) {
	period := pricing.PeriodOf(time.Now())
	if periodStr != "" {
		var err error
		period, err = pricing.ParsePeriod(periodStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	from := time.Date(period.Year, period.Month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(period.Year, period.Month, period.DaysInMonth(), 0, 0, 0, 0, time.UTC)

	orderPtrs, err := uc.orders.ListByPeriod(workspaceID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("listando pedidos do período: %w", err)
	}
	expensePtrs, err := uc.expenses.ListByPeriod(workspaceID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("listando despesas do período: %w", err)
	}
	settings, err := uc.settings.Get(workspaceID)
	if err != nil {
		return nil, nil, fmt.Errorf("consultando configurações: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultSettings(workspaceID)
	}

	orders := make([]entity.Order, 0, len(orderPtrs))
	for _, o := range orderPtrs {
		orders = append(orders, *o)
	}
	expenses := make([]entity.Expense, 0, len(expensePtrs))
	for _, e := range expensePtrs {
		expenses = append(expenses, *e)
	}

	report := pricing.ComputeMonthlyReport(period, orders, expenses, pricing.ConfigFromSettings(settings))
	return report, settings, nil
}

func toReportResponse(r *pricing.Report) *dto.MonthlyReportResponse {
	daily := make([]dto.DailyPointResponse, 0, len(r.DailySeries))
	for _, p := range r.DailySeries {
		daily = append(daily, dto.DailyPointResponse{Day: p.Day, Revenue: p.Revenue, Profit: p.Profit})
	}
	skipped := make([]dto.SkippedRecordResponse, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		skipped = append(skipped, dto.SkippedRecordResponse{Kind: s.Kind, ID: s.ID, Reason: s.Reason})
	}

	return &dto.MonthlyReportResponse{
		Period: r.Period.String(),
		Label:  r.Period.Label(),

		TotalRevenue:     r.TotalRevenue,
		TotalCostGoods:   r.TotalCostGoods,
		TotalFreightCost: r.TotalFreightCost,
		TotalExpenses:    r.TotalExpenses,
		NetProfit:        r.NetProfit,
		Margin:           r.Margin,
		OrderCount:       r.OrderCount,

		DailySeries:        daily,
		ExpensesByCategory: r.ExpensesByCategory,
		Skipped:            skipped,
	}
}
