package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dia(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

// pedidoSimples cria um pedido de um item (receita = preco, custo = custo).
func pedidoSimples(id string, data time.Time, status, preco, custo string) entity.Order {
	return entity.Order{
		ID:     id,
		Date:   data,
		Status: status,
		Items: []entity.OrderItem{
			{Quantity: dec("1"), UnitPrice: dec(preco), UnitCost: dec(custo)},
		},
		DiscountType: entity.DiscountMoney,
	}
}

func despesa(id string, data time.Time, categoria, valor string) entity.Expense {
	return entity.Expense{ID: id, Date: data, Category: categoria, Amount: dec(valor)}
}

// cfgVendas: configuração típica — os quatro status "de venda" do padrão.
func cfgVendas() pricing.Config {
	return pricing.Config{
		StatusesConsideredSale: []string{
			entity.StatusDelivered, entity.StatusApproved,
			entity.StatusReady, entity.StatusInProduction,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada vazia e série diária
// ──────────────────────────────────────────────────────────────────────────────

// Sem pedidos nem despesas o relatório sai todo zerado, com a série diária
// completa do mês — nunca nil, nunca truncada.
func TestComputeMonthlyReport_EntradaVazia(t *testing.T) {
	rep := pricing.ComputeMonthlyReport(pricing.NewPeriod(2026, time.August), nil, nil, cfgVendas())

	require.NotNil(t, rep)
	assert.True(t, rep.TotalRevenue.IsZero())
	assert.True(t, rep.NetProfit.IsZero())
	assert.True(t, rep.Margin.IsZero(), "margem sem receita deve ser zero, não NaN")
	assert.Equal(t, 0, rep.OrderCount)
	assert.Len(t, rep.DailySeries, 31)
	assert.Empty(t, rep.ExpensesByCategory)
}

// A série diária respeita o calendário, inclusive ano bissexto.
func TestComputeMonthlyReport_TamanhoDaSerieDiaria(t *testing.T) {
	casos := []struct {
		ano  int
		mes  time.Month
		dias int
	}{
		{2026, time.February, 28},
		{2024, time.February, 29}, // bissexto
		{2026, time.April, 30},
		{2026, time.December, 31},
	}
	for _, c := range casos {
		rep := pricing.ComputeMonthlyReport(pricing.NewPeriod(c.ano, c.mes), nil, nil, cfgVendas())
		require.Len(t, rep.DailySeries, c.dias, "%d-%02d", c.ano, c.mes)
		// ordem crescente 1..N, sem buracos
		for i, p := range rep.DailySeries {
			assert.Equal(t, i+1, p.Day)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Elegibilidade de pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Cancelado fica fora dos totais mesmo que alguém inclua CANCELED no conjunto
// de status considerados venda.
func TestComputeMonthlyReport_CanceladoSempreExcluido(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.March)
	pedidos := []entity.Order{
		pedidoSimples("p1", dia(2026, time.March, 5), entity.StatusCanceled, "500.00", "100.00"),
	}
	cfg := pricing.Config{StatusesConsideredSale: []string{entity.StatusCanceled, entity.StatusDelivered}}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, nil, cfg)

	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Equal(t, 0, rep.OrderCount)
}

// Conjunto vazio de status: nenhum pedido conta como venda.
func TestComputeMonthlyReport_ConjuntoVazioNaoContaNada(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.March)
	pedidos := []entity.Order{
		pedidoSimples("p1", dia(2026, time.March, 5), entity.StatusDelivered, "100.00", "40.00"),
	}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, nil, pricing.Config{})

	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Equal(t, 0, rep.OrderCount)
}

// Pedido fora do mês e status fora do conjunto não entram.
func TestComputeMonthlyReport_FiltroDePeriodoEStatus(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.March)
	pedidos := []entity.Order{
		pedidoSimples("dentro", dia(2026, time.March, 10), entity.StatusDelivered, "100.00", "40.00"),
		pedidoSimples("outro-mes", dia(2026, time.April, 1), entity.StatusDelivered, "999.00", "1.00"),
		pedidoSimples("rascunho", dia(2026, time.March, 12), entity.StatusDraft, "999.00", "1.00"),
	}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, nil, cfgVendas())

	assert.Equal(t, 1, rep.OrderCount)
	assert.True(t, dec("100.00").Equal(rep.TotalRevenue))
}

// Pedido sem data vira diagnóstico em Skipped, nunca entra nos totais.
func TestComputeMonthlyReport_DataAusenteViraDiagnostico(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.March)
	pedidos := []entity.Order{
		pedidoSimples("sem-data", time.Time{}, entity.StatusDelivered, "100.00", "40.00"),
	}
	despesas := []entity.Expense{despesa("d1", time.Time{}, "Aluguel", "30.00")}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, despesas, cfgVendas())

	assert.True(t, rep.TotalRevenue.IsZero())
	assert.True(t, rep.TotalExpenses.IsZero())
	require.Len(t, rep.Skipped, 2)
	assert.Equal(t, "order", rep.Skipped[0].Kind)
	assert.Equal(t, "sem-data", rep.Skipped[0].ID)
	assert.Equal(t, "expense", rep.Skipped[1].Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totais e margem
// ──────────────────────────────────────────────────────────────────────────────

// Cenário de referência: um pedido (receita 100, custo 40, sem frete) e uma
// despesa de 30 → lucro líquido 30, margem 30%.
func TestComputeMonthlyReport_CenarioReferencia(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.May)
	pedidos := []entity.Order{
		pedidoSimples("p1", dia(2026, time.May, 14), entity.StatusDelivered, "100.00", "40.00"),
	}
	despesas := []entity.Expense{despesa("d1", dia(2026, time.May, 1), "Aluguel", "30.00")}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, despesas, cfgVendas())

	assert.True(t, dec("100.00").Equal(rep.TotalRevenue))
	assert.True(t, dec("40.00").Equal(rep.TotalCostGoods))
	assert.True(t, rep.TotalFreightCost.IsZero())
	assert.True(t, dec("30.00").Equal(rep.TotalExpenses))
	assert.True(t, dec("30.00").Equal(rep.NetProfit))
	assert.True(t, dec("30").Equal(rep.Margin), "margem: %s", rep.Margin)
}

// O custo de frete só acumula quando o frete NÃO é cobrado do cliente.
// (Resolve a divergência histórica entre dashboard e relatório impresso.)
func TestComputeMonthlyReport_FreteSoCustaQuandoAbsorvido(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.June)

	cobrado := pedidoSimples("p1", dia(2026, time.June, 3), entity.StatusDelivered, "100.00", "40.00")
	cobrado.FreightPrice = dec("15.00")
	cobrado.FreightChargedToCustomer = true

	absorvido := pedidoSimples("p2", dia(2026, time.June, 4), entity.StatusDelivered, "100.00", "40.00")
	absorvido.FreightPrice = dec("10.00")

	rep := pricing.ComputeMonthlyReport(periodo, []entity.Order{cobrado, absorvido}, nil, cfgVendas())

	// receita: (100 + 15) + 100 = 215; CMV: 80; frete custo: só os 10 absorvidos
	assert.True(t, dec("215.00").Equal(rep.TotalRevenue))
	assert.True(t, dec("80.00").Equal(rep.TotalCostGoods))
	assert.True(t, dec("10.00").Equal(rep.TotalFreightCost))
	assert.True(t, dec("125.00").Equal(rep.NetProfit), "215 - 80 - 10")
}

// A soma da série diária bate exatamente com os totais do relatório —
// nada duplicado, nada omitido.
func TestComputeMonthlyReport_SerieDiariaSomaIgualTotal(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.July)
	pedidos := []entity.Order{
		pedidoSimples("p1", dia(2026, time.July, 1), entity.StatusDelivered, "100.00", "40.00"),
		pedidoSimples("p2", dia(2026, time.July, 1), entity.StatusApproved, "55.50", "20.00"),
		pedidoSimples("p3", dia(2026, time.July, 31), entity.StatusReady, "200.00", "80.00"),
	}

	rep := pricing.ComputeMonthlyReport(periodo, pedidos, nil, cfgVendas())

	var somaReceita, somaLucro decimal.Decimal
	for _, p := range rep.DailySeries {
		somaReceita = somaReceita.Add(p.Revenue)
		somaLucro = somaLucro.Add(p.Profit)
	}
	assert.True(t, somaReceita.Equal(rep.TotalRevenue),
		"série: %s, total: %s", somaReceita, rep.TotalRevenue)
	// lucro operacional diário = receita - (CMV + frete absorvido), sem despesas fixas
	esperado := rep.TotalRevenue.Sub(rep.TotalCostGoods).Sub(rep.TotalFreightCost)
	assert.True(t, somaLucro.Equal(esperado))

	// dois pedidos no dia 1, um no dia 31, resto zerado
	assert.True(t, dec("155.50").Equal(rep.DailySeries[0].Revenue))
	assert.True(t, dec("200.00").Equal(rep.DailySeries[30].Revenue))
	assert.True(t, rep.DailySeries[14].Revenue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Despesas
// ──────────────────────────────────────────────────────────────────────────────

// Despesas agrupam por categoria; categorias ausentes não ganham entrada.
func TestComputeMonthlyReport_DespesasPorCategoria(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.September)
	despesas := []entity.Expense{
		despesa("d1", dia(2026, time.September, 2), "Aluguel", "800.00"),
		despesa("d2", dia(2026, time.September, 9), "Embalagem", "35.50"),
		despesa("d3", dia(2026, time.September, 20), "Embalagem", "14.50"),
		despesa("fora", dia(2026, time.October, 1), "Impostos", "999.00"),
	}

	rep := pricing.ComputeMonthlyReport(periodo, nil, despesas, cfgVendas())

	assert.True(t, dec("850.00").Equal(rep.TotalExpenses))
	require.Len(t, rep.ExpensesByCategory, 2)
	assert.True(t, dec("800.00").Equal(rep.ExpensesByCategory["Aluguel"]))
	assert.True(t, dec("50.00").Equal(rep.ExpensesByCategory["Embalagem"]))
	_, temImpostos := rep.ExpensesByCategory["Impostos"]
	assert.False(t, temImpostos, "despesa fora do mês não cria categoria")
}

// Despesas entram independentemente de status de pedidos — e todas as
// despesas do mês contam, mesmo num mês sem vendas (lucro líquido negativo).
func TestComputeMonthlyReport_MesSemVendasComDespesas(t *testing.T) {
	periodo := pricing.NewPeriod(2026, time.November)
	despesas := []entity.Expense{despesa("d1", dia(2026, time.November, 10), "Aluguel", "1200.00")}

	rep := pricing.ComputeMonthlyReport(periodo, nil, despesas, cfgVendas())

	assert.True(t, dec("-1200.00").Equal(rep.NetProfit))
	assert.True(t, rep.Margin.IsZero(), "sem receita a margem é zero por definição")
}
