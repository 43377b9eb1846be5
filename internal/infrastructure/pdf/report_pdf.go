package pdf

import (
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
)

// ReportGenerator gera o PDF do fechamento financeiro mensal.
type ReportGenerator struct{}

// NewReportGenerator constrói o gerador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate monta o relatório do mês a partir do agregado. Os mesmos números
// do dashboard: o agregador roda uma vez e alimenta as duas saídas.
func (g *ReportGenerator) Generate(report *pricing.Report, settings *entity.Settings) ([]byte, error) {
	titulo := "Relatório Financeiro — " + capitalize(report.Period.Label())

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(report, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.ExpensesByCategory) > 0 {
		m.AddRows(expensesByCategoryRows(report)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	if len(report.Skipped) > 0 {
		m.AddRows(skippedRows(report)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerando relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

func reportHeaderRow(report *pricing.Report, settings *entity.Settings) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(settings.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(settings.CompanyDoc, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(capitalize(report.Period.Label()), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New(fmt.Sprintf("%d pedidos no mês", report.OrderCount), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRows: o demonstrativo do mês, linha a linha até o líquido e a margem.
func summaryRows(report *pricing.Report) []core.Row {
	linha := func(label, value string, destaque bool) core.Row {
		size := 9.0
		color := &props.Color{}
		style := fontstyle.Normal
		if destaque {
			size = 11
			color = colorPrimary
			style = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(7).Add(text.New(label, props.Text{
				Size: size, Style: style, Color: color, Top: 1, Left: 2,
			})),
			col.New(5).Add(text.New(value, props.Text{
				Size: size, Style: style, Color: color, Align: align.Right, Top: 1, Right: 2,
			})),
		)
	}

	return []core.Row{
		linha("Faturamento (vendas)", money(report.TotalRevenue), false),
		linha("(-) Custo de mercadoria", money(report.TotalCostGoods), false),
		linha("(-) Frete absorvido", money(report.TotalFreightCost), false),
		linha("(-) Despesas operacionais", money(report.TotalExpenses), false),
		linha("Lucro líquido", money(report.NetProfit), true),
		linha("Margem", percent(report.Margin), true),
	}
}

// expensesByCategoryRows: despesas do mês por categoria, ordem alfabética.
func expensesByCategoryRows(report *pricing.Report) []core.Row {
	categorias := make([]string, 0, len(report.ExpensesByCategory))
	for c := range report.ExpensesByCategory {
		categorias = append(categorias, c)
	}
	sort.Strings(categorias)

	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("DESPESAS POR CATEGORIA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, c := range categorias {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(c, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(5).Add(text.New(money(report.ExpensesByCategory[c]), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 2,
			})),
		))
	}
	return rows
}

// skippedRows: registros fora dos totais por falta de data, para conferência.
func skippedRows(report *pricing.Report) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("REGISTROS IGNORADOS (conferir datas)", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2,
		}))),
	}
	for _, s := range report.Skipped {
		kind := "Pedido"
		if s.Kind == "expense" {
			kind = "Despesa"
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s %s: %s", kind, s.ID, s.Reason), props.Text{
				Size: 7, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
