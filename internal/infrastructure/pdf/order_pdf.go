// Package pdf gera os documentos impressos do Gestor Pro com Maroto v2:
// o pedido/orçamento entregue ao cliente e o relatório financeiro mensal.
//
// Layout do pedido (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ/CPF  │  Pedido Nº + Data            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + contato                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Preço Unit. | Total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Desconto / Frete (se cobrado) / TOTAL   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONDIÇÕES: validade do orçamento + termos + pagamento      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

var (
	colorPrimary = &props.Color{Red: 17, Green: 94, Blue: 89}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// OrderGenerator gera o PDF de um pedido/orçamento.
type OrderGenerator struct{}

// NewOrderGenerator constrói o gerador.
func NewOrderGenerator() *OrderGenerator { return &OrderGenerator{} }

// Generate monta o documento e devolve os bytes do PDF. Os totais chegam
// calculados pelo motor de preços; o documento nunca refaz a conta.
func (g *OrderGenerator) Generate(
	order *entity.Order,
	client *entity.Client,
	settings *entity.Settings,
	totals pricing.OrderTotals,
) ([]byte, error) {
	title := "PEDIDO"
	if order.Status == entity.StatusQuote {
		title = "ORÇAMENTO"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s %s", title, order.Number), true).
		WithAuthor(settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(orderHeaderRow(title, order, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(orderTotalsRow(order, totals))

	for _, r := range conditionsRows(order, settings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerando pedido: %w", err)
	}
	return doc.GetBytes(), nil
}

// orderHeaderRow: empresa (esq) e número + data + status (dir).
func orderHeaderRow(title string, order *entity.Order, settings *entity.Settings) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(settings.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(settings.CompanyDoc, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(settings.CompanyContact, props.Text{
				Size: 8, Top: 15, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%s Nº %s", title, order.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+order.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New(entity.StatusLabels[order.Status], props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorPrimary, Style: fontstyle.Bold,
			}),
		),
	)
}

// clientRow: dados do cliente.
func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("WhatsApp: %s   |   %s",
				nonEmpty(client.WhatsApp, "—"), client.Doc,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: cabeçalho da tabela de itens.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// itemRows: uma linha por item; itens por área ganham a medida na descrição.
func itemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Name
		if it.PricingMode == entity.PricingArea {
			desc = fmt.Sprintf("%s (%s x %s %s)",
				it.Name, quantity(it.Width), quantity(it.Height), it.MeasureUnit)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				quantity(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(it.UnitPrice.Mul(it.Quantity)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// orderTotalsRow: subtotal, desconto (se houver), frete apenas quando cobrado
// do cliente e o total a pagar. Frete absorvido é custo interno e não aparece
// no documento do cliente.
func orderTotalsRow(order *entity.Order, totals pricing.OrderTotals) core.Row {
	type linha struct {
		label, value string
		grand        bool
	}
	linhas := []linha{{label: "Subtotal:", value: money(totals.Subtotal)}}
	if totals.DiscountValue.IsPositive() {
		linhas = append(linhas, linha{label: "Desconto:", value: "- " + money(totals.DiscountValue)})
	}
	if order.FreightChargedToCustomer && order.FreightPrice.IsPositive() {
		linhas = append(linhas, linha{label: "Frete:", value: money(order.FreightPrice)})
	}
	linhas = append(linhas, linha{label: "TOTAL:", value: money(totals.TotalRevenue), grand: true})

	labels := make([]core.Component, 0, len(linhas))
	values := make([]core.Component, 0, len(linhas))
	for i, l := range linhas {
		top := float64(i) * 6
		if l.grand {
			labels = append(labels, text.New(l.label, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: top,
			}))
			values = append(values, text.New(l.value, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: top,
			}))
			continue
		}
		labels = append(labels, text.New(l.label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(l.value, props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: top,
		}))
	}

	return row.New(float64(len(linhas))*6+4).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// conditionsRows: validade do orçamento, termos e forma de pagamento.
func conditionsRows(order *entity.Order, settings *entity.Settings) []core.Row {
	rows := []core.Row{line.NewRow(3)}

	if order.Status == entity.StatusQuote && settings.QuoteValidityDays > 0 {
		validade := order.Date.AddDate(0, 0, settings.QuoteValidityDays)
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Orçamento válido até %s (%d dias).",
				validade.Format("02/01/2006"), settings.QuoteValidityDays),
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	if order.PaymentMethod != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Forma de pagamento: "+order.PaymentMethod,
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	if settings.QuoteTerms != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New(settings.QuoteTerms, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)))
	}
	if order.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Observações: "+order.Notes, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}
