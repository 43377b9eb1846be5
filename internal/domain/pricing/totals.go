// Package pricing concentra o modelo financeiro de pedidos: o cálculo de
// totais de um pedido e a agregação mensal de pedidos e despesas.
//
// Regra de ouro do pacote: qualquer número financeiro exibido em qualquer
// tela ou documento sai daqui. Formulário de pedido, listagem, dashboard e
// relatório impresso chamam as mesmas funções — nunca refazem a fórmula.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Options ajustes de comportamento do cálculo.
type Options struct {
	// ClampDiscount limita o valor do desconto ao subtotal dos itens.
	// Desligado, um desconto maior que o subtotal produz receita negativa,
	// que o chamador sinaliza como provável erro de digitação.
	ClampDiscount bool
}

// OrderTotals resultado do cálculo de um pedido.
//
// ItemCost e FreightCost são expostos separadamente porque o agregador
// mensal rastreia custo de mercadoria e custo de frete em linhas distintas
// do demonstrativo; TotalCost é a soma dos dois quando o frete não é
// cobrado do cliente.
type OrderTotals struct {
	Subtotal      decimal.Decimal // Σ quantidade × preço unitário
	DiscountValue decimal.Decimal // desconto resolvido em R$
	ItemCost      decimal.Decimal // Σ quantidade × custo unitário
	FreightCost   decimal.Decimal // frete quando NÃO cobrado do cliente; zero caso contrário
	TotalRevenue  decimal.Decimal
	TotalCost     decimal.Decimal
	Profit        decimal.Decimal // sempre TotalRevenue - TotalCost
}

// ComputeOrderTotals calcula os totais financeiros de um pedido.
//
// Sequência fixa:
//  1. subtotal e custo dos itens;
//  2. desconto (valor absoluto ou percentual sobre o subtotal dos itens —
//     o frete nunca entra na base de desconto);
//  3. frete cobrado do cliente entra como receita depois do desconto;
//     frete não cobrado entra como custo. Os dois tratamentos são
//     mutuamente exclusivos;
//  4. lucro = receita - custo.
//
// A função é pura e total sobre entradas não negativas; validação de
// entrada (quantidade/preço negativos) é responsabilidade do chamador.
func ComputeOrderTotals(o *entity.Order, opts Options) OrderTotals {
	var subtotal, itemCost decimal.Decimal
	for _, it := range o.Items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(it.Quantity))
		itemCost = itemCost.Add(it.UnitCost.Mul(it.Quantity))
	}

	var discountValue decimal.Decimal
	if o.DiscountType == entity.DiscountPercentage {
		discountValue = subtotal.Mul(o.Discount).Div(hundred)
	} else {
		discountValue = o.Discount
	}
	if opts.ClampDiscount && discountValue.GreaterThan(subtotal) {
		discountValue = subtotal
	}

	revenue := subtotal.Sub(discountValue)
	cost := itemCost
	freightCost := decimal.Zero
	if o.FreightChargedToCustomer {
		revenue = revenue.Add(o.FreightPrice)
	} else {
		freightCost = o.FreightPrice
		cost = cost.Add(o.FreightPrice)
	}

	return OrderTotals{
		Subtotal:      subtotal,
		DiscountValue: discountValue,
		ItemCost:      itemCost,
		FreightCost:   freightCost,
		TotalRevenue:  revenue,
		TotalCost:     cost,
		Profit:        revenue.Sub(cost),
	}
}
