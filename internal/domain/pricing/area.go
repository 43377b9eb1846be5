package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fatores de conversão da unidade de medida para metros.
var measureToMeters = map[string]decimal.Decimal{
	"mm": decimal.New(1, -3), // 0.001
	"cm": decimal.New(1, -2), // 0.01
	"m":  decimal.New(1, 0),
}

// ResolveAreaUnitPrice deriva o preço unitário de venda de um item
// precificado por área:
//
//	preço = (largura_m × altura_m) × preçoM2 + acabamento
//
// A derivação acontece uma única vez, no cadastro da linha; depois de
// gravado, o item carrega o UnitPrice resolvido e o motor de cálculo nunca
// volta aos campos de área.
func ResolveAreaUnitPrice(width, height decimal.Decimal, measureUnit string, areaPrice, finishingPrice decimal.Decimal) (decimal.Decimal, error) {
	factor, ok := measureToMeters[measureUnit]
	if !ok {
		return decimal.Zero, fmt.Errorf("unidade de medida desconhecida %q (esperado mm, cm ou m)", measureUnit)
	}
	if !width.IsPositive() || !height.IsPositive() {
		return decimal.Zero, fmt.Errorf("largura e altura devem ser positivas")
	}
	area := width.Mul(factor).Mul(height.Mul(factor))
	return area.Mul(areaPrice).Add(finishingPrice), nil
}
