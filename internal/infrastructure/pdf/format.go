package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// money formata um valor monetário no padrão brasileiro: "R$ 1.234,56".
func money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}

// percent formata um percentual com uma casa: "37,5%".
func percent(d decimal.Decimal) string {
	f, _ := d.Round(1).Float64()
	return ptBR.Sprintf("%.1f%%", f)
}

// quantity formata quantidade sem zeros desnecessários ("3", "2,5").
func quantity(d decimal.Decimal) string {
	f, _ := d.Float64()
	return ptBR.Sprintf("%v", number(f))
}

// number descarta a parte fracionária quando é exata.
func number(f float64) any {
	if f == float64(int64(f)) {
		return int64(f)
	}
	return f
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
