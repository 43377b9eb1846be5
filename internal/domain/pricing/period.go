package pricing

import (
	"fmt"
	"time"
)

// Period identifica um mês calendário (ano + mês) usado para agrupar pedidos
// e despesas nos relatórios.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod constrói um período a partir de ano e mês.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf devolve o período que contém o instante t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod interpreta o formato "YYYY-MM" (ex: "2026-08").
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("período inválido %q (esperado YYYY-MM): %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// DaysInMonth devolve a quantidade de dias do mês, com anos bissextos
// resolvidos pelo calendário padrão (dia zero do mês seguinte).
func (p Period) DaysInMonth() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains informa se t cai dentro do período. Datas zero nunca pertencem a
// período algum (registro sem data é tratado como diagnóstico, não como dado).
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Year() == p.Year && t.Month() == p.Month
}

// String devolve o período no formato "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Label devolve um rótulo legível pt-BR, ex: "agosto 2026".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
}
