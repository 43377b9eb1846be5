package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
)

func TestParsePeriod_FormatoValido(t *testing.T) {
	p, err := pricing.ParsePeriod("2026-08")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.August, p.Month)
	assert.Equal(t, "2026-08", p.String())
}

func TestParsePeriod_FormatoInvalido(t *testing.T) {
	casos := []string{"", "2026", "2026-13", "08-2026", "2026/08", "agosto"}
	for _, s := range casos {
		_, err := pricing.ParsePeriod(s)
		assert.Error(t, err, "deveria rejeitar %q", s)
	}
}

func TestPeriod_DaysInMonth(t *testing.T) {
	assert.Equal(t, 31, pricing.NewPeriod(2026, time.January).DaysInMonth())
	assert.Equal(t, 28, pricing.NewPeriod(2026, time.February).DaysInMonth())
	assert.Equal(t, 29, pricing.NewPeriod(2024, time.February).DaysInMonth(), "2024 é bissexto")
	assert.Equal(t, 28, pricing.NewPeriod(2100, time.February).DaysInMonth(), "2100 não é bissexto")
	assert.Equal(t, 30, pricing.NewPeriod(2026, time.June).DaysInMonth())
}

func TestPeriod_Contains(t *testing.T) {
	p := pricing.NewPeriod(2026, time.August)

	assert.True(t, p.Contains(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Time{}), "data zero nunca pertence a um período")
}

func TestPeriod_Label(t *testing.T) {
	assert.Equal(t, "agosto 2026", pricing.NewPeriod(2026, time.August).Label())
	assert.Equal(t, "março 2024", pricing.NewPeriod(2024, time.March).Label())
}

func TestPeriodOf(t *testing.T) {
	p := pricing.PeriodOf(time.Date(2026, time.February, 14, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, pricing.NewPeriod(2026, time.February), p)
}
