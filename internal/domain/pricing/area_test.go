package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpro/gestorpro-api/internal/domain/pricing"
)

// Banner de 2m × 1m a R$45,00/m² com acabamento de R$10,00 → R$100,00.
func TestResolveAreaUnitPrice_Metros(t *testing.T) {
	preco, err := pricing.ResolveAreaUnitPrice(dec("2"), dec("1"), "m", dec("45.00"), dec("10.00"))
	require.NoError(t, err)
	assert.True(t, dec("100.00").Equal(preco), "preço: %s", preco)
}

// As unidades convertem para metros antes do cálculo da área:
// 200cm × 100cm equivale a 2m × 1m, e 2000mm × 1000mm também.
func TestResolveAreaUnitPrice_ConversaoDeUnidades(t *testing.T) {
	emMetros, err := pricing.ResolveAreaUnitPrice(dec("2"), dec("1"), "m", dec("45.00"), dec("0"))
	require.NoError(t, err)

	emCm, err := pricing.ResolveAreaUnitPrice(dec("200"), dec("100"), "cm", dec("45.00"), dec("0"))
	require.NoError(t, err)

	emMm, err := pricing.ResolveAreaUnitPrice(dec("2000"), dec("1000"), "mm", dec("45.00"), dec("0"))
	require.NoError(t, err)

	assert.True(t, emMetros.Equal(emCm))
	assert.True(t, emMetros.Equal(emMm))
}

func TestResolveAreaUnitPrice_SemAcabamento(t *testing.T) {
	preco, err := pricing.ResolveAreaUnitPrice(dec("0.5"), dec("0.5"), "m", dec("80.00"), dec("0"))
	require.NoError(t, err)
	assert.True(t, dec("20.00").Equal(preco), "0,25m² × 80 = 20")
}

func TestResolveAreaUnitPrice_UnidadeDesconhecida(t *testing.T) {
	_, err := pricing.ResolveAreaUnitPrice(dec("1"), dec("1"), "pol", dec("45.00"), dec("0"))
	assert.Error(t, err)
}

func TestResolveAreaUnitPrice_DimensaoInvalida(t *testing.T) {
	_, err := pricing.ResolveAreaUnitPrice(dec("0"), dec("1"), "m", dec("45.00"), dec("0"))
	assert.Error(t, err, "largura zero deve ser rejeitada")

	_, err = pricing.ResolveAreaUnitPrice(dec("1"), dec("-2"), "m", dec("45.00"), dec("0"))
	assert.Error(t, err, "altura negativa deve ser rejeitada")
}
