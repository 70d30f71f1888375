package rateio

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinirPorPercentualEValor(t *testing.T) {
	t.Run("percentual recalcula o valor", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, Percentual: 100, Valor: 10000},
		}
		DefinirPorPercentual(rateios, 0, 60, 10000)
		assert.Equal(t, 60.0, rateios[0].Percentual)
		assert.Equal(t, 6000.0, rateios[0].Valor)
	})

	t.Run("valor recalcula o percentual", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoCorretor, BeneficiarioID: 7},
		}
		DefinirPorValor(rateios, 0, 2500, 10000)
		assert.Equal(t, 2500.0, rateios[0].Valor)
		assert.Equal(t, 25.0, rateios[0].Percentual)
	})

	t.Run("comissão total zerada é no-op", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, Percentual: 40, Valor: 400},
		}
		DefinirPorPercentual(rateios, 0, 90, 0)
		DefinirPorValor(rateios, 0, 9999, 0)
		assert.Equal(t, 40.0, rateios[0].Percentual)
		assert.Equal(t, 400.0, rateios[0].Valor)
	})

	t.Run("índice fora da lista é ignorado", func(t *testing.T) {
		rateios := []RateioComissao{{BeneficiarioID: 1}}
		DefinirPorPercentual(rateios, 3, 50, 1000)
		DefinirPorValor(rateios, -1, 50, 1000)
		assert.Equal(t, 0.0, rateios[0].Percentual)
	})

	// Propriedade: depois de qualquer edição, valor ≈ percentual/100 × total.
	t.Run("consistência percentual-valor em listas aleatórias", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			total := 1 + rng.Float64()*100000
			rateios := make([]RateioComissao, 1+rng.Intn(5))
			for j := range rateios {
				rateios[j].BeneficiarioID = uint(j + 1)
			}
			idx := rng.Intn(len(rateios))
			if rng.Intn(2) == 0 {
				DefinirPorPercentual(rateios, idx, rng.Float64()*100, total)
			} else {
				DefinirPorValor(rateios, idx, rng.Float64()*total, total)
			}
			esperado := rateios[idx].Percentual / 100 * total
			assert.InDelta(t, esperado, rateios[idx].Valor, 1e-9*total)
		}
	})
}

func TestAdicionarBeneficiario(t *testing.T) {
	t.Run("acrescenta participação zerada", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, Percentual: 100, Valor: 5000},
		}
		rateios, err := AdicionarBeneficiario(rateios, RateioComissao{
			TipoBeneficiario: TipoCorretor,
			BeneficiarioID:   9,
			NomeBeneficiario: "Maria",
			Percentual:       80, // deve ser zerado na inclusão
			Valor:            123,
		})
		require.NoError(t, err)
		require.Len(t, rateios, 2)
		assert.Equal(t, 0.0, rateios[1].Percentual)
		assert.Equal(t, 0.0, rateios[1].Valor)
	})

	t.Run("beneficiário repetido é recusado sem alterar a lista", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoCorretor, BeneficiarioID: 9, Percentual: 50},
		}
		depois, err := AdicionarBeneficiario(rateios, RateioComissao{
			TipoBeneficiario: TipoCorretor,
			BeneficiarioID:   9,
		})
		require.ErrorIs(t, err, ErrBeneficiarioDuplicado)
		assert.Equal(t, rateios, depois)
	})

	t.Run("mesmo ID com tipo diferente não é duplicata", func(t *testing.T) {
		rateios := []RateioComissao{
			{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1},
		}
		rateios, err := AdicionarBeneficiario(rateios, RateioComissao{
			TipoBeneficiario: TipoCorretor,
			BeneficiarioID:   1,
		})
		require.NoError(t, err)
		assert.Len(t, rateios, 2)
	})
}

func TestRemoverBeneficiario(t *testing.T) {
	rateios := []RateioComissao{
		{BeneficiarioID: 1, Percentual: 60},
		{BeneficiarioID: 2, Percentual: 40},
	}
	rateios = RemoverBeneficiario(rateios, 1)
	require.Len(t, rateios, 1)
	// Sem renormalização automática: os 60% ficam como estão.
	assert.Equal(t, 60.0, rateios[0].Percentual)
	assert.False(t, SomaValida(rateios, 0))
}

func TestSomaValida(t *testing.T) {
	casos := []struct {
		nome        string
		percentuais []float64
		valida      bool
	}{
		{"exatamente 100", []float64{60, 40}, true},
		{"dentro da tolerância por cima", []float64{60, 40.5}, true},
		{"dentro da tolerância por baixo", []float64{60, 39.5}, true},
		{"fora da tolerância", []float64{60, 40.51}, false},
		{"muito abaixo", []float64{50}, false},
		{"lista vazia", nil, false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			rateios := make([]RateioComissao, len(c.percentuais))
			for i, p := range c.percentuais {
				rateios[i].Percentual = p
			}
			assert.Equal(t, c.valida, SomaValida(rateios, 0))
		})
	}

	t.Run("propriedade em listas aleatórias", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			rateios := make([]RateioComissao, 1+rng.Intn(6))
			var soma float64
			for j := range rateios {
				rateios[j].Percentual = rng.Float64() * 60
				soma += rateios[j].Percentual
			}
			assert.Equal(t, math.Abs(soma-100) <= 0.5, SomaValida(rateios, 0))
		}
	})
}

func TestNormalizarParaPersistencia(t *testing.T) {
	rateios := []RateioComissao{
		{Percentual: 33.333333333, Valor: 3333.3333333},
		{Percentual: 66.666666666, Valor: 6666.6666666},
	}
	NormalizarParaPersistencia(rateios)
	assert.Equal(t, 33.33, rateios[0].Percentual)
	assert.Equal(t, 3333.33, rateios[0].Valor)
	assert.Equal(t, 66.67, rateios[1].Percentual)
	assert.Equal(t, 6666.67, rateios[1].Valor)
}

func TestRateiosPadrao(t *testing.T) {
	t.Run("com corretor, meio a meio", func(t *testing.T) {
		corretorID := uint(4)
		rateios := RateiosPadrao(10, "Imobiliária Sol", &corretorID, "João", 8000)
		require.Len(t, rateios, 2)
		assert.Equal(t, TipoImobiliaria, rateios[0].TipoBeneficiario)
		assert.Equal(t, 50.0, rateios[0].Percentual)
		assert.Equal(t, 4000.0, rateios[0].Valor)
		assert.Equal(t, TipoCorretor, rateios[1].TipoBeneficiario)
		assert.Equal(t, "João", rateios[1].NomeBeneficiario)
		assert.Equal(t, 50.0, rateios[1].Percentual)
		assert.Equal(t, 4000.0, rateios[1].Valor)
		assert.True(t, SomaValida(rateios, 0))
	})

	t.Run("sem corretor, imobiliária fica com tudo", func(t *testing.T) {
		rateios := RateiosPadrao(10, "Imobiliária Sol", nil, "", 8000)
		require.Len(t, rateios, 1)
		assert.Equal(t, 100.0, rateios[0].Percentual)
		assert.Equal(t, 8000.0, rateios[0].Valor)
	})
}

// Cenário da tela de distribuição: comissão de R$ 10.000, imobiliária com
// 60%, corretor entra zerado e depois recebe os 40% restantes.
func TestCenarioDistribuicaoDoisBeneficiarios(t *testing.T) {
	const total = 10000.0

	rateios := []RateioComissao{
		{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, NomeBeneficiario: "Imobiliária Sol"},
	}
	DefinirPorPercentual(rateios, 0, 60, total)
	assert.Equal(t, 6000.0, rateios[0].Valor)

	rateios, err := AdicionarBeneficiario(rateios, RateioComissao{
		TipoBeneficiario: TipoCorretor,
		BeneficiarioID:   4,
		NomeBeneficiario: "João",
	})
	require.NoError(t, err)
	assert.False(t, SomaValida(rateios, 0))

	DefinirPorPercentual(rateios, 1, 40, total)
	assert.Equal(t, 4000.0, rateios[1].Valor)
	assert.True(t, SomaValida(rateios, 0))

	NormalizarParaPersistencia(rateios)
	assert.Equal(t, 6000.0, rateios[0].Valor)
	assert.Equal(t, 4000.0, rateios[1].Valor)
}

func TestTolerancia(t *testing.T) {
	t.Run("padrão sem variável de ambiente", func(t *testing.T) {
		t.Setenv("RATEIO_TOLERANCIA", "")
		assert.Equal(t, ToleranciaPadrao, Tolerancia())
	})

	t.Run("sobrescrita pelo ambiente", func(t *testing.T) {
		t.Setenv("RATEIO_TOLERANCIA", "1.5")
		assert.Equal(t, 1.5, Tolerancia())
	})

	t.Run("valor inválido cai no padrão", func(t *testing.T) {
		t.Setenv("RATEIO_TOLERANCIA", "abc")
		assert.Equal(t, ToleranciaPadrao, Tolerancia())
	})
}
