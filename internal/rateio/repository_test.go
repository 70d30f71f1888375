package rateio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewRepository(db)
}

func TestSubstituirPorImovel(t *testing.T) {
	repo := setupRepo(t)

	primeira := []RateioComissao{
		{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, Percentual: 100, Valor: 5000},
	}
	require.NoError(t, repo.SubstituirPorImovel(10, primeira))

	// Salvar de novo substitui a lista inteira, nunca acumula.
	segunda := []RateioComissao{
		{TipoBeneficiario: TipoImobiliaria, BeneficiarioID: 1, Percentual: 60, Valor: 3000},
		{TipoBeneficiario: TipoCorretor, BeneficiarioID: 4, NomeBeneficiario: "João", Percentual: 40, Valor: 2000},
	}
	require.NoError(t, repo.SubstituirPorImovel(10, segunda))

	salvos, err := repo.ListarPorImovel(10)
	require.NoError(t, err)
	require.Len(t, salvos, 2)
	assert.Equal(t, 60.0, salvos[0].Percentual)
	assert.Equal(t, "João", salvos[1].NomeBeneficiario)

	t.Run("lista vazia só limpa", func(t *testing.T) {
		require.NoError(t, repo.SubstituirPorImovel(10, nil))
		salvos, err := repo.ListarPorImovel(10)
		require.NoError(t, err)
		assert.Empty(t, salvos)
	})

	t.Run("remover por imóvel não afeta outros imóveis", func(t *testing.T) {
		require.NoError(t, repo.SubstituirPorImovel(11, primeira))
		require.NoError(t, repo.RemoverPorImovel(10))
		salvos, err := repo.ListarPorImovel(11)
		require.NoError(t, err)
		assert.Len(t, salvos, 1)
	})
}
