package historico

import (
	"path/filepath"
	"testing"
	"time"

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

func TestRepository(t *testing.T) {
	repo := setupRepo(t)

	jan2024 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2025 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2026 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Criar(&HistoricoFinanceiro{
		ImovelID: 1, Tipo: TipoLocacao, Valor: 1800, Comissao: 180,
		InicioVigencia: jan2024.AddDate(-1, 0, 0), FimVigencia: jan2024,
	}))
	require.NoError(t, repo.Criar(&HistoricoFinanceiro{
		ImovelID: 1, Tipo: TipoLocacao, Valor: 2000, Comissao: 200,
		InicioVigencia: jan2024, FimVigencia: jan2025,
	}))
	require.NoError(t, repo.Criar(&HistoricoFinanceiro{
		ImovelID: 2, Tipo: TipoLocacao, Valor: 999, Comissao: 99,
		InicioVigencia: jan2025, FimVigencia: jan2026,
	}))

	t.Run("lista do mais recente para o mais antigo", func(t *testing.T) {
		registros, err := repo.ListarPorImovel(1)
		require.NoError(t, err)
		require.Len(t, registros, 2)
		assert.Equal(t, 2000.0, registros[0].Valor)
		assert.Equal(t, 1800.0, registros[1].Valor)
	})

	t.Run("busca por fim de vigência casa no dia, não no instante", func(t *testing.T) {
		reg, err := repo.BuscarPorFimVigencia(1, jan2025.Add(15*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2000.0, reg.Valor)
	})

	t.Run("sem elo retorna ErrRecordNotFound", func(t *testing.T) {
		_, err := repo.BuscarPorFimVigencia(1, jan2026)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("não vaza registros de outro imóvel", func(t *testing.T) {
		_, err := repo.BuscarPorFimVigencia(2, jan2025)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
