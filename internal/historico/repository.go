// internal/historico/repository.go
package historico

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso ao histórico financeiro. A superfície é
// propositalmente só de leitura + Criar: registros nunca são alterados.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Criar insere um novo registro de período encerrado.
func (r *Repository) Criar(reg *HistoricoFinanceiro) error {
	return r.DB.Create(reg).Error
}

// ListarPorImovel retorna os registros de um imóvel, do mais recente para o
// mais antigo.
func (r *Repository) ListarPorImovel(imovelID uint) ([]HistoricoFinanceiro, error) {
	var list []HistoricoFinanceiro
	err := r.DB.
		Where("imovel_id = ?", imovelID).
		Order("fim_vigencia DESC").
		Find(&list).Error
	return list, err
}

// BuscarPorFimVigencia localiza o registro cujo fim de vigência cai no mesmo
// dia da data informada: elo da cadeia usado pelo resolver de vigência.
// Retorna gorm.ErrRecordNotFound quando não há elo.
func (r *Repository) BuscarPorFimVigencia(imovelID uint, data time.Time) (*HistoricoFinanceiro, error) {
	inicio := time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, data.Location())
	fim := inicio.AddDate(0, 0, 1)

	var reg HistoricoFinanceiro
	err := r.DB.
		Where("imovel_id = ? AND fim_vigencia >= ? AND fim_vigencia < ?", imovelID, inicio, fim).
		Order("fim_vigencia DESC").
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
