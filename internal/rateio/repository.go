// internal/rateio/repository.go
package rateio

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de RateioComissao. A tela de
// distribuição salva a lista sempre inteira, então a escrita é só
// substituição total.
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

// ListarPorImovel retorna os rateios salvos de um imóvel.
func (r *Repository) ListarPorImovel(imovelID uint) ([]RateioComissao, error) {
	var list []RateioComissao
	err := r.DB.
		Where("imovel_id = ?", imovelID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

// SubstituirPorImovel troca a lista inteira de rateios de um imóvel dentro de
// uma transação (apaga e recria: não existe update parcial de rateio).
func (r *Repository) SubstituirPorImovel(imovelID uint, rateios []RateioComissao) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("imovel_id = ?", imovelID).Delete(&RateioComissao{}).Error; err != nil {
			return err
		}
		if len(rateios) == 0 {
			return nil
		}
		for i := range rateios {
			rateios[i].ID = 0
			rateios[i].ImovelID = imovelID
		}
		return tx.Create(&rateios).Error
	})
}

// RemoverPorImovel apaga todos os rateios de um imóvel. Usado pelo fechamento
// para descartar distribuições obsoletas de um período anterior.
func (r *Repository) RemoverPorImovel(imovelID uint) error {
	return r.DB.Where("imovel_id = ?", imovelID).Delete(&RateioComissao{}).Error
}
