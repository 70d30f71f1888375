package rateio

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de beneficiário de um rateio de comissão.
const (
	TipoImobiliaria = "Imobiliaria"
	TipoCorretor    = "Corretor"
)

// RateioComissao é a participação de um beneficiário na comissão do período
// corrente de um imóvel. Percentual e Valor são redundantes de propósito e
// precisam se manter consistentes entre si (ver calculo.go); o nome do
// beneficiário é desnormalizado e congelado no momento da atribuição.
type RateioComissao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ImovelID uint `gorm:"not null;index" json:"imovelId"`

	TipoBeneficiario string `gorm:"size:50;not null" json:"tipoBeneficiario"`
	BeneficiarioID   uint   `gorm:"not null" json:"beneficiarioId"`
	NomeBeneficiario string `gorm:"size:255" json:"nomeBeneficiario"`

	Percentual float64 `gorm:"not null;default:0" json:"percentual"`
	Valor      float64 `gorm:"not null;default:0" json:"valor"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RateioComissao{})
}
