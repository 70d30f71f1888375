package lead

import (
	"time"

	"gorm.io/gorm"
)

// Status do funil de atendimento. NegocioFechado é terminal e é atribuído
// como efeito colateral do fechamento de um imóvel com contraparte interna.
const (
	StatusNovo           = "Novo"
	StatusEmAtendimento  = "Em Atendimento"
	StatusNegocioFechado = "Negócio Fechado"
	StatusDescartado     = "Descartado"
)

// Lead representa um interessado (comprador ou locatário em potencial).
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"size:255;not null" json:"nome"`
	Email    string `gorm:"size:255" json:"email"`
	Telefone string `gorm:"size:50" json:"telefone"`
	Status   string `gorm:"size:50;not null;default:'Novo';index" json:"status"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lead{})
}
