package imovel

import (
	"time"

	"gorm.io/gorm"
)

// Finalidades possíveis de um imóvel anunciado.
const (
	FinalidadeVenda            = "Venda"
	FinalidadeLocacaoAnual     = "LocacaoAnual"
	FinalidadeLocacaoTemporada = "LocacaoTemporada"
)

// Status do imóvel dentro do ciclo transacional.
const (
	StatusAtivo   = "Ativo"
	StatusFechado = "Fechado"
)

// Imovel representa um anúncio (venda ou locação) acompanhado pelo motor
// transacional. Os campos de período descrevem o fechamento corrente e só têm
// significado quando Status = Fechado.
type Imovel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Titulo       string  `gorm:"size:255" json:"titulo"`
	Finalidade   string  `gorm:"size:50;not null;index" json:"finalidade"`
	ValorAnuncio float64 `gorm:"not null;default:0" json:"valorAnuncio"`
	Status       string  `gorm:"size:50;not null;default:'Ativo';index" json:"status"`

	// Período corrente. DataFechamento pode estar no futuro quando uma
	// renovação/reajuste foi pré-agendado: ver internal/vigencia.
	DataFechamento  *time.Time `json:"dataFechamento"`
	LeadID          *uint      `gorm:"index" json:"leadId"`
	FechadoPorID    *uint      `gorm:"index" json:"fechadoPorId"`
	ValorPeriodo    float64    `gorm:"not null;default:0" json:"valorPeriodo"`
	ComissaoPeriodo float64    `gorm:"not null;default:0" json:"comissaoPeriodo"`
	DataFimContrato *time.Time `json:"dataFimContrato"`

	Observacoes string `gorm:"type:text" json:"observacoes"`
}

// EhLocacao informa se a finalidade exige contrato com data de término.
func (i *Imovel) EhLocacao() bool {
	return i.Finalidade == FinalidadeLocacaoAnual || i.Finalidade == FinalidadeLocacaoTemporada
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Imovel{})
}
