// internal/historico/model.go
package historico

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de período registrado.
const (
	TipoVenda   = "Venda"
	TipoLocacao = "Locacao"
)

// HistoricoFinanceiro é o registro imutável de um período contratual já
// encerrado de um imóvel. É criado exatamente uma vez, na renovação ou no
// reajuste, e nunca alterado depois: o repositório não expõe update/delete.
//
// FimVigencia de um registro coincide com a DataFechamento corrente do imóvel
// (ou com o InicioVigencia do registro seguinte), formando uma cadeia
// navegável do período atual para trás no tempo.
type HistoricoFinanceiro struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ImovelID uint   `gorm:"not null;index" json:"imovelId"`
	Tipo     string `gorm:"size:50;not null" json:"tipo"`

	Valor    float64 `gorm:"not null;default:0" json:"valor"`
	Comissao float64 `gorm:"not null;default:0" json:"comissao"`

	InicioVigencia time.Time `gorm:"not null" json:"inicioVigencia"`
	FimVigencia    time.Time `gorm:"not null;index" json:"fimVigencia"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoFinanceiro{})
}
