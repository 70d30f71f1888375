package corretor

import (
	"gorm.io/gorm"
)

// Corretor é o agente responsável por fechamentos e beneficiário de rateios
// de comissão.
type Corretor struct {
	gorm.Model
	Nome     string `json:"nome"`
	Apelido  string `json:"apelido"`
	CRECI    string `json:"creci" gorm:"unique"`
	Email    string `json:"email" gorm:"unique"`
	Telefone string `json:"telefone"`
	Foto     string `json:"foto"`
	Ativo    bool   `json:"ativo" gorm:"not null;default:true"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Corretor{})
}
