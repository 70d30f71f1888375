package corretor

import (
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Corretor) error
	Listar(db *gorm.DB) ([]Corretor, error)
	BuscarPorID(db *gorm.DB, id uint) (*Corretor, error)
	Atualizar(db *gorm.DB, c *Corretor) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Corretor) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Corretor, error) {
	var list []Corretor
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Corretor, error) {
	var c Corretor
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Corretor) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Corretor{}, id).Error
}

// NomeExibicao resolve o nome de exibição de um corretor para uso em rateios.
// Falha de consulta degrada para um placeholder em vez de propagar erro: o
// nome é apenas enriquecimento de tela.
func NomeExibicao(db *gorm.DB, id uint) string {
	var c Corretor
	if err := db.First(&c, id).Error; err != nil {
		return "Corretor não identificado"
	}
	if c.Apelido != "" {
		return c.Apelido
	}
	return c.Nome
}
