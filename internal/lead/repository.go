package lead

import (
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, l *Lead) error
	Listar(db *gorm.DB) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Lead, error) {
	var leads []Lead
	err := db.Order("id ASC").Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	err := db.First(&l, id).Error
	return &l, err
}

// AtualizarStatus troca apenas o status; retorna gorm.ErrRecordNotFound se o
// lead não existe.
func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	res := db.Model(&Lead{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
