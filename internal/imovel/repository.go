package imovel

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Imovel.
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

// Create insere um novo imóvel.
func (r *Repository) Create(im *Imovel) error {
	return r.DB.Create(im).Error
}

// FindByID retorna um imóvel pelo ID.
func (r *Repository) FindByID(id uint) (*Imovel, error) {
	var im Imovel
	if err := r.DB.First(&im, id).Error; err != nil {
		return nil, err
	}
	return &im, nil
}

// List retorna os imóveis, opcionalmente filtrados por status.
func (r *Repository) List(status string) ([]Imovel, error) {
	var list []Imovel
	q := r.DB
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

// Update salva todos os campos de um imóvel existente (Save exige PK).
func (r *Repository) Update(im *Imovel) error {
	return r.DB.Save(im).Error
}

// Delete remove o imóvel (soft delete via gorm.DeletedAt).
func (r *Repository) Delete(id uint) error {
	res := r.DB.Delete(&Imovel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
