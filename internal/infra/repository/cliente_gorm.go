package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type ClienteGormRepository struct {
	db *gorm.DB
}

func NewClienteGormRepository(db *gorm.DB) *ClienteGormRepository {
	return &ClienteGormRepository{db: db}
}

func (r *ClienteGormRepository) List(
	ctx context.Context,
) ([]models.Cliente, error) {

	var clientes []models.Cliente
	if err := r.db.WithContext(ctx).
		Order("nome").
		Find(&clientes).Error; err != nil {
		return nil, err
	}

	return clientes, nil
}

func (r *ClienteGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cl models.Cliente
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClienteGormRepository) Create(
	ctx context.Context,
	cl *models.Cliente,
) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *ClienteGormRepository) Update(
	ctx context.Context,
	id uint,
	cl *models.Cliente,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Where("id = ?", id).
		Select("nome", "telefone", "email").
		Updates(cl)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ClienteGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
