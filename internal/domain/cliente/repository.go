package cliente

import (
	"context"

	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type Repository interface {
	List(
		ctx context.Context,
	) ([]models.Cliente, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	Create(
		ctx context.Context,
		cl *models.Cliente,
	) error

	Update(
		ctx context.Context,
		id uint,
		cl *models.Cliente,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
