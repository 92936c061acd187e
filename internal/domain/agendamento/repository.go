package agendamento

import (
	"context"

	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type Repository interface {
	// -------- CRUD --------
	List(
		ctx context.Context,
		filter Filter,
	) ([]models.Agendamento, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Agendamento, error)

	Create(
		ctx context.Context,
		ag *models.Agendamento,
	) error

	Update(
		ctx context.Context,
		id uint,
		ag *models.Agendamento,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Por data --------
	ListForDate(
		ctx context.Context,
		date string,
	) ([]models.Agendamento, error)

	// -------- Agregações (dashboard / relatório) --------
	CountForDate(
		ctx context.Context,
		date string,
	) (int64, error)

	RevenueForDate(
		ctx context.Context,
		date string,
	) (float64, error)

	RevenueForMonth(
		ctx context.Context,
		month string,
	) (float64, error)

	Upcoming(
		ctx context.Context,
		from string,
		limit int,
	) ([]models.Agendamento, error)

	ListForMonth(
		ctx context.Context,
		month string,
	) ([]models.Agendamento, error)
}
