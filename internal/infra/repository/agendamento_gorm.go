package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barbeariamendes/barbearia-api/internal/domain/agendamento"
	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AgendamentoGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Agendamento, error) {

	q := r.db.WithContext(ctx)

	if clause, args := filter.Conditions(); clause != "" {
		q = q.Where(clause, args...)
	}

	var ags []models.Agendamento
	if err := q.
		Order("data, hora").
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}

func (r *AgendamentoGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Agendamento, error) {

	var ag models.Agendamento
	if err := r.db.WithContext(ctx).First(&ag, id).Error; err != nil {
		return nil, err
	}
	return &ag, nil
}

func (r *AgendamentoGormRepository) Create(
	ctx context.Context,
	ag *models.Agendamento,
) error {
	if ag.Status == "" {
		ag.Status = string(domain.DefaultStatus())
	}
	return r.db.WithContext(ctx).Create(ag).Error
}

// Update sobrescreve todos os campos editáveis, inclusive com valores
// zerados, e renova o updated_at. Zero linhas afetadas = não existe.
func (r *AgendamentoGormRepository) Update(
	ctx context.Context,
	id uint,
	ag *models.Agendamento,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Where("id = ?", id).
		Select("cliente_nome", "servico", "data", "hora", "status", "preco", "observacoes").
		Updates(ag)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AgendamentoGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Agendamento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Por data
// --------------------------------------------------

func (r *AgendamentoGormRepository) ListForDate(
	ctx context.Context,
	date string,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("data = ?", date).
		Order("hora").
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}

// --------------------------------------------------
// Agregações (dashboard / relatório mensal)
// --------------------------------------------------

func (r *AgendamentoGormRepository) CountForDate(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Where("data = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *AgendamentoGormRepository) RevenueForDate(
	ctx context.Context,
	date string,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Select("COALESCE(SUM(preco), 0)").
		Where("data = ? AND status = ?", date, string(domain.StatusConfirmado)).
		Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *AgendamentoGormRepository) RevenueForMonth(
	ctx context.Context,
	month string,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Select("COALESCE(SUM(preco), 0)").
		Where("data LIKE ? AND status = ?", month+"%", string(domain.StatusConfirmado)).
		Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *AgendamentoGormRepository) Upcoming(
	ctx context.Context,
	from string,
	limit int,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("data >= ?", from).
		Order("data, hora").
		Limit(limit).
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}

func (r *AgendamentoGormRepository) ListForMonth(
	ctx context.Context,
	month string,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("data LIKE ?", month+"%").
		Order("data").
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}
