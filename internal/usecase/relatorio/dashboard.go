package relatorio

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/barbeariamendes/barbearia-api/internal/domain/agendamento"
	"github.com/barbeariamendes/barbearia-api/internal/models"
)

type DashboardOutput struct {
	AgendamentosHoje     int                  `json:"agendamentosHoje"`
	ReceitaHoje          float64              `json:"receitaHoje"`
	ReceitaMensal        float64              `json:"receitaMensal"`
	ProximosAgendamentos []models.Agendamento `json:"proximosAgendamentos"`
}

type Dashboard struct {
	repo domain.Repository
}

func NewDashboard(repo domain.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

const upcomingLimit = 5

// Execute dispara as quatro leituras em paralelo e espera todas.
// Qualquer falha derruba o snapshot inteiro: dashboard parcial não
// existe.
func (uc *Dashboard) Execute(
	ctx context.Context,
	hoje string,
	mesAtual string,
) (*DashboardOutput, error) {

	var out DashboardOutput

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.repo.CountForDate(ctx, hoje)
		if err != nil {
			return err
		}
		out.AgendamentosHoje = int(count)
		return nil
	})

	g.Go(func() error {
		total, err := uc.repo.RevenueForDate(ctx, hoje)
		if err != nil {
			return err
		}
		out.ReceitaHoje = total
		return nil
	})

	g.Go(func() error {
		total, err := uc.repo.RevenueForMonth(ctx, mesAtual)
		if err != nil {
			return err
		}
		out.ReceitaMensal = total
		return nil
	})

	g.Go(func() error {
		ags, err := uc.repo.Upcoming(ctx, hoje, upcomingLimit)
		if err != nil {
			return err
		}
		out.ProximosAgendamentos = ags
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.ProximosAgendamentos == nil {
		out.ProximosAgendamentos = []models.Agendamento{}
	}

	return &out, nil
}
