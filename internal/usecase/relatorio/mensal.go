package relatorio

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/barbeariamendes/barbearia-api/internal/domain/agendamento"
)

type DiaResumo struct {
	Data              string  `json:"data"`
	TotalAgendamentos int     `json:"total_agendamentos"`
	ReceitaDia        float64 `json:"receita_dia"`
	Servicos          string  `json:"servicos"`
}

type MensalOutput struct {
	Mes   string      `json:"mes"`
	Dados []DiaResumo `json:"dados"`
}

type Mensal struct {
	repo domain.Repository
}

func NewMensal(repo domain.Repository) *Mensal {
	return &Mensal{repo: repo}
}

// MonthKey resolve o mês pedido. Com mes e ano presentes, mes é 1–12
// com zero à esquerda; senão vale o mês corrente.
func MonthKey(mes, ano, atual string) string {
	if mes != "" && ano != "" {
		if len(mes) < 2 {
			mes = "0" + mes
		}
		return fmt.Sprintf("%s-%s", ano, mes)
	}
	return atual
}

// Execute busca as linhas do mês e agrupa por dia: total, receita
// (só status Confirmado conta, preco nulo vale 0) e a lista de
// serviços na ordem natural das linhas, sem deduplicar.
func (uc *Mensal) Execute(
	ctx context.Context,
	mesKey string,
) (*MensalOutput, error) {

	ags, err := uc.repo.ListForMonth(ctx, mesKey)
	if err != nil {
		return nil, err
	}

	type diaAcc struct {
		total    int
		receita  float64
		servicos []string
	}

	var (
		ordem  []string
		porDia = make(map[string]*diaAcc)
	)

	for _, ag := range ags {
		acc, ok := porDia[ag.Data]
		if !ok {
			acc = &diaAcc{}
			porDia[ag.Data] = acc
			ordem = append(ordem, ag.Data)
		}

		acc.total++
		if ag.Status == string(domain.StatusConfirmado) && ag.Preco != nil {
			acc.receita += *ag.Preco
		}
		acc.servicos = append(acc.servicos, ag.Servico)
	}

	dados := make([]DiaResumo, 0, len(ordem))
	for _, dia := range ordem {
		acc := porDia[dia]
		dados = append(dados, DiaResumo{
			Data:              dia,
			TotalAgendamentos: acc.total,
			ReceitaDia:        acc.receita,
			Servicos:          strings.Join(acc.servicos, ", "),
		})
	}

	return &MensalOutput{
		Mes:   mesKey,
		Dados: dados,
	}, nil
}
