package relatorio

import (
	"context"

	domain "github.com/PedroPossari/Vitalis/internal/domain/agendamento"
	"github.com/PedroPossari/Vitalis/internal/dto"
	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/repository"
)

var meses = []string{
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

type ResumoMensal struct {
	repo repository.AgendamentoRepository
}

func NewResumoMensal(repo repository.AgendamentoRepository) *ResumoMensal {
	return &ResumoMensal{repo: repo}
}

// Execute devolve um resumo por mês dos agendamentos do ano, com
// contadores por status. Meses sem agendamento aparecem zerados.
func (uc *ResumoMensal) Execute(ctx context.Context, ano int) ([]dto.ResumoMensalDTO, error) {
	agendamentos, err := uc.repo.ListByYear(ctx, ano)
	if err != nil {
		return nil, err
	}

	return AgruparPorMes(agendamentos, ano), nil
}

func AgruparPorMes(agendamentos []models.Agendamento, ano int) []dto.ResumoMensalDTO {
	out := make([]dto.ResumoMensalDTO, len(meses))
	for i, mes := range meses {
		out[i] = dto.ResumoMensalDTO{Mes: mes}
	}

	for _, ag := range agendamentos {
		if ag.DataHora.Year() != ano {
			continue
		}

		idx := int(ag.DataHora.Month()) - 1
		out[idx].Total++

		switch ag.Status {
		case string(domain.StatusAgendado):
			out[idx].Agendados++
		case string(domain.StatusConcluido):
			out[idx].Concluidos++
		case string(domain.StatusCancelado):
			out[idx].Cancelados++
		}
	}

	return out
}
