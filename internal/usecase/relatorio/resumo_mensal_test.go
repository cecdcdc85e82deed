package relatorio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type MockAgendamentoRepository struct {
	mock.Mock
}

func (m *MockAgendamentoRepository) Create(ctx context.Context, form *schema.AgendamentoForm) (*models.Agendamento, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Agendamento), args.Error(1)
}

func (m *MockAgendamentoRepository) List(ctx context.Context) ([]models.Agendamento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Agendamento), args.Error(1)
}

func (m *MockAgendamentoRepository) ListByYear(ctx context.Context, year int) ([]models.Agendamento, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Agendamento), args.Error(1)
}

func (m *MockAgendamentoRepository) GetByID(ctx context.Context, id uint) (*models.Agendamento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Agendamento), args.Error(1)
}

func (m *MockAgendamentoRepository) Update(ctx context.Context, id uint, upd *schema.AgendamentoUpdate) (*models.Agendamento, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Agendamento), args.Error(1)
}

func (m *MockAgendamentoRepository) Delete(ctx context.Context, id uint) (*models.Agendamento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Agendamento), args.Error(1)
}

func ag(year int, month time.Month, status string) models.Agendamento {
	return models.Agendamento{
		DataHora: time.Date(year, month, 15, 10, 0, 0, 0, time.UTC),
		Status:   status,
	}
}

func TestAgruparPorMes(t *testing.T) {
	agendamentos := []models.Agendamento{
		ag(2025, time.January, "Agendado"),
		ag(2025, time.January, "Concluído"),
		ag(2025, time.January, "Cancelado"),
		ag(2025, time.March, "Agendado"),
		ag(2025, time.March, "Agendado"),
		ag(2025, time.December, "Concluído"),
	}

	resumo := AgruparPorMes(agendamentos, 2025)

	require.Len(t, resumo, 12)

	assert.Equal(t, "Janeiro", resumo[0].Mes)
	assert.Equal(t, 3, resumo[0].Total)
	assert.Equal(t, 1, resumo[0].Agendados)
	assert.Equal(t, 1, resumo[0].Concluidos)
	assert.Equal(t, 1, resumo[0].Cancelados)

	assert.Equal(t, "Março", resumo[2].Mes)
	assert.Equal(t, 2, resumo[2].Total)
	assert.Equal(t, 2, resumo[2].Agendados)

	assert.Equal(t, "Dezembro", resumo[11].Mes)
	assert.Equal(t, 1, resumo[11].Total)
	assert.Equal(t, 1, resumo[11].Concluidos)
}

func TestAgruparPorMes_IgnoresOtherYears(t *testing.T) {
	agendamentos := []models.Agendamento{
		ag(2024, time.June, "Agendado"),
		ag(2025, time.June, "Agendado"),
		ag(2026, time.June, "Agendado"),
	}

	resumo := AgruparPorMes(agendamentos, 2025)

	assert.Equal(t, 1, resumo[5].Total)
	for i, mes := range resumo {
		if i == 5 {
			continue
		}
		assert.Zero(t, mes.Total, "mes %s deveria estar zerado", mes.Mes)
	}
}

func TestAgruparPorMes_EmptyInput(t *testing.T) {
	resumo := AgruparPorMes(nil, 2025)

	require.Len(t, resumo, 12)
	assert.Equal(t, "Janeiro", resumo[0].Mes)
	assert.Equal(t, "Dezembro", resumo[11].Mes)
	for _, mes := range resumo {
		assert.Zero(t, mes.Total)
		assert.Zero(t, mes.Agendados)
		assert.Zero(t, mes.Concluidos)
		assert.Zero(t, mes.Cancelados)
	}
}

func TestResumoMensal_Execute(t *testing.T) {
	mockRepo := new(MockAgendamentoRepository)
	mockRepo.On("ListByYear", mock.Anything, 2025).Return([]models.Agendamento{
		ag(2025, time.February, "Agendado"),
		ag(2025, time.February, "Cancelado"),
	}, nil)

	uc := NewResumoMensal(mockRepo)
	resumo, err := uc.Execute(context.Background(), 2025)

	require.NoError(t, err)
	require.Len(t, resumo, 12)
	assert.Equal(t, "Fevereiro", resumo[1].Mes)
	assert.Equal(t, 2, resumo[1].Total)
	assert.Equal(t, 1, resumo[1].Agendados)
	assert.Equal(t, 1, resumo[1].Cancelados)
	mockRepo.AssertExpectations(t)
}

func TestResumoMensal_Execute_RepoError(t *testing.T) {
	mockRepo := new(MockAgendamentoRepository)
	mockRepo.On("ListByYear", mock.Anything, 2025).Return(nil, assert.AnError)

	uc := NewResumoMensal(mockRepo)
	resumo, err := uc.Execute(context.Background(), 2025)

	require.Error(t, err)
	assert.Nil(t, resumo)
}
