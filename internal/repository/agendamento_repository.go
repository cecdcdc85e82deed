package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

// AgendamentoRepository carrega paciente e médico junto em toda leitura.
// A integridade dos ids referenciados fica por conta das foreign keys do
// banco: um pacienteId/medicoId inexistente falha no Create.
type AgendamentoRepository interface {
	Create(ctx context.Context, form *schema.AgendamentoForm) (*models.Agendamento, error)
	List(ctx context.Context) ([]models.Agendamento, error)
	ListByYear(ctx context.Context, year int) ([]models.Agendamento, error)
	GetByID(ctx context.Context, id uint) (*models.Agendamento, error)
	Update(ctx context.Context, id uint, upd *schema.AgendamentoUpdate) (*models.Agendamento, error)
	Delete(ctx context.Context, id uint) (*models.Agendamento, error)
}

type agendamentoRepository struct {
	db *gorm.DB
}

func NewAgendamentoRepository(db *gorm.DB) AgendamentoRepository {
	return &agendamentoRepository{db: db}
}

func (r *agendamentoRepository) Create(ctx context.Context, form *schema.AgendamentoForm) (*models.Agendamento, error) {
	agendamento := models.Agendamento{
		DataHora:    form.DataHora,
		Observacoes: form.Observacoes,
		Status:      form.Status,
		PacienteID:  form.PacienteID,
		MedicoID:    form.MedicoID,
	}

	if err := r.db.WithContext(ctx).Create(&agendamento).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, agendamento.ID)
}

func (r *agendamentoRepository) List(ctx context.Context) ([]models.Agendamento, error) {
	var agendamentos []models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Medico").
		Order("data_hora ASC").
		Find(&agendamentos).Error; err != nil {
		return nil, err
	}
	return agendamentos, nil
}

func (r *agendamentoRepository) ListByYear(ctx context.Context, year int) ([]models.Agendamento, error) {
	var agendamentos []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM data_hora) = ?", year).
		Order("data_hora ASC").
		Find(&agendamentos).Error; err != nil {
		return nil, err
	}
	return agendamentos, nil
}

func (r *agendamentoRepository) GetByID(ctx context.Context, id uint) (*models.Agendamento, error) {
	var agendamento models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Paciente").
		Preload("Medico").
		First(&agendamento, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agendamento, nil
}

func (r *agendamentoRepository) Update(ctx context.Context, id uint, upd *schema.AgendamentoUpdate) (*models.Agendamento, error) {
	agendamento, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agendamento == nil {
		return nil, nil
	}

	// Save sobre o registro pré-carregado deixaria o callback de
	// associações do GORM reescrever paciente_id/medico_id a partir dos
	// structs Paciente/Medico antigos; o UPDATE toca só as colunas enviadas.
	cols := agendamentoUpdateColumns(upd)
	if len(cols) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Agendamento{}).
			Where("id = ?", id).
			Updates(cols).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

func agendamentoUpdateColumns(upd *schema.AgendamentoUpdate) map[string]any {
	cols := map[string]any{}
	if upd.DataHora != nil {
		cols["data_hora"] = *upd.DataHora
	}
	if upd.Observacoes != nil {
		cols["observacoes"] = *upd.Observacoes
	}
	if upd.Status != nil {
		cols["status"] = *upd.Status
	}
	if upd.PacienteID != nil {
		cols["paciente_id"] = *upd.PacienteID
	}
	if upd.MedicoID != nil {
		cols["medico_id"] = *upd.MedicoID
	}
	return cols
}

func (r *agendamentoRepository) Delete(ctx context.Context, id uint) (*models.Agendamento, error) {
	agendamento, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agendamento == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&models.Agendamento{}, id).Error; err != nil {
		return nil, err
	}
	return agendamento, nil
}
