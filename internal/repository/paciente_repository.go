package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

// PacienteRepository define as operações de persistência de pacientes.
// Update e Delete devolvem (nil, nil) quando o id não existe: ausência é
// resultado normal, não falha.
type PacienteRepository interface {
	Create(ctx context.Context, form *schema.PacienteForm) (*models.Paciente, error)
	List(ctx context.Context) ([]models.Paciente, error)
	GetByID(ctx context.Context, id uint) (*models.Paciente, error)
	Update(ctx context.Context, id uint, upd *schema.PacienteUpdate) (*models.Paciente, error)
	Delete(ctx context.Context, id uint) (*models.Paciente, error)
}

type pacienteRepository struct {
	db *gorm.DB
}

func NewPacienteRepository(db *gorm.DB) PacienteRepository {
	return &pacienteRepository{db: db}
}

func (r *pacienteRepository) Create(ctx context.Context, form *schema.PacienteForm) (*models.Paciente, error) {
	paciente := models.Paciente{
		Nome:           form.Nome,
		Email:          form.Email,
		Telefone:       form.Telefone,
		DataNascimento: form.DataNascimento,
		Genero:         form.Genero,
		Endereco:       form.Endereco,

		ContatoEmergencia:   form.ContatoEmergencia,
		TelefoneEmergencia:  form.TelefoneEmergencia,
		PlanoSaude:          form.PlanoSaude,
		CartaoPlano:         form.CartaoPlano,
		Alergias:            form.Alergias,
		MedicacoesContinuas: form.MedicacoesContinuas,
		HistoricoMedico:     form.HistoricoMedico,
		HistoricoFamiliar:   form.HistoricoFamiliar,
	}

	if err := r.db.WithContext(ctx).Create(&paciente).Error; err != nil {
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) List(ctx context.Context) ([]models.Paciente, error) {
	var pacientes []models.Paciente
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&pacientes).Error; err != nil {
		return nil, err
	}
	return pacientes, nil
}

func (r *pacienteRepository) GetByID(ctx context.Context, id uint) (*models.Paciente, error) {
	var paciente models.Paciente
	if err := r.db.WithContext(ctx).First(&paciente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &paciente, nil
}

func (r *pacienteRepository) Update(ctx context.Context, id uint, upd *schema.PacienteUpdate) (*models.Paciente, error) {
	paciente, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paciente == nil {
		return nil, nil
	}

	if upd.Nome != nil {
		paciente.Nome = *upd.Nome
	}
	if upd.Email != nil {
		paciente.Email = *upd.Email
	}
	if upd.Telefone != nil {
		paciente.Telefone = *upd.Telefone
	}
	if upd.DataNascimento != nil {
		paciente.DataNascimento = *upd.DataNascimento
	}
	if upd.Genero != nil {
		paciente.Genero = *upd.Genero
	}
	if upd.Endereco != nil {
		paciente.Endereco = *upd.Endereco
	}
	if upd.ContatoEmergencia != nil {
		paciente.ContatoEmergencia = *upd.ContatoEmergencia
	}
	if upd.TelefoneEmergencia != nil {
		paciente.TelefoneEmergencia = *upd.TelefoneEmergencia
	}
	if upd.PlanoSaude != nil {
		paciente.PlanoSaude = *upd.PlanoSaude
	}
	if upd.CartaoPlano != nil {
		paciente.CartaoPlano = *upd.CartaoPlano
	}
	if upd.Alergias != nil {
		paciente.Alergias = *upd.Alergias
	}
	if upd.MedicacoesContinuas != nil {
		paciente.MedicacoesContinuas = *upd.MedicacoesContinuas
	}
	if upd.HistoricoMedico != nil {
		paciente.HistoricoMedico = *upd.HistoricoMedico
	}
	if upd.HistoricoFamiliar != nil {
		paciente.HistoricoFamiliar = *upd.HistoricoFamiliar
	}

	if err := r.db.WithContext(ctx).Save(paciente).Error; err != nil {
		return nil, err
	}
	return paciente, nil
}

func (r *pacienteRepository) Delete(ctx context.Context, id uint) (*models.Paciente, error) {
	paciente, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paciente == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&models.Paciente{}, id).Error; err != nil {
		return nil, err
	}
	return paciente, nil
}
