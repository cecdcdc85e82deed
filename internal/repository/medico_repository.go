package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type MedicoRepository interface {
	Create(ctx context.Context, form *schema.MedicoForm) (*models.Medico, error)
	List(ctx context.Context) ([]models.Medico, error)
	GetByID(ctx context.Context, id uint) (*models.Medico, error)
	Update(ctx context.Context, id uint, upd *schema.MedicoUpdate) (*models.Medico, error)
	Delete(ctx context.Context, id uint) (*models.Medico, error)
}

type medicoRepository struct {
	db *gorm.DB
}

func NewMedicoRepository(db *gorm.DB) MedicoRepository {
	return &medicoRepository{db: db}
}

func (r *medicoRepository) Create(ctx context.Context, form *schema.MedicoForm) (*models.Medico, error) {
	medico := models.Medico{
		Nome:          form.Nome,
		Email:         form.Email,
		Telefone:      form.Telefone,
		CRM:           form.CRM,
		Especialidade: form.Especialidade,
		Genero:        form.Genero,
		Endereco:      form.Endereco,
	}

	if err := r.db.WithContext(ctx).Create(&medico).Error; err != nil {
		return nil, err
	}
	return &medico, nil
}

// List devolve os médicos em ordem alfabética, como a listagem do painel.
func (r *medicoRepository) List(ctx context.Context) ([]models.Medico, error) {
	var medicos []models.Medico
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&medicos).Error; err != nil {
		return nil, err
	}
	return medicos, nil
}

func (r *medicoRepository) GetByID(ctx context.Context, id uint) (*models.Medico, error) {
	var medico models.Medico
	if err := r.db.WithContext(ctx).First(&medico, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medico, nil
}

func (r *medicoRepository) Update(ctx context.Context, id uint, upd *schema.MedicoUpdate) (*models.Medico, error) {
	medico, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medico == nil {
		return nil, nil
	}

	if upd.Nome != nil {
		medico.Nome = *upd.Nome
	}
	if upd.Email != nil {
		medico.Email = *upd.Email
	}
	if upd.Telefone != nil {
		medico.Telefone = *upd.Telefone
	}
	if upd.CRM != nil {
		medico.CRM = *upd.CRM
	}
	if upd.Especialidade != nil {
		medico.Especialidade = *upd.Especialidade
	}
	if upd.Genero != nil {
		medico.Genero = *upd.Genero
	}
	if upd.Endereco != nil {
		medico.Endereco = *upd.Endereco
	}

	if err := r.db.WithContext(ctx).Save(medico).Error; err != nil {
		return nil, err
	}
	return medico, nil
}

func (r *medicoRepository) Delete(ctx context.Context, id uint) (*models.Medico, error) {
	medico, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medico == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&models.Medico{}, id).Error; err != nil {
		return nil, err
	}
	return medico, nil
}
