package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

// UsuarioRepository persiste as contas de acesso do painel. A senha só
// existe aqui como hash bcrypt: Create gera o hash, Update re-gera apenas
// quando uma senha nova é enviada. FindByEmail existe para o fluxo de
// login e não deve ser exposto fora da autenticação.
type UsuarioRepository interface {
	Create(ctx context.Context, form *schema.UsuarioForm) (*models.Usuario, error)
	List(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	Update(ctx context.Context, id uint, upd *schema.UsuarioUpdate) (*models.Usuario, error)
	Delete(ctx context.Context, id uint) (*models.Usuario, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, form *schema.UsuarioForm) (*models.Usuario, error) {
	count, err := r.CountByEmail(ctx, form.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("email_already_exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		Nome:      form.Nome,
		Email:     form.Email,
		SenhaHash: string(hashed),
	}

	if err := r.db.WithContext(ctx).Create(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) List(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Update(ctx context.Context, id uint, upd *schema.UsuarioUpdate) (*models.Usuario, error) {
	usuario, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}

	if err := aplicarAtualizacao(usuario, upd); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(usuario).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

// aplicarAtualizacao aplica os campos enviados sobre o registro: o email
// é normalizado como no cadastro e a senha só vira hash novo quando
// enviada; sem senha no payload, o hash armazenado não muda.
func aplicarAtualizacao(usuario *models.Usuario, upd *schema.UsuarioUpdate) error {
	if upd.Nome != nil {
		usuario.Nome = *upd.Nome
	}
	if upd.Email != nil {
		usuario.Email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.Senha != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Senha), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		usuario.SenhaHash = string(hashed)
	}
	return nil
}

func (r *usuarioRepository) Delete(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Delete(&models.Usuario{}, id).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

func (r *usuarioRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
