package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/PedroPossari/Vitalis/internal/repository"
	"github.com/PedroPossari/Vitalis/internal/schema"
	"github.com/PedroPossari/Vitalis/internal/session"
)

// ErrCredenciaisInvalidas cobre email desconhecido, senha errada e
// payload malformado. Uma única mensagem para não revelar quais contas
// existem.
var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

type Service struct {
	usuarios repository.UsuarioRepository
	sessions session.Store
}

func NewService(usuarios repository.UsuarioRepository, sessions session.Store) *Service {
	return &Service{
		usuarios: usuarios,
		sessions: sessions,
	}
}

// Login valida o payload pelo schema de login, busca o usuário pelo
// email e compara a senha com o hash armazenado. Qualquer uma dessas
// etapas falhando devolve ErrCredenciaisInvalidas; só falhas do banco
// ou do Redis passam adiante como erro distinto.
func (s *Service) Login(ctx context.Context, in map[string]any) (*session.Session, error) {
	form, err := schema.ParseLogin(in)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))

	usuario, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(form.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	sess, err := s.sessions.Create(ctx, usuario.ID, usuario.Email, usuario.Nome)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
