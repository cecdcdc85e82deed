package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

func strp(s string) *string { return &s }

func TestAplicarAtualizacao_WithoutSenhaKeepsHash(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	usuario := &models.Usuario{Nome: "Ana", Email: "ana@x.com", SenhaHash: string(hashed)}

	err := aplicarAtualizacao(usuario, &schema.UsuarioUpdate{Nome: strp("Ana Maria")})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", usuario.Nome)
	assert.Equal(t, string(hashed), usuario.SenhaHash)
}

func TestAplicarAtualizacao_WithSenhaReplacesHash(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	usuario := &models.Usuario{Nome: "Ana", Email: "ana@x.com", SenhaHash: string(hashed)}

	err := aplicarAtualizacao(usuario, &schema.UsuarioUpdate{Senha: strp("nova-senha")})

	require.NoError(t, err)
	assert.NotEqual(t, string(hashed), usuario.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte("nova-senha")))
}

func TestAplicarAtualizacao_NormalizesEmail(t *testing.T) {
	usuario := &models.Usuario{Email: "ana@x.com"}

	err := aplicarAtualizacao(usuario, &schema.UsuarioUpdate{Email: strp("  Nova@Vitalis.Com ")})

	require.NoError(t, err)
	assert.Equal(t, "nova@vitalis.com", usuario.Email)
}

func TestAplicarAtualizacao_EmptyUpdateIsNoop(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	usuario := &models.Usuario{Nome: "Ana", Email: "ana@x.com", SenhaHash: string(hashed)}

	err := aplicarAtualizacao(usuario, &schema.UsuarioUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Ana", usuario.Nome)
	assert.Equal(t, "ana@x.com", usuario.Email)
	assert.Equal(t, string(hashed), usuario.SenhaHash)
}
