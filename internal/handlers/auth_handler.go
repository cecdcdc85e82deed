package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/auth"
	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/middleware"
	"github.com/PedroPossari/Vitalis/internal/session"
)

type AuthHandler struct {
	service    *auth.Service
	sessionTTL int
}

func NewAuthHandler(service *auth.Service, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		service:    service,
		sessionTTL: sessionTTLSeconds,
	}
}

// Login autentica por email+senha e emite uma sessão. Payload
// malformado, email desconhecido e senha errada respondem todos com o
// mesmo invalid_credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	sess, err := h.service.Login(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, auth.ErrCredenciaisInvalidas) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		sess.Token,
		h.sessionTTL,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    sess.UsuarioID,
			"nome":  sess.Nome,
			"email": sess.Email,
		},
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := c.MustGet(middleware.ContextSession).(*session.Session)

	if err := h.service.Logout(c.Request.Context(), sess.Token); err != nil {
		httperr.Internal(c, "failed_to_logout", "Erro ao encerrar sessão.")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess := c.MustGet(middleware.ContextSession).(*session.Session)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    sess.UsuarioID,
			"nome":  sess.Nome,
			"email": sess.Email,
		},
		"issued_at":  sess.IssuedAt,
		"expires_at": sess.ExpiresAt,
	})
}
