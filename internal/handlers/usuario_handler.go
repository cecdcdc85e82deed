package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/audit"
	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/httpresp"
	"github.com/PedroPossari/Vitalis/internal/repository"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type UsuarioHandler struct {
	repo  repository.UsuarioRepository
	audit *audit.Dispatcher
}

func NewUsuarioHandler(repo repository.UsuarioRepository, audit *audit.Dispatcher) *UsuarioHandler {
	return &UsuarioHandler{repo: repo, audit: audit}
}

// Create cadastra uma conta de acesso. A senha chega em texto e sai
// daqui apenas como hash; a resposta nunca inclui o hash.
func (h *UsuarioHandler) Create(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form, err := schema.ParseUsuario(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	form.Email = strings.ToLower(strings.TrimSpace(form.Email))

	usuario, err := h.repo.Create(c.Request.Context(), form)
	if err != nil {
		if httperr.IsBusiness(err, "email_already_exists") {
			httperr.BadRequest(c, "email_already_exists", "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_usuario", "Erro ao criar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "usuario_created",
		Entity:    "usuario",
		EntityID:  &usuario.ID,
	})

	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_usuarios", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, usuarios)
}

func (h *UsuarioHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	usuario, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_usuario", "Erro ao buscar usuário.")
		return
	}
	if usuario == nil {
		httperr.NotFound(c, "usuario_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, usuario)
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	upd, err := schema.ParseUsuarioUpdate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	usuario, err := h.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		httperr.Internal(c, "failed_to_update_usuario", "Erro ao atualizar usuário.")
		return
	}
	if usuario == nil {
		httperr.NotFound(c, "usuario_not_found", "Usuário não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "usuario_updated",
		Entity:    "usuario",
		EntityID:  &usuario.ID,
	})

	httpresp.OK(c, usuario)
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	usuario, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_usuario", "Erro ao excluir usuário.")
		return
	}
	if usuario == nil {
		httperr.NotFound(c, "usuario_not_found", "Usuário não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "usuario_deleted",
		Entity:    "usuario",
		EntityID:  &usuario.ID,
	})

	httpresp.OK(c, usuario)
}
