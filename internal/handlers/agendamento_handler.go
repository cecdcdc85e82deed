package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/audit"
	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/httpresp"
	"github.com/PedroPossari/Vitalis/internal/repository"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type AgendamentoHandler struct {
	repo  repository.AgendamentoRepository
	audit *audit.Dispatcher
}

func NewAgendamentoHandler(repo repository.AgendamentoRepository, audit *audit.Dispatcher) *AgendamentoHandler {
	return &AgendamentoHandler{repo: repo, audit: audit}
}

// Create insere o agendamento referenciando paciente e médico por id.
// Ids inexistentes estouram na foreign key do banco e nada é gravado.
func (h *AgendamentoHandler) Create(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form, err := schema.ParseAgendamento(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	agendamento, err := h.repo.Create(c.Request.Context(), form)
	if err != nil {
		httperr.Internal(c, "failed_to_create_agendamento", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "agendamento_created",
		Entity:    "agendamento",
		EntityID:  &agendamento.ID,
	})

	c.JSON(http.StatusCreated, agendamento)
}

func (h *AgendamentoHandler) List(c *gin.Context) {
	agendamentos, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_agendamentos", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, agendamentos)
}

func (h *AgendamentoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	agendamento, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_agendamento", "Erro ao buscar agendamento.")
		return
	}
	if agendamento == nil {
		httperr.NotFound(c, "agendamento_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, agendamento)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
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

	upd, err := schema.ParseAgendamentoUpdate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	agendamento, err := h.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		httperr.Internal(c, "failed_to_update_agendamento", "Erro ao atualizar agendamento.")
		return
	}
	if agendamento == nil {
		httperr.NotFound(c, "agendamento_not_found", "Agendamento não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "agendamento_updated",
		Entity:    "agendamento",
		EntityID:  &agendamento.ID,
	})

	httpresp.OK(c, agendamento)
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	agendamento, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_agendamento", "Erro ao excluir agendamento.")
		return
	}
	if agendamento == nil {
		httperr.NotFound(c, "agendamento_not_found", "Agendamento não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "agendamento_deleted",
		Entity:    "agendamento",
		EntityID:  &agendamento.ID,
	})

	httpresp.OK(c, agendamento)
}
