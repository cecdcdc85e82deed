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

type PacienteHandler struct {
	repo  repository.PacienteRepository
	audit *audit.Dispatcher
}

func NewPacienteHandler(repo repository.PacienteRepository, audit *audit.Dispatcher) *PacienteHandler {
	return &PacienteHandler{repo: repo, audit: audit}
}

func (h *PacienteHandler) Create(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form, err := schema.ParsePaciente(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	paciente, err := h.repo.Create(c.Request.Context(), form)
	if err != nil {
		httperr.Internal(c, "failed_to_create_paciente", "Erro ao criar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "paciente_created",
		Entity:    "paciente",
		EntityID:  &paciente.ID,
	})

	c.JSON(http.StatusCreated, paciente)
}

func (h *PacienteHandler) List(c *gin.Context) {
	pacientes, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_pacientes", "Erro ao listar pacientes.")
		return
	}

	httpresp.List(c, pacientes)
}

func (h *PacienteHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	paciente, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_paciente", "Erro ao buscar paciente.")
		return
	}
	if paciente == nil {
		httperr.NotFound(c, "paciente_not_found", "Paciente não encontrado.")
		return
	}

	httpresp.OK(c, paciente)
}

func (h *PacienteHandler) Update(c *gin.Context) {
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

	upd, err := schema.ParsePacienteUpdate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	paciente, err := h.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		httperr.Internal(c, "failed_to_update_paciente", "Erro ao atualizar paciente.")
		return
	}
	if paciente == nil {
		httperr.NotFound(c, "paciente_not_found", "Paciente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "paciente_updated",
		Entity:    "paciente",
		EntityID:  &paciente.ID,
	})

	httpresp.OK(c, paciente)
}

func (h *PacienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	paciente, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_paciente", "Erro ao excluir paciente.")
		return
	}
	if paciente == nil {
		httperr.NotFound(c, "paciente_not_found", "Paciente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "paciente_deleted",
		Entity:    "paciente",
		EntityID:  &paciente.ID,
	})

	httpresp.OK(c, paciente)
}
