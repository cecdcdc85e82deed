package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroPossari/Vitalis/internal/audit"
	domainMedico "github.com/PedroPossari/Vitalis/internal/domain/medico"
	"github.com/PedroPossari/Vitalis/internal/httperr"
	"github.com/PedroPossari/Vitalis/internal/httpresp"
	"github.com/PedroPossari/Vitalis/internal/repository"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type MedicoHandler struct {
	repo  repository.MedicoRepository
	audit *audit.Dispatcher
}

func NewMedicoHandler(repo repository.MedicoRepository, audit *audit.Dispatcher) *MedicoHandler {
	return &MedicoHandler{repo: repo, audit: audit}
}

func (h *MedicoHandler) Create(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	form, err := schema.ParseMedico(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	medico, err := h.repo.Create(c.Request.Context(), form)
	if err != nil {
		httperr.Internal(c, "failed_to_create_medico", "Erro ao criar médico.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "medico_created",
		Entity:    "medico",
		EntityID:  &medico.ID,
	})

	c.JSON(http.StatusCreated, medico)
}

func (h *MedicoHandler) List(c *gin.Context) {
	medicos, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_medicos", "Erro ao listar médicos.")
		return
	}

	httpresp.List(c, medicos)
}

// Especialidades expõe a lista fixa usada no formulário de cadastro.
func (h *MedicoHandler) Especialidades(c *gin.Context) {
	httpresp.OK(c, domainMedico.Especialidades)
}

func (h *MedicoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	medico, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_medico", "Erro ao buscar médico.")
		return
	}
	if medico == nil {
		httperr.NotFound(c, "medico_not_found", "Médico não encontrado.")
		return
	}

	httpresp.OK(c, medico)
}

func (h *MedicoHandler) Update(c *gin.Context) {
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

	upd, err := schema.ParseMedicoUpdate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": err,
		})
		return
	}

	medico, err := h.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		httperr.Internal(c, "failed_to_update_medico", "Erro ao atualizar médico.")
		return
	}
	if medico == nil {
		httperr.NotFound(c, "medico_not_found", "Médico não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "medico_updated",
		Entity:    "medico",
		EntityID:  &medico.ID,
	})

	httpresp.OK(c, medico)
}

func (h *MedicoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	medico, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_medico", "Erro ao excluir médico.")
		return
	}
	if medico == nil {
		httperr.NotFound(c, "medico_not_found", "Médico não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: currentUserID(c),
		Action:    "medico_deleted",
		Entity:    "medico",
		EntityID:  &medico.ID,
	})

	httpresp.OK(c, medico)
}
