package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PedroPossari/Vitalis/internal/audit"
	"github.com/PedroPossari/Vitalis/internal/models"
	"github.com/PedroPossari/Vitalis/internal/schema"
)

type MockPacienteRepository struct {
	mock.Mock
}

func (m *MockPacienteRepository) Create(ctx context.Context, form *schema.PacienteForm) (*models.Paciente, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) List(ctx context.Context) ([]models.Paciente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) GetByID(ctx context.Context, id uint) (*models.Paciente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) Update(ctx context.Context, id uint, upd *schema.PacienteUpdate) (*models.Paciente, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paciente), args.Error(1)
}

func (m *MockPacienteRepository) Delete(ctx context.Context, id uint) (*models.Paciente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paciente), args.Error(1)
}

func setupPacienteRouter(repo *MockPacienteRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPacienteHandler(repo, audit.NewDispatcher(audit.New(nil)))

	r := gin.New()
	r.POST("/api/pacientes", h.Create)
	r.GET("/api/pacientes", h.List)
	r.GET("/api/pacientes/:id", h.GetByID)
	r.PATCH("/api/pacientes/:id", h.Update)
	r.DELETE("/api/pacientes/:id", h.Delete)
	return r
}

func TestPacienteHandler_Create_ValidationErrorBlocksRepo(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	r := setupPacienteRouter(mockRepo)

	body, _ := json.Marshal(map[string]any{"nome": "Ana"})
	req := httptest.NewRequest(http.MethodPost, "/api/pacientes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp["error"])
	assert.NotEmpty(t, resp["details"])

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPacienteHandler_Create_MalformedJSON(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	r := setupPacienteRouter(mockRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/pacientes", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPacienteHandler_List(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	mockRepo.On("List", mock.Anything).Return([]models.Paciente{
		{ID: 1, Nome: "Ana Silva"},
		{ID: 2, Nome: "Bruno Costa"},
	}, nil)

	r := setupPacienteRouter(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Paciente `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Data, 2)
}

func TestPacienteHandler_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	r := setupPacienteRouter(mockRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "paciente_not_found")
}

func TestPacienteHandler_GetByID_InvalidID(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	r := setupPacienteRouter(mockRepo)

	for _, id := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/pacientes/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
		assert.Contains(t, w.Body.String(), "invalid_id")
	}

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPacienteHandler_Update_NotFound(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	mockRepo.On("Update", mock.Anything, uint(42), mock.Anything).Return(nil, nil)

	r := setupPacienteRouter(mockRepo)

	body, _ := json.Marshal(map[string]any{"nome": "Novo Nome"})
	req := httptest.NewRequest(http.MethodPatch, "/api/pacientes/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "paciente_not_found")
}

func TestPacienteHandler_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockPacienteRepository)
	mockRepo.On("Delete", mock.Anything, uint(42)).Return(nil, nil)

	r := setupPacienteRouter(mockRepo)

	req := httptest.NewRequest(http.MethodDelete, "/api/pacientes/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "paciente_not_found")
}
