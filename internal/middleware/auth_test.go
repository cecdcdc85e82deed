package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PedroPossari/Vitalis/internal/session"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, usuarioID uint, email, nome string) (*session.Session, error) {
	args := m.Called(ctx, usuarioID, email, nome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func setupRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(store), func(c *gin.Context) {
		sess := c.MustGet(ContextSession).(*session.Session)
		c.JSON(http.StatusOK, gin.H{"usuario_id": sess.UsuarioID})
	})
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	store := new(MockSessionStore)
	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_session")
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Get", mock.Anything, "expired-or-bogus").Return(nil, session.ErrNotFound)

	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired-or-bogus"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_session")
}

func TestAuthMiddleware_StoreFailure(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Get", mock.Anything, "tok").Return(nil, assert.AnError)

	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "session_store_error")
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	sess := &session.Session{
		Token:     "tok",
		UsuarioID: 9,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	store := new(MockSessionStore)
	store.On("Get", mock.Anything, "tok").Return(sess, nil)

	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"usuario_id":9`)
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	sess := &session.Session{Token: "tok", UsuarioID: 9, ExpiresAt: time.Now().Add(time.Hour)}

	store := new(MockSessionStore)
	store.On("Get", mock.Anything, "tok").Return(sess, nil)

	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenFromRequest_MalformedHeader(t *testing.T) {
	store := new(MockSessionStore)
	r := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "tok-sem-prefixo")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_session")
	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
