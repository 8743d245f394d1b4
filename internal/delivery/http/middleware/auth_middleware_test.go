package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	users      map[string]*domain.User
	lookupFail error
}

func (s *stubAuthUsecase) Register(ctx context.Context, name, email, password, adminSecret string) (*domain.User, string, error) {
	panic("not used")
}
func (s *stubAuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	panic("not used")
}
func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	if s.lookupFail != nil {
		return nil, s.lookupFail
	}
	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func newAuthTestRouter(t *testing.T, tokens *auth.TokenManager, uc domain.AuthUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("", middleware.Authenticate(tokens, uc))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetString(string(domain.KeyUserID)),
			"role": c.GetString(string(domain.KeyUserRole)),
		})
	})
	admin := protected.Group("", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("unit-test-secret", time.Hour)
	uc := &stubAuthUsecase{users: map[string]*domain.User{
		"user-1":  {ID: "user-1", Email: "alice@example.com", Role: domain.RoleApplicant},
		"admin-1": {ID: "admin-1", Email: "root@example.com", Role: domain.RoleAdmin},
	}}
	r := newAuthTestRouter(t, tokens, uc)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "not logged in")
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("token for a deleted user is unauthorized", func(t *testing.T) {
		token, err := tokens.Issue("ghost")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no longer exists")
	})

	t.Run("lookup failure surfaces as 500, not a revoked token", func(t *testing.T) {
		failing := &stubAuthUsecase{lookupFail: apperror.Internal(errors.New("connection refused"))}
		fr := newAuthTestRouter(t, tokens, failing)

		token, err := tokens.Issue("user-1")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		fr.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "no longer exists")
	})

	t.Run("valid token attaches identity and fresh role", func(t *testing.T) {
		token, err := tokens.Issue("user-1")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"user-1"`)
		assert.Contains(t, w.Body.String(), `"role":"applicant"`)
	})
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenManager("unit-test-secret", time.Hour)
	uc := &stubAuthUsecase{users: map[string]*domain.User{
		"user-1":  {ID: "user-1", Role: domain.RoleApplicant},
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin},
	}}
	r := newAuthTestRouter(t, tokens, uc)

	t.Run("applicant is forbidden from admin routes", func(t *testing.T) {
		token, err := tokens.Issue("user-1")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "permission")
	})

	t.Run("admin passes through", func(t *testing.T) {
		token, err := tokens.Issue("admin-1")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
