package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpro/stockpro-api/internal/domain/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		id, email, name, role := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "email": email, "name": name, "role": role})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	t.Run("rejeita requisição sem token", func(t *testing.T) {
		router := setupAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejeita formato de token inválido", func(t *testing.T) {
		router := setupAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejeita token inválido", func(t *testing.T) {
		router := setupAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-invalido")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("aceita token válido e popula o contexto", func(t *testing.T) {
		svc, err := NewJWTService()
		require.NoError(t, err)

		u, err := user.NewUser("João Funcionário", "funcionario@stockpro.com", "func123", user.RoleFuncionario)
		require.NoError(t, err)

		token, err := svc.GenerateToken(u)
		require.NoError(t, err)

		router := setupAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), u.ID)
		assert.Contains(t, w.Body.String(), "FUNCIONARIO")
	})
}

func TestRoleAuthMiddleware(t *testing.T) {
	newRouter := func(role string, allowed ...string) *gin.Engine {
		router := gin.New()
		router.GET("/admin-only", func(c *gin.Context) {
			c.Set("user_role", role)
		}, RoleAuthMiddleware(allowed...), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("autoriza papel permitido", func(t *testing.T) {
		router := newRouter("ADMIN", "ADMIN", "GERENTE")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bloqueia papel não permitido", func(t *testing.T) {
		router := newRouter("FUNCIONARIO", "ADMIN", "GERENTE")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("exige autenticação prévia", func(t *testing.T) {
		router := gin.New()
		router.GET("/admin-only", RoleAuthMiddleware("ADMIN"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
