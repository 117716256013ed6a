package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will4skill/diet-api/entity"
	"github.com/will4skill/diet-api/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestConfig() *entity.Config {
	return &entity.Config{
		JWTPrivateKey:     "test_private_key",
		AuthMiddlewareOn:  true,
		AdminMiddlewareOn: true,
	}
}

func authTestRouter(config *entity.Config, tokens service.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Authenticate(tokens, config), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	r.GET("/admin-only", Authenticate(tokens, config), RequireAdmin(config), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticateMissingToken(t *testing.T) {
	config := authTestConfig()
	r := authTestRouter(config, service.NewTokenService(config))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	config := authTestConfig()
	r := authTestRouter(config, service.NewTokenService(config))

	// Invalid credential is 400, not 401. The asymmetry with the
	// missing-token case is part of the contract.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", "garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JWT")
}

func TestAuthenticateValidToken(t *testing.T) {
	config := authTestConfig()
	tokens := service.NewTokenService(config)
	r := authTestRouter(config, tokens)

	token, err := tokens.Generate(&entity.Identity{ID: 9, Admin: false})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-auth-token", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":9`)
}

func TestAuthenticateDisabled(t *testing.T) {
	config := authTestConfig()
	config.AuthMiddlewareOn = false
	tokens := service.NewTokenService(config)

	r := gin.New()
	r.GET("/protected", Authenticate(tokens, config), func(c *gin.Context) {
		_, ok := CurrentIdentity(c)
		assert.False(t, ok) // pass-through attaches nothing
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	config := authTestConfig()
	tokens := service.NewTokenService(config)
	r := authTestRouter(config, tokens)

	t.Run("non-admin is forbidden", func(t *testing.T) {
		token, err := tokens.Generate(&entity.Identity{ID: 1, Admin: false})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("x-auth-token", token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := tokens.Generate(&entity.Identity{ID: 1, Admin: true})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("x-auth-token", token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing identity is forbidden", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin-only", RequireAdmin(config), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("disabled passes everyone", func(t *testing.T) {
		off := authTestConfig()
		off.AdminMiddlewareOn = false
		r := gin.New()
		r.GET("/admin-only", RequireAdmin(off), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
