package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cakehouse-pos/internal/auth"
	"cakehouse-pos/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.MustGet("role")})
	})
	r.GET("/admin", middleware.AuthMiddleware(), middleware.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	// No header
	assert.Equal(t, http.StatusUnauthorized, get(r, "/secure", "").Code)

	// Garbage token
	assert.Equal(t, http.StatusUnauthorized, get(r, "/secure", "not-a-jwt").Code)

	// Missing Bearer prefix
	token, err := auth.GenerateToken(1, "staff")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token passes and exposes the role downstream
	resp := get(r, "/secure", token)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "staff")
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter()

	staffToken, err := auth.GenerateToken(1, "staff")
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken(2, "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", staffToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", adminToken).Code)
}
