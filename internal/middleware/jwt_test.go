package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/models"
	"github.com/noah-isme/sd-cms-api/internal/service"
)

func buildProtectedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := service.HashPassword("admin123")
	require.NoError(t, err)
	authSvc := service.NewAuthService(nil, nil, service.AuthConfig{
		Username:     "admin",
		PasswordHash: hash,
		Secret:       "test_secret",
		Expiry:       time.Hour,
	})
	resp, err := authSvc.Login(models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin/ping", JWT(authSvc), func(c *gin.Context) {
		claims, ok := c.Get(ContextUserKey)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": claims.(*models.JWTClaims).Username})
	})
	return router, resp.AccessToken
}

func TestJWTMiddlewareAllowsValidToken(t *testing.T) {
	router, token := buildProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := buildProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	router, token := buildProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRejectsTamperedToken(t *testing.T) {
	router, token := buildProtectedRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
