package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-ce/catalog-api/internal/service"
	"github.com/campus-ce/catalog-api/pkg/config"
)

func newJWTTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	authSvc := service.NewAuthService(config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "secret",
		TokenTTL:          time.Hour,
	}, nil, nil)

	r := gin.New()
	r.GET("/protected", JWT(authSvc), func(c *gin.Context) {
		_, exists := c.Get(ContextClaimsKey)
		assert.True(t, exists)
		c.Status(http.StatusOK)
	})
	return r, authSvc
}

func TestJWTMiddlewareAllowsValidToken(t *testing.T) {
	r, authSvc := newJWTTestRouter(t)

	token, err := authSvc.IssueToken(service.TokenRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	r, _ := newJWTTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	r, _ := newJWTTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRejectsBadToken(t *testing.T) {
	r, _ := newJWTTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
