package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ce/catalog-api/internal/service"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
)

type tokenIssuerMock struct {
	resp    *service.TokenResponse
	err     error
	lastReq service.TokenRequest
}

func (m *tokenIssuerMock) IssueToken(req service.TokenRequest) (*service.TokenResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func TestAuthHandlerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &tokenIssuerMock{
		resp: &service.TokenResponse{AccessToken: "token", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)},
	}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(`{"username":"admin","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Token(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", mockSvc.lastReq.Username)
	assert.Contains(t, w.Body.String(), `"access_token":"token"`)
}

func TestAuthHandlerTokenInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&tokenIssuerMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(`{"username":"admin"`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Token(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerTokenBadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &tokenIssuerMock{err: appErrors.ErrInvalidCredentials}
	handler := NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Token(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
