package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sd-cms-api/internal/models"
	appErrors "github.com/noah-isme/sd-cms-api/pkg/errors"
)

type authServiceMock struct {
	resp *models.LoginResponse
	err  error

	lastReq models.LoginRequest
}

func (m *authServiceMock) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{resp: &models.LoginResponse{AccessToken: "signed.jwt.token"}}
	handler := NewAuthHandler(mockSvc)

	payload, _ := json.Marshal(models.LoginRequest{Username: "admin", Password: "admin123"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", mockSvc.lastReq.Username)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &authServiceMock{err: appErrors.ErrInvalidCredentials}
	handler := NewAuthHandler(mockSvc)

	payload, _ := json.Marshal(models.LoginRequest{Username: "admin", Password: "wrong"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
