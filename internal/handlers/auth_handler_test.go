package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func registerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Both paths under test reject before touching the database.
	h := NewAuthHandler(nil, nil)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	w := postJSON(registerRouter(), "/api/auth/register",
		`{"username":"ayse","password":"secret123","password2":"secret124"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "password_mismatch")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	w := postJSON(registerRouter(), "/api/auth/register",
		`{"username":"ayse"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_request")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	w := postJSON(registerRouter(), "/api/auth/register",
		`{"username":"ayse","password":"abc","password2":"abc"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_request")
}
