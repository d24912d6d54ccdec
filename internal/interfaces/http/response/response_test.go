package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "network-registry.backend/internal/domain/errors"
	"network-registry.backend/internal/interfaces/http/response"
)

func performResponse(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		response.Success(c, http.StatusCreated, gin.H{"ok": true})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestError_AppErrorStatusAndMessage(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		response.Error(c, domainerrors.ChainIDConflict(137))
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(409), body["statusCode"])
	assert.Equal(t, "Network with chainId 137 already exists", body["message"])
}

func TestError_UnknownErrorBecomes500(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		response.Error(c, errors.New("connection reset"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestBadRequest(t *testing.T) {
	w := performResponse(func(c *gin.Context) {
		response.BadRequest(c, "chainId is required")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "chainId is required")
}
