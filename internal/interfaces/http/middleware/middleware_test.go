package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"network-registry.backend/internal/interfaces/http/middleware"
	"network-registry.backend/pkg/logger"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	return router
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := newTestRouter(middleware.CorrelationIDMiddleware())

	var fromGin, fromCtx string
	router.GET("/ping", func(c *gin.Context) {
		fromGin = c.GetString(middleware.CorrelationIDKey)
		fromCtx = logger.CorrelationID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, fromGin)
	// Generated ids are textual UUIDs, same as the incoming-header form.
	_, err := uuid.Parse(fromGin)
	require.NoError(t, err)
	assert.Equal(t, fromGin, fromCtx)
	assert.Equal(t, fromGin, w.Header().Get("X-Correlation-ID"))
}

func TestCorrelationIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	router := newTestRouter(middleware.CorrelationIDMiddleware())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = logger.CorrelationID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "corr-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "corr-123", seen)
	assert.Equal(t, "corr-123", w.Header().Get("X-Correlation-ID"))
}

func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	router := newTestRouter(middleware.CorrelationIDMiddleware(), middleware.LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
