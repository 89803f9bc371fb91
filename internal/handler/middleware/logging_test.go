//go:build unit

package middleware_test

import (
	"net/http"
	gohttptest "net/http/httptest"
	"testing"

	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	var seen string
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("echoes the caller's request id", func(t *testing.T) {
		req := gohttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := gohttptest.NewRecorder()
		r.ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-123"})
		assert.Equal(t, "req-123", seen)
	})

	t.Run("generates one when missing", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")

		generated := httptest.AssertHeaderPresent(t, w, "X-Request-ID")
		assert.Equal(t, generated, seen)
	})
}
