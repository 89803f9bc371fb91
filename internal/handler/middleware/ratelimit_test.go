//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 2

	rl := middleware.NewRateLimiter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 2 {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")

	assert.Equal(t, 0, rl.Sweep(time.Now()))
	assert.Equal(t, 1, rl.Sweep(time.Now().Add(time.Hour)))
}
