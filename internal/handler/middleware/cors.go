package middleware

import (
	"log/slog"
	"slices"

	"rental-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the storefront UI to call the API with its session cookie.
// Credentials cannot be combined with a wildcard origin, so "*" disables them.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	allowCredentials := cfg.AllowCredentials
	if slices.Contains(cfg.AllowOrigins, "*") && allowCredentials {
		logger.Warn("CORS wildcard origin configured, disabling credentials")
		allowCredentials = false
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), requestIDHeader),
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins))
	return cors.New(corsCfg)
}
