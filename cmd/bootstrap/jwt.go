package bootstrap

import (
	"log/slog"

	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTDecoder,
	),
)

func NewJWTDecoder(cfg config.Config, logger *slog.Logger) *jwt.Decoder {
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT_SECRET not set: backend tokens are decoded without signature verification")
	}
	return jwt.NewDecoder(cfg.JWT.Secret)
}
