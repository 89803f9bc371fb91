package bootstrap

import (
	"fmt"
	"time"

	"rental-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone in which "today" is computed for reservation dates.
func NewLocation(cfg config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_TIMEZONE %q: %w", cfg.Server.TimeZone, err)
	}
	return loc, nil
}
