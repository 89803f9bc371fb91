package components

import (
	"log/slog"

	"rental-storefront/internal/infra/backend"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewBackendClient,
			fx.As(new(usecase.CatalogAPI)),
			fx.As(new(usecase.AuthAPI)),
			fx.As(new(usecase.FavoritesAPI)),
			fx.As(new(usecase.ReservationAPI)),
		),
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	if !cfg.Backend.Attached() {
		logger.Warn("BACKEND_BASE_URL is empty: running detached, favorites stay local and reservations are disabled")
	}
	return backend.NewClient(cfg.Backend, logger)
}
