package components

import (
	"log/slog"

	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
)

var usecaseBaseOption = fx.Provide(
	usecase.NewTokenValidator,
	NewSessionRegistry,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		NewCatalogUseCase,
		usecase.NewSessionUseCase,
		usecase.NewFavoriteUseCase,
		usecase.NewReservationUseCase,
	),
)

func NewSessionRegistry(store usecase.SessionStore, tokens usecase.TokenValidator, c clock.Clock, cfg config.Config, logger *slog.Logger) *usecase.SessionRegistry {
	return usecase.NewSessionRegistry(store, tokens, c, cfg.Session.TTL, logger)
}

func NewCatalogUseCase(remote usecase.CatalogAPI, c clock.Clock, cfg config.Config, logger *slog.Logger) usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(remote, c, cfg.Catalog.PageSize, logger)
}
