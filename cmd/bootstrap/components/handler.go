package components

import (
	"rental-storefront/internal/handler"
	"rental-storefront/internal/handler/api"
	"rental-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewFavoriteHandler,
		api.NewReservationHandler,
		api.NewHealthHandler,
		handler.NewHandlers,
		middleware.NewSessionMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
