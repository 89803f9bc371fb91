package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-storefront/internal/handler/api"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Catalog     *api.CatalogHandler
	Favorite    *api.FavoriteHandler
	Reservation *api.ReservationHandler
	Health      *api.HealthHandler
}

func NewHandlers(auth *api.AuthHandler, catalog *api.CatalogHandler, favorite *api.FavoriteHandler, reservation *api.ReservationHandler, health *api.HealthHandler) Handlers {
	return Handlers{
		Auth:        auth,
		Catalog:     catalog,
		Favorite:    favorite,
		Reservation: reservation,
		Health:      health,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger, limiter)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(limiter.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sm *middleware.SessionMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{sm.Attach()}},
			})
		}

		catalog := apiGroup.Group("/catalog")
		catalog.Use(sm.Attach())
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.ListCategories},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Catalog.Refresh},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(sm.Attach())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorite.List},
				{Method: http.MethodGet, Path: "/:productId", Handler: h.Favorite.Status},
				{Method: http.MethodPost, Path: "/:productId/toggle", Handler: h.Favorite.Toggle},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(sm.Attach())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/quote", Handler: h.Reservation.Quote},
			})

			signedIn := reservations.Group("")
			signedIn.Use(sm.RequireUser())
			addRoutes(signedIn, []route{
				{Method: http.MethodGet, Path: "/history", Handler: h.Reservation.History},
				{Method: http.MethodPost, Path: "/workflows", Handler: h.Reservation.Start},
				{Method: http.MethodGet, Path: "/workflows/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/workflows/:id/dates", Handler: h.Reservation.SetDates},
				{Method: http.MethodPut, Path: "/workflows/:id/customer", Handler: h.Reservation.SetCustomer},
				{Method: http.MethodPost, Path: "/workflows/:id/submit", Handler: h.Reservation.Submit},
				{Method: http.MethodPost, Path: "/workflows/:id/retry", Handler: h.Reservation.Retry},
				{Method: http.MethodPost, Path: "/workflows/:id/reset", Handler: h.Reservation.Reset},
				{Method: http.MethodPost, Path: "/workflows/:id/close", Handler: h.Reservation.Close},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
