package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"rental-storefront/cmd/bootstrap"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const maintenanceInterval = time.Minute

func init() {
	// Never expose debug output because of a missing GIN_MODE.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           rental-storefront
// @version         1.0
// @description     Storefront API for a product rental catalog: browsing, favorites and reservations.
// @description     Sessions are carried in the session_id cookie or an Authorization Bearer header.

// @BasePath  /
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

// warmCatalog loads the catalog once at startup. A failure leaves it empty
// until the next refresh.
func warmCatalog(lc fx.Lifecycle, catalog usecase.CatalogUseCase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := catalog.Refresh(ctx); err != nil {
				logger.Warn("initial catalog load failed", "error", err)
			}
			return nil
		},
	})
}

// startMaintenance periodically drops expired sessions and idle rate limiters.
func startMaintenance(lc fx.Lifecycle, registry *usecase.SessionRegistry, limiter *middleware.RateLimiter, c clock.Clock, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(maintenanceInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						purged, err := registry.PurgeExpired(ctx)
						if err != nil {
							logger.Warn("session purge failed", "error", err)
						} else if purged > 0 {
							logger.Debug("expired sessions purged", "count", purged)
						}
						limiter.Sweep(c.Now())
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			warmCatalog,
			startMaintenance,
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
}
