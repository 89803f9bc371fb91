package bootstrap

import (
	"context"
	"log/slog"

	"rental-storefront/internal/infra/db"
	"rental-storefront/internal/infra/sessionstore"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/config"
	"rental-storefront/internal/usecase"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// StoreModule provides the session store selected by SESSION_STORE. Only the
// chosen backend is connected.
var StoreModule = fx.Module("store",
	fx.Provide(
		NewSessionStore,
	),
)

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, c clock.Clock, logger *slog.Logger) (usecase.SessionStore, error) {
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("session store: postgres", slog.String("host", cfg.DB.Host), slog.String("db", cfg.DB.DBName))
		return sessionstore.NewPostgresStore(pool, c), nil
	case config.SessionStoreRedis:
		client, err := NewRedis(lc, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("session store: redis", slog.String("addr", cfg.Redis.Addr))
		return sessionstore.NewRedisStore(client, c), nil
	default:
		logger.Info("session store: memory")
		return sessionstore.NewMemoryStore(c), nil
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := db.ConnectRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client, nil
}
