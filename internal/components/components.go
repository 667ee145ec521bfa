package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"sightmap/internal/alerts"
	"sightmap/internal/api"
	"sightmap/internal/config"
	"sightmap/internal/redis"
	"sightmap/internal/service"
	"sightmap/internal/storage/postgres"
	"sightmap/internal/store"
	"sightmap/internal/ttl"
	"sightmap/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Alerts     *alerts.Scheduler
	Refresher  *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("initializing postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	markerCache := redis.NewMarkerCache(redisClient)

	policy := ttl.Policy{
		ObserverTTL: cfg.Engine.ObserverTTL,
		IceTTL:      cfg.Engine.IceTTL,
	}
	markers := store.New()
	scheduler := alerts.NewScheduler(clockwork.NewRealClock(), logger,
		alerts.WithMaxVisible(cfg.Engine.MaxVisibleAlerts),
		alerts.WithDedupeWindow(cfg.Engine.DedupeWindow),
	)

	refreshSvc := service.NewRefreshService(
		storage.Markers, markerCache, markers, scheduler, storage.Logs,
		policy, logger, cfg.Engine.DefaultRadiusMiles, cfg.Engine.AlertDuration,
	)
	creatorSvc := service.NewMarkerService(
		storage.Markers, markerCache, markers, scheduler, logger, cfg.Engine.AlertDuration,
	)
	adminSvc := service.NewAdminService(storage.Markers, markerCache, storage.Logs, logger)

	srv := service.NewService(refreshSvc, creatorSvc, adminSvc)

	refresher := workers.NewCacheRefresher(
		storage.Markers, markerCache, logger,
		cfg.Engine.CacheRefreshInterval, cfg.Engine.CacheTTL,
	)

	httpServer := api.NewServer(cfg, logger, srv, scheduler)
	logger.Info("initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Alerts:     scheduler,
		Refresher:  refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
