package workers

import (
	"context"
	"log/slog"
	"time"

	"sightmap/internal/domain"
)

type ActiveMarkerLister interface {
	ListActive(ctx context.Context) ([]domain.Marker, error)
}

type MarkerCacheWriter interface {
	SetActive(ctx context.Context, markers []domain.Marker, ttl time.Duration) error
}

// CacheRefresher keeps the active-marker cache warm so refresh requests
// mostly avoid the database. A failed cycle is logged and retried on the
// next tick; the previous cache entry keeps serving until its TTL runs out.
type CacheRefresher struct {
	gateway  ActiveMarkerLister
	cache    MarkerCacheWriter
	logger   *slog.Logger
	interval time.Duration
	cacheTTL time.Duration
}

func NewCacheRefresher(gateway ActiveMarkerLister, cache MarkerCacheWriter, logger *slog.Logger, interval, cacheTTL time.Duration) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = 2 * interval
	}
	return &CacheRefresher{
		gateway:  gateway,
		cache:    cache,
		logger:   logger,
		interval: interval,
		cacheTTL: cacheTTL,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	// Prime the cache before the first tick.
	w.refreshOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refreshOnce(ctx)
		}
	}
}

func (w *CacheRefresher) refreshOnce(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	markers, err := w.gateway.ListActive(opCtx)
	if err != nil {
		w.logger.Warn("active marker fetch failed", slog.Any("error", err))
		return
	}

	if err := w.cache.SetActive(opCtx, markers, w.cacheTTL); err != nil {
		w.logger.Warn("marker cache write failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("marker cache refreshed", slog.Int("markers", len(markers)))
}
