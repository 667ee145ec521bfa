package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sightmap/internal/metrics"
	"sightmap/pkg/e"
)

const (
	retryInitialInterval = 200 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
)

// withRetry runs op with exponential backoff on transient failures only.
// Validation and auth-class errors are permanent and surface immediately;
// exhausting the attempt budget returns the last transient error.
func withRetry(ctx context.Context, logger *slog.Logger, op string, attempts uint, fn func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxInterval = retryMaxInterval

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !e.IsTransient(err) {
			return backoff.Permanent(err)
		}
		metrics.GatewayRetriesTotal.Inc()
		logger.Warn("transient store failure, will retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts)), ctx))
}
