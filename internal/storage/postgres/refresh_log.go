package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sightmap/internal/domain"
	"sightmap/pkg/e"
)

type RefreshLogRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRefreshLogRepo(pool *pgxpool.Pool, logger *slog.Logger) *RefreshLogRepo {
	return &RefreshLogRepo{pool: pool, logger: logger}
}

func (p *RefreshLogRepo) Save(ctx context.Context, log *domain.RefreshLog) error {
	const op = "postgres.RefreshLog.Save"

	if log == nil || log.DeviceID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if log.Lat < -90 || log.Lat > 90 || log.Lng < -180 || log.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
INSERT INTO refresh_log (id, device_id, lat, lng, marker_ids, refreshed_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.RefreshedAt.IsZero() {
		log.RefreshedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		log.ID,
		log.DeviceID,
		log.Lat,
		log.Lng,
		log.MarkerIDs,
		log.RefreshedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("device_id", log.DeviceID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *RefreshLogRepo) CountUniqueDevices(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.RefreshLog.CountUniqueDevices"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT COUNT(DISTINCT device_id)
FROM refresh_log
WHERE refreshed_at >= NOW() - ($1 * INTERVAL '1 minute')
`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *RefreshLogRepo) CountRefreshes(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.RefreshLog.CountRefreshes"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT COUNT(*)
FROM refresh_log
WHERE refreshed_at >= NOW() - ($1 * INTERVAL '1 minute')
`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
