package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sightmap/internal/domain"
	"sightmap/internal/geo"
	"sightmap/pkg/e"
)

const markerColumns = `
	id,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lng,
	category,
	created_at,
	active,
	image_url,
	last_confirmed,
	reliability_score,
	negative_confirmations
`

// MarkerGateway is the boundary to the marker store. It owns the retry
// policy: transient failures back off and retry, everything else surfaces
// as-is.
type MarkerGateway struct {
	pool     *pgxpool.Pool
	logger   *slog.Logger
	attempts uint
}

func NewMarkerGateway(pool *pgxpool.Pool, logger *slog.Logger, retryAttempts int) *MarkerGateway {
	if retryAttempts < 1 {
		retryAttempts = 3
	}
	return &MarkerGateway{pool: pool, logger: logger, attempts: uint(retryAttempts)}
}

// FetchWithinRadius queries markers with active = true inside radiusMiles
// of center, optionally narrowed to one category. The store does the
// radius cut with ST_DWithin; rows are still re-checked against the
// haversine distance before returning so a permissive index scan cannot
// leak a superset.
func (g *MarkerGateway) FetchWithinRadius(ctx context.Context, center domain.UserLocation, radiusMiles float64, category *domain.MarkerCategory) ([]domain.Marker, error) {
	const op = "postgres.Marker.FetchWithinRadius"

	if center.Lat < -90 || center.Lat > 90 || center.Lng < -180 || center.Lng > 180 || radiusMiles <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	query := `
SELECT ` + markerColumns + `
FROM markers
WHERE active = true
  AND ST_DWithin(
    geo_point::geography,
    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
    $3
  )
`
	args := []any{center.Lng, center.Lat, geo.MilesToMeters(radiusMiles)}
	if category != nil {
		query += "  AND category = $4\n"
		args = append(args, string(*category))
	}
	query += "ORDER BY created_at DESC"

	var markers []domain.Marker
	err := withRetry(ctx, g.logger, op, g.attempts, func(ctx context.Context) error {
		rows, err := g.pool.Query(ctx, query, args...)
		if err != nil {
			g.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		defer rows.Close()

		markers = markers[:0]
		for rows.Next() {
			m, err := scanMarker(rows)
			if err != nil {
				g.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
				return e.WrapError(ctx, op, err)
			}
			markers = append(markers, m)
		}
		if err := rows.Err(); err != nil {
			g.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	radiusKm := geo.MilesToKm(radiusMiles)
	filtered := markers[:0]
	for _, m := range markers {
		if geo.DistanceKm(center.Lat, center.Lng, m.Lat, m.Lng) <= radiusKm {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// ListActive returns every marker the store still flags active, for the
// cache refresher.
func (g *MarkerGateway) ListActive(ctx context.Context) ([]domain.Marker, error) {
	const op = "postgres.Marker.ListActive"

	query := `
SELECT ` + markerColumns + `
FROM markers
WHERE active = true
ORDER BY created_at DESC
`

	var markers []domain.Marker
	err := withRetry(ctx, g.logger, op, g.attempts, func(ctx context.Context) error {
		rows, err := g.pool.Query(ctx, query)
		if err != nil {
			g.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		defer rows.Close()

		markers = markers[:0]
		for rows.Next() {
			m, err := scanMarker(rows)
			if err != nil {
				return e.WrapError(ctx, op, err)
			}
			markers = append(markers, m)
		}
		if err := rows.Err(); err != nil {
			return e.WrapError(ctx, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return markers, nil
}

// CreateMarker inserts the row and returns the entity as echoed back by
// the store; id and created_at are server-assigned. Category validity is
// the caller's problem and is checked before this layer is reached.
func (g *MarkerGateway) CreateMarker(ctx context.Context, req domain.CreateMarkerRequest) (*domain.Marker, error) {
	const op = "postgres.Marker.CreateMarker"

	const query = `
INSERT INTO markers (id, geo_point, category, title, description, image_url, active, created_at)
VALUES (gen_random_uuid(), ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6, true, now())
RETURNING ` + markerColumns

	var created domain.Marker
	err := withRetry(ctx, g.logger, op, g.attempts, func(ctx context.Context) error {
		row := g.pool.QueryRow(ctx, query,
			req.Lng,
			req.Lat,
			string(req.Category),
			req.Title,
			req.Description,
			req.ImageURL,
		)
		m, err := scanMarker(row)
		if err != nil {
			g.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Cleanup is the only path that deletes markers. With DryRun it previews
// the ids that would go; otherwise it deletes up to Limit rows older than
// OlderThanDays and returns the ids actually removed.
func (g *MarkerGateway) Cleanup(ctx context.Context, req domain.CleanupRequest) ([]uuid.UUID, error) {
	const op = "postgres.Marker.Cleanup"

	if req.OlderThanDays < 1 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	limit := req.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -req.OlderThanDays)

	query := `
DELETE FROM markers
WHERE id IN (
  SELECT id FROM markers
  WHERE created_at < $1
  ORDER BY created_at ASC
  LIMIT $2
)
RETURNING id
`
	if req.DryRun {
		query = `
SELECT id FROM markers
WHERE created_at < $1
ORDER BY created_at ASC
LIMIT $2
`
	}

	var ids []uuid.UUID
	err := withRetry(ctx, g.logger, op, g.attempts, func(ctx context.Context) error {
		rows, err := g.pool.Query(ctx, query, cutoff, limit)
		if err != nil {
			g.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		defer rows.Close()

		ids = ids[:0]
		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				return e.WrapError(ctx, op, err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			return e.WrapError(ctx, op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("cleanup finished",
		slog.String("op", op),
		slog.Bool("dry_run", req.DryRun),
		slog.Int("count", len(ids)),
	)
	return ids, nil
}

func scanMarker(row pgx.Row) (domain.Marker, error) {
	var m domain.Marker
	err := row.Scan(
		&m.ID,
		&m.Lat,
		&m.Lng,
		&m.Category,
		&m.CreatedAt,
		&m.Active,
		&m.ImageURL,
		&m.LastConfirmed,
		&m.ReliabilityScore,
		&m.NegativeConfirmations,
	)
	return m, err
}
