package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sightmap/internal/alerts"
	"sightmap/internal/domain"
	"sightmap/internal/metrics"
	"sightmap/internal/store"
	"sightmap/pkg/e"
)

type markerService struct {
	gateway  MarkerGateway
	cache    MarkerCache
	markers  *store.Store
	queue    AlertQueue
	logger   *slog.Logger
	alertTTL time.Duration
}

func NewMarkerService(
	gateway MarkerGateway,
	cache MarkerCache,
	markers *store.Store,
	queue AlertQueue,
	logger *slog.Logger,
	alertDuration time.Duration,
) MarkerCreator {
	return &markerService{
		gateway:  gateway,
		cache:    cache,
		markers:  markers,
		queue:    queue,
		logger:   logger,
		alertTTL: alertDuration,
	}
}

// Create validates the report and inserts it through the gateway. A bad
// category or coordinate never reaches the network; the created entity is
// the store's echo, merged straight into the session set.
func (s *markerService) Create(ctx context.Context, req domain.CreateMarkerRequest) (*domain.Marker, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("create marker: %w", e.ErrInvalidCategory)
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("create marker: %w", e.ErrInvalidCoordinates)
	}

	created, err := s.gateway.CreateMarker(ctx, req)
	if err != nil {
		s.logger.Error("create marker failed", slog.Any("error", err))
		return nil, err
	}
	metrics.MarkersCreatedTotal.Inc()

	s.markers.Merge([]domain.Marker{*created})

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("marker cache invalidate failed", slog.Any("error", err))
		}
	}

	subjectID := created.ID
	s.queue.Enqueue(alerts.Input{
		Message:         fmt.Sprintf("%s marker reported", created.Category),
		Type:            domain.AlertSuccess,
		Duration:        s.alertTTL,
		SubjectMarkerID: &subjectID,
	})

	s.logger.Info("marker created",
		slog.String("marker_id", created.ID.String()),
		slog.String("category", string(created.Category)),
	)
	return created, nil
}
