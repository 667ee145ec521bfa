package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sightmap/internal/alerts"
	"sightmap/internal/domain"
	"sightmap/internal/geo"
	"sightmap/internal/metrics"
	"sightmap/internal/proximity"
	"sightmap/internal/store"
	"sightmap/internal/ttl"
	"sightmap/pkg/e"
)

const refreshFailureDedupeKey = "refresh-failure"

type refreshService struct {
	gateway  MarkerGateway
	cache    MarkerCache
	markers  *store.Store
	queue    AlertQueue
	logs     RefreshLogRepository
	policy   ttl.Policy
	logger   *slog.Logger
	radius   float64
	alertTTL time.Duration

	// generation sequences refreshes: a response belonging to an older
	// generation still merges (union semantics) but never raises an
	// alert, so a slow stale fetch cannot resurrect an old event.
	generation atomic.Uint64
}

func NewRefreshService(
	gateway MarkerGateway,
	cache MarkerCache,
	markers *store.Store,
	queue AlertQueue,
	logs RefreshLogRepository,
	policy ttl.Policy,
	logger *slog.Logger,
	defaultRadiusMiles float64,
	alertDuration time.Duration,
) MapRefresher {
	if defaultRadiusMiles <= 0 {
		defaultRadiusMiles = 5.0
	}
	return &refreshService{
		gateway:  gateway,
		cache:    cache,
		markers:  markers,
		queue:    queue,
		logs:     logs,
		policy:   policy,
		logger:   logger,
		radius:   defaultRadiusMiles,
		alertTTL: alertDuration,
	}
}

func (s *refreshService) Refresh(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error) {
	metrics.RefreshesTotal.Inc()

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return domain.RefreshResponse{}, e.ErrInvalidCoordinates
	}

	radius := req.RadiusMiles
	if radius <= 0 {
		radius = s.radius
	}
	user := domain.UserLocation{Lat: req.Lat, Lng: req.Lng}
	gen := s.generation.Add(1)

	fetched, err := s.fetch(ctx, user, radius, req.Category)
	if err != nil {
		metrics.RefreshFailuresTotal.Inc()
		s.logger.Error("refresh fetch failed", slog.Any("error", err))
		// Store contents stay as they were; the user gets one advisory
		// alert, not a spam stream and not a crash.
		s.queue.Enqueue(alerts.Input{
			Message:   "Could not refresh nearby reports. Will retry on your next move.",
			Type:      domain.AlertError,
			Duration:  s.alertTTL,
			DedupeKey: refreshFailureDedupeKey,
		})
		return domain.RefreshResponse{}, err
	}

	s.markers.Merge(fetched)
	snapshot := s.markers.Snapshot()
	now := time.Now().UTC()

	views := make([]domain.MarkerView, 0, len(snapshot))
	candidates := make([]domain.Marker, 0, len(snapshot))
	for _, m := range snapshot {
		active := s.policy.IsActive(m, now)
		views = append(views, domain.MarkerView{
			Marker:     m,
			Expired:    !active,
			DistanceKm: geo.DistanceKm(user.Lat, user.Lng, m.Lat, m.Lng),
		})
		if active && m.Active {
			candidates = append(candidates, m)
		}
	}

	resp := domain.RefreshResponse{Markers: views}

	if gen == s.generation.Load() {
		resp.Alert = s.raiseProximityAlert(candidates, user, req.Category)
	} else {
		s.logger.Debug("stale refresh generation, merged without alerting",
			slog.Uint64("generation", gen),
		)
	}

	s.recordRefresh(ctx, req, fetched)

	s.logger.Info("refresh done",
		slog.Int("fetched", len(fetched)),
		slog.Int("session_total", len(snapshot)),
		slog.Bool("alerted", resp.Alert != nil),
	)
	return resp, nil
}

// fetch consults the active-marker cache first; a hit is narrowed down to
// the requested radius/category client-side, a miss goes to the store.
func (s *refreshService) fetch(ctx context.Context, user domain.UserLocation, radiusMiles float64, category *domain.MarkerCategory) ([]domain.Marker, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("marker cache read failed", slog.Any("error", err))
		}
		if ok {
			metrics.CacheHitsTotal.Inc()
			radiusKm := geo.MilesToKm(radiusMiles)
			out := make([]domain.Marker, 0, len(cached))
			for _, m := range cached {
				if category != nil && m.Category != *category {
					continue
				}
				if geo.DistanceKm(user.Lat, user.Lng, m.Lat, m.Lng) <= radiusKm {
					out = append(out, m)
				}
			}
			return out, nil
		}
		metrics.CacheMissesTotal.Inc()
	}

	return s.gateway.FetchWithinRadius(ctx, user, radiusMiles, category)
}

func (s *refreshService) raiseProximityAlert(candidates []domain.Marker, user domain.UserLocation, category *domain.MarkerCategory) *domain.Alert {
	match := proximity.Nearest(candidates, user, category)
	if match == nil {
		return nil
	}

	alertType := domain.AlertInfo
	if match.Marker.Category == domain.CategoryICE {
		alertType = domain.AlertWarning
	}

	subjectID := match.Marker.ID
	id := s.queue.Enqueue(alerts.Input{
		Message:         proximity.BuildAlertMessage(match.Marker, match.DistanceKm, user),
		Type:            alertType,
		Duration:        s.alertTTL,
		SubjectMarkerID: &subjectID,
		DedupeKey:       fmt.Sprintf("%s:%s", subjectID, match.Marker.Category),
	})
	metrics.AlertsRaisedTotal.Inc()

	for _, a := range s.queue.Visible() {
		if a.ID == id {
			alert := a
			return &alert
		}
	}
	return nil
}

func (s *refreshService) recordRefresh(ctx context.Context, req domain.RefreshRequest, fetched []domain.Marker) {
	if s.logs == nil {
		return
	}
	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		s.logger.Warn("unparseable device id, refresh not logged", slog.String("device_id", req.DeviceID))
		return
	}

	ids := make([]uuid.UUID, 0, len(fetched))
	for _, m := range fetched {
		ids = append(ids, m.ID)
	}
	log := &domain.RefreshLog{
		DeviceID:    deviceID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		MarkerIDs:   ids,
		RefreshedAt: time.Now().UTC(),
	}
	if err := s.logs.Save(ctx, log); err != nil {
		// Stats bookkeeping must never fail a refresh.
		s.logger.Warn("refresh log save failed", slog.Any("error", err))
	}
}
