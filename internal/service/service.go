package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sightmap/internal/alerts"
	"sightmap/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// MarkerGateway is the boundary to the external marker store.
type MarkerGateway interface {
	FetchWithinRadius(ctx context.Context, center domain.UserLocation, radiusMiles float64, category *domain.MarkerCategory) ([]domain.Marker, error)
	ListActive(ctx context.Context) ([]domain.Marker, error)
	CreateMarker(ctx context.Context, req domain.CreateMarkerRequest) (*domain.Marker, error)
	Cleanup(ctx context.Context, req domain.CleanupRequest) ([]uuid.UUID, error)
}

// MarkerCache fronts the gateway with the latest known active set.
type MarkerCache interface {
	GetActive(ctx context.Context) ([]domain.Marker, bool, error)
	SetActive(ctx context.Context, markers []domain.Marker, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// AlertQueue is the scheduler surface the services need.
type AlertQueue interface {
	Enqueue(in alerts.Input) uuid.UUID
	Dismiss(id uuid.UUID)
	Visible() []domain.Alert
}

type RefreshLogRepository interface {
	Save(ctx context.Context, log *domain.RefreshLog) error
	CountUniqueDevices(ctx context.Context, minutes int) (int64, error)
	CountRefreshes(ctx context.Context, minutes int) (int64, error)
}

// MapRefresher runs the full refresh pipeline for one device position.
type MapRefresher interface {
	Refresh(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error)
}

type MarkerCreator interface {
	Create(ctx context.Context, req domain.CreateMarkerRequest) (*domain.Marker, error)
}

type AdminService interface {
	Cleanup(ctx context.Context, req domain.CleanupRequest) (domain.CleanupResponse, error)
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.MapStats, error)
}

type Service struct {
	MapRefresher  MapRefresher
	MarkerCreator MarkerCreator
	AdminService  AdminService
}

func NewService(refresher MapRefresher, creator MarkerCreator, admin AdminService) *Service {
	return &Service{
		MapRefresher:  refresher,
		MarkerCreator: creator,
		AdminService:  admin,
	}
}
