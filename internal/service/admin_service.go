package service

import (
	"context"
	"log/slog"

	"sightmap/internal/domain"
)

type adminService struct {
	gateway MarkerGateway
	cache   MarkerCache
	logs    RefreshLogRepository
	logger  *slog.Logger
}

func NewAdminService(gateway MarkerGateway, cache MarkerCache, logs RefreshLogRepository, logger *slog.Logger) AdminService {
	return &adminService{gateway: gateway, cache: cache, logs: logs, logger: logger}
}

// Cleanup drives the one and only deletion path. TTL expiry never deletes;
// an operator does, explicitly, and can preview first with DryRun.
func (s *adminService) Cleanup(ctx context.Context, req domain.CleanupRequest) (domain.CleanupResponse, error) {
	ids, err := s.gateway.Cleanup(ctx, req)
	if err != nil {
		return domain.CleanupResponse{}, err
	}

	if !req.DryRun && len(ids) > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("marker cache invalidate failed", slog.Any("error", err))
		}
	}

	s.logger.Info("cleanup completed",
		slog.Bool("dry_run", req.DryRun),
		slog.Int("markers", len(ids)),
	)
	return domain.CleanupResponse{DryRun: req.DryRun, Removed: ids}, nil
}

func (s *adminService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.MapStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	unique, err := s.logs.CountUniqueDevices(ctx, minutes)
	if err != nil {
		return nil, err
	}

	total, err := s.logs.CountRefreshes(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.MapStats{
		DeviceCount:    unique,
		TotalRefreshes: total,
		Minutes:        minutes,
	}, nil
}
