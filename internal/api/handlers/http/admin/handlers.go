package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"sightmap/internal/domain"
	"sightmap/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type MarkerAdmin interface {
	Cleanup(ctx context.Context, req domain.CleanupRequest) (domain.CleanupResponse, error)
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.MapStats, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  MarkerAdmin
}

func NewHandler(logger *slog.Logger, admin MarkerAdmin) *Handler {
	return &Handler{logger: logger, Admin: admin}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminCleanup(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminCleanup", slog.String("remote", r.RemoteAddr))

	var req domain.CleanupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("cleanup validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("cleanup requested",
		slog.Int("older_than_days", req.OlderThanDays),
		slog.Bool("dry_run", req.DryRun),
	)

	resp, err := h.Admin.Cleanup(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("cleanup done", slog.Int("removed", len(resp.Removed)), slog.Bool("dry_run", resp.DryRun))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Admin.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
