package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sightmap/internal/domain"
	"sightmap/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type MapRefresher interface {
	Refresh(ctx context.Context, req domain.RefreshRequest) (domain.RefreshResponse, error)
}

type MarkerCreator interface {
	Create(ctx context.Context, req domain.CreateMarkerRequest) (*domain.Marker, error)
}

type AlertViewer interface {
	Visible() []domain.Alert
	Dismiss(id uuid.UUID)
}

type Handler struct {
	logger    *slog.Logger
	Refresher MapRefresher
	Creator   MarkerCreator
	Alerts    AlertViewer
}

func NewHandler(logger *slog.Logger, refresher MapRefresher, creator MarkerCreator, alerts AlertViewer) *Handler {
	return &Handler{
		logger:    logger,
		Refresher: refresher,
		Creator:   creator,
		Alerts:    alerts,
	}
}

func (h *Handler) MapRefresh(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MapRefresh", slog.String("remote", r.RemoteAddr))

	var req domain.RefreshRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("refresh validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Refresher.Refresh(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("map refreshed",
		slog.Int("markers", len(resp.Markers)),
		slog.Bool("alerted", resp.Alert != nil),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) MarkerCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MarkerCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateMarkerRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("marker validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	marker, err := h.Creator.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("marker created",
		slog.String("id", marker.ID.String()),
		slog.String("category", string(marker.Category)),
	)
	h.writeJSON(w, http.StatusCreated, marker)
}

func (h *Handler) AlertList(w http.ResponseWriter, r *http.Request) {
	alerts := h.Alerts.Visible()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (h *Handler) AlertDismiss(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid alert id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	h.Alerts.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeStrict decodes exactly one JSON object and rejects unknown fields
// and trailing garbage.
func (h *Handler) decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
