package domain

import (
	"time"

	"github.com/google/uuid"
)

type CreateMarkerRequest struct {
	Lat         float64        `json:"latitude" validate:"lat"`
	Lng         float64        `json:"longitude" validate:"lng"`
	Category    MarkerCategory `json:"category" validate:"required,marker_category"`
	Title       string         `json:"title" validate:"required,max=200"`
	Description string         `json:"description" validate:"max=2000"`
	ImageURL    *string        `json:"image_url,omitempty" validate:"omitempty,url"`
}

type RefreshRequest struct {
	DeviceID    string          `json:"device_id" validate:"required,uuid"`
	Lat         float64         `json:"lat" validate:"lat"`
	Lng         float64         `json:"lng" validate:"lng"`
	RadiusMiles float64         `json:"radius_miles" validate:"omitempty,min=0.1,max=100"`
	Category    *MarkerCategory `json:"category,omitempty" validate:"omitempty,marker_category"`
}

type RefreshResponse struct {
	Markers []MarkerView `json:"markers"`
	Alert   *Alert       `json:"alert,omitempty"`
}

// MarkerView is a Marker plus the client-side TTL judgment for rendering.
// Expired means "dim it / badge it Archived", not "it was deleted".
type MarkerView struct {
	Marker
	Expired    bool    `json:"expired"`
	DistanceKm float64 `json:"distance_km"`
}

type CleanupRequest struct {
	OlderThanDays int  `json:"older_than_days" validate:"required,min=1,max=365"`
	Limit         int  `json:"limit" validate:"omitempty,min=1,max=1000"`
	DryRun        bool `json:"dry_run"`
}

type CleanupResponse struct {
	DryRun  bool        `json:"dry_run"`
	Removed []uuid.UUID `json:"removed"`
}

// RefreshLog rows feed the admin stats; one per refresh call.
type RefreshLog struct {
	ID          uuid.UUID   `json:"id"`
	DeviceID    uuid.UUID   `json:"device_id"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	MarkerIDs   []uuid.UUID `json:"marker_ids"`
	RefreshedAt time.Time   `json:"refreshed_at"`
}

type StatsRequest struct {
	Minutes int `json:"minutes" validate:"min=0,max=1440"`
}

type MapStats struct {
	DeviceCount    int64 `json:"device_count"`
	TotalRefreshes int64 `json:"total_refreshes"`
	Minutes        int   `json:"minutes"`
}
