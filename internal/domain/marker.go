package domain

import (
	"time"

	"github.com/google/uuid"
)

type MarkerCategory string

const (
	CategoryICE      MarkerCategory = "ice"
	CategoryObserver MarkerCategory = "observer"
)

func (c MarkerCategory) Valid() bool {
	return c == CategoryICE || c == CategoryObserver
}

// Marker is a single community-reported sighting. ID is assigned by the
// store on insert and is the merge key for the session set; Active is the
// store's last known flag, distinct from the client-side TTL judgment.
type Marker struct {
	ID        uuid.UUID      `json:"id"`
	Lat       float64        `json:"lat" validate:"lat"` // -90..90
	Lng       float64        `json:"lng" validate:"lng"` // -180..180
	Category  MarkerCategory `json:"category" validate:"required,marker_category"`
	CreatedAt time.Time      `json:"created_at"`
	Active    bool           `json:"active"`
	ImageURL  *string        `json:"image_url,omitempty"`

	// Corroboration metadata, mutated only by community confirmation
	// actions; carried through merges untouched.
	LastConfirmed         *time.Time `json:"last_confirmed,omitempty"`
	ReliabilityScore      *float64   `json:"reliability_score,omitempty"`
	NegativeConfirmations *int       `json:"negative_confirmations,omitempty"`
}

// UserLocation is the device position at refresh time. Ephemeral, never
// persisted by this core.
type UserLocation struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}
