package ttl

import (
	"time"

	"sightmap/internal/domain"
)

// Policy decides how long a marker stays worth highlighting on the client.
// The store's own active flag is authoritative for query results; this is
// the client-side judgment layered on top, and it never mutates the marker.
type Policy struct {
	ObserverTTL time.Duration
	IceTTL      time.Duration
}

// Default returns the product defaults. The observer value is a knob, not
// settled product behavior; config can override both.
func Default() Policy {
	return Policy{
		ObserverTTL: 1 * time.Hour,
		IceTTL:      24 * time.Hour,
	}
}

// IsActive reports whether the marker is still current at now, per its
// category TTL measured from CreatedAt. Unknown categories are never
// active. Expired markers stay in the session set; they render archived.
func (p Policy) IsActive(m domain.Marker, now time.Time) bool {
	switch m.Category {
	case domain.CategoryObserver:
		return now.Sub(m.CreatedAt) < p.ObserverTTL
	case domain.CategoryICE:
		return now.Sub(m.CreatedAt) < p.IceTTL
	}
	return false
}
