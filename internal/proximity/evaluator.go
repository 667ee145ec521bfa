package proximity

import (
	"fmt"

	"sightmap/internal/domain"
	"sightmap/internal/geo"
)

// Match pairs the nearest marker of interest with its distance from the
// user at evaluation time.
type Match struct {
	Marker     domain.Marker
	DistanceKm float64
}

// Nearest scans markers for the closest one to user, optionally filtered
// by category, and returns nil for an empty candidate set. Ties go to the
// first marker in iteration order; callers must not read meaning into it.
func Nearest(markers []domain.Marker, user domain.UserLocation, category *domain.MarkerCategory) *Match {
	var best *Match
	for _, m := range markers {
		if category != nil && m.Category != *category {
			continue
		}
		d := geo.DistanceKm(user.Lat, user.Lng, m.Lat, m.Lng)
		if best == nil || d < best.DistanceKm {
			best = &Match{Marker: m, DistanceKm: d}
		}
	}
	return best
}

// BuildAlertMessage renders the proximity alert text: category, formatted
// distance, compass bearing. When user and marker coincide the bearing is
// meaningless, so the directional clause is dropped instead of emitting an
// undefined octant.
func BuildAlertMessage(m domain.Marker, distanceKm float64, user domain.UserLocation) string {
	formatted := geo.FormatDistance(geo.KmToMiles(distanceKm))

	if user.Lat == m.Lat && user.Lng == m.Lng {
		return fmt.Sprintf("%s marker detected %s away", m.Category, formatted)
	}

	bearing := geo.BearingCompass(user.Lat, user.Lng, m.Lat, m.Lng)
	return fmt.Sprintf("%s marker detected %s to the %s", m.Category, formatted, bearing)
}
