package geo

import (
	"fmt"
	"math"
)

const (
	earthRadiusKm = 6371.0
	metersPerMile = 1609.34
	kmPerMile     = 1.60934
	feetPerMile   = 5280
)

// compassOctants has nine entries: round(bearing/45) for a bearing near
// 360 yields index 8, which wraps back to N.
var compassOctants = [9]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW", "N"}

// DistanceKm returns the haversine great-circle distance in kilometers.
// Malformed numeric input (NaN) propagates as NaN; callers validate
// coordinates before calling.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// BearingDegrees returns the initial bearing from point 1 to point 2,
// normalized to [0, 360).
func BearingDegrees(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := deg2rad(lat1)
	phi2 := deg2rad(lat2)
	dLng := deg2rad(lng2 - lng1)

	y := math.Sin(dLng) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLng)

	return math.Mod(rad2deg(math.Atan2(y, x))+360, 360)
}

// BearingCompass reduces the initial bearing to one of 8 octants.
func BearingCompass(lat1, lng1, lat2, lng2 float64) string {
	angle := BearingDegrees(lat1, lng1, lat2, lng2)
	return compassOctants[int(math.Round(angle/45))]
}

func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

func MilesToKm(miles float64) float64 {
	return miles * kmPerMile
}

func KmToMiles(km float64) float64 {
	return km / kmPerMile
}

// FormatDistance renders a distance in miles for display: below 0.1 miles
// it switches to whole feet, otherwise one decimal place of miles. The
// threshold and precision are relied on by alert-message consumers.
func FormatDistance(miles float64) string {
	if miles < 0.1 {
		return fmt.Sprintf("%d feet", int(math.Round(miles*feetPerMile)))
	}
	return fmt.Sprintf("%.1f miles", miles)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func rad2deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
