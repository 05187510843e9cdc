// Package geo computes great-circle distance and initial bearing between
// GPS coordinates. All functions are pure.
package geo

import (
	"math"

	"microbot/internal/core/model"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between a and b using
// the haversine formula. Distance(a, b) == Distance(b, a) and Distance(a, a) == 0.
func Distance(a, b model.GeoPosition) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLat := radians(b.Latitude - a.Latitude)
	deltaLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Bearing returns the initial compass bearing in degrees [0, 360) from a toward b
// along the great-circle path, 0 = north. For coincident points the bearing is
// mathematically undefined; this implementation returns 0 in that case, and the
// mission executor keeps the robot's previous heading instead.
func Bearing(a, b model.GeoPosition) float64 {
	if a.SamePoint(b) {
		return 0
	}

	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLon := radians(b.Longitude - a.Longitude)

	x := math.Sin(deltaLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	deg := degrees(math.Atan2(x, y))
	return math.Mod(deg+360, 360)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
