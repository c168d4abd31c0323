package geo

import "math"

const (
	// DefaultGeofenceRadiusMeters is the office check-in radius used when a
	// work location has no radius of its own.
	DefaultGeofenceRadiusMeters = 100

	// DefaultRequiredAccuracyMeters is the maximum GPS accuracy accepted for
	// a check-in location by default.
	DefaultRequiredAccuracyMeters = 10

	earthRadiusMeters = 6371000
)

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a reported device position. Accuracy is the GPS accuracy
// radius in meters; nil when the device did not report one.
type Location struct {
	Point
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// Distance returns the great-circle (haversine) distance between two points
// in meters.
func Distance(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// WithinGeofence reports whether the user position is inside the circular
// geofence of radiusMeters around the office point.
func WithinGeofence(user, office Point, radiusMeters float64) bool {
	return Distance(user, office) <= radiusMeters
}

// IsAccurate reports whether the location's GPS accuracy is acceptable.
// A missing accuracy reading is treated as trustworthy.
func IsAccurate(loc Location, requiredAccuracyMeters float64) bool {
	if loc.Accuracy == nil {
		return true
	}
	return *loc.Accuracy <= requiredAccuracyMeters
}
