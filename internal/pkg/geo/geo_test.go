package geo

import (
	"math"
	"testing"
)

var (
	jakarta  = Point{Latitude: -6.2088, Longitude: 106.8456}
	surabaya = Point{Latitude: -7.2575, Longitude: 112.7521}
)

func TestDistanceSamePointIsZero(t *testing.T) {
	if d := Distance(jakarta, jakarta); d != 0 {
		t.Errorf("Distance(p, p) = %f, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	ab := Distance(jakarta, surabaya)
	ba := Distance(surabaya, jakarta)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("Distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Jakarta to Surabaya is roughly 663 km.
	d := Distance(jakarta, surabaya)
	if d < 650000 || d > 680000 {
		t.Errorf("Distance(jakarta, surabaya) = %f m, want ~663 km", d)
	}
}

func TestWithinGeofence(t *testing.T) {
	office := Point{Latitude: -6.2088, Longitude: 106.8456}
	// ~78 m north of the office.
	near := Point{Latitude: -6.2081, Longitude: 106.8456}
	// ~1.1 km away.
	far := Point{Latitude: -6.2188, Longitude: 106.8456}

	if !WithinGeofence(near, office, DefaultGeofenceRadiusMeters) {
		t.Error("expected near point inside 100 m geofence")
	}
	if WithinGeofence(far, office, DefaultGeofenceRadiusMeters) {
		t.Error("expected far point outside 100 m geofence")
	}
	if !WithinGeofence(office, office, DefaultGeofenceRadiusMeters) {
		t.Error("expected office itself inside its own geofence")
	}
}

func TestIsAccurate(t *testing.T) {
	good := 5.0
	bad := 25.0

	cases := []struct {
		name     string
		accuracy *float64
		want     bool
	}{
		{"missing accuracy trusted", nil, true},
		{"within threshold", &good, true},
		{"beyond threshold", &bad, false},
	}
	for _, c := range cases {
		loc := Location{Accuracy: c.accuracy}
		if got := IsAccurate(loc, DefaultRequiredAccuracyMeters); got != c.want {
			t.Errorf("%s: IsAccurate = %v, want %v", c.name, got, c.want)
		}
	}
}
