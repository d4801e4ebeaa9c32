package geo

import (
	"fmt"
	"math"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using
// the Haversine formula. Symmetric, non-negative, zero iff the points
// coincide. Out-of-range coordinates are rejected instead of producing
// nonsense distances.
func DistanceKm(a, b domain.GeoPoint) (float64, error) {
	const op = "geo.DistanceKm"

	if !a.InRange() || !b.InRange() {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

// BearingDeg returns the initial bearing from a to b in degrees [0, 360).
func BearingDeg(a, b domain.GeoPoint) (float64, error) {
	const op = "geo.BearingDeg"

	if !a.InRange() || !b.InRange() {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	lat1 := deg2rad(a.Lat)
	lat2 := deg2rad(b.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	deg := rad2deg(math.Atan2(y, x))
	return math.Mod(deg+360, 360), nil
}

func deg2rad(deg float64) float64 { return deg * math.Pi / 180.0 }
func rad2deg(rad float64) float64 { return rad * 180.0 / math.Pi }
