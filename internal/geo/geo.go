package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// earthRadiusKm is the Earth's volumetric mean radius in kilometers, the
// conventional value for haversine great-circle calculations.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance in kilometers between two
// WGS84 coordinate pairs, rounded to two decimal places.
//
// The function never validates its inputs; NaN coordinates propagate into a
// NaN result and must be rejected by the caller beforehand.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	d := p1.Distance(p2).Radians() * earthRadiusKm
	return math.Round(d*100) / 100
}

// IsValidLatLng reports whether lat and lng form a usable WGS84 coordinate.
func IsValidLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
