package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
	}{
		{"same point", 12.9716, 77.5946, 12.9716, 77.5946, 0},
		{"adjacent bins", 12.9716, 77.5946, 12.9716, 77.5947, 0.01},
		{"across town", 12.9716, 77.5946, 12.9720, 77.5950, 0.06},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	d1 := DistanceKm(12.9716, 77.5946, 13.1, 77.7)
	d2 := DistanceKm(13.1, 77.7, 12.9716, 77.5946)
	if d1 != d2 {
		t.Fatalf("asymmetric: %v != %v", d1, d2)
	}
	if d1 < 5 || d1 > 30 {
		t.Fatalf("implausible distance: %v", d1)
	}
}

func TestDistanceKmDeterministic(t *testing.T) {
	first := DistanceKm(12.9716, 77.5946, 12.9725, 77.5955)
	for i := 0; i < 100; i++ {
		if got := DistanceKm(12.9716, 77.5946, 12.9725, 77.5955); got != first {
			t.Fatalf("non-deterministic result: %v != %v", got, first)
		}
	}
}

func TestDistanceKmRoundedToTwoDecimals(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 12.9717, 77.5948},
		{0, 0, 51.5074, -0.1278},
		{-33.8688, 151.2093, 35.6762, 139.6503},
	}
	for _, p := range pairs {
		d := DistanceKm(p[0], p[1], p[2], p[3])
		scaled := d * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("distance %v not rounded to two decimals", d)
		}
	}
}

func TestIsValidLatLng(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"bangalore", 12.9716, 77.5946, true},
		{"lat max", 90, 180, true},
		{"lat min", -90, -180, true},
		{"lat too high", 90.01, 0, false},
		{"lat too low", -90.01, 0, false},
		{"lng too high", 0, 180.01, false},
		{"lng too low", 0, -180.01, false},
		{"nan lat", math.NaN(), 0, false},
		{"nan lng", 0, math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidLatLng(tt.lat, tt.lng); got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}
