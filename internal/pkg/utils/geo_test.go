package utils

import (
	"math"
	"testing"
)

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	if d := HaversineDistance(17.3850, 78.4867, 17.3850, 78.4867); d != 0 {
		t.Errorf("distance for identical points = %v, want 0", d)
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	a := HaversineDistance(17.3850, 78.4867, 12.9716, 77.5946)
	b := HaversineDistance(12.9716, 77.5946, 17.3850, 78.4867)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestHaversineDistanceKnownValues(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{
			// 0.002 degrees of latitude is roughly 222 m.
			name: "two blocks north",
			lat1: 17.0000, lng1: 78.0000,
			lat2: 17.0020, lng2: 78.0000,
			want: 222, tolerance: 2,
		},
		{
			name: "hyderabad to bangalore",
			lat1: 17.3850, lng1: 78.4867,
			lat2: 12.9716, lng2: 77.5946,
			want: 497000, tolerance: 5000,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HaversineDistance(c.lat1, c.lng1, c.lat2, c.lng2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("distance = %v, want %v ± %v", got, c.want, c.tolerance)
			}
		})
	}
}
