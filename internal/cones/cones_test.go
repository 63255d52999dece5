package cones

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestDistance(t *testing.T) {
	got := Distance(60, 15, 20, 7, 127, 30)
	want := 46.503239630149544
	if !almostEqual(got, want) {
		t.Errorf("Distance(60, 15, 20, 7, 127, 30) = %v, want %v", got, want)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	forward := Distance(60, 15, 20, 7, 127, 30)
	backward := Distance(20, 7, 60, 15, 127, 30)
	if !almostEqual(forward, backward) {
		t.Errorf("Distance should be symmetric: %v != %v", forward, backward)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name                   string
		largeEnd, smallEnd, length float64
		want                   float64
	}{
		{"reference cone", 30, 20, 8.66, 30.000727780827372},
		{"cylinder has no taper", 20, 20, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angle(tt.largeEnd, tt.smallEnd, tt.length)
			if !almostEqual(got, tt.want) {
				t.Errorf("Angle(%v, %v, %v) = %v, want %v", tt.largeEnd, tt.smallEnd, tt.length, got, tt.want)
			}
		})
	}
}

func TestRadiusAt(t *testing.T) {
	got := RadiusAt(174, 30, 58)
	want := 53.51368438700171
	if !almostEqual(got, want) {
		t.Errorf("RadiusAt(174, 30, 58) = %v, want %v", got, want)
	}

	// At the large end the radius is half the diameter
	if got := RadiusAt(174, 30, 0); !almostEqual(got, 87) {
		t.Errorf("RadiusAt(174, 30, 0) = %v, want 87", got)
	}
}

func TestHeight(t *testing.T) {
	got := Height(228, 38, 30)
	want := 164.54482671904336
	if !almostEqual(got, want) {
		t.Errorf("Height(228, 38, 30) = %v, want %v", got, want)
	}

	// Swapping the end diameters must not change the height
	if got := Height(38, 228, 30); !almostEqual(got, want) {
		t.Errorf("Height(38, 228, 30) = %v, want %v", got, want)
	}
}
