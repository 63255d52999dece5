package algebra

import (
	"math"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 6},
		{48, -18, 6},
		{17, 19, 1},
		{0, -7, 7},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 144},
		{3, 5, 15},
		{7, 7, 7},
	}

	for _, tt := range tests {
		if got := LCM(tt.a, tt.b); got != tt.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSRSS(t *testing.T) {
	if got := SRSS(0, 1, 2, 3, 4); math.Abs(got-5.477225575051661) > 1e-12 {
		t.Errorf("SRSS(0..4) = %v, want 5.477225575051661", got)
	}
	if got := SRSS(8.3, 7.25); math.Abs(got-11.020548988140291) > 1e-12 {
		t.Errorf("SRSS(8.3, 7.25) = %v, want 11.020548988140291", got)
	}
	if got := SRSS(); got != 0 {
		t.Errorf("SRSS() = %v, want 0", got)
	}
}
