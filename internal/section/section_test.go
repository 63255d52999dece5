package section

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestBar(t *testing.T) {
	s := Bar(2, 0.5)

	if !almostEqual(s.Area, 1.0) {
		t.Errorf("Area = %v, want 1.0", s.Area)
	}
	if !almostEqual(s.CX[0], 0.25) || !almostEqual(s.CX[1], 0.25) {
		t.Errorf("CX = %v, want {0.25, 0.25}", s.CX)
	}
	if !almostEqual(s.CY[0], 1.0) || !almostEqual(s.CY[1], 1.0) {
		t.Errorf("CY = %v, want {1.0, 1.0}", s.CY)
	}
	if !almostEqual(s.Ixx, 1.0/3) {
		t.Errorf("Ixx = %v, want %v", s.Ixx, 1.0/3)
	}
	if !almostEqual(s.Iyy, 0.020833333333333332) {
		t.Errorf("Iyy = %v, want 0.020833333333333332", s.Iyy)
	}
}

func TestBarSectionModulus(t *testing.T) {
	s := Bar(2, 0.5)

	// Sx = Ixx / c with c = width/2 on both fibers
	sx := s.Sx()
	want := (1.0 / 3) / 1.0
	if !almostEqual(sx[0], want) || !almostEqual(sx[1], want) {
		t.Errorf("Sx = %v, want {%v, %v}", sx, want, want)
	}
}

func TestTBeam(t *testing.T) {
	s := TBeam(10, 1, 6, 1)

	// area = flange + web below it
	wantArea := 6*1 + 9*1.0
	if !almostEqual(s.Area, wantArea) {
		t.Errorf("Area = %v, want %v", s.Area, wantArea)
	}

	// Extreme fiber distances span the full depth
	if !almostEqual(s.CY[0]+s.CY[1], 10) {
		t.Errorf("CY distances %v should sum to the depth", s.CY)
	}

	// Stem side is farther from the centroid than the flange side
	if s.CY[0] <= s.CY[1] {
		t.Errorf("Centroid should sit toward the flange: CY = %v", s.CY)
	}
}

func TestAngleLegs(t *testing.T) {
	s := Angle(4, 3, 0.5)

	wantArea := (4 + 3 - 0.5) * 0.5
	if !almostEqual(s.Area, wantArea) {
		t.Errorf("Area = %v, want %v", s.Area, wantArea)
	}
	if !almostEqual(s.CX[0]+s.CX[1], 3) {
		t.Errorf("CX distances %v should sum to the short leg", s.CX)
	}
	if !almostEqual(s.CY[0]+s.CY[1], 4) {
		t.Errorf("CY distances %v should sum to the long leg", s.CY)
	}
}

func TestPipeIsOuterMinusInner(t *testing.T) {
	p := Pipe(10, 1)
	outer := Circle(5)
	inner := Circle(4)

	if !almostEqual(p.Area, outer.Area-inner.Area) {
		t.Errorf("Area = %v, want %v", p.Area, outer.Area-inner.Area)
	}
	if !almostEqual(p.Ixx, outer.Ixx-inner.Ixx) {
		t.Errorf("Ixx = %v, want %v", p.Ixx, outer.Ixx-inner.Ixx)
	}
	if !almostEqual(p.CX[0], 5) {
		t.Errorf("CX = %v, want the outer radius", p.CX)
	}
}

func TestIBeamEqualFlangeSymmetry(t *testing.T) {
	s := IBeamEqualFlange(12, 0.5, 6, 0.75)

	if !almostEqual(s.CY[0], 6) || !almostEqual(s.CY[1], 6) {
		t.Errorf("Equal-flange I beam centroid should be at mid-depth: CY = %v", s.CY)
	}

	sx := s.Sx()
	if !almostEqual(sx[0], sx[1]) {
		t.Errorf("Equal-flange I beam should have equal section moduli: Sx = %v", sx)
	}
}

func TestParallelAxisRectangle(t *testing.T) {
	// A single slice is a rectangle; Ixx must match b*h^3/12
	s, iDatum := ParallelAxis([]float64{2}, []float64{4}, 0)

	if !almostEqual(s.Area, 8) {
		t.Errorf("Area = %v, want 8", s.Area)
	}
	if !almostEqual(s.CY[0], 2) || !almostEqual(s.CY[1], 2) {
		t.Errorf("CY = %v, want {2, 2}", s.CY)
	}
	if !almostEqual(s.Ixx, 2*math.Pow(4, 3)/12) {
		t.Errorf("Ixx = %v, want %v", s.Ixx, 2*math.Pow(4, 3)/12)
	}
	if !almostEqual(iDatum, 2*math.Pow(4, 3)/3) {
		t.Errorf("Datum moment = %v, want %v", iDatum, 2*math.Pow(4, 3)/3)
	}
}
