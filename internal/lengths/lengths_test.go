package lengths

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestNewUSCustomaryNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		feet     float64
		inch     float64
		wantFeet int
		wantInch float64
	}{
		{"already normal", 12, 0, 12, 0},
		{"inches carry into feet", 0, 15, 1, 3},
		{"fractional feet become inches", 4.5, 0, 4, 6},
		{"both at once", 1.5, 13, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUSCustomary(tt.feet, tt.inch)
			if got.Feet != tt.wantFeet || !almostEqual(got.Inch, tt.wantInch) {
				t.Errorf("NewUSCustomary(%v, %v) = %v, want %d'-%v\"", tt.feet, tt.inch, got, tt.wantFeet, tt.wantInch)
			}
		})
	}
}

func TestParseUSCustomary(t *testing.T) {
	tests := []struct {
		input    string
		wantFeet int
		wantInch float64
	}{
		{`12'-3 1/2"`, 12, 3.5},
		{`15"`, 1, 3},
		{`12.375"`, 1, 0.375},
		{"12ft3 1/2in", 12, 3.5},
		{"15in", 1, 3},
		{"12.375in", 1, 0.375},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUSCustomary(tt.input)
			if err != nil {
				t.Fatalf("ParseUSCustomary(%q) returned error: %v", tt.input, err)
			}
			if got.Feet != tt.wantFeet || !almostEqual(got.Inch, tt.wantInch) {
				t.Errorf("ParseUSCustomary(%q) = %v, want %d'-%v\"", tt.input, got, tt.wantFeet, tt.wantInch)
			}
		})
	}
}

func TestParseUSCustomaryInvalid(t *testing.T) {
	for _, input := range []string{"", "12 meters", "x/y\""} {
		if _, err := ParseUSCustomary(input); err == nil {
			t.Errorf("ParseUSCustomary(%q) should fail", input)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := NewUSCustomary(12, 0).AsMetric(); !almostEqual(got.Millimeters, 3657.6) {
		t.Errorf("12ft as metric = %v, want 3657.6mm", got)
	}

	if got := NewUSCustomary(8, 9).AsFeet(); !almostEqual(got, 8.75) {
		t.Errorf("8'-9\" as feet = %v, want 8.75", got)
	}

	if got := NewUSCustomary(12, 3.5).AsInches(); !almostEqual(got, 147.5) {
		t.Errorf("12'-3.5\" as inches = %v, want 147.5", got)
	}

	got := Metric{Millimeters: 3000}.AsUSCustomary()
	if got.Feet != 9 || !almostEqual(got.Inch, 10.110236220472444) {
		t.Errorf("3000mm = %v, want 9'-10.110236220472444\"", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := NewUSCustomary(1, 6)
	b := NewUSCustomary(0, 9)

	if got := a.Add(b); got.Feet != 2 || !almostEqual(got.Inch, 3) {
		t.Errorf("1'-6\" + 9\" = %v, want 2'-3\"", got)
	}
	if got := a.Sub(b); got.Feet != 0 || !almostEqual(got.Inch, 9) {
		t.Errorf("1'-6\" - 9\" = %v, want 9\"", got)
	}
	if got := a.Scale(2); got.Feet != 3 || !almostEqual(got.Inch, 0) {
		t.Errorf("1'-6\" * 2 = %v, want 3'", got)
	}
	if got := a.Div(2); got.Feet != 0 || !almostEqual(got.Inch, 9) {
		t.Errorf("1'-6\" / 2 = %v, want 9\"", got)
	}
	if got := a.Ratio(b); !almostEqual(got, 2) {
		t.Errorf("1'-6\" / 9\" = %v, want 2", got)
	}
}

func TestComparisons(t *testing.T) {
	a := NewUSCustomary(1, 0)
	b := NewUSCustomary(0, 12)

	if !a.Equal(b) {
		t.Error("1' should equal 12\"")
	}
	if !b.Less(NewUSCustomary(0, 13)) {
		t.Error("12\" should be less than 13\"")
	}

	// A foot is 304.8mm either way around
	if !a.AsMetric().Equal(Metric{Millimeters: 304.8}) {
		t.Errorf("1' as metric = %v, want 304.8mm", a.AsMetric())
	}
}
