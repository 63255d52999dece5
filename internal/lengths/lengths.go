// Package lengths models lengths in US customary (feet and inches) and
// metric (millimeters) units, with parsing of common drawing notations
// like 12'-3 1/2" and 12ft3 1/2in.
package lengths

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const millimetersPerInch = 25.4

// USCustomary is a length in feet and inches. Values are normalized so
// fractional feet roll into inches and inches 12 and over roll into
// feet.
type USCustomary struct {
	Feet int
	Inch float64
}

// NewUSCustomary builds a normalized length from possibly fractional
// feet and unbounded inches.
func NewUSCustomary(feet, inch float64) USCustomary {
	wholeFeet := math.Floor(feet)
	inch += (feet - wholeFeet) * 12

	carry := math.Floor(inch / 12)
	inch -= carry * 12

	return USCustomary{Feet: int(wholeFeet + carry), Inch: inch}
}

var (
	symbolNotation = regexp.MustCompile(`(?:(.*)')?-?(.*)"`)
	unitNotation   = regexp.MustCompile(`(?:(.*)ft)?-?(.*)in`)
)

// ParseUSCustomary converts a string notation to a length. The string
// should be in the format x'-y" or xft-yin; inches can be decimal or a
// fraction like 3 1/2.
func ParseUSCustomary(val string) (USCustomary, error) {
	match := symbolNotation.FindStringSubmatch(val)
	if match == nil {
		match = unitNotation.FindStringSubmatch(val)
	}
	if match == nil {
		return USCustomary{}, fmt.Errorf("could not parse length from %q", val)
	}

	feet := 0
	if match[1] != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(match[1]))
		if err != nil {
			return USCustomary{}, fmt.Errorf("invalid feet in %q: %w", val, err)
		}
		feet = parsed
	}

	inch, err := parseInches(match[2])
	if err != nil {
		return USCustomary{}, fmt.Errorf("invalid inches in %q: %w", val, err)
	}

	return NewUSCustomary(float64(feet), inch), nil
}

// parseInches handles decimal inches and whole-plus-fraction inches
// like "3 1/2".
func parseInches(val string) (float64, error) {
	fields := strings.Fields(val)
	if len(fields) == 0 {
		return 0, nil
	}

	inch, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}

	if len(fields) > 1 {
		num, den, ok := strings.Cut(fields[1], "/")
		if !ok {
			return 0, fmt.Errorf("invalid fraction %q", fields[1])
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("zero denominator in %q", fields[1])
		}
		inch += n / d
	}

	return inch, nil
}

// AsMetric converts to millimeters.
func (u USCustomary) AsMetric() Metric {
	return Metric{Millimeters: u.AsInches() * millimetersPerInch}
}

// AsFeet returns the length in decimal feet.
func (u USCustomary) AsFeet() float64 {
	return float64(u.Feet) + u.Inch/12
}

// AsInches returns the length in inches.
func (u USCustomary) AsInches() float64 {
	return float64(u.Feet)*12 + u.Inch
}

// Add returns the sum of two lengths.
func (u USCustomary) Add(other USCustomary) USCustomary {
	return NewUSCustomary(0, u.AsInches()+other.AsInches())
}

// Sub returns the difference of two lengths.
func (u USCustomary) Sub(other USCustomary) USCustomary {
	return NewUSCustomary(0, u.AsInches()-other.AsInches())
}

// Scale multiplies the length by a scalar.
func (u USCustomary) Scale(factor float64) USCustomary {
	return NewUSCustomary(0, u.AsInches()*factor)
}

// Div divides the length by a scalar.
func (u USCustomary) Div(divisor float64) USCustomary {
	return NewUSCustomary(0, u.AsInches()/divisor)
}

// Ratio returns the dimensionless ratio of two lengths.
func (u USCustomary) Ratio(other USCustomary) float64 {
	return u.AsInches() / other.AsInches()
}

// Equal reports whether two lengths are the same distance.
func (u USCustomary) Equal(other USCustomary) bool {
	return u.AsInches() == other.AsInches()
}

// Less reports whether u is shorter than other.
func (u USCustomary) Less(other USCustomary) bool {
	return u.AsInches() < other.AsInches()
}

func (u USCustomary) String() string {
	return fmt.Sprintf(`%d'-%s"`, u.Feet, strconv.FormatFloat(u.Inch, 'f', -1, 64))
}

// Metric is a length in millimeters.
type Metric struct {
	Millimeters float64
}

// AsUSCustomary converts to feet and inches.
func (m Metric) AsUSCustomary() USCustomary {
	return NewUSCustomary(0, m.Millimeters/millimetersPerInch)
}

// Add returns the sum of two lengths.
func (m Metric) Add(other Metric) Metric {
	return Metric{Millimeters: m.Millimeters + other.Millimeters}
}

// Sub returns the difference of two lengths.
func (m Metric) Sub(other Metric) Metric {
	return Metric{Millimeters: m.Millimeters - other.Millimeters}
}

// Scale multiplies the length by a scalar.
func (m Metric) Scale(factor float64) Metric {
	return Metric{Millimeters: m.Millimeters * factor}
}

// Equal reports whether two lengths are the same distance.
func (m Metric) Equal(other Metric) bool {
	return m.Millimeters == other.Millimeters
}

func (m Metric) String() string {
	return strconv.FormatFloat(m.Millimeters, 'f', -1, 64) + "mm"
}
