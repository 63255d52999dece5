// Package algebra holds small numeric utilities shared across the
// toolbox.
package algebra

import "math"

// GCD returns the greatest common divisor of two integers. The result
// is always non-negative.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two integers.
func LCM(a, b int64) int64 {
	return a * b / GCD(a, b)
}

// SRSS returns the square root of the sum of squares of its arguments.
func SRSS(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum)
}
