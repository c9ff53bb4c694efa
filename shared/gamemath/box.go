package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WithinBox reports whether every axis of a-b is within r (inclusive).
// This is the Chebyshev distance test used for all gameplay triggers.
func WithinBox(a, b mgl64.Vec3, r float64) bool {
	return math.Abs(a[0]-b[0]) <= r &&
		math.Abs(a[1]-b[1]) <= r &&
		math.Abs(a[2]-b[2]) <= r
}
