// Package spatial computes positional stereo gains and applies them to PCM streams.
package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Listener is the ear: a position and the direction of the right ear.
type Listener struct {
	Position mgl64.Vec3
	Right    mgl64.Vec3
}

// Gains are per-channel linear amplitudes.
type Gains struct {
	Left, Right float64
}

// Attenuation returns the distance falloff for a source with the given
// half-volume radius: 1 at the source, 0.5 at the radius. An infinite radius
// disables falloff.
func Attenuation(distance, halfVolumeRadius float64) float64 {
	if math.IsInf(halfVolumeRadius, 1) {
		return 1
	}
	if halfVolumeRadius <= 0 {
		return 0
	}
	return halfVolumeRadius / (halfVolumeRadius + distance)
}

// Mix returns the stereo gains of a source at pos heard by l.
// Panning is equal-power across the listener's right axis.
func Mix(l Listener, pos mgl64.Vec3, volume, halfVolumeRadius float64) Gains {
	dir := pos.Sub(l.Position)
	dist := dir.Len()
	amp := volume * Attenuation(dist, halfVolumeRadius)

	pan := 0.0
	if dist > mgl64.Epsilon && l.Right.Len() > mgl64.Epsilon {
		pan = l.Right.Normalize().Dot(dir.Mul(1 / dist))
	}
	angle := (pan + 1) * math.Pi / 4
	return Gains{
		Left:  amp * math.Cos(angle),
		Right: amp * math.Sin(angle),
	}
}
