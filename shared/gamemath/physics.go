// Package gamemath holds the pure 3D math shared by the gameplay systems.
// It has no dependencies on ebitengine or donburi.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// MoveIntent combines four held directions into a planar intent vector.
// Opposite directions cancel; the result is either zero or unit length.
func MoveIntent(left, right, back, forward bool) mgl64.Vec2 {
	var move mgl64.Vec2
	if left && !right {
		move[0] = -1
	}
	if !left && right {
		move[0] = 1
	}
	if back && !forward {
		move[1] = -1
	}
	if !back && forward {
		move[1] = 1
	}
	if move[0] != 0 || move[1] != 0 {
		move = move.Normalize()
	}
	return move
}

// Flatten projects v onto the horizontal plane and normalizes it.
// ok is false when the projection is too short to normalize.
func Flatten(v mgl64.Vec3) (flat mgl64.Vec3, ok bool) {
	flat = mgl64.Vec3{v[0], v[1], 0}
	if flat.Len() < mgl64.Epsilon {
		return mgl64.Vec3{}, false
	}
	return flat.Normalize(), true
}

// PlanarDisplacement converts a camera-local (right, forward) step into a world
// space displacement on the horizontal plane.
func PlanarDisplacement(rotation mgl64.Quat, step mgl64.Vec2) mgl64.Vec3 {
	var d mgl64.Vec3
	if right, ok := Flatten(Right(rotation)); ok {
		d = d.Add(right.Mul(step[0]))
	}
	if forward, ok := Flatten(Forward(rotation)); ok {
		d = d.Add(forward.Mul(step[1]))
	}
	return d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
