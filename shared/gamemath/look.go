package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// LookRotation builds a camera rotation from yaw around world Z followed by
// pitch around the camera's X axis. Pitch 0 looks straight down, pi/2 looks at
// the horizon.
func LookRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, axisZ).Mul(mgl64.QuatRotate(pitch, axisX))
}

// YawPitch recovers the LookRotation angles of a roll-free camera rotation.
func YawPitch(rotation mgl64.Quat) (yaw, pitch float64) {
	right := Right(rotation)
	forward := Forward(rotation)
	yaw = math.Atan2(right[1], right[0])
	pitch = math.Acos(Clamp(-forward[2], -1, 1))
	return yaw, pitch
}

// Right is the camera's local +X axis in world space.
func Right(rotation mgl64.Quat) mgl64.Vec3 {
	return rotation.Rotate(axisX)
}

// Forward is the camera's viewing direction (local -Z) in world space.
func Forward(rotation mgl64.Quat) mgl64.Vec3 {
	return rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// FacingRotation turns an object at from around Z so its +X axis points at to.
// ok is false when the two points are too close on the horizontal plane.
func FacingRotation(from, to mgl64.Vec3, epsilon float64) (rot mgl64.Quat, ok bool) {
	dir := to.Sub(from)
	dir[2] = 0
	if dir.Len() <= epsilon {
		return mgl64.QuatIdent(), false
	}
	dir = dir.Normalize()
	return mgl64.QuatRotate(math.Atan2(dir[1], dir[0]), axisZ), true
}
