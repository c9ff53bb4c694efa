package systems

import (
	"math"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
)

// applyMotion turns relative mouse motion into yaw and pitch. Motion is
// normalised by the window height and scaled by the camera's vertical fov.
func applyMotion(look *components.LookData, transform *components.TransformData, camera *components.CameraData, xrel, yrel float64, windowHeight int) {
	h := float64(windowHeight)
	if h <= 0 {
		h = 1
	}
	mx := xrel / h
	my := -yrel / h
	sensitivity := camera.Fovy * cfg.Look.SensitivityScale

	look.Yaw = math.Remainder(look.Yaw-mx*sensitivity, 2*math.Pi)
	look.Pitch = gamemath.Clamp(look.Pitch+my*sensitivity, cfg.Look.MinPitch, cfg.Look.MaxPitch)

	transform.Rotation = gamemath.LookRotation(look.Yaw, look.Pitch)
}
