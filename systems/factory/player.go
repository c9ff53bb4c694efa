package factory

import (
	"github.com/automoto/needtopee/archetypes"
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/automoto/needtopee/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the first-person camera. The look state is derived once
// from the camera's initial orientation.
func CreatePlayer(w donburi.World, spawn leveldata.CameraSpawn) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	rotation := gamemath.LookRotation(spawn.Yaw, spawn.Pitch)
	yaw, pitch := gamemath.YawPitch(rotation)
	pitch = gamemath.Clamp(pitch, cfg.Look.MinPitch, cfg.Look.MaxPitch)

	components.Transform.SetValue(player, components.TransformData{
		Position: spawn.Position,
		Rotation: gamemath.LookRotation(yaw, pitch),
		Scale:    mgl64.Vec3{1, 1, 1},
	})
	components.Camera.SetValue(player, components.CameraData{
		Fovy:   spawn.Fovy,
		Aspect: float64(cfg.C.Width) / float64(cfg.C.Height),
		Near:   cfg.Render.Near,
		Far:    cfg.Render.Far,
	})
	components.Look.SetValue(player, components.LookData{
		Yaw:   yaw,
		Pitch: pitch,
	})

	return player
}
