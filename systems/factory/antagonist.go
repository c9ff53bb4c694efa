package factory

import (
	"github.com/automoto/needtopee/archetypes"
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateAntagonist spawns the antagonist hidden below anchor with its looped
// theme playing at anchor.
func CreateAntagonist(w donburi.World, spawn leveldata.AntagonistSpawn, anchor mgl64.Vec3) *donburi.Entry {
	antagonist := archetypes.Antagonist.Spawn(w)

	components.Antagonist.SetValue(antagonist, components.AntagonistData{
		Anchor: anchor,
	})
	components.Transform.SetValue(antagonist, components.TransformData{
		Position: anchor.Sub(mgl64.Vec3{0, 0, cfg.Gameplay.HideDepth}),
		Rotation: mgl64.QuatIdent(),
		Scale:    spawn.Scale,
	})
	components.Mesh.SetValue(antagonist, components.MeshData{
		Name:  "antagonist",
		Size:  spawn.Size,
		Color: spawn.Color,
	})
	components.SoundSource.SetValue(antagonist, components.SoundSourceData{
		Sound:            cfg.SoundAntagonistTheme,
		Position:         anchor,
		Volume:           cfg.Sound.Volumes[cfg.SoundAntagonistTheme],
		HalfVolumeRadius: cfg.Sound.HalfVolumeRadius[cfg.SoundAntagonistTheme],
		Loop:             true,
	})

	return antagonist
}
