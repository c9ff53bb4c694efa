package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/needtopee/archetypes"
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/automoto/needtopee/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateProp spawns a static box mesh. Goal meshes are tagged so the debug
// view can find them.
func CreateProp(w donburi.World, p leveldata.Prop, goal bool) *donburi.Entry {
	a := archetypes.Prop
	if goal {
		a = archetypes.Goal
	}
	prop := a.Spawn(w)

	components.Transform.SetValue(prop, components.TransformData{
		Position: p.Position,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	})
	components.Mesh.SetValue(prop, components.MeshData{
		Name:  p.Name,
		Size:  p.Size,
		Color: p.Color,
	})
	return prop
}

// CreateLevel populates w from scene. The antagonist starts between the goal
// and the player, placed the same way as after every flush.
func CreateLevel(w donburi.World, scene *leveldata.SceneData, seed int64, best int) {
	rng := NewRand(seed)
	CreateGame(w, rng, best)
	player := CreatePlayer(w, scene.Camera)

	for _, p := range scene.Goal {
		CreateProp(w, p, true)
	}
	for _, p := range scene.Props {
		CreateProp(w, p, false)
	}

	start := components.Transform.Get(player).Position
	anchor := gamemath.AnchorBetween(rng, start, cfg.Gameplay.AntagonistMargin, cfg.Gameplay.AntagonistJitter, cfg.Gameplay.CameraHeight)
	CreateAntagonist(w, scene.Antagonist, anchor)

	logging.Logger.Debug().
		Floats64("player", start[:]).
		Floats64("antagonist", anchor[:]).
		Int("props", len(scene.Props)+len(scene.Goal)).
		Msg("level created")
}

// LoadLevel reads the scene at path from fsys and populates w.
func LoadLevel(w donburi.World, fsys fs.FS, path string, seed int64, best int) error {
	scene, err := leveldata.LoadScene(fsys, path)
	if err != nil {
		return fmt.Errorf("create level: %w", err)
	}
	CreateLevel(w, scene, seed, best)
	return nil
}
