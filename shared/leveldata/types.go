// Package leveldata loads the play scene from a Tiled TMX file.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Object group names recognised in the scene file.
const (
	GroupCameras    = "Cameras"
	GroupGoal       = "Goal"
	GroupProps      = "Props"
	GroupAntagonist = "Antagonist"
)

// SceneData holds everything the play scene needs from the level file.
// Positions are world units: x right, y forward, z up, origin at the map centre.
type SceneData struct {
	Camera     CameraSpawn
	Goal       []Prop // meshes drawn at the goal
	Props      []Prop
	Antagonist AntagonistSpawn
	MapWidth   int
	MapHeight  int
}

// CameraSpawn is the player's initial camera pose.
type CameraSpawn struct {
	Position mgl64.Vec3
	Yaw      float64 // radians around +Z
	Pitch    float64 // radians from straight down
	Fovy     float64 // radians
}

// Prop is a static box mesh.
type Prop struct {
	Name     string
	Position mgl64.Vec3 // box centre
	Size     mgl64.Vec3 // full extents
	Color    color.RGBA
}

// AntagonistSpawn describes the antagonist's mesh.
type AntagonistSpawn struct {
	Size  mgl64.Vec3
	Scale mgl64.Vec3
	Color color.RGBA
}
