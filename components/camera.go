package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the world.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// CameraData describes the perspective projection of the player camera.
type CameraData struct {
	Fovy   float64 // vertical field of view, radians
	Aspect float64
	Near   float64
	Far    float64
}

var Camera = donburi.NewComponentType[CameraData]()

// MeshData is a coloured box drawn by the renderer.
type MeshData struct {
	Name  string
	Size  mgl64.Vec3 // full extents before Transform.Scale
	Color color.RGBA
}

var Mesh = donburi.NewComponentType[MeshData]()
