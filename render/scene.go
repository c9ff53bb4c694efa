// Package render draws the play scene as wireframe boxes and the text overlay.
package render

import (
	"image/color"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/automoto/needtopee/systems"
	"github.com/automoto/needtopee/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var meshes = donburi.NewQuery(filter.Contains(components.Transform, components.Mesh))

// DrawScene clears the screen and draws the floor grid and every mesh from the
// player's camera. The camera aspect follows the screen size.
func DrawScene(w donburi.World, screen *ebiten.Image) {
	screen.Fill(cfg.Render.ClearColor)

	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	if width <= 0 || height <= 0 {
		return
	}

	camera := components.Camera.Get(player)
	camera.Aspect = width / height
	eye := components.Transform.Get(player)
	vp := gamemath.ViewProjection(eye.Position, eye.Rotation, camera.Fovy, camera.Aspect, camera.Near, camera.Far)

	l := lineDrawer{screen: screen, vp: vp, width: width, height: height}

	drawGrid(&l)

	meshes.Each(w, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		mesh := components.Mesh.Get(e)
		size := mgl64.Vec3{
			mesh.Size[0] * tr.Scale[0],
			mesh.Size[1] * tr.Scale[1],
			mesh.Size[2] * tr.Scale[2],
		}
		// Anything entirely under the floor is hidden
		if tr.Position[2]+size[2]/2 < 0 {
			return
		}
		l.box(tr.Position, size, tr.Rotation, mesh.Color)
	})

	if cfg.Debug.ShowTriggers {
		drawTriggers(w, &l)
	}
}

func drawGrid(l *lineDrawer) {
	extent := cfg.Render.GridExtent
	for v := -extent; v <= extent; v += cfg.Render.GridSpacing {
		l.line(mgl64.Vec3{v, -extent, 0}, mgl64.Vec3{v, extent, 0}, cfg.Render.GridColor)
		l.line(mgl64.Vec3{-extent, v, 0}, mgl64.Vec3{extent, v, 0}, cfg.Render.GridColor)
	}
}

func drawTriggers(w donburi.World, l *lineDrawer) {
	goal := 2 * cfg.Gameplay.GoalRadius
	l.box(systems.GoalPoint, mgl64.Vec3{goal, goal, goal}, mgl64.QuatIdent(), cfg.Render.DebugBoxColor)

	if antagonist, ok := tags.Antagonist.First(w); ok {
		r := 2 * cfg.Gameplay.AntagonistRadius
		anchor := components.Antagonist.Get(antagonist).Anchor
		l.box(anchor, mgl64.Vec3{r, r, r}, mgl64.QuatIdent(), cfg.Render.DebugBoxColor)
	}
}

type lineDrawer struct {
	screen        *ebiten.Image
	vp            mgl64.Mat4
	width, height float64
}

func (l *lineDrawer) line(a, b mgl64.Vec3, c color.Color) {
	p0, p1, ok := gamemath.ProjectSegment(l.vp, a, b, l.width, l.height)
	if !ok {
		return
	}
	vector.StrokeLine(l.screen,
		float32(p0[0]), float32(p0[1]), float32(p1[0]), float32(p1[1]),
		cfg.Render.LineWidth, c, true)
}

func (l *lineDrawer) box(center, size mgl64.Vec3, rotation mgl64.Quat, c color.Color) {
	corners := gamemath.BoxCorners(center, size, rotation)
	for _, e := range gamemath.BoxEdges {
		l.line(corners[e[0]], corners[e[1]], c)
	}
}
