package render

import (
	"github.com/automoto/needtopee/components"
	"github.com/automoto/needtopee/fonts"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
)

var textOp = &ebiten.DrawImageOptions{}

// DrawOverlay draws the overlay lines computed by systems.UpdateOverlay.
// A line's scale is its glyph height in overlay units, where the screen is
// two units tall.
func DrawOverlay(w donburi.World, screen *ebiten.Image) {
	gameEntry, ok := components.Overlay.First(w)
	if !ok {
		return
	}
	lines := components.Overlay.Get(gameEntry).Lines
	if len(lines) == 0 {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	if width <= 0 || height <= 0 {
		return
	}
	aspect := width / height
	unit := height / 2

	face := fonts.Mono.Get()
	glyphHeight := float64(face.Metrics().Ascent.Ceil())
	if glyphHeight <= 0 {
		glyphHeight = fonts.BaseSize
	}

	for _, line := range lines {
		pos := gamemath.OverlayToScreen(line.X, line.Y, aspect, width, height)

		textOp.GeoM.Reset()
		textOp.GeoM.Scale(line.ScaleX*unit/glyphHeight, line.ScaleY*unit/glyphHeight)
		textOp.GeoM.Translate(pos[0], pos[1])
		textOp.ColorScale.Reset()
		textOp.ColorScale.ScaleWithColor(line.Color)

		text.DrawWithOptions(screen, line.Text, face, textOp)
	}
}
