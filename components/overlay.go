package components

import (
	"image/color"

	cfg "github.com/automoto/needtopee/config"
	"github.com/yohamta/donburi"
)

// OverlayLine is one pass of screen text. Coordinates are in the overlay
// space: x in [-aspect, aspect], y in [-1, 1] pointing up, and the scale is the
// glyph height (and width) in the same units.
type OverlayLine struct {
	Text   string
	X, Y   float64
	ScaleX float64
	ScaleY float64
	Color  color.RGBA
}

// OverlayData holds the lines to draw this frame (singleton component).
type OverlayData struct {
	Lines []OverlayLine
}

var Overlay = donburi.NewComponentType[OverlayData]()

// AddOutlined appends a shadow pass at (x, y) and a text pass offset by ofs on both axes.
func (o *OverlayData) AddOutlined(text string, x, y, scaleX, scaleY, ofs float64) {
	o.Lines = append(o.Lines,
		OverlayLine{Text: text, X: x, Y: y, ScaleX: scaleX, ScaleY: scaleY, Color: cfg.Overlay.ShadowColor},
		OverlayLine{Text: text, X: x + ofs, Y: y + ofs, ScaleX: scaleX, ScaleY: scaleY, Color: cfg.Overlay.TextColor},
	)
}
