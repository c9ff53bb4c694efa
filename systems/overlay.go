package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateOverlay rebuilds the on-screen text for the current phase. Every line
// is emitted twice, a shadow pass then a text pass nudged by two pixels.
func UpdateOverlay(w donburi.World, aspect float64, screenHeight int) {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return
	}
	game := components.Game.Get(gameEntry)
	overlay := components.Overlay.Get(gameEntry)
	overlay.Lines = overlay.Lines[:0]

	if screenHeight <= 0 {
		screenHeight = 1
	}
	ofs := 2.0 / float64(screenHeight)
	h := cfg.Overlay.SmallHeight
	h2 := cfg.Overlay.LargeHeight

	switch game.Phase {
	case cfg.PhaseIntro:
		overlay.AddOutlined(cfg.Overlay.HelpText, -aspect+0.1*h, -1+0.1*h, h, h, ofs)
		overlay.AddOutlined(cfg.Overlay.Title, -aspect/4, -aspect/4, h2, h2, ofs)

	case cfg.PhasePlaying:
		timer := strconv.Itoa(gamemath.CeilSeconds(game.SurviveTimer))
		overlay.AddOutlined(timer, -aspect/5, -aspect/4, 2*h2, h2, ofs)

	case cfg.PhaseEnded:
		overlay.AddOutlined(cfg.Overlay.LossText, -aspect/5, -aspect/4, 2*h2, h2, ofs)
		record := components.Record.Get(gameEntry)
		line := fmt.Sprintf(cfg.Overlay.RecordText, record.Flushes, record.Best)
		overlay.AddOutlined(line, -aspect/5, -aspect/4-1.5*h, h, h, ofs)
	}
}
