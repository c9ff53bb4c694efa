package systems

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/yohamta/donburi"
)

// WantsRestart reports whether the host should start a new play: the game has
// ended and a restart key went unconsumed this frame.
func WantsRestart(w donburi.World, unhandled []components.Event) bool {
	if CurrentPhase(w) != cfg.PhaseEnded {
		return false
	}
	for _, evt := range unhandled {
		if evt.Type == components.EventKeyDown && evt.Action == cfg.ActionRestart {
			return true
		}
	}
	return false
}

// PendingRecord returns the best run when it changed since the last call.
func PendingRecord(w donburi.World) (best int, ok bool) {
	entry, found := components.Record.First(w)
	if !found {
		return 0, false
	}
	record := components.Record.Get(entry)
	if !record.Dirty {
		return 0, false
	}
	record.Dirty = false
	return record.Best, true
}
