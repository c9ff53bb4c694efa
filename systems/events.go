package systems

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/tags"
	"github.com/yohamta/donburi"
)

// HandleEvents feeds every queued event to HandleEvent, empties the queue and
// returns the events nobody consumed, for the host to act on.
// Must run BEFORE UpdateGame in the system order.
func HandleEvents(w donburi.World, windowHeight int) []components.Event {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return nil
	}
	queue := components.EventQueue.Get(gameEntry)
	var unhandled []components.Event
	for _, evt := range queue.Events {
		if !HandleEvent(w, evt, windowHeight) {
			unhandled = append(unhandled, evt)
		}
	}
	queue.Events = queue.Events[:0]
	return unhandled
}

// HandleEvent applies one input event and reports whether it was consumed.
// Once the game has ended only pointer capture changes are honoured.
func HandleEvent(w donburi.World, evt components.Event, windowHeight int) bool {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return false
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	game := components.Game.Get(gameEntry)
	look := components.Look.Get(playerEntry)

	switch evt.Type {
	case components.EventKeyDown:
		if evt.Action == cfg.ActionReleasePointer {
			look.Captured = false
			return true
		}
		if game.Phase == cfg.PhaseEnded {
			return false
		}
		if b := button(components.Input.Get(gameEntry), evt.Action); b != nil {
			b.Downs++
			b.Pressed = true
			return true
		}

	case components.EventKeyUp:
		if game.Phase == cfg.PhaseEnded {
			return false
		}
		if b := button(components.Input.Get(gameEntry), evt.Action); b != nil {
			b.Pressed = false
			return true
		}

	case components.EventMouseButtonDown:
		if !look.Captured {
			look.Captured = true
			return true
		}

	case components.EventMouseMotion:
		if game.Phase == cfg.PhaseEnded || !look.Captured {
			return false
		}
		applyMotion(look,
			components.Transform.Get(playerEntry),
			components.Camera.Get(playerEntry),
			evt.XRel, evt.YRel, windowHeight)
		return true
	}

	return false
}

func button(input *components.InputData, action cfg.ActionID) *components.ButtonState {
	switch action {
	case cfg.ActionMoveForward:
		return &input.Forward
	case cfg.ActionMoveBack:
		return &input.Back
	case cfg.ActionMoveLeft:
		return &input.Left
	case cfg.ActionMoveRight:
		return &input.Right
	}
	return nil
}
