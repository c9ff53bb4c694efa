// Package controls turns ebitengine keyboard and mouse state into input events.
package controls

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Binding maps one key to an action.
type Binding struct {
	Action cfg.ActionID
	Key    ebiten.Key
}

// Bindings are polled in order every frame.
var Bindings = []Binding{
	{cfg.ActionMoveForward, ebiten.KeyW},
	{cfg.ActionMoveBack, ebiten.KeyS},
	{cfg.ActionMoveLeft, ebiten.KeyA},
	{cfg.ActionMoveRight, ebiten.KeyD},
	{cfg.ActionReleasePointer, ebiten.KeyEscape},
	{cfg.ActionRestart, ebiten.KeyEnter},
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Poller remembers the cursor between frames to report relative motion.
type Poller struct {
	lastX, lastY int
	tracking     bool
	mode         ebiten.CursorModeType
}

// Poll queues this frame's key, button and motion events.
// Must run BEFORE systems.HandleEvents in the system order.
func (p *Poller) Poll(w donburi.World) {
	gameEntry, ok := components.EventQueue.First(w)
	if !ok {
		return
	}
	queue := components.EventQueue.Get(gameEntry)

	for _, b := range Bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			queue.Push(components.Event{Type: components.EventKeyDown, Action: b.Action})
		}
		if inpututil.IsKeyJustReleased(b.Key) {
			queue.Push(components.Event{Type: components.EventKeyUp, Action: b.Action})
		}
	}

	for _, btn := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			queue.Push(components.Event{Type: components.EventMouseButtonDown})
			break
		}
	}

	// The cursor jumps when its mode changes, so restart tracking
	if mode := ebiten.CursorMode(); mode != p.mode {
		p.mode = mode
		p.tracking = false
	}
	x, y := ebiten.CursorPosition()
	if p.tracking && (x != p.lastX || y != p.lastY) {
		queue.Push(components.Event{
			Type: components.EventMouseMotion,
			XRel: float64(x - p.lastX),
			YRel: float64(y - p.lastY),
		})
	}
	p.lastX, p.lastY = x, y
	p.tracking = true
}

// ApplyCursor grabs or releases the OS cursor to match the look state.
func ApplyCursor(w donburi.World) {
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	want := ebiten.CursorModeVisible
	if components.Look.Get(player).Captured {
		want = ebiten.CursorModeCaptured
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
	}
}
