package components

import (
	cfg "github.com/automoto/needtopee/config"
	"github.com/yohamta/donburi"
)

// EventType identifies a discrete input event.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventMouseButtonDown
	EventMouseMotion
)

// Event is one input event from the platform layer.
type Event struct {
	Type   EventType
	Action cfg.ActionID // key events only
	XRel   float64      // mouse motion only, pixels
	YRel   float64
}

// EventQueueData buffers events between polling and handling (singleton component).
type EventQueueData struct {
	Events []Event
}

var EventQueue = donburi.NewComponentType[EventQueueData]()

// Push appends an event.
func (q *EventQueueData) Push(e Event) {
	q.Events = append(q.Events, e)
}
