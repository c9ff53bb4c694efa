package components

import (
	"math/rand"

	cfg "github.com/automoto/needtopee/config"
	"github.com/yohamta/donburi"
)

// GameData stores the play mode state machine (singleton component).
// Only the timer of the active phase advances.
type GameData struct {
	Phase        cfg.PhaseID
	IntroTimer   float64 // seconds left before play starts
	SurviveTimer float64 // seconds left to reach the goal
	DeathTimer   float64 // seconds left in the death sequence
	Rand         *rand.Rand
}

var Game = donburi.NewComponentType[GameData]()

// RecordData tracks the flushes of the current run and the best run so far.
type RecordData struct {
	Flushes int
	Best    int
	Dirty   bool // Best changed and should be persisted
}

var Record = donburi.NewComponentType[RecordData]()

// Commit raises Best to Flushes when the run beats it.
func (r *RecordData) Commit() bool {
	if r.Flushes <= r.Best {
		return false
	}
	r.Best = r.Flushes
	r.Dirty = true
	return true
}
