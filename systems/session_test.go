package systems

import (
	"testing"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsRestart(t *testing.T) {
	tests := []struct {
		name      string
		phase     cfg.PhaseID
		unhandled []components.Event
		want      bool
	}{
		{name: "restart after end", phase: cfg.PhaseEnded, unhandled: []components.Event{keyDown(cfg.ActionRestart)}, want: true},
		{name: "restart while playing", phase: cfg.PhasePlaying, unhandled: []components.Event{keyDown(cfg.ActionRestart)}},
		{name: "restart while dying", phase: cfg.PhaseDying, unhandled: []components.Event{keyDown(cfg.ActionRestart)}},
		{name: "key release after end", phase: cfg.PhaseEnded, unhandled: []components.Event{keyUp(cfg.ActionRestart)}},
		{name: "other key after end", phase: cfg.PhaseEnded, unhandled: []components.Event{keyDown(cfg.ActionMoveForward)}},
		{name: "nothing after end", phase: cfg.PhaseEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.state().Phase = tt.phase
			assert.Equal(t, tt.want, WantsRestart(f.w, tt.unhandled))
		})
	}
}

func TestRestartKeyReachesHostOnlyAfterEnd(t *testing.T) {
	f := newFixture(t)
	f.playing()
	queue := components.EventQueue.Get(f.game)

	queue.Push(keyDown(cfg.ActionRestart))
	assert.False(t, WantsRestart(f.w, HandleEvents(f.w, windowHeight)))

	f.state().SurviveTimer = 0.01
	UpdateGame(f.w, 0.1)
	require.Equal(t, cfg.PhaseEnded, f.state().Phase)

	queue.Push(keyDown(cfg.ActionRestart))
	assert.True(t, WantsRestart(f.w, HandleEvents(f.w, windowHeight)))
}

func TestPendingRecordReportedOnce(t *testing.T) {
	f := newFixture(t)
	f.playing()
	record := components.Record.Get(f.game)
	record.Best = 2
	record.Flushes = 3

	_, ok := PendingRecord(f.w)
	assert.False(t, ok, "nothing to save before the end")

	f.state().SurviveTimer = 0.01
	UpdateGame(f.w, 0.1)
	require.Equal(t, cfg.PhaseEnded, f.state().Phase)

	best, ok := PendingRecord(f.w)
	assert.True(t, ok)
	assert.Equal(t, 3, best)

	_, ok = PendingRecord(f.w)
	assert.False(t, ok)

	UpdateGame(f.w, 0.1)
	_, ok = PendingRecord(f.w)
	assert.False(t, ok)
}

func TestPendingRecordSkipsWorseRun(t *testing.T) {
	f := newFixture(t)
	f.playing()
	record := components.Record.Get(f.game)
	record.Best = 5
	record.Flushes = 1

	f.state().SurviveTimer = 0.01
	UpdateGame(f.w, 0.1)
	require.Equal(t, cfg.PhaseEnded, f.state().Phase)

	_, ok := PendingRecord(f.w)
	assert.False(t, ok)
}
