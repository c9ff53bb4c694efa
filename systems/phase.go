package systems

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/tags"
	"github.com/yohamta/donburi"
)

// UpdateGame advances the play mode by elapsed seconds: timers, proximity
// triggers, movement, the death sequence and the audio listener.
// It does nothing once the game has ended.
func UpdateGame(w donburi.World, elapsed float64) {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return
	}
	game := components.Game.Get(gameEntry)
	if game.Phase == cfg.PhaseEnded {
		return
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	antagonist, ok := tags.Antagonist.First(w)
	if !ok {
		return
	}

	switch game.Phase {
	case cfg.PhaseIntro:
		game.IntroTimer -= elapsed
		if game.IntroTimer <= 0 {
			setPhase(gameEntry, cfg.PhasePlaying)
		}

	case cfg.PhasePlaying:
		game.SurviveTimer -= elapsed
		if game.SurviveTimer <= 0 {
			setPhase(gameEntry, cfg.PhaseEnded)
		} else {
			checkProximity(gameEntry, player, antagonist)
		}

	case cfg.PhaseDying:
		updateDying(gameEntry, player, antagonist, elapsed)
	}

	if game.Phase == cfg.PhaseIntro || game.Phase == cfg.PhasePlaying {
		updateMovement(components.Input.Get(gameEntry), components.Transform.Get(player), elapsed)
	}

	updateListener(components.Audio.Get(gameEntry), components.Transform.Get(player))

	components.Input.Get(gameEntry).ResetDowns()
}

// setPhase moves the state machine forward. Backward or repeated transitions
// are rejected.
func setPhase(gameEntry *donburi.Entry, next cfg.PhaseID) {
	game := components.Game.Get(gameEntry)
	if !game.Phase.CanTransition(next) {
		logging.Logger.Warn().
			Stringer("from", game.Phase).
			Stringer("to", next).
			Msg("ignored invalid phase transition")
		return
	}

	logging.Logger.Debug().
		Stringer("from", game.Phase).
		Stringer("to", next).
		Msg("phase changed")
	game.Phase = next

	if next == cfg.PhaseEnded {
		record := components.Record.Get(gameEntry)
		if record.Commit() {
			logging.Logger.Info().Int("best", record.Best).Msg("new best run")
		}
	}
}

// CurrentPhase returns the phase of the play mode, or PhaseEnded when there is none.
func CurrentPhase(w donburi.World) cfg.PhaseID {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return cfg.PhaseEnded
	}
	return components.Game.Get(gameEntry).Phase
}
