package systems

import (
	"math/rand"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// GoalPoint is where the toilet sits and the flush plays.
var GoalPoint = mgl64.Vec3{0, 0, 0}

// checkProximity runs the goal and antagonist box tests. A tick that reaches
// the goal skips the antagonist test.
func checkProximity(gameEntry, player, antagonist *donburi.Entry) {
	pos := components.Transform.Get(player).Position

	if gamemath.WithinBox(pos, GoalPoint, cfg.Gameplay.GoalRadius) {
		reachGoal(gameEntry, player, antagonist)
		return
	}

	anchor := components.Antagonist.Get(antagonist).Anchor
	if gamemath.WithinBox(pos, anchor, cfg.Gameplay.AntagonistRadius) {
		startDeath(gameEntry, player, antagonist)
	}
}

// reachGoal flushes, teleports the player away from the goal, resets the
// survive timer and hides the antagonist somewhere on the way back.
func reachGoal(gameEntry, player, antagonist *donburi.Entry) {
	game := components.Game.Get(gameEntry)

	components.Audio.Get(gameEntry).Play(components.OneShot{
		Sound:            cfg.SoundFlush,
		Position:         GoalPoint,
		Volume:           cfg.Sound.Volumes[cfg.SoundFlush],
		HalfVolumeRadius: cfg.Sound.HalfVolumeRadius[cfg.SoundFlush],
		StopPrevious:     true,
	})

	pos, ok := gamemath.SampleAway(game.Rand,
		cfg.Gameplay.MinAwayDistance,
		cfg.Gameplay.MaxAwayDistance,
		cfg.Gameplay.CameraHeight,
		cfg.Gameplay.MaxSampleAttempts)
	if !ok {
		logging.Logger.Warn().
			Int("attempts", cfg.Gameplay.MaxSampleAttempts).
			Msg("respawn sampling exhausted, using fallback position")
	}
	components.Transform.Get(player).Position = pos

	game.SurviveTimer = cfg.Gameplay.SurviveDuration

	anchor := placeAntagonist(game.Rand, antagonist, pos)

	record := components.Record.Get(gameEntry)
	record.Flushes++

	logging.Logger.Debug().
		Floats64("player", pos[:]).
		Floats64("antagonist", anchor[:]).
		Int("flushes", record.Flushes).
		Msg("goal reached")
}

// placeAntagonist anchors the antagonist between the goal and target, moves its
// theme there and hides its mesh underground.
func placeAntagonist(rng *rand.Rand, antagonist *donburi.Entry, target mgl64.Vec3) mgl64.Vec3 {
	anchor := gamemath.AnchorBetween(rng, target,
		cfg.Gameplay.AntagonistMargin,
		cfg.Gameplay.AntagonistJitter,
		cfg.Gameplay.CameraHeight)

	data := components.Antagonist.Get(antagonist)
	data.Anchor = anchor
	data.Rise = nil

	components.SoundSource.Get(antagonist).Position = anchor
	components.Transform.Get(antagonist).Position = anchor.Sub(mgl64.Vec3{0, 0, cfg.Gameplay.HideDepth})

	return anchor
}
