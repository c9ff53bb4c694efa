package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/needtopee/archetypes"
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NewRand returns the respawn RNG. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// CreateGame spawns the singleton holding phase, timers, input and presentation state.
func CreateGame(w donburi.World, rng *rand.Rand, best int) *donburi.Entry {
	game := archetypes.Game.Spawn(w)

	components.Game.SetValue(game, components.GameData{
		Phase:        cfg.PhaseIntro,
		IntroTimer:   cfg.Gameplay.IntroDuration,
		SurviveTimer: cfg.Gameplay.SurviveDuration,
		DeathTimer:   cfg.Gameplay.DeathDuration,
		Rand:         rng,
	})
	components.Record.SetValue(game, components.RecordData{Best: best})
	components.Audio.SetValue(game, components.AudioData{
		ListenerRight: mgl64.Vec3{1, 0, 0},
	})

	return game
}
