package systems

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// startDeath enters the death sequence: the antagonist surfaces above its
// anchor, turns to the player and sinks back over DeathDuration.
func startDeath(gameEntry, player, antagonist *donburi.Entry) {
	setPhase(gameEntry, cfg.PhaseDying)

	game := components.Game.Get(gameEntry)
	game.DeathTimer = cfg.Gameplay.DeathDuration

	data := components.Antagonist.Get(antagonist)
	data.Rise = gween.New(
		float32(cfg.Gameplay.RiseHeight), 0,
		float32(cfg.Gameplay.DeathDuration),
		ease.Linear,
	)

	transform := components.Transform.Get(antagonist)
	transform.Position = data.Anchor.Add(mgl64.Vec3{0, 0, cfg.Gameplay.RiseHeight})
	faceTarget(transform, components.Transform.Get(player).Position)
}

func updateDying(gameEntry, player, antagonist *donburi.Entry, elapsed float64) {
	game := components.Game.Get(gameEntry)
	data := components.Antagonist.Get(antagonist)
	transform := components.Transform.Get(antagonist)

	faceTarget(transform, components.Transform.Get(player).Position)

	if data.Rise != nil {
		height, _ := data.Rise.Update(float32(elapsed))
		transform.Position = data.Anchor.Add(mgl64.Vec3{0, 0, float64(height)})
	}

	game.DeathTimer -= elapsed
	if game.DeathTimer <= 0 {
		setPhase(gameEntry, cfg.PhaseEnded)
	}
}

// faceTarget snaps the rotation around Z so the entity looks at target.
// Nearly coincident positions keep the previous rotation.
func faceTarget(transform *components.TransformData, target mgl64.Vec3) {
	if rot, ok := gamemath.FacingRotation(transform.Position, target, cfg.Gameplay.FacingEpsilon); ok {
		transform.Rotation = rot
	}
}
