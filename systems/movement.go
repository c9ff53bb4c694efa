package systems

import (
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/shared/gamemath"
)

// updateMovement walks the camera on the horizontal plane. Height is never
// changed by movement.
func updateMovement(input *components.InputData, transform *components.TransformData, elapsed float64) {
	intent := gamemath.MoveIntent(
		input.Left.Pressed, input.Right.Pressed,
		input.Back.Pressed, input.Forward.Pressed,
	)
	if intent[0] == 0 && intent[1] == 0 {
		return
	}
	step := intent.Mul(cfg.Gameplay.PlayerSpeed * elapsed)

	height := transform.Position[2]
	transform.Position = transform.Position.Add(gamemath.PlanarDisplacement(transform.Rotation, step))
	transform.Position[2] = height
}
