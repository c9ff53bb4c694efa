package gamemath

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// SampleAway draws a point uniformly in the square [-maxAway, maxAway]² at height z,
// rejecting points whose |x|, |y| and |z| are all within minAway. After attempts
// rejections the corner (maxAway, maxAway, z) is returned with ok == false.
func SampleAway(rng *rand.Rand, minAway, maxAway, z float64, attempts int) (p mgl64.Vec3, ok bool) {
	for i := 0; i < attempts; i++ {
		p = mgl64.Vec3{
			uniform(rng, -maxAway, maxAway),
			uniform(rng, -maxAway, maxAway),
			z,
		}
		if !WithinBox(p, mgl64.Vec3{}, minAway) {
			return p, true
		}
	}
	return mgl64.Vec3{maxAway, maxAway, z}, false
}

// AnchorBetween picks a point on the horizontal line from the origin to target,
// at a random distance in [margin, len-margin], then jitters x and y by up to
// ±jitter. When the line is shorter than 2*margin the midpoint is used.
func AnchorBetween(rng *rand.Rand, target mgl64.Vec3, margin, jitter, z float64) mgl64.Vec3 {
	length := target.Len()

	var base mgl64.Vec3
	if length > mgl64.Epsilon {
		d := length / 2
		if length-margin >= margin {
			d = uniform(rng, margin, length-margin)
		}
		base = target.Mul(d / length)
	}

	return mgl64.Vec3{
		base[0] + uniform(rng, -jitter, jitter),
		base[1] + uniform(rng, -jitter, jitter),
		z,
	}
}

// CeilSeconds is the whole-second countdown shown to the player.
func CeilSeconds(t float64) int {
	return int(math.Ceil(t))
}
