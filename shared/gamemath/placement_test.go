package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSampleAwayNeverInsideExclusionBox(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		p, ok := SampleAway(rng, 100, 150, 7, 64)
		assert.True(t, ok)
		assert.False(t, math.Abs(p.X()) <= 100 && math.Abs(p.Y()) <= 100 && math.Abs(p.Z()) <= 100, "sample %v", p)
		assert.LessOrEqual(t, math.Abs(p.X()), 150.0)
		assert.LessOrEqual(t, math.Abs(p.Y()), 150.0)
		assert.Equal(t, 7.0, p.Z())
	}
}

func TestSampleAwayFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// minAway covers the whole sampling square, so every attempt is rejected
	p, ok := SampleAway(rng, 200, 150, 7, 10)
	assert.False(t, ok)
	assert.Equal(t, mgl64.Vec3{150, 150, 7}, p)

	p, ok = SampleAway(rng, 100, 150, 7, 0)
	assert.False(t, ok)
	assert.Equal(t, mgl64.Vec3{150, 150, 7}, p)
}

func TestAnchorBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	target := mgl64.Vec3{120, -90, 0}

	for i := 0; i < 500; i++ {
		a := AnchorBetween(rng, target, 15, 0, 7)
		assert.Equal(t, 7.0, a.Z())

		flat := mgl64.Vec3{a.X(), a.Y(), 0}
		assert.InDelta(t, 0.0, flat.Cross(target).Len(), 1e-6, "anchor %v is off the line", a)
		assert.GreaterOrEqual(t, flat.Len(), 15.0-1e-9)
		assert.LessOrEqual(t, flat.Len(), 150.0-15.0+1e-9)
	}

	for i := 0; i < 500; i++ {
		a := AnchorBetween(rng, target, 15, 15, 7)
		unjittered := target.Mul(0.5)
		assert.LessOrEqual(t, math.Abs(a.X()-unjittered.X()), 60.0+15)
		assert.LessOrEqual(t, math.Abs(a.Y()-unjittered.Y()), 45.0+15)
	}
}

func TestAnchorBetweenDegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	target := mgl64.Vec3{20, 0, 0} // shorter than 2*margin

	for i := 0; i < 100; i++ {
		a := AnchorBetween(rng, target, 15, 0, 7)
		assert.InDelta(t, 10.0, a.X(), 1e-9)
		assert.InDelta(t, 0.0, a.Y(), 1e-9)
	}

	a := AnchorBetween(rng, mgl64.Vec3{}, 15, 0, 7)
	assert.Equal(t, mgl64.Vec3{0, 0, 7}, a)
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, 15, CeilSeconds(15))
	assert.Equal(t, 15, CeilSeconds(14.01))
	assert.Equal(t, 1, CeilSeconds(0.2))
	assert.Equal(t, 0, CeilSeconds(0))
}
