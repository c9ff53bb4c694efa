package systems

import (
	"math"
	"testing"

	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayLines(t *testing.T) {
	const aspect = 16.0 / 9.0
	ofs := 2.0 / windowHeight

	tests := []struct {
		name  string
		setup func(f *fixture)
		check func(t *testing.T, lines []components.OverlayLine)
	}{
		{
			name:  "intro shows help and title",
			setup: func(f *fixture) {},
			check: func(t *testing.T, lines []components.OverlayLine) {
				require.Len(t, lines, 4)
				assert.Equal(t, cfg.Overlay.HelpText, lines[0].Text)
				assert.InDelta(t, -aspect+0.009, lines[0].X, 1e-12)
				assert.InDelta(t, -1+0.009, lines[0].Y, 1e-12)
				assert.Equal(t, 0.09, lines[0].ScaleY)
				assert.Equal(t, "I NEED TO PEE", lines[2].Text)
				assert.InDelta(t, -aspect/4, lines[2].X, 1e-12)
				assert.Equal(t, 0.18, lines[2].ScaleX)
			},
		},
		{
			name: "playing shows rounded up timer",
			setup: func(f *fixture) {
				f.state().Phase = cfg.PhasePlaying
				f.state().SurviveTimer = 14.2
			},
			check: func(t *testing.T, lines []components.OverlayLine) {
				require.Len(t, lines, 2)
				assert.Equal(t, "15", lines[0].Text)
				assert.InDelta(t, -aspect/5, lines[0].X, 1e-12)
				assert.Equal(t, 0.36, lines[0].ScaleX)
				assert.Equal(t, 0.18, lines[0].ScaleY)
			},
		},
		{
			name:  "dying shows nothing",
			setup: func(f *fixture) { f.state().Phase = cfg.PhaseDying },
			check: func(t *testing.T, lines []components.OverlayLine) {
				assert.Empty(t, lines)
			},
		},
		{
			name: "ended shows loss and record",
			setup: func(f *fixture) {
				f.state().Phase = cfg.PhaseEnded
				*components.Record.Get(f.game) = components.RecordData{Flushes: 3, Best: 7}
			},
			check: func(t *testing.T, lines []components.OverlayLine) {
				require.Len(t, lines, 4)
				assert.Equal(t, "peed myself :()", lines[0].Text)
				assert.Equal(t, "flushes: 3   best: 7", lines[2].Text)
				assert.Less(t, lines[2].Y, lines[0].Y)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			UpdateOverlay(f.w, aspect, windowHeight)
			lines := components.Overlay.Get(f.game).Lines
			tt.check(t, lines)

			// Every line is a black pass followed by an offset white pass
			for i := 0; i+1 < len(lines); i += 2 {
				shadow, text := lines[i], lines[i+1]
				assert.Equal(t, cfg.Black, shadow.Color)
				assert.Equal(t, cfg.White, text.Color)
				assert.Equal(t, shadow.Text, text.Text)
				assert.InDelta(t, shadow.X+ofs, text.X, 1e-12)
				assert.InDelta(t, shadow.Y+ofs, text.Y, 1e-12)
			}
		})
	}
}

func TestOverlayIsRebuiltEachFrame(t *testing.T) {
	f := newFixture(t)
	UpdateOverlay(f.w, 1, windowHeight)
	UpdateOverlay(f.w, 1, windowHeight)
	assert.Len(t, components.Overlay.Get(f.game).Lines, 4)
}

func TestListenerFollowsCamera(t *testing.T) {
	f := newFixture(t)
	look := components.Look.Get(f.player)
	look.Yaw = math.Pi / 2
	tr := components.Transform.Get(f.player)
	tr.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}).Mul(mgl64.QuatRotate(look.Pitch, mgl64.Vec3{1, 0, 0}))

	UpdateGame(f.w, 1.0/60)

	audio := components.Audio.Get(f.game)
	assert.Equal(t, f.playerPos(), audio.ListenerPosition)
	assertVecNear(t, mgl64.Vec3{0, 1, 0}, audio.ListenerRight, "right %v", audio.ListenerRight)
}

func TestListenerFrozenAfterEnd(t *testing.T) {
	f := newFixture(t)
	f.state().Phase = cfg.PhaseEnded
	audio := components.Audio.Get(f.game)
	audio.ListenerPosition = mgl64.Vec3{1, 2, 3}

	UpdateGame(f.w, 1.0/60)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, audio.ListenerPosition)
}

func TestUpdateAudioMix(t *testing.T) {
	f := newFixture(t)
	f.setPlayerPos(mgl64.Vec3{0, -130, 7})
	src := components.SoundSource.Get(f.antagonist)
	src.Position = mgl64.Vec3{10, -130, 7} // directly to the right

	UpdateGame(f.w, 1.0/60)
	UpdateAudioMix(f.w)

	assert.InDelta(t, 0.0, src.Left, 1e-9)
	assert.InDelta(t, 0.5, src.Right, 1e-9)

	src.Position = mgl64.Vec3{-1000, -130, 7}
	UpdateAudioMix(f.w)
	assert.Greater(t, src.Left, src.Right)
	assert.Less(t, src.Left, 0.05)
}

func TestCurrentPhase(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, cfg.PhaseIntro, CurrentPhase(f.w))
	f.state().Phase = cfg.PhaseDying
	assert.Equal(t, cfg.PhaseDying, CurrentPhase(f.w))
}
