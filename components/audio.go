package components

import (
	cfg "github.com/automoto/needtopee/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SoundSourceData is a positional sound attached to an entity.
// Left and Right are the gains computed for the current listener.
type SoundSourceData struct {
	Sound            cfg.SoundID
	Position         mgl64.Vec3
	Volume           float64
	HalfVolumeRadius float64
	Loop             bool
	Left             float64
	Right            float64
}

var SoundSource = donburi.NewComponentType[SoundSourceData]()

// OneShot is a positional sound to start on the next audio update.
type OneShot struct {
	Sound            cfg.SoundID
	Position         mgl64.Vec3
	Volume           float64
	HalfVolumeRadius float64
	StopPrevious     bool // stop a still-playing instance of the same sound first
}

// AudioData stores the listener and queued one-shots (singleton component).
type AudioData struct {
	ListenerPosition mgl64.Vec3
	ListenerRight    mgl64.Vec3
	Pending          []OneShot
}

var Audio = donburi.NewComponentType[AudioData]()

// Play queues a one-shot. SoundNone is ignored.
func (a *AudioData) Play(s OneShot) {
	if s.Sound == cfg.SoundNone {
		return
	}
	a.Pending = append(a.Pending, s)
}

// Drain returns and clears the queued one-shots.
func (a *AudioData) Drain() []OneShot {
	p := a.Pending
	a.Pending = nil
	return p
}
