package systems

import (
	"github.com/automoto/needtopee/components"
	"github.com/automoto/needtopee/shared/gamemath"
	"github.com/automoto/needtopee/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var soundSources = donburi.NewQuery(filter.Contains(components.SoundSource))

func updateListener(audio *components.AudioData, camera *components.TransformData) {
	audio.ListenerPosition = camera.Position
	audio.ListenerRight = gamemath.Right(camera.Rotation)
}

// Listener returns the ear used for positional audio.
func Listener(audio *components.AudioData) spatial.Listener {
	return spatial.Listener{Position: audio.ListenerPosition, Right: audio.ListenerRight}
}

// UpdateAudioMix recomputes the stereo gains of every sound source for the
// current listener.
func UpdateAudioMix(w donburi.World) {
	gameEntry, ok := components.Game.First(w)
	if !ok {
		return
	}
	listener := Listener(components.Audio.Get(gameEntry))

	soundSources.Each(w, func(e *donburi.Entry) {
		src := components.SoundSource.Get(e)
		g := spatial.Mix(listener, src.Position, src.Volume, src.HalfVolumeRadius)
		src.Left, src.Right = g.Left, g.Right
	})
}
