// Package sound plays the world's positional sources through ebitengine audio.
package sound

import (
	"sync"

	"github.com/automoto/needtopee/assets"
	"github.com/automoto/needtopee/components"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/shared/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// The audio context can only be created once per process and is shared by
// every scene.
var (
	globalAudioLoader *assets.AudioLoader
	audioInitOnce     sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioLoader = assets.NewAudioLoader(audio.NewContext(cfg.Audio.SampleRate))
	})
}

// PreloadAll decodes every configured sound at startup.
func PreloadAll() {
	initGlobalAudio()
	for id, path := range cfg.Sound.Paths {
		if err := globalAudioLoader.Preload(path); err != nil {
			logging.Logger.Warn().Err(err).Int("sound", int(id)).Msg("could not preload sound")
		}
	}
}

type voice struct {
	player *audio.Player
	stream *spatial.PannedStream

	// one-shots only
	position         mgl64.Vec3
	volume           float64
	halfVolumeRadius float64
}

func (v *voice) close() {
	v.player.Pause()
	_ = v.player.Close()
}

var loopSources = donburi.NewQuery(filter.Contains(components.SoundSource))

// Engine owns the players of one play scene.
type Engine struct {
	loops    map[donburi.Entity]*voice
	oneShots map[cfg.SoundID]*voice
}

// NewEngine returns an engine with nothing playing.
func NewEngine() *Engine {
	initGlobalAudio()
	return &Engine{
		loops:    make(map[donburi.Entity]*voice),
		oneShots: make(map[cfg.SoundID]*voice),
	}
}

// Update starts looped sources, plays queued one-shots and applies the
// current stereo gains. Run it after systems.UpdateAudioMix.
func (e *Engine) Update(w donburi.World) {
	gameEntry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(gameEntry)
	master := cfg.Audio.DefaultSFXVol

	loopSources.Each(w, func(entry *donburi.Entry) {
		src := components.SoundSource.Get(entry)
		if !src.Loop {
			return
		}
		v, ok := e.loops[entry.Entity()]
		if !ok {
			v = e.start(src.Sound, true)
			if v == nil {
				return
			}
			e.loops[entry.Entity()] = v
		}
		v.stream.SetGains(spatial.Gains{Left: src.Left * master, Right: src.Right * master})
	})

	for _, shot := range audioData.Drain() {
		if prev, ok := e.oneShots[shot.Sound]; ok && shot.StopPrevious {
			prev.close()
			delete(e.oneShots, shot.Sound)
		}
		v := e.start(shot.Sound, false)
		if v == nil {
			continue
		}
		v.position = shot.Position
		v.volume = shot.Volume
		v.halfVolumeRadius = shot.HalfVolumeRadius
		e.oneShots[shot.Sound] = v
	}

	listener := spatial.Listener{Position: audioData.ListenerPosition, Right: audioData.ListenerRight}
	for id, v := range e.oneShots {
		if !v.player.IsPlaying() {
			v.close()
			delete(e.oneShots, id)
			continue
		}
		g := spatial.Mix(listener, v.position, v.volume, v.halfVolumeRadius)
		v.stream.SetGains(spatial.Gains{Left: g.Left * master, Right: g.Right * master})
	}
}

func (e *Engine) start(id cfg.SoundID, loop bool) *voice {
	path, ok := cfg.Sound.Paths[id]
	if !ok {
		return nil
	}
	stream, err := globalAudioLoader.Stream(path, loop)
	if err != nil {
		logging.Logger.Warn().Err(err).Str("path", path).Msg("could not load sound")
		return nil
	}
	panned := spatial.NewPannedStream(stream)
	panned.SetGains(spatial.Gains{})

	player, err := globalAudioLoader.Context().NewPlayer(panned)
	if err != nil {
		logging.Logger.Warn().Err(err).Str("path", path).Msg("could not create audio player")
		return nil
	}
	player.Play()
	return &voice{player: player, stream: panned}
}

// Close stops every player owned by the engine.
func (e *Engine) Close() {
	for id, v := range e.loops {
		v.close()
		delete(e.loops, id)
	}
	for id, v := range e.oneShots {
		v.close()
		delete(e.oneShots, id)
	}
}
