package config

import "math"

// SoundID represents a logical sound
type SoundID int

const (
	SoundNone SoundID = iota
	SoundAntagonistTheme
	SoundFlush
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths and 3D playback parameters
type SoundConfig struct {
	Paths            map[SoundID]string
	Volumes          map[SoundID]float64
	HalfVolumeRadius map[SoundID]float64 // +Inf = no distance attenuation
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Paths: map[SoundID]string{
			SoundAntagonistTheme: "audio/antagonist_theme.wav",
			SoundFlush:           "audio/flush.wav",
		},
		Volumes: map[SoundID]float64{
			SoundAntagonistTheme: 1.0,
			SoundFlush:           0.1,
		},
		HalfVolumeRadius: map[SoundID]float64{
			SoundAntagonistTheme: 10.0,
			SoundFlush:           math.Inf(1),
		},
	}
}
