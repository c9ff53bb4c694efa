package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the base name of the optional JSON override file.
const FileName = "needtopee"

// Load reads optional overrides from needtopee.json in configDir on top of the
// defaults set in init(). A missing file is not an error.
func Load(configDir string) error {
	v := viper.New()

	v.SetDefault("window.width", C.Width)
	v.SetDefault("window.height", C.Height)
	v.SetDefault("window.fullscreen", C.Fullscreen)
	v.SetDefault("logLevel", C.LogLevel)

	v.SetDefault("gameplay.introDuration", Gameplay.IntroDuration)
	v.SetDefault("gameplay.surviveDuration", Gameplay.SurviveDuration)
	v.SetDefault("gameplay.deathDuration", Gameplay.DeathDuration)
	v.SetDefault("gameplay.playerSpeed", Gameplay.PlayerSpeed)
	v.SetDefault("gameplay.maxSampleAttempts", Gameplay.MaxSampleAttempts)
	v.SetDefault("gameplay.seed", Gameplay.Seed)

	v.SetDefault("look.sensitivityScale", Look.SensitivityScale)

	v.SetDefault("audio.sfxVolume", Audio.DefaultSFXVol)

	v.SetDefault("debug.showTriggers", Debug.ShowTriggers)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	C.Width = v.GetInt("window.width")
	C.Height = v.GetInt("window.height")
	C.Fullscreen = v.GetBool("window.fullscreen")
	C.LogLevel = v.GetString("logLevel")

	Gameplay.IntroDuration = v.GetFloat64("gameplay.introDuration")
	Gameplay.SurviveDuration = v.GetFloat64("gameplay.surviveDuration")
	Gameplay.DeathDuration = v.GetFloat64("gameplay.deathDuration")
	Gameplay.PlayerSpeed = v.GetFloat64("gameplay.playerSpeed")
	Gameplay.MaxSampleAttempts = v.GetInt("gameplay.maxSampleAttempts")
	Gameplay.Seed = v.GetInt64("gameplay.seed")
	// The rise tween covers the whole death sequence at 10 units per second.
	Gameplay.RiseHeight = 10.0 * Gameplay.DeathDuration

	Look.SensitivityScale = v.GetFloat64("look.sensitivityScale")

	Audio.DefaultSFXVol = v.GetFloat64("audio.sfxVolume")

	Debug.ShowTriggers = v.GetBool("debug.showTriggers")

	return validate()
}

func validate() error {
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", C.Width, C.Height)
	}
	if Gameplay.MaxSampleAttempts < 1 {
		return fmt.Errorf("gameplay.maxSampleAttempts must be at least 1, got %d", Gameplay.MaxSampleAttempts)
	}
	if Look.SensitivityScale <= 0 {
		return fmt.Errorf("look.sensitivityScale must be positive, got %v", Look.SensitivityScale)
	}
	return nil
}
