package config

import (
	"image/color"
	"math"
)

// GameplayConfig contains the timers, distances and speeds of the play mode
type GameplayConfig struct {
	// Phase timers (seconds)
	IntroDuration   float64
	SurviveDuration float64
	DeathDuration   float64

	// Player
	CameraHeight float64
	PlayerSpeed  float64 // units per second

	// Trigger boxes (half-extent per axis)
	GoalRadius       float64
	AntagonistRadius float64

	// Reach-goal respawn sampling
	MinAwayDistance   float64 // rejected when every axis is within this box
	MaxAwayDistance   float64 // half-extent of the sampling cube
	MaxSampleAttempts int     // falls back to a fixed corner after this many rejections

	// Antagonist placement along the goal-player line
	AntagonistMargin float64
	AntagonistJitter float64
	HideDepth        float64 // how far below the anchor the antagonist waits
	RiseHeight       float64 // height above the anchor at the start of the death sequence
	FacingEpsilon    float64 // minimum flattened distance before re-facing the player

	// Seed for the respawn RNG (0 = time based)
	Seed int64
}

// LookConfig contains first-person mouse look configuration
type LookConfig struct {
	MinPitch         float64 // radians
	MaxPitch         float64 // radians
	SensitivityScale float64 // multiplier on the camera's vertical fov
}

// OverlayConfig contains the on-screen text layout
type OverlayConfig struct {
	SmallHeight float64 // in units of half the screen height
	LargeHeight float64
	ShadowColor color.RGBA
	TextColor   color.RGBA
	HelpText    string
	Title       string
	LossText    string
	RecordText  string // fmt format: flushes, best
}

// RenderConfig contains the wireframe renderer configuration
type RenderConfig struct {
	ClearColor    color.RGBA
	GridColor     color.RGBA
	GridExtent    float64
	GridSpacing   float64
	LineWidth     float32
	DebugBoxColor color.RGBA
	Near          float64
	Far           float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowTriggers bool // Draw goal and antagonist trigger boxes
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	LogLevel   string
}

// Global configuration instances
var C *Config
var Gameplay GameplayConfig
var Look LookConfig
var Overlay OverlayConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		Title:    "I Need To Pee",
		LogLevel: "info",
	}

	Gameplay = GameplayConfig{
		IntroDuration:   5.0,
		SurviveDuration: 15.0,
		DeathDuration:   5.0,

		CameraHeight: 7.0,
		PlayerSpeed:  45.0,

		GoalRadius:       10.0,
		AntagonistRadius: 15.0,

		MinAwayDistance:   100.0,
		MaxAwayDistance:   150.0,
		MaxSampleAttempts: 64,

		AntagonistMargin: 15.0,
		AntagonistJitter: 15.0,
		HideDepth:        100.0,
		RiseHeight:       50.0, // 10 units per second of the death timer
		FacingEpsilon:    0.001,
	}

	Look = LookConfig{
		MinPitch:         1.0 * math.Pi / 180.0,
		MaxPitch:         179.0 * math.Pi / 180.0,
		SensitivityScale: 1.0,
	}

	Overlay = OverlayConfig{
		SmallHeight: 0.09,
		LargeHeight: 0.18,
		ShadowColor: Black,
		TextColor:   White,
		HelpText:    "Mouse motion rotates camera; WASD moves; escape ungrabs mouse",
		Title:       "I NEED TO PEE",
		LossText:    "peed myself :()",
		RecordText:  "flushes: %d   best: %d",
	}

	Render = RenderConfig{
		ClearColor:    Grey,
		GridColor:     DarkGrey,
		GridExtent:    160.0,
		GridSpacing:   20.0,
		LineWidth:     1.5,
		DebugBoxColor: Yellow,
		Near:          0.1,
		Far:           1000.0,
	}

	Debug = DebugConfig{
		ShowTriggers: false,
	}
}
