package main

import (
	"image"
	"os"

	"github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/fonts"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/persistence"
	"github.com/automoto/needtopee/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

const appName = "needtopee"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlayScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configDir := pflag.String("config-dir", ".", "directory searched for "+config.FileName+".json")
	seed := pflag.Int64("seed", 0, "respawn RNG seed (0 = random)")
	logLevel := pflag.String("log-level", "", "log level: debug, info, warn, error")
	fullscreen := pflag.Bool("fullscreen", false, "start in fullscreen")
	debug := pflag.Bool("debug", false, "draw trigger boxes")
	sensitivity := pflag.Float64("sensitivity", 0, "mouse look sensitivity multiplier")
	pflag.Parse()

	if err := config.Load(*configDir); err != nil {
		logging.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Flags win over the config file
	if pflag.CommandLine.Changed("seed") {
		config.Gameplay.Seed = *seed
	}
	if pflag.CommandLine.Changed("log-level") {
		config.C.LogLevel = *logLevel
	}
	if pflag.CommandLine.Changed("fullscreen") {
		config.C.Fullscreen = *fullscreen
	}
	if pflag.CommandLine.Changed("debug") {
		config.Debug.ShowTriggers = *debug
	}
	if pflag.CommandLine.Changed("sensitivity") {
		if *sensitivity <= 0 {
			logging.Logger.Fatal().Float64("sensitivity", *sensitivity).Msg("sensitivity must be positive")
		}
		config.Look.SensitivityScale = *sensitivity
	}

	if err := logging.SetLevel(config.C.LogLevel); err != nil {
		logging.Logger.Warn().Err(err).Str("level", config.C.LogLevel).Msg("unknown log level, keeping info")
	}

	if err := fonts.LoadDefaults(); err != nil {
		logging.Logger.Fatal().Err(err).Msg("could not load fonts")
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.C.Fullscreen)

	// Initialize persistence; the game runs without saving if it fails
	_ = persistence.Init(appName)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logging.Logger.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
}
