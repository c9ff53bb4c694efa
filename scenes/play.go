package scenes

import (
	"sync"

	"github.com/automoto/needtopee/assets"
	cfg "github.com/automoto/needtopee/config"
	"github.com/automoto/needtopee/controls"
	"github.com/automoto/needtopee/logging"
	"github.com/automoto/needtopee/persistence"
	"github.com/automoto/needtopee/render"
	"github.com/automoto/needtopee/sound"
	"github.com/automoto/needtopee/systems"
	"github.com/automoto/needtopee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs one play of the mode, from the intro to the end screen.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	poller       controls.Poller
	sound        *sound.Engine
	restart      bool
	once         sync.Once
}

// NewPlayScene creates a fresh play scene. The level is loaded on the first update.
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.restart {
		ps.sound.Close()
		ps.sceneChanger.ChangeScene(NewPlayScene(ps.sceneChanger))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	// Preload assets to avoid lag on first use
	sound.PreloadAll()

	ps.ecs = ecs.NewECS(donburi.NewWorld())

	ps.ecs.AddSystem(ps.updateInput)
	ps.ecs.AddSystem(updateGame)
	ps.ecs.AddSystem(ps.updateAudio)
	ps.ecs.AddSystem(saveRecord)

	ps.ecs.AddRenderer(LayerDefault, drawScene)
	ps.ecs.AddRenderer(LayerDefault, drawOverlay)

	best := persistence.LoadBest()
	if err := factory.LoadLevel(ps.ecs.World, assets.Scenes(), assets.ScenePath, cfg.Gameplay.Seed, best); err != nil {
		panic("failed to load scene: " + err.Error())
	}
	ps.sound = sound.NewEngine()

	logging.Logger.Info().Int("best", best).Msg("play scene started")
}

func (ps *PlayScene) updateInput(e *ecs.ECS) {
	ps.poller.Poll(e.World)

	unhandled := systems.HandleEvents(e.World, cfg.C.Height)
	if systems.WantsRestart(e.World, unhandled) {
		ps.restart = true
	}

	controls.ApplyCursor(e.World)
}

func updateGame(e *ecs.ECS) {
	systems.UpdateGame(e.World, 1.0/float64(ebiten.TPS()))
}

func (ps *PlayScene) updateAudio(e *ecs.ECS) {
	systems.UpdateAudioMix(e.World)
	ps.sound.Update(e.World)
}

func saveRecord(e *ecs.ECS) {
	if best, ok := systems.PendingRecord(e.World); ok {
		_ = persistence.SaveBest(best)
	}
}

func drawScene(e *ecs.ECS, screen *ebiten.Image) {
	render.DrawScene(e.World, screen)
}

func drawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dy() == 0 {
		return
	}
	systems.UpdateOverlay(e.World, float64(b.Dx())/float64(b.Dy()), b.Dy())
	render.DrawOverlay(e.World, screen)
}
