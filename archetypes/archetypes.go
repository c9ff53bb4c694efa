package archetypes

import (
	"github.com/automoto/needtopee/components"
	"github.com/automoto/needtopee/tags"
	"github.com/yohamta/donburi"
)

var (
	Game = newArchetype(
		components.Game,
		components.Input,
		components.EventQueue,
		components.Audio,
		components.Overlay,
		components.Record,
	)
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Camera,
		components.Look,
	)
	Antagonist = newArchetype(
		tags.Antagonist,
		components.Antagonist,
		components.Transform,
		components.Mesh,
		components.SoundSource,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Transform,
		components.Mesh,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
		components.Mesh,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
