package archetypes

import (
	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Simulation = newArchetype(
		tags.Simulation,
		components.Simulation,
		components.Clock,
		components.Drag,
	)
	Space = newArchetype(
		components.Space,
		components.Hover,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
