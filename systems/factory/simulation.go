package factory

import (
	"github.com/automoto/springies/archetypes"
	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/automoto/springies/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation spawns the singleton entity owning sim. The clock starts
// in the configured state.
func CreateSimulation(ecs *ecs.ECS, sim *mechanics.Simulation) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{Sim: sim})
	components.Clock.SetValue(entry, components.ClockData{Running: cfg.Physics.StartRunning})
	return entry
}

// CreateSpace spawns the resolv space used to hit test masses.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	size := cfg.Hover.CursorSize
	cursor := resolv.NewObject(0, 0, size, size, tags.ResolvCursor)
	spaceData.Add(cursor)
	components.Hover.SetValue(space, components.HoverData{Cursor: cursor})
	return space
}
