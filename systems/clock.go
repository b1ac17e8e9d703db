package systems

import (
	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation one fixed step per tick while the
// clock runs, or once when a single step was requested.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := simulationEntry(ecs)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	if !clock.Running && !clock.StepRequested {
		return
	}
	clock.StepRequested = false

	components.Simulation.Get(entry).Sim.Update(cfg.Physics.StepSize)
	clock.Ticks++
}
