package systems

import (
	"log"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/automoto/springies/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArena follows the window size. When it changes the simulation walls
// move and the hit test space is rebuilt at the new size.
func UpdateArena(ecs *ecs.ECS) {
	data, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	arena := mechanics.Arena{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
	if !data.Sim.Resize(arena) {
		return
	}

	// Proxies live on the space entity and are rebuilt by UpdateHover
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(spaceEntry.Entity())
	}
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Hover.CellSize, cfg.Hover.CellSize)
	log.Printf("Arena resized to %dx%d", cfg.C.Width, cfg.C.Height)
}
