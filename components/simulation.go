package components

import (
	"github.com/automoto/springies/shared/mechanics"
	"github.com/yohamta/donburi"
)

// SimulationData is the singleton holding the physics world.
type SimulationData struct {
	Sim *mechanics.Simulation
	// Models lists the references of every model loaded into Sim, in load
	// order. It is persisted so the session can be rebuilt.
	Models []string
}

var Simulation = donburi.NewComponentType[SimulationData]()

// ClockData drives the fixed rate stepping of the simulation.
type ClockData struct {
	Running bool
	// StepRequested advances one tick while stopped
	StepRequested bool
	Ticks         int
}

var Clock = donburi.NewComponentType[ClockData]()

// DragData holds the transient mass and bar the mouse pulls on.
type DragData struct {
	Dragger mechanics.Dragger
}

var Drag = donburi.NewComponentType[DragData]()
