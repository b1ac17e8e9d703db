package systems

import (
	"errors"
	"log"

	"github.com/automoto/springies/components"
	"github.com/automoto/springies/shared/mechanics"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrag attaches the cursor to the nearest mass while the drag button
// is held. Must run before UpdateClock so the handle is in place for the step.
func UpdateDrag(ecs *ecs.ECS) {
	entry, ok := simulationEntry(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	mouse := GetMouse(input)
	dragger := &components.Drag.Get(entry).Dragger
	point := dmath.Vec2{X: input.CursorX, Y: input.CursorY}

	switch {
	case mouse.JustPressed:
		sim := components.Simulation.Get(entry).Sim
		if err := dragger.Begin(sim, point); err != nil {
			if errors.Is(err, mechanics.ErrNoMassInRange) {
				ShowNotice(ecs, "No mass in range")
				return
			}
			log.Printf("Warning: Could not start drag: %v", err)
		}
	case mouse.Pressed:
		dragger.Move(point)
	case mouse.JustReleased:
		dragger.End()
	}
}
