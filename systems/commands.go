package systems

import (
	"fmt"
	"log"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/yohamta/donburi/ecs"
)

var forceToggles = []struct {
	action   cfg.ActionID
	category mechanics.ForceCategory
}{
	{cfg.ActionToggleViscosity, mechanics.Viscosity},
	{cfg.ActionToggleGravity, mechanics.Gravity},
	{cfg.ActionToggleCenterMass, mechanics.CenterMass},
	{cfg.ActionToggleWall1, mechanics.Wall1},
	{cfg.ActionToggleWall2, mechanics.Wall2},
	{cfg.ActionToggleWall3, mechanics.Wall3},
	{cfg.ActionToggleWall4, mechanics.Wall4},
}

// NewUpdateCommands returns the system that turns actions into simulation
// commands. openPicker runs when the load command fires.
func NewUpdateCommands(openPicker func()) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		updateCommands(ecs, openPicker)
	}
}

func updateCommands(ecs *ecs.ECS, openPicker func()) {
	entry, ok := simulationEntry(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	data := components.Simulation.Get(entry)
	clock := components.Clock.Get(entry)
	sim := data.Sim

	if GetAction(input, cfg.ActionToggleClock).JustPressed {
		clock.Running = !clock.Running
		if clock.Running {
			ShowNotice(ecs, "Running")
		} else {
			ShowNotice(ecs, "Stopped")
		}
	}

	if GetAction(input, cfg.ActionStep).JustPressed {
		if clock.Running {
			clock.Running = false
		}
		clock.StepRequested = true
	}

	if GetAction(input, cfg.ActionPrintState).JustPressed {
		log.Printf("tick %d\n%s", clock.Ticks, sim)
		ShowNotice(ecs, "State printed to log")
	}

	if GetAction(input, cfg.ActionClearAssemblies).JustPressed {
		ClearAssemblies(ecs)
		ShowNotice(ecs, "Cleared assemblies")
		SaveSessionFor(data)
	}

	changed := false
	for _, t := range forceToggles {
		if !GetAction(input, t.action).JustPressed {
			continue
		}
		on := sim.Environment().ToggleForce(t.category)
		ShowNotice(ecs, fmt.Sprintf("%s %s", t.category, onOff(on)))
		changed = true
	}

	if GetAction(input, cfg.ActionGrowWalls).JustPressed {
		sim.ChangeWalledAreaOffset(cfg.Physics.OffsetIncrement)
		ShowNotice(ecs, fmt.Sprintf("Walls offset %g", sim.WalledAreaOffset()))
		changed = true
	}
	if GetAction(input, cfg.ActionShrinkWalls).JustPressed {
		sim.ChangeWalledAreaOffset(-cfg.Physics.OffsetIncrement)
		ShowNotice(ecs, fmt.Sprintf("Walls offset %g", sim.WalledAreaOffset()))
		changed = true
	}
	if changed {
		SaveSessionFor(data)
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}

	if GetAction(input, cfg.ActionOpenPicker).JustPressed && openPicker != nil {
		components.Drag.Get(entry).Dragger.End()
		openPicker()
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// GetOrCreateSettings returns the singleton view settings.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:   cfg.Debug.ShowOverlay,
			ShowHUD: true,
		})
	}
	return components.Settings.Get(entry)
}
