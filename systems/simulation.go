package systems

import (
	"fmt"
	"log"

	"github.com/automoto/springies/assets"
	"github.com/automoto/springies/components"
	"github.com/automoto/springies/shared/modeldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// simulationEntry returns the singleton simulation entity.
func simulationEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Simulation.First(ecs.World)
}

// GetSimulation returns the simulation singleton, if the scene created one.
func GetSimulation(ecs *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := simulationEntry(ecs)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

// LoadModel reads name from src into the simulation and records its
// reference. A failed load leaves the simulation as it was.
func LoadModel(data *components.SimulationData, src assets.ModelSource, name string) (modeldata.Kind, error) {
	kind, err := modeldata.LoadModel(data.Sim, src.FS, name)
	if err != nil {
		log.Printf("Warning: %v", err)
		return kind, err
	}
	data.Models = append(data.Models, src.Ref(name))
	log.Printf("Loaded %s %s", kind, name)
	return kind, nil
}

// LoadModelRef loads a model by the reference stored in a session or given
// on the command line.
func LoadModelRef(data *components.SimulationData, ref string) error {
	src, name := assets.ResolveRef(ref)
	if _, err := LoadModel(data, src, name); err != nil {
		return fmt.Errorf("model %s: %w", ref, err)
	}
	return nil
}

// ClearAssemblies cancels any drag and removes every assembly. Environment
// references stay recorded since the environment is kept.
func ClearAssemblies(ecs *ecs.ECS) {
	entry, ok := simulationEntry(ecs)
	if !ok {
		return
	}
	components.Drag.Get(entry).Dragger.End()

	data := components.Simulation.Get(entry)
	data.Sim.ClearAssemblies()
	kept := data.Models[:0]
	for _, ref := range data.Models {
		if modeldata.KindOf(ref) == modeldata.KindEnvironment {
			kept = append(kept, ref)
		}
	}
	data.Models = kept
}
