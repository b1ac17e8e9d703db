package scenes

import (
	"log"
	"path"
	"sync"

	"github.com/automoto/springies/assets"
	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/automoto/springies/systems"
	"github.com/automoto/springies/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Models loaded when nothing was given on the command line or saved
var defaultModels = []string{
	path.Join(assets.BuiltinModelDir, "environment.xsp"),
	path.Join(assets.BuiltinModelDir, "square.xsp"),
}

// SimulationScene runs the physics world. It survives trips to the picker so
// the simulation keeps its state.
type SimulationScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewSimulationScene(sc SceneChanger) *SimulationScene {
	return &SimulationScene{sceneChanger: sc}
}

func (s *SimulationScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SimulationScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(cfg.Render.Background)
		return
	}
	s.ecs.Draw(screen)
}

func (s *SimulationScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every later system sees this tick's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateArena)
	ecs.AddSystem(systems.NewUpdateCommands(s.openPicker))
	ecs.AddSystem(systems.UpdateDrag) // Must run before UpdateClock
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateHover)
	ecs.AddSystem(systems.UpdateNotice)

	ecs.AddRenderer(cfg.Default, systems.DrawSimulation)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawNotice)

	s.ecs = ecs

	arena := mechanics.Arena{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
	sim := mechanics.NewSimulation(arena, cfg.Physics.Mechanics)
	entry := factory.CreateSimulation(s.ecs, sim)
	s.loadInitialModels(components.Simulation.Get(entry))

	factory.CreateSpace(s.ecs, cfg.C.Width, cfg.C.Height, cfg.Hover.CellSize, cfg.Hover.CellSize)
}

// loadInitialModels loads the command line models, or else the models of the
// saved session, or else the bundled defaults. Saved toggles and offset are
// applied in every case.
func (s *SimulationScene) loadInitialModels(data *components.SimulationData) {
	saved, err := systems.LoadSession()
	if err != nil {
		saved = nil
	}

	var refs []string
	switch {
	case cfg.Startup.Environment != "" || len(cfg.Startup.Assemblies) > 0:
		if cfg.Startup.Environment != "" {
			refs = append(refs, cfg.Startup.Environment)
		}
		refs = append(refs, cfg.Startup.Assemblies...)
	case saved != nil && len(saved.Models) > 0:
		refs = saved.Models
	default:
		refs = defaultModels
	}

	for _, ref := range refs {
		if err := systems.LoadModelRef(data, ref); err != nil {
			log.Printf("Warning: Skipping %v", err)
		}
	}
	systems.ApplySession(data.Sim, saved)
	systems.SaveSessionFor(data)
}

func (s *SimulationScene) openPicker() {
	s.sceneChanger.ChangeScene(NewPickerScene(s.sceneChanger, s, assets.SourceFor(cfg.Picker.ModelDir)))
}

// LoadModel loads name from src into the running simulation and saves the
// session on success.
func (s *SimulationScene) LoadModel(src assets.ModelSource, name string) error {
	data, ok := systems.GetSimulation(s.ecs)
	if !ok {
		return nil
	}
	kind, err := systems.LoadModel(data, src, name)
	if err != nil {
		return err
	}
	systems.SaveSessionFor(data)
	systems.ShowNotice(s.ecs, "Loaded "+kind.String()+" "+path.Base(name))
	return nil
}
