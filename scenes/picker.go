package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/springies/assets"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/systems"
	"github.com/automoto/springies/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ModelLoader is the scene that receives picked models.
type ModelLoader interface {
	Scene
	LoadModel(src assets.ModelSource, name string) error
}

// PickerScene lists the model files of a source and loads the chosen one
// into the scene that opened it.
type PickerScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	target       ModelLoader
	source       assets.ModelSource
	pickerUI     *ui.PickerUI
	once         sync.Once
	shouldGoBack bool
}

func NewPickerScene(sc SceneChanger, target ModelLoader, source assets.ModelSource) *PickerScene {
	return &PickerScene{
		sceneChanger: sc,
		target:       target,
		source:       source,
	}
}

func (s *PickerScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.pickerUI.Update()

	input, ok := systems.GetInput(s.ecsWorld)
	if ok && systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		s.shouldGoBack = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.pickerUI.SubmitPath()
	}

	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(s.target)
	}
}

func (s *PickerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.ecsWorld == nil {
		return
	}

	s.pickerUI.UI.Draw(screen)
}

func (s *PickerScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateInput)

	s.pickerUI = ui.NewPickerUI(
		func(name string) { s.load(s.source, name) },
		func(p string) {
			src, name := assets.ResolveRef(p)
			s.load(src, name)
		},
		func() { s.shouldGoBack = true },
	)

	names, err := s.source.List()
	if err != nil {
		s.pickerUI.SetStatus(err.Error())
	}
	s.pickerUI.SetModels(names)
}

func (s *PickerScene) load(src assets.ModelSource, name string) {
	if err := s.target.LoadModel(src, name); err != nil {
		s.pickerUI.SetStatus(err.Error())
		return
	}
	s.shouldGoBack = true
}
