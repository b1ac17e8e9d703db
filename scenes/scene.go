package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger is implemented by the game so scenes can switch themselves
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is what the game drives each tick
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
