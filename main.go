package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"github.com/automoto/springies/config"
	"github.com/automoto/springies/fonts"
	"github.com/automoto/springies/scenes"
	"github.com/automoto/springies/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// modelList collects repeated or comma separated -assembly flags
type modelList []string

func (m *modelList) String() string {
	return strings.Join(*m, ",")
}

func (m *modelList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*m = append(*m, part)
		}
	}
	return nil
}

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame() *Game {
	mustLoadFont(fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 14))
	mustLoadFont(fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 14))
	mustLoadFont(fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11))

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSimulationScene(g)
	return g
}

func mustLoadFont(err error) {
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one screen pixel per arena pixel, so resizing the window
// resizes the arena.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		config.C.Width, config.C.Height = width, height
	}
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var assemblies modelList
	modelDir := flag.String("models", "", "Directory listed by the model picker (default: bundled models)")
	environment := flag.String("environment", "", "Environment file loaded at startup")
	flag.Var(&assemblies, "assembly", "Assembly file loaded at startup (repeatable)")
	run := flag.Bool("run", false, "Start with the clock running")
	width := flag.Int("width", config.C.Width, "Arena width in pixels")
	height := flag.Int("height", config.C.Height, "Arena height in pixels")
	fps := flag.Int("fps", config.Physics.FramesPerSecond, "Simulation ticks per second")
	debug := flag.Bool("debug", false, "Show the hit test overlay")
	flag.Parse()

	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	config.SetFramesPerSecond(*fps)
	config.Physics.StartRunning = *run
	config.Picker.ModelDir = *modelDir
	config.Debug.ShowOverlay = *debug
	config.Startup = config.StartupConfig{
		Environment: *environment,
		Assemblies:  assemblies,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Physics.FramesPerSecond)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
