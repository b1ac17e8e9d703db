package config

import (
	"image/color"

	"github.com/automoto/springies/shared/mechanics"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains the clock and force model configuration
type PhysicsConfig struct {
	// Ticks per second of the simulation clock
	FramesPerSecond int
	// Seconds advanced per tick (1 / FramesPerSecond)
	StepSize float64
	// Pixels added or removed by one walled offset command
	OffsetIncrement float64
	// Start with the clock running
	StartRunning bool

	Mechanics mechanics.Settings
}

// RenderConfig contains drawing configuration for the simulation
type RenderConfig struct {
	Background      color.RGBA
	ArenaBorder     color.RGBA
	OffsetBorder    color.RGBA
	Mass            color.RGBA
	FixedMass       color.RGBA
	DragMass        color.RGBA
	HoveredMass     color.RGBA
	Stretched       color.RGBA // red
	Compressed      color.RGBA // blue
	Rigid           color.RGBA // black
	ConnectorWidth  float32
	BorderWidth     float32
	MassOutlineSize float32
}

// HUDConfig contains status text configuration
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	TextColor  color.RGBA
	OnColor    color.RGBA
	OffColor   color.RGBA
	BoxColor   color.RGBA
	Hints      []string
}

// NoticeConfig contains the fading notice configuration
type NoticeConfig struct {
	Duration   float32 // seconds until fully faded
	BoxPadding float64
	TopMargin  float64
	BoxColor   color.RGBA
	TextColor  color.RGBA
}

// PickerConfig contains model picker configuration
type PickerConfig struct {
	// Directory listed by the picker. Empty uses the bundled models.
	ModelDir string
}

// HoverConfig contains the hit test configuration
type HoverConfig struct {
	CellSize   int
	CursorSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool
	ObjectColor color.RGBA
	CursorColor color.RGBA
}

// StartupConfig lists the models loaded before the first frame
type StartupConfig struct {
	Environment string
	Assemblies  []string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Render RenderConfig
var HUD HUDConfig
var Notice NoticeConfig
var Picker PickerConfig
var Hover HoverConfig
var Debug DebugConfig
var Startup StartupConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	Blue         = color.RGBA{R: 30, G: 80, B: 230, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	LightGrey    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 200, B: 60, A: 255}
	Paper        = color.RGBA{R: 245, G: 242, B: 232, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Springies",
	}

	Physics = PhysicsConfig{
		FramesPerSecond: 25,
		StepSize:        1.0 / 25,
		OffsetIncrement: 10,
		Mechanics:       mechanics.DefaultSettings(),
	}

	Render = RenderConfig{
		Background:      Paper,
		ArenaBorder:     Grey,
		OffsetBorder:    Orange,
		Mass:            Black,
		FixedMass:       Grey,
		DragMass:        Orange,
		HoveredMass:     BrightGreen,
		Stretched:       Red,
		Compressed:      Blue,
		Rigid:           Black,
		ConnectorWidth:  2,
		BorderWidth:     1,
		MassOutlineSize: 2,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 14,
		TextColor:  Black,
		OnColor:    BrightGreen,
		OffColor:   Red,
		BoxColor:   color.RGBA{R: 255, G: 255, B: 255, A: 200},
		Hints: []string{
			"SPACE run/stop  S step  P print  N load  C clear",
			"V G M 1-4 toggle forces  UP/DOWN walls  F1 debug",
		},
	}

	Notice = NoticeConfig{
		Duration:   1.5,
		BoxPadding: 6,
		TopMargin:  40,
		BoxColor:   BlackOverlay,
		TextColor:  White,
	}

	Picker = PickerConfig{}

	Hover = HoverConfig{
		CellSize:   16,
		CursorSize: 4,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
		ObjectColor: color.RGBA{R: 0, G: 200, B: 200, A: 255},
		CursorColor: Orange,
	}
}

// SetFramesPerSecond changes the clock rate and keeps the step size in sync.
func SetFramesPerSecond(fps int) {
	if fps <= 0 {
		return
	}
	Physics.FramesPerSecond = fps
	Physics.StepSize = 1.0 / float64(fps)
}
