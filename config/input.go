package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical simulation command
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleClock
	ActionStep
	ActionPrintState
	ActionOpenPicker
	ActionClearAssemblies
	ActionToggleViscosity
	ActionToggleGravity
	ActionToggleCenterMass
	ActionToggleWall1
	ActionToggleWall2
	ActionToggleWall3
	ActionToggleWall4
	ActionGrowWalls
	ActionShrinkWalls
	ActionToggleDebug
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse button that grabs the nearest mass
	DragButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		DragButton: ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionToggleClock: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionStep: {
				Keys: []ebiten.Key{ebiten.KeyS},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPrintState: {
				Keys: []ebiten.Key{ebiten.KeyP},
			},
			ActionOpenPicker: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionClearAssemblies: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
			ActionToggleViscosity: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			ActionToggleGravity: {
				Keys: []ebiten.Key{ebiten.KeyG},
			},
			ActionToggleCenterMass: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleWall1: {
				Keys: []ebiten.Key{ebiten.Key1, ebiten.KeyNumpad1},
			},
			ActionToggleWall2: {
				Keys: []ebiten.Key{ebiten.Key2, ebiten.KeyNumpad2},
			},
			ActionToggleWall3: {
				Keys: []ebiten.Key{ebiten.Key3, ebiten.KeyNumpad3},
			},
			ActionToggleWall4: {
				Keys: []ebiten.Key{ebiten.Key4, ebiten.KeyNumpad4},
			},
			ActionGrowWalls: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionShrinkWalls: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
