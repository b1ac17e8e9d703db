package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// NoticeData is a singleton holding the short status message shown after a
// command. Tween drives its opacity from 1 to 0.
type NoticeData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
}

var Notice = donburi.NewComponentType[NoticeData]()

// SettingsData holds view toggles that do not affect the physics.
type SettingsData struct {
	Debug   bool
	ShowHUD bool
}

var Settings = donburi.NewComponentType[SettingsData]()
