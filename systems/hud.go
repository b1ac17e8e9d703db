package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/fonts"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudFontFace font.Face

// hudToggles lists the categories shown in the status line with their keys.
var hudToggles = []struct {
	label    string
	category mechanics.ForceCategory
}{
	{"V visc", mechanics.Viscosity},
	{"G grav", mechanics.Gravity},
	{"M cm", mechanics.CenterMass},
	{"1", mechanics.Wall1},
	{"2", mechanics.Wall2},
	{"3", mechanics.Wall3},
	{"4", mechanics.Wall4},
}

// DrawHUD renders the clock state, the force toggles and the key hints in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHUD {
		return
	}
	entry, ok := simulationEntry(ecs)
	if !ok {
		return
	}
	if hudFontFace == nil {
		hudFontFace = fonts.Small.Get()
	}

	data := components.Simulation.Get(entry)
	clock := components.Clock.Get(entry)
	env := data.Sim.Environment()

	state := "stopped"
	if clock.Running {
		state = "running"
	}
	status := fmt.Sprintf("%s  tick %d  offset %g  masses %d",
		state, clock.Ticks, data.Sim.WalledAreaOffset(), data.Sim.MassCount())

	lines := len(cfg.HUD.Hints) + 2
	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.LineHeight
	boxWidth := float32(0)
	for _, l := range append([]string{status}, cfg.HUD.Hints...) {
		if w := float32(font.MeasureString(hudFontFace, l).Ceil()); w > boxWidth {
			boxWidth = w
		}
	}
	vector.FillRect(screen, float32(margin/2), float32(margin/2),
		boxWidth+float32(margin), float32(lineHeight*float64(lines)+margin/2),
		cfg.HUD.BoxColor, false)

	x := int(margin)
	y := int(margin + lineHeight*0.75)
	text.Draw(screen, status, hudFontFace, x, y, cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2

	y += int(lineHeight)
	tx := x
	for _, t := range hudToggles {
		c := cfg.HUD.OffColor
		if env.Enabled(t.category) {
			c = cfg.HUD.OnColor
		}
		tx = drawToggle(screen, t.label, tx, y, c)
	}

	for _, hint := range cfg.HUD.Hints {
		y += int(lineHeight)
		text.Draw(screen, hint, hudFontFace, x, y, cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// drawToggle draws one label and returns the x of the next one.
func drawToggle(screen *ebiten.Image, label string, x, y int, c color.RGBA) int {
	text.Draw(screen, label, hudFontFace, x, y, c) //nolint:staticcheck // TODO: migrate to text/v2
	return x + font.MeasureString(hudFontFace, label+"  ").Ceil()
}
