package systems

import (
	"fmt"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit test object and prints the tick rate.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Debug.ObjectColor
			if obj.HasTags(tags.ResolvCursor) {
				c = cfg.Debug.CursorColor
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if data, ok := GetSimulation(ecs); ok {
		msg += fmt.Sprintf("  masses: %d", data.Sim.MassCount())
	}
	ebitenutil.DebugPrintAt(screen, msg, int(cfg.HUD.Margin), screen.Bounds().Dy()-20)
}
