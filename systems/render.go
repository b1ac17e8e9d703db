package systems

import (
	"image/color"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/shared/mechanics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// screenSurface paints simulation elements onto an ebiten image.
type screenSurface struct {
	screen  *ebiten.Image
	hovered *mechanics.Mass
}

func (s *screenSurface) DrawMass(m *mechanics.Mass) {
	c := cfg.Render.Mass
	switch {
	case m.ID() == mechanics.DragMassID:
		c = cfg.Render.DragMass
	case m == s.hovered:
		c = cfg.Render.HoveredMass
	case m.IsFixed():
		c = cfg.Render.FixedMass
	}
	center := m.Center()
	r := float32(m.Size() / 2)
	if m.IsFixed() && m.ID() != mechanics.DragMassID {
		vector.StrokeCircle(s.screen, float32(center.X), float32(center.Y), r, cfg.Render.MassOutlineSize, c, true)
		return
	}
	vector.FillCircle(s.screen, float32(center.X), float32(center.Y), r, c, true)
}

func (s *screenSurface) DrawConnector(c mechanics.Connector) {
	start, end := c.Ends()
	a, b := start.Center(), end.Center()
	vector.StrokeLine(s.screen,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		cfg.Render.ConnectorWidth, hintColor(c.Hint()), true)
}

func hintColor(h mechanics.PaintHint) color.RGBA {
	switch h {
	case mechanics.HintStretched:
		return cfg.Render.Stretched
	case mechanics.HintCompressed:
		return cfg.Render.Compressed
	}
	return cfg.Render.Rigid
}

// Reused between frames
var surface = &screenSurface{}

// DrawSimulation clears the screen, outlines the walled area and paints every
// assembly.
func DrawSimulation(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	data, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	sim := data.Sim
	drawArena(screen, sim.Arena(), sim.WalledAreaOffset())

	surface.screen = screen
	surface.hovered = nil
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		surface.hovered = components.Hover.Get(spaceEntry).Mass
	}
	sim.Paint(surface)
	surface.screen = nil
}

func drawArena(screen *ebiten.Image, arena mechanics.Arena, offset float64) {
	w := cfg.Render.BorderWidth
	vector.StrokeRect(screen, 0, 0, float32(arena.Width), float32(arena.Height), w, cfg.Render.ArenaBorder, false)
	if offset == 0 {
		return
	}
	vector.StrokeRect(screen,
		float32(-offset), float32(-offset),
		float32(arena.Width+2*offset), float32(arena.Height+2*offset),
		w, cfg.Render.OffsetBorder, false)
}
