package systems

import (
	"image/color"

	"github.com/automoto/springies/components"
	cfg "github.com/automoto/springies/config"
	"github.com/automoto/springies/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for notice rendering (lazy initialized)
var noticeFontFace font.Face

func getOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}

// ShowNotice replaces the current notice and restarts its fade.
func ShowNotice(ecs *ecs.ECS, msg string) {
	n := getOrCreateNotice(ecs)
	n.Text = msg
	n.Alpha = 1
	n.Tween = gween.New(1, 0, cfg.Notice.Duration, ease.InQuad)
}

// UpdateNotice advances the fade by one tick.
func UpdateNotice(ecs *ecs.ECS) {
	n := getOrCreateNotice(ecs)
	if n.Tween == nil {
		return
	}
	alpha, done := n.Tween.Update(float32(cfg.Physics.StepSize))
	n.Alpha = alpha
	if done {
		n.Tween = nil
		n.Text = ""
		n.Alpha = 0
	}
}

// DrawNotice renders the active notice centered near the top of the screen.
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	n := getOrCreateNotice(ecs)
	if n.Text == "" || n.Alpha <= 0 {
		return
	}

	if noticeFontFace == nil {
		noticeFontFace = fonts.Regular.Get()
	}

	bounds := text.BoundString(noticeFontFace, n.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Notice.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Notice.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, fade(cfg.Notice.BoxColor, n.Alpha), false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, n.Text, noticeFontFace, textX, textY, fade(cfg.Notice.TextColor, n.Alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
