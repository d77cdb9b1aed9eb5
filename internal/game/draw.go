package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/chord-angle/internal/animation"
	"github.com/iburimskiy/chord-angle/internal/config"
	"github.com/iburimskiy/chord-angle/internal/geometry"
	"github.com/iburimskiy/chord-angle/internal/render"
)

var (
	circleColor = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	chordColor  = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	rayColor    = color.RGBA{R: 99, G: 102, B: 241, A: 255}
	pColor      = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	centerColor = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	boxColor    = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	borderColor = color.RGBA{R: 226, G: 232, B: 240, A: 255}
)

func (g *Game) drawFigure(screen *ebiten.Image, snap geometry.Snapshot) {
	c := g.view.ToScreen(snap.Center)
	a := g.view.ToScreen(snap.A)
	b := g.view.ToScreen(snap.B)
	p := g.view.ToScreen(snap.P)
	r := snap.Radius * g.view.Scale

	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(r), 2, circleColor, true)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 4, chordColor, true)
	dashedLine(screen, p, a, 2, rayColor)
	dashedLine(screen, p, b, 2, rayColor)

	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.AngleMarkerRadius, render.MarkerColor(snap.Arc), true)

	for _, pt := range []geometry.Point{a, b} {
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), 8, color.White, true)
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), 6, chordColor, true)
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 11, color.White, true)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 8, pColor, true)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), 3, centerColor, true)

	ebitenutil.DebugPrintAt(screen, "A", int(a.X)-20, int(a.Y)+8)
	ebitenutil.DebugPrintAt(screen, "B", int(b.X)+10, int(b.Y)+8)
	ebitenutil.DebugPrintAt(screen, "P", int(p.X)-3, int(p.Y)-34)
}

// dashedLine strokes from→to in 5px dashes with 5px gaps.
func dashedLine(screen *ebiten.Image, from, to geometry.Point, width float32, clr color.Color) {
	const on, off = 5.0, 5.0
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return
	}
	ux, uy := d.X/l, d.Y/l
	for t := 0.0; t < l; t += on + off {
		end := math.Min(t+on, l)
		vector.StrokeLine(screen,
			float32(from.X+ux*t), float32(from.Y+uy*t),
			float32(from.X+ux*end), float32(from.Y+uy*end),
			width, clr, true)
	}
}

func (g *Game) drawReadout(screen *ebiten.Image, snap geometry.Snapshot) {
	const x, y, w, h = 12, 12, 250, 102
	vector.DrawFilledRect(screen, x, y, w, h, boxColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	angle, expected := "--", "--"
	if snap.AngleDefined {
		angle = formatDegrees(snap.CurrentAngle, 1)
		expected = formatDegrees(snap.ExpectedAngle, 1)
	}
	ebitenutil.DebugPrintAt(screen, "CURRENT STATE", x+8, y+4)
	ebitenutil.DebugPrintAt(screen, "angle APB = "+angle, x+8, y+22)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P on %s arc, chord %.2f", snap.Arc, snap.ChordLength), x+8, y+40)

	status := g.driver.Status().String()
	if g.bell != nil && g.bell.Muted() {
		status += ", muted"
	}
	ebitenutil.DebugPrintAt(screen, "theorem gives "+expected, x+8, y+58)
	ebitenutil.DebugPrintAt(screen, status, x+8, y+76)
	g.drawChimeMeter(screen, x+w-18, y+8, h-16)

	help := "Space play/pause  R reset  arrows move  E ask  S save  M mute  Q quit"
	ebitenutil.DebugPrintAt(screen, help, 12, controlsY-24)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 280, 12)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	const x = config.SliderX
	w := config.WindowWidth - 2*config.SliderX
	h := config.WindowHeight - panelY - 30
	vector.DrawFilledRect(screen, x, panelY, float32(w), float32(h), boxColor, false)
	vector.StrokeRect(screen, x, panelY, float32(w), float32(h), 1, borderColor, false)

	lines := g.panel.Lines(panelWrap)
	maxLines := (h - 8) / 16
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "...")
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+8, panelY+4+i*16)
	}

	footer := "On the major arc the angle stays theta; on the minor arc it becomes 180 - theta."
	if g.driver.Status() == animation.Playing {
		footer = "P crosses the chord freely: watch theta turn into 180 - theta."
	}
	ebitenutil.DebugPrintAt(screen, footer, x, config.WindowHeight-24)
}

// drawChimeMeter shows the level of the chime that marks an arc change.
func (g *Game) drawChimeMeter(screen *ebiten.Image, x, y, h int) {
	if g.tap == nil {
		return
	}
	level := clamp01(g.tap.Level(tapRingSize/4) / config.ChimeVolume * math.Sqrt2)
	vector.DrawFilledRect(screen, float32(x), float32(y), 8, float32(h), circleColor, false)
	fill := float32(level * float64(h))
	vector.DrawFilledRect(screen, float32(x), float32(y+h)-fill, 8, fill, rayColor, false)
}
