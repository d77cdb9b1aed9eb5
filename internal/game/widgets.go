package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/chord-angle/internal/config"
)

// button is a click target that fires on release inside its bounds.
type button struct {
	x, y, w, h int
	label      string

	hovered  bool
	pressed  bool
	disabled bool
}

func newButton(x, y int, label string) *button {
	return &button{x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight, label: label}
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// update tracks hover and press state and reports a completed click.
func (b *button) update(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	if b.disabled {
		b.pressed = false
		return false
	}
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case b.disabled:
		bgColor = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	case b.pressed:
		bgColor = color.RGBA{R: 30, G: 41, B: 59, A: 255} // Pressed
	case b.hovered:
		bgColor = color.RGBA{R: 51, G: 65, B: 85, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 15, G: 23, B: 42, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, color.RGBA{R: 203, G: 213, B: 225, A: 255}, false)

	textWidth := len(b.label) * 6 // debug font glyphs are 6px wide
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// slider maps a horizontal drag onto [min, max] in step increments.
type slider struct {
	x, y, w        int
	min, max, step float64
	label          string

	hovered  bool
	dragging bool
}

func (s *slider) contains(mx, my int) bool {
	return mx >= s.x-config.SliderKnob && mx <= s.x+s.w+config.SliderKnob &&
		my >= s.y-config.SliderKnob && my <= s.y+config.SliderHeight+config.SliderKnob
}

// valueAt returns the slider value under the cursor column mx.
func (s *slider) valueAt(mx int) float64 {
	t := clamp01(float64(mx-s.x) / float64(s.w))
	v := s.min + t*(s.max-s.min)
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	return math.Max(s.min, math.Min(s.max, v))
}

// update reports the new value while the slider is being dragged.
func (s *slider) update(mx, my int) (float64, bool) {
	s.hovered = s.contains(mx, my)
	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return 0, false
	}
	return s.valueAt(mx), true
}

func (s *slider) draw(screen *ebiten.Image, value float64, accent color.Color) {
	track := color.RGBA{R: 226, G: 232, B: 240, A: 255}
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), config.SliderHeight, track, false)

	t := clamp01((value - s.min) / (s.max - s.min))
	fill := float32(t * float64(s.w))
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), fill, config.SliderHeight, accent, false)

	knobX := float32(s.x) + fill
	knobY := float32(s.y) + config.SliderHeight/2
	vector.DrawFilledCircle(screen, knobX, knobY, config.SliderKnob, color.White, true)
	vector.StrokeCircle(screen, knobX, knobY, config.SliderKnob, 2, accent, true)

	ebitenutil.DebugPrintAt(screen, s.label, s.x, s.y-24)
	readout := formatDegrees(value, 0)
	ebitenutil.DebugPrintAt(screen, readout, s.x+s.w-len(readout)*6, s.y-24)
}
