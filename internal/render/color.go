package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/chord-angle/internal/geometry"
)

var (
	background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	circleColor = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	chordColor  = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	rayColor    = color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
	pointColor  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	centerColor = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	labelColor  = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	white       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Hue of the angle marker for each arc, in degrees.
const (
	majorHue = 235
	minorHue = 25
)

// HSVToRGB converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
func HSVToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = geometry.NormalizeAngle(h)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

// MarkerColor is the translucent fill of the angle marker at P. It is
// premultiplied, as color.RGBA requires.
func MarkerColor(arc geometry.Arc) color.RGBA {
	hue := float64(majorHue)
	if arc == geometry.ArcMinor {
		hue = minorHue
	}
	r, g, b := HSVToRGB(hue, 0.45, 0.97)
	const alpha = 0.2
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}
