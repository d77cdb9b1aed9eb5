// Package render draws a geometry snapshot into an RGBA image without a
// window, for PNG export.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/iburimskiy/chord-angle/internal/geometry"
)

// Options control the rendered image.
type Options struct {
	Width, Height int
	// Fill is the share of half the smaller side the circle's radius spans.
	Fill   float64
	Labels bool
}

// DefaultOptions matches the in-app figure.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 500, Fill: 0.7, Labels: true}
}

// Viewport returns the mapping Render uses for s.
func Viewport(s geometry.Snapshot, o Options) geometry.Viewport {
	v := geometry.Fit(o.Width, o.Height, s.Radius, o.Fill)
	// Fit centers the model origin; shift so the circle's center is centered.
	v.Origin.X -= s.Center.X * v.Scale
	v.Origin.Y -= s.Center.Y * v.Scale
	return v
}

// Render draws s: circle, chord AB, rays PA and PB, the angle marker, the
// points and, with Labels, their names and the angle readout.
func Render(s geometry.Snapshot, o Options) (*image.RGBA, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("render: bad size %dx%d", o.Width, o.Height)
	}
	if s.Radius <= 0 {
		return nil, fmt.Errorf("render: radius must be positive, got %v", s.Radius)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	v := Viewport(s, o)
	c := v.ToScreen(s.Center)
	a := v.ToScreen(s.A)
	b := v.ToScreen(s.B)
	p := v.ToScreen(s.P)
	r := s.Radius * v.Scale

	cv := newCanvas(img)
	cv.ring(c, r, 2, circleColor)
	cv.line(a, b, 4, chordColor)
	cv.dashed(p, a, 2, 5, 5, rayColor)
	cv.dashed(p, b, 2, 5, 5, rayColor)
	cv.disc(p, 30, MarkerColor(s.Arc))

	for _, pt := range []geometry.Point{a, b} {
		cv.disc(pt, 8, white)
		cv.disc(pt, 6, chordColor)
	}
	cv.disc(p, 11, white)
	cv.disc(p, 8, pointColor)
	cv.disc(c, 3, centerColor)

	if !o.Labels {
		return img, nil
	}
	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	text(img, face, "A", a.X-20, a.Y+20, labelColor)
	text(img, face, "B", b.X+10, b.Y+20, labelColor)
	text(img, face, "P", p.X-5, p.Y-20, pointColor)
	text(img, face, Readout(s), 16, 28, labelColor)
	return img, nil
}

// Readout is the angle line shown with the figure.
func Readout(s geometry.Snapshot) string {
	if !s.AngleDefined {
		return fmt.Sprintf("angle APB undefined (P on the chord)   spread %.0f°", s.ChordSpread)
	}
	return fmt.Sprintf("angle APB = %.1f°   spread %.0f°   P at %.0f° (%s arc)",
		s.CurrentAngle, s.ChordSpread, s.PAngle, s.Arc)
}

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func labelFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parse font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    16,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

func text(dst draw.Image, face font.Face, s string, x, y float64, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

// canvas fills shapes through a vector.Rasterizer.
type canvas struct {
	dst *image.RGBA
	r   *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, r: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *canvas) fill(col color.Color) {
	c.r.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := c.dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

const circleSegments = 96

func (c *canvas) circlePath(center geometry.Point, radius float64, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		t := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			t = -t
		}
		x := float32(center.X + radius*math.Cos(t))
		y := float32(center.Y + radius*math.Sin(t))
		if i == 0 {
			c.r.MoveTo(x, y)
		} else {
			c.r.LineTo(x, y)
		}
	}
	c.r.ClosePath()
}

func (c *canvas) disc(center geometry.Point, radius float64, col color.Color) {
	c.circlePath(center, radius, false)
	c.fill(col)
}

func (c *canvas) ring(center geometry.Point, radius, width float64, col color.Color) {
	c.circlePath(center, radius+width/2, false)
	c.circlePath(center, radius-width/2, true)
	c.fill(col)
}

func (c *canvas) quad(from, to geometry.Point, width float64) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return
	}
	nx, ny := -d.Y/l*width/2, d.X/l*width/2
	c.r.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	c.r.LineTo(float32(to.X+nx), float32(to.Y+ny))
	c.r.LineTo(float32(to.X-nx), float32(to.Y-ny))
	c.r.LineTo(float32(from.X-nx), float32(from.Y-ny))
	c.r.ClosePath()
}

func (c *canvas) line(from, to geometry.Point, width float64, col color.Color) {
	c.quad(from, to, width)
	c.fill(col)
}

func (c *canvas) dashed(from, to geometry.Point, width, on, off float64, col color.Color) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return
	}
	ux, uy := d.X/l, d.Y/l
	for t := 0.0; t < l; t += on + off {
		end := math.Min(t+on, l)
		c.quad(
			geometry.Point{X: from.X + ux*t, Y: from.Y + uy*t},
			geometry.Point{X: from.X + ux*end, Y: from.Y + uy*end},
			width,
		)
	}
	c.fill(col)
}
