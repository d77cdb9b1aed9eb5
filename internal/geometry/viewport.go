package geometry

// Viewport maps model coordinates to screen pixels: the model origin lands
// on Origin and one model unit spans Scale pixels. Both spaces already share
// the y-down convention, so no flip happens here.
type Viewport struct {
	Origin Point
	Scale  float64
}

// ToScreen maps a model point to screen pixels.
func (v Viewport) ToScreen(p Point) Point {
	return Point{X: v.Origin.X + p.X*v.Scale, Y: v.Origin.Y + p.Y*v.Scale}
}

// FromScreen maps screen pixels back to model coordinates.
func (v Viewport) FromScreen(p Point) Point {
	return Point{X: (p.X - v.Origin.X) / v.Scale, Y: (p.Y - v.Origin.Y) / v.Scale}
}

// Fit returns the viewport that draws a circle of radius (centered at the
// model origin) at fill times half the smaller side of a w×h canvas.
func Fit(w, h int, radius, fill float64) Viewport {
	side := float64(min(w, h))
	return Viewport{
		Origin: Point{X: float64(w) / 2, Y: float64(h) / 2},
		Scale:  side / 2 * fill / radius,
	}
}
