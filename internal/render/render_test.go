package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/iburimskiy/chord-angle/internal/geometry"
)

func reference() geometry.Snapshot {
	return geometry.NewState(geometry.Point{}, 5).Derive()
}

func TestRenderReference(t *testing.T) {
	s := reference()
	o := DefaultOptions()
	img, err := Render(s, o)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 500 {
		t.Fatalf("bounds %v", b)
	}

	v := Viewport(s, o)
	p := v.ToScreen(s.P)
	if int(p.X) != 400 || int(p.Y) != 75 {
		t.Fatalf("P drawn at %+v, want (400, 75)", p)
	}
	if got := img.RGBAAt(int(p.X), int(p.Y)); got != pointColor {
		t.Fatalf("pixel at P = %v, want %v", got, pointColor)
	}
	if got := img.RGBAAt(400, 250); got != centerColor {
		t.Fatalf("pixel at center = %v, want %v", got, centerColor)
	}
	a := v.ToScreen(s.A)
	if got := img.RGBAAt(int(a.X), int(a.Y)); got != chordColor {
		t.Fatalf("pixel at A = %v, want %v", got, chordColor)
	}
	if got := img.RGBAAt(5, 495); got != background {
		t.Fatalf("corner pixel = %v", got)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
}

func TestRenderOffCenterState(t *testing.T) {
	s := geometry.NewState(geometry.Point{X: 400, Y: 250}, 175).Derive()
	o := Options{Width: 400, Height: 400, Fill: 0.5}
	img, err := Render(s, o)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(200, 200); got != centerColor {
		t.Fatalf("circle center not centered: %v", got)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(reference(), Options{Width: 0, Height: 10, Fill: 0.7}); err == nil {
		t.Fatal("expected an error for an empty image")
	}
	s := reference()
	s.Radius = 0
	if _, err := Render(s, DefaultOptions()); err == nil {
		t.Fatal("expected an error for a zero radius")
	}
}

func TestReadout(t *testing.T) {
	s := reference()
	if got := Readout(s); !strings.HasPrefix(got, "angle APB = 60.0°") || !strings.Contains(got, "major arc") {
		t.Fatalf("readout %q", got)
	}

	st := geometry.NewState(geometry.Point{}, 5)
	angleA, _ := geometry.ChordAngles(st.ChordSpread)
	st.SetPAngle(angleA)
	s = st.Derive()
	if got := Readout(s); !strings.Contains(got, "undefined") {
		t.Fatalf("readout %q", got)
	}
	if _, err := Render(s, DefaultOptions()); err != nil {
		t.Fatalf("degenerate snapshot should still render: %v", err)
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{60, 255, 255, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := HSVToRGB(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HSVToRGB(%v) = %d,%d,%d, want %d,%d,%d", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestMarkerColorPerArc(t *testing.T) {
	major := MarkerColor(geometry.ArcMajor)
	minor := MarkerColor(geometry.ArcMinor)
	if major == minor {
		t.Fatal("arcs should tint the marker differently")
	}
	for _, c := range []color.RGBA{major, minor} {
		if c.A == 0 || c.R > c.A || c.G > c.A || c.B > c.A {
			t.Fatalf("not a valid premultiplied color: %v", c)
		}
	}
}
