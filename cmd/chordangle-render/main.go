// Command chordangle-render draws one configuration of the fixed-chord
// figure to a PNG, or a sequence of frames sweeping P around the circle.
//
// Usage:
//
//	chordangle-render -spread 120 -p 90 -out figure.png
//	chordangle-render -spread 160 -frames 72 -out frames/
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iburimskiy/chord-angle/internal/config"
	"github.com/iburimskiy/chord-angle/internal/geometry"
	"github.com/iburimskiy/chord-angle/internal/render"
)

func main() {
	spread := flag.Float64("spread", config.DefaultChordSpread, "Chord spread in degrees (clamped to 60..160)")
	pAngle := flag.Float64("p", config.DefaultPAngle, "Angle of P in degrees")
	radius := flag.Float64("radius", config.DefaultRadius, "Circle radius in model units")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	frames := flag.Int("frames", 0, "Render this many frames of a full turn of P into the -out directory")
	labels := flag.Bool("labels", true, "Draw point names and the angle readout")
	out := flag.String("out", "figure.png", "Output PNG path, or directory with -frames")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if *radius <= 0 {
		fmt.Fprintln(os.Stderr, "error: -radius must be positive")
		os.Exit(1)
	}

	state := geometry.NewState(geometry.Point{}, *radius)
	state.SetChordSpread(*spread)
	state.SetPAngle(*pAngle)

	opts := render.DefaultOptions()
	opts.Width, opts.Height, opts.Labels = *width, *height, *labels

	if *frames <= 0 {
		if err := save(*out, state.Derive(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}
	step := 360 / float64(*frames)
	for i := 0; i < *frames; i++ {
		name := filepath.Join(*out, fmt.Sprintf("frame_%03d.png", i))
		if err := save(name, state.Derive(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		state.Advance(step)
	}
	fmt.Printf("Rendered %d frames (spread %.0f°, step %.2f°) to %s\n", *frames, state.ChordSpread, step, *out)
}

func save(path string, snap geometry.Snapshot, opts render.Options) error {
	img, err := render.Render(snap, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote figure", "path", path, "angle", snap.CurrentAngle, "arc", snap.Arc.String())
	return nil
}
