package game

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/chord-angle/internal/geometry"
	"github.com/iburimskiy/chord-angle/internal/render"
)

// exportDialog asks for a file name and writes snap there as a PNG.
// Canceling the dialog is not an error.
func exportDialog(snap geometry.Snapshot) error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save figure"),
		zenity.Filename("chord-angle.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	return writePNG(filename, snap)
}

func writePNG(path string, snap geometry.Snapshot) error {
	img, err := render.Render(snap, render.DefaultOptions())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("figure exported", "path", path, "angle", snap.CurrentAngle)
	return nil
}
