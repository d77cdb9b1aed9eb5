package game

import (
	"fmt"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDegrees formats an angle with the given number of decimals. The
// debug font has no degree sign.
func formatDegrees(deg float64, decimals int) string {
	if decimals == 0 {
		deg = math.Round(deg)
	}
	return fmt.Sprintf("%.*f deg", decimals, deg)
}
