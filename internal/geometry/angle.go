// Package geometry holds the fixed-chord, fixed-angle model: points on a
// circle, the angle subtended at a free point, and the mutable state the
// figure is derived from.
package geometry

import "math"

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle reduces any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-17 + 360 rounds to 360.
	if a >= 360 {
		a = 0
	}
	return a
}
