// Package config holds the constants of the figure and the window, and the
// runtime settings read from the environment.
package config

const (
	WindowWidth  = 800
	WindowHeight = 800

	// Figure area, in screen pixels.
	FigureCenterX = 400
	FigureCenterY = 250
	PixelsPerUnit = 35

	// Model defaults. Radius is in model units.
	DefaultRadius      = 5.0
	DefaultChordSpread = 120.0
	DefaultPAngle      = 90.0

	// Chord endpoints sit symmetrically about this direction (bottom of the circle).
	ChordAxis = 270.0

	// UI range for the chord spread slider, inside the valid (0, 180).
	ChordSpreadMin = 60.0
	ChordSpreadMax = 160.0

	// Degrees P advances per animation tick.
	TickIncrement = 0.5

	// Button dimensions
	ButtonWidth  = 110
	ButtonHeight = 34
	ButtonGap    = 10

	// Slider dimensions
	SliderX      = 40
	SliderWidth  = 320
	SliderHeight = 8
	SliderKnob   = 9

	// Radius of the angle marker drawn at P, in pixels.
	AngleMarkerRadius = 30

	// Chime parameters
	ChimeFrequency  = 880.0
	ChimeDurationMs = 120
	ChimeSampleRate = 44100
	ChimeVolume     = 0.25
)
