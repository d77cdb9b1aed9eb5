package geometry

import (
	"math"

	"github.com/iburimskiy/chord-angle/internal/config"
)

// State is the mutable configuration of the figure. PAngle is an unbounded
// accumulator; it is only reduced to [0, 360) where it is displayed.
type State struct {
	Center      Point
	Radius      float64
	ChordSpread float64
	PAngle      float64
}

// NewState returns the reference configuration centered at center.
func NewState(center Point, radius float64) *State {
	s := &State{Center: center, Radius: radius}
	s.Reset()
	return s
}

// SetChordSpread stores v clamped to the slider range. NaN is ignored.
func (s *State) SetChordSpread(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.ChordSpread = math.Max(config.ChordSpreadMin, math.Min(config.ChordSpreadMax, v))
}

// SetPAngle stores any finite angle for P as is.
func (s *State) SetPAngle(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	s.PAngle = v
}

// Advance moves P counter-clockwise by delta degrees.
func (s *State) Advance(delta float64) {
	s.PAngle += delta
}

// Reset restores P and the chord spread to their defaults.
func (s *State) Reset() {
	s.PAngle = config.DefaultPAngle
	s.ChordSpread = config.DefaultChordSpread
}

// ChordAngles returns the angular positions of A and B.
func ChordAngles(spread float64) (angleA, angleB float64) {
	return config.ChordAxis - spread/2, config.ChordAxis + spread/2
}

// Snapshot is the figure derived from a State. It is never stored.
type Snapshot struct {
	Center      Point
	Radius      float64
	ChordSpread float64
	PAngle      float64 // normalized to [0, 360)

	AngleA, AngleB float64
	A, B, P        Point
	ChordLength    float64

	// CurrentAngle is ∠APB in degrees. It is only meaningful when
	// AngleDefined is true; P on A or B leaves it undefined.
	CurrentAngle float64
	AngleDefined bool
	Arc          Arc

	// ExpectedAngle is the value the inscribed angle theorem gives for
	// P's arc, or 0 on an endpoint.
	ExpectedAngle float64
}

// Derive projects s onto a Snapshot. It does not modify s.
func (s *State) Derive() Snapshot {
	angleA, angleB := ChordAngles(s.ChordSpread)
	snap := Snapshot{
		Center:      s.Center,
		Radius:      s.Radius,
		ChordSpread: s.ChordSpread,
		PAngle:      NormalizeAngle(s.PAngle),
		AngleA:      angleA,
		AngleB:      angleB,
		A:           PointOnCircle(s.Center, s.Radius, angleA),
		B:           PointOnCircle(s.Center, s.Radius, angleB),
		P:           PointOnCircle(s.Center, s.Radius, s.PAngle),
		Arc:         classifyArc(s.PAngle, angleA, angleB, endpointEps(s.Radius)),
	}
	snap.ChordLength = Distance(snap.A, snap.B)

	angle, err := InscribedAngle(snap.A, snap.P, snap.B)
	if err != nil || snap.Arc == ArcEndpoint {
		snap.Arc = ArcEndpoint
		return snap
	}
	snap.CurrentAngle = angle
	snap.AngleDefined = true

	snap.ExpectedAngle = MajorArcAngle(s.ChordSpread)
	if snap.Arc == ArcMinor {
		snap.ExpectedAngle = 180 - snap.ExpectedAngle
	}
	return snap
}

// MajorArcAngle is the inscribed angle on the major arc for a chord spread:
// half the central angle.
func MajorArcAngle(spread float64) float64 {
	return spread / 2
}
