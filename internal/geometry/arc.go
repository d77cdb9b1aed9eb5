package geometry

import "math"

// Arc tells which side of chord AB a point on the circle lies on.
type Arc int

const (
	ArcMajor Arc = iota
	ArcMinor
	ArcEndpoint
)

func (a Arc) String() string {
	switch a {
	case ArcMajor:
		return "major"
	case ArcMinor:
		return "minor"
	case ArcEndpoint:
		return "endpoint"
	}
	return "unknown"
}

// arcEps is the angular tolerance, in degrees, for landing on A or B.
const arcEps = 1e-9

// endpointEps is the angular tolerance on a circle of radius r that matches
// the ray length InscribedAngle treats as zero.
func endpointEps(radius float64) float64 {
	if radius <= 0 {
		return arcEps
	}
	return math.Max(arcEps, ToDegrees(degenerateEps/radius))
}

// ClassifyArc reports which arc the point at pAngle lies on, for chord
// endpoints at angleA and angleB with the minor arc running
// counter-clockwise from A to B. Spreads below 180 are assumed.
func ClassifyArc(pAngle, angleA, angleB float64) Arc {
	return classifyArc(pAngle, angleA, angleB, arcEps)
}

func classifyArc(pAngle, angleA, angleB, eps float64) Arc {
	span := NormalizeAngle(angleB - angleA)
	off := NormalizeAngle(pAngle - angleA)
	switch {
	case off < eps || 360-off < eps || absf(off-span) < eps:
		return ArcEndpoint
	case off < span:
		return ArcMinor
	default:
		return ArcMajor
	}
}

// OnMajorArc reports whether pAngle lies strictly inside the major arc.
func OnMajorArc(pAngle, angleA, angleB float64) bool {
	return ClassifyArc(pAngle, angleA, angleB) == ArcMajor
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
