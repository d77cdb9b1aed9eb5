package geometry

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when the vertex of an angle coincides with one
// of its endpoints, so the angle has no defined value.
var ErrDegenerate = errors.New("geometry: vertex coincides with an endpoint")

// degenerateEps is the smallest ray length treated as non-zero.
const degenerateEps = 1e-9

// Point is a position in screen-oriented coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q taken as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the length of p taken as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.Sub(q).Len()
}

// PointOnCircle returns the point at angleDeg (counter-clockwise from +x) on
// the circle. The y term is subtracted because screen y grows downward.
func PointOnCircle(center Point, radius, angleDeg float64) Point {
	theta := ToRadians(angleDeg)
	return Point{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y - radius*math.Sin(theta),
	}
}

// AngleFrom is the inverse of PointOnCircle: the angle in [0, 360) of p as
// seen from center. It returns 0 when p is the center.
func AngleFrom(center, p Point) float64 {
	dx := p.X - center.X
	dy := -(p.Y - center.Y)
	if dx == 0 && dy == 0 {
		return 0
	}
	return NormalizeAngle(ToDegrees(math.Atan2(dy, dx)))
}

// InscribedAngle returns the angle APB in degrees, in [0, 180]. It returns
// ErrDegenerate if P coincides with A or B.
func InscribedAngle(a, p, b Point) (float64, error) {
	pa := a.Sub(p)
	pb := b.Sub(p)
	magPA := pa.Len()
	magPB := pb.Len()
	if magPA < degenerateEps || magPB < degenerateEps {
		return 0, ErrDegenerate
	}
	cos := pa.Dot(pb) / (magPA * magPB)
	cos = math.Max(-1, math.Min(1, cos))
	return ToDegrees(math.Acos(cos)), nil
}
