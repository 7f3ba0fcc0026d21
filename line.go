package curve

import "math"

// Line represents a line segment from P0 to P1. It is the [Curve] of degree
// one.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Degree() Degree { return Linear }

// Length returns the length of the line, which is always exact.
func (l Line) Length(opts Options) Estimate {
	return exactEstimate(l.P1.Sub(l.P0).Hypot())
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Polynomials() (x, y Polynomial) {
	d := l.P1.Sub(l.P0)
	return Poly(l.P0.X, d.X), Poly(l.P0.Y, d.Y)
}

// Nearest projects pt onto the line and clamps the projection to the
// segment. A zero-length line reports its start point.
func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared == 0 {
		return pt.DistanceSquared(l.P0), 0
	}
	t = clamp(d.Dot(pt.Sub(l.P0))/dSquared, 0, 1)
	return pt.DistanceSquared(l.Eval(t)), t
}

// NearestConstrained is like [Line.Nearest], but instead of clamping, it
// reports ok = false if the perpendicular projection of pt falls outside of
// the segment. The projection onto a zero-length line is its start point.
func (l Line) NearestConstrained(pt Point) (distSq, t float64, ok bool) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared <= Epsilon*Epsilon {
		return pt.DistanceSquared(l.P0), 0, true
	}
	t = d.Dot(pt.Sub(l.P0)) / dSquared
	if t < 0 || t > 1 {
		return 0, 0, false
	}
	return pt.DistanceSquared(l.Eval(t)), t, true
}

// DistanceToLine returns the distance between pt and the infinite line
// through P0 and P1. For a zero-length line, it is the distance to P0.
func (l Line) DistanceToLine(pt Point) float64 {
	n, ok := l.P1.Sub(l.P0).Normalize()
	if !ok {
		return pt.Distance(l.P0)
	}
	return math.Abs(n.Cross(pt.Sub(l.P0)))
}

// ConstrainedDistance returns the distance between pt and its perpendicular
// projection onto l. It returns false if the projection falls outside of the
// segment.
func ConstrainedDistance(l Line, pt Point) (float64, bool) {
	distSq, _, ok := l.NearestConstrained(pt)
	if !ok {
		return 0, false
	}
	return math.Sqrt(distSq), true
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (Line) isCurve() {}
