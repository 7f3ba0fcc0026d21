package curve

import (
	"math"
)

// QuadBez is a quadratic Bézier segment, the [Curve] of degree two.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Degree() Degree { return Quadratic }

// BoundingBox returns the tight bounding box of the segment, which includes
// the points at which either coordinate's derivative vanishes.
func (q QuadBez) BoundingBox() Rect {
	return polynomialBounds(q)
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Length returns the arclength of the quadratic Bézier segment. The options
// are unused; the result is always exact up to roundoff.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature. Segments whose
// control points are exactly collinear are measured as straight pieces.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Length(opts Options) Estimate {
	return exactEstimate(q.arclen())
}

func (q QuadBez) arclen() float64 {
	d1 := q.P1.Sub(q.P0)
	if d1.Cross(q.P2.Sub(q.P0)) == 0 {
		return q.collinearArclen()
	}
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// collinearArclen measures a segment whose control points lie on one line.
// Such a segment can run back on itself, in which case it consists of two
// straight pieces meeting where the derivative vanishes.
func (q QuadBez) collinearArclen() float64 {
	d1 := q.P1.Sub(q.P0)
	d2 := q.P2.Sub(q.P1).Sub(d1)
	a := d2.Hypot2()
	if a == 0 {
		return q.P2.Distance(q.P0)
	}
	t := -d1.Dot(d2) / a
	if t <= 0 || t >= 1 {
		return q.P2.Distance(q.P0)
	}
	turn := q.Eval(t)
	return turn.Distance(q.P0) + q.P2.Distance(turn)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Polynomials() (x, y Polynomial) {
	x0, x1, x2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	y0, y1, y2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	return Poly(x0, x1, x2), Poly(y0, y1, y2)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the derivative of the segment, which is a line in
// vector space.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Nearest finds the nearest point analytically, from the roots of the
// derivative of the squared distance, which is a cubic.
func (q QuadBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	return nearestPolynomial(q, pt, accuracy)
}

func (QuadBez) isCurve() {}

// Return polynomial coefficients given quadratic bezier coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}
