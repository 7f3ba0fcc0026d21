package curve

import "math"

// CubicBez is a cubic Bézier segment, the [Curve] of degree three.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Degree() Degree { return Cubic }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox returns the tight bounding box of the segment, which includes
// the points at which either coordinate's derivative vanishes.
func (c CubicBez) BoundingBox() Rect {
	return polynomialBounds(c)
}

// Length returns the arclength of a cubic Bézier segment.
//
// There is no closed form. The speed |B′(t)| is the square root of a
// polynomial of degree four, which is integrated over [0, 1] with the adaptive
// composite Simpson rule configured by opts.Arclen. The estimate reports
// whether the rule converged before running out of subdivisions.
func (c CubicBez) Length(opts Options) Estimate {
	speedSq := c.speedSquared()
	return integrateSimpson(func(t float64) float64 {
		// Roundoff can push the polynomial slightly below zero near cusps.
		return math.Sqrt(math.Abs(speedSq.Eval(t)))
	}, 0, 1, opts)
}

// speedSquared returns |B′(t)|² as a polynomial of degree four.
func (c CubicBez) speedSquared() Polynomial {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	// B′(t) = qa t² + qb t + qc
	qa := d0.Sub(d1.Mul(2)).Add(d2).Mul(3)
	qb := d1.Sub(d0).Mul(6)
	qc := d0.Mul(3)
	return Poly(
		qc.Hypot2(),
		2*qb.Dot(qc),
		qb.Hypot2()+2*qa.Dot(qc),
		2*qa.Dot(qb),
		qa.Hypot2(),
	)
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Polynomials() (x, y Polynomial) {
	x0, x1, x2, x3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	y0, y1, y2, y3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return Poly(x0, x1, x2, x3), Poly(y0, y1, y2, y3)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the segment, which is a quadratic
// Bézier in vector space.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Nearest finds the nearest point from the real roots of the derivative of
// the squared distance, a polynomial of degree five. Accuracy bounds the
// error of those roots.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	return nearestPolynomial(c, pt, accuracy)
}

func (CubicBez) isCurve() {}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
