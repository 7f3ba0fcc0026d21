package curve

// PointCurve is the constant curve, which stays at P for every t.
type PointCurve struct {
	P Point
}

func (p PointCurve) Degree() Degree       { return Constant }
func (p PointCurve) Eval(t float64) Point { return p.P }
func (p PointCurve) Start() Point         { return p.P }
func (p PointCurve) End() Point           { return p.P }

func (p PointCurve) Polynomials() (x, y Polynomial) {
	return Poly(p.P.X), Poly(p.P.Y)
}

// BoundingBox returns the empty rectangle at P.
func (p PointCurve) BoundingBox() Rect {
	return NewRectFromPoint(p.P)
}

// Nearest always reports parameter 0.
func (p PointCurve) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	return pt.DistanceSquared(p.P), 0
}

func (p PointCurve) Length(opts Options) Estimate {
	return exactEstimate(0)
}

func (PointCurve) isCurve() {}
