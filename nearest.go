package curve

// nearestPolynomial finds the point on a polynomial curve nearest to pt.
//
// The squared distance D(t) = (X(t) − px)² + (Y(t) − py)² is itself a
// polynomial. Its minimum on [0, 1] is either at an end point or at a root of
// D′ in between.
func nearestPolynomial(c Curve, pt Point, accuracy float64) (distSq, t float64) {
	x, y := c.Polynomials()
	dx := x.Sub(Poly(pt.X))
	dy := y.Sub(Poly(pt.Y))
	d := dx.Mul(dx).Add(dy.Mul(dy))

	distSq, t = c.Start().DistanceSquared(pt), 0
	if r := c.End().DistanceSquared(pt); r < distSq {
		distSq, t = r, 1
	}
	for _, root := range d.Derivative().rootsIn(0, 1, accuracy) {
		if root <= 0 || root >= 1 {
			continue
		}
		if r := c.Eval(root).DistanceSquared(pt); r < distSq {
			distSq, t = r, root
		}
	}
	return distSq, t
}
