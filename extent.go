package curve

// polynomialBounds returns the bounding box of a polynomial curve from the
// range of each coordinate polynomial on [0, 1]. The end points are added
// as evaluated by the curve, so that they are always contained exactly.
func polynomialBounds(c Curve) Rect {
	x, y := c.Polynomials()
	x0, x1 := x.MinMax(0, 1)
	y0, y1 := y.MinMax(0, 1)
	return Rect{x0, y0, x1, y1}.UnionPoint(c.Start()).UnionPoint(c.End())
}
