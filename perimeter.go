package curve

// PolylineLength returns the length of the open polyline through pts, the sum
// of the distances between consecutive points. Fewer than two points have
// length zero.
func PolylineLength(pts []Point) float64 {
	var sum float64
	for i := 1; i < len(pts); i++ {
		sum += pts[i].Distance(pts[i-1])
	}
	return sum
}

// ClosedPerimeter returns the perimeter of the polygon with vertices pts. It
// is the length of the polyline plus the closing edge from the last point
// back to the first.
func ClosedPerimeter(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	return PolylineLength(pts) + pts[len(pts)-1].Distance(pts[0])
}
