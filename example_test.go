package curve_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/shkyrockett/geom/curve"
)

func ExampleNewCurve() {
	// x(t) = 2t, y(t) = t²
	c, err := curve.NewCurve(curve.Poly(0, 2), curve.Poly(0, 0, 1))
	if err != nil {
		panic(err)
	}
	q := c.(curve.QuadBez)
	fmt.Println(c.Degree())
	fmt.Printf("(%.1f, %.1f) (%.1f, %.1f) (%.1f, %.1f)\n", q.P0.X, q.P0.Y, q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)

	_, err = curve.NewCurve(curve.Poly(0, 0, 0, 0, 1), curve.Poly(1))
	fmt.Println(errors.Is(err, curve.ErrUnsupportedDegree))
	// Output:
	// Quadratic
	// (0.0, 0.0) (1.0, 0.0) (2.0, 1.0)
	// true
}

func ExampleLength() {
	line := curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(3, 4)}
	fmt.Printf("%.3f\n", curve.Length(line).Value)

	// Cubic Béziers are integrated numerically.
	cubic := curve.CubicBez{P0: curve.Pt(0, 0), P1: curve.Pt(1, 0), P2: curve.Pt(2, 0), P3: curve.Pt(3, 0)}
	est := curve.Length(cubic)
	fmt.Printf("%.3f %t\n", est.Value, est.Converged)
	// Output:
	// 5.000
	// 3.000 true
}

func ExampleDistance() {
	line := curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(2, 0)}
	fmt.Printf("%.3f\n", curve.Distance(line, curve.Pt(1, 1)))
	// The nearest point of a segment may be one of its end points.
	fmt.Printf("%.3f\n", curve.Distance(line, curve.Pt(5, 4)))
	fmt.Printf("%.3f\n", curve.NearestParameter(line, curve.Pt(1.5, -3)))
	// Output:
	// 1.000
	// 5.000
	// 0.750
}

func ExampleBounds() {
	c := curve.CubicBez{P0: curve.Pt(0, 0), P1: curve.Pt(0, 1), P2: curve.Pt(1, 1), P3: curve.Pt(1, 0)}
	r := curve.Bounds(c)
	fmt.Printf("x: [%.3f, %.3f] y: [%.3f, %.3f]\n", r.X0, r.X1, r.Y0, r.Y1)
	// Output:
	// x: [0.000, 1.000] y: [0.000, 0.750]
}

func ExampleArc_BoundingBox() {
	// The upper half of an ellipse.
	a := curve.Arc{
		Center:     curve.Pt(1, 1),
		Radii:      curve.Vec(2, 1),
		SweepAngle: math.Pi,
	}
	r := a.BoundingBox()
	fmt.Printf("x: [%.3f, %.3f] y: [%.3f, %.3f]\n", r.X0, r.X1, r.Y0, r.Y1)
	// Output:
	// x: [-1.000, 3.000] y: [1.000, 2.000]
}

func ExampleArc_Nearest() {
	a := curve.Arc{Radii: curve.Vec(3, 1), SweepAngle: math.Pi / 2}
	res := a.Nearest(curve.Pt(2.5, 1.5), curve.Options{})
	fmt.Printf("angle %.2f, distance %.2f, converged %t\n", res.Angle, math.Sqrt(res.DistSq), res.Converged)
	// Output:
	// angle 0.75, distance 0.87, converged true
}

func ExampleParseOptions() {
	opts, err := curve.ParseOptions([]byte(`
arclen:
  tolerance: 1e-6
arc_search:
  samples: 50
`))
	if err != nil {
		panic(err)
	}
	fmt.Println(opts.Arclen.Tolerance, opts.Arclen.MaxSubdivisions, opts.ArcSearch.Samples, opts.ArcSearch.Passes)

	_, err = curve.ParseOptions([]byte("arc_search:\n  samples: 1\n"))
	fmt.Println(errors.Is(err, curve.ErrInvalidOptions))
	// Output:
	// 1e-06 1024 50 3
	// true
}
