package curve

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ErrUnsupportedDegree is wrapped by errors of [NewCurve] when asked to build a
// curve of degree four or higher.
var ErrUnsupportedDegree = errors.New("unsupported curve degree")

// Degree is the polynomial degree of a [Curve].
type Degree int

const (
	Constant Degree = iota
	Linear
	Quadratic
	Cubic
)

func (d Degree) String() string {
	switch d {
	case Constant:
		return "Constant"
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	default:
		return "Degree(" + strconv.Itoa(int(d)) + ")"
	}
}

// Curve is a planar curve given by a pair of polynomials in a parameter t in
// the range [0, 1].
//
// The set of curves is closed: it is implemented by [PointCurve], [Line],
// [QuadBez] and [CubicBez], one type per degree.
type Curve interface {
	// Degree returns the degree of the curve's type. A QuadBez whose control
	// points are collinear is still Quadratic.
	Degree() Degree
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
	// Polynomials returns the curve in power basis, as the polynomials X(t)
	// and Y(t).
	Polynomials() (x, y Polynomial)
	// BoundingBox returns the smallest axis-aligned rectangle that encloses
	// the curve in the range [0, 1].
	BoundingBox() Rect
	// Nearest returns the parameter of the point on the curve nearest to pt,
	// and the squared distance to it. Accuracy bounds the error of the
	// parameter where it has to be found iteratively.
	Nearest(pt Point, accuracy float64) (distSq, t float64)
	// Length returns the arc length of the curve on [0, 1].
	Length(opts Options) Estimate

	isCurve()
}

var _ Curve = PointCurve{}
var _ Curve = Line{}
var _ Curve = QuadBez{}
var _ Curve = CubicBez{}

// NewCurve returns the Bézier curve tracing the same points as the polynomial
// pair (x(t), y(t)) for t in [0, 1]. The type of the curve is chosen by the
// larger of the two degrees.
//
// Polynomials of degree four or higher are rejected with an error wrapping
// [ErrUnsupportedDegree].
func NewCurve(x, y Polynomial) (Curve, error) {
	deg := max(x.Degree(), y.Degree())
	a := func(i int) Vec2 { return Vec(x.Coeff(i), y.Coeff(i)) }
	p0 := Point(a(0))
	switch Degree(deg) {
	case Constant:
		return PointCurve{P: p0}, nil
	case Linear:
		return Line{P0: p0, P1: p0.Translate(a(1))}, nil
	case Quadratic:
		a1, a2 := a(1), a(2)
		return QuadBez{
			P0: p0,
			P1: p0.Translate(a1.Mul(0.5)),
			P2: p0.Translate(a1.Add(a2)),
		}, nil
	case Cubic:
		a1, a2, a3 := a(1), a(2), a(3)
		return CubicBez{
			P0: p0,
			P1: p0.Translate(a1.Mul(1.0 / 3.0)),
			P2: p0.Translate(a1.Mul(2.0 / 3.0).Add(a2.Mul(1.0 / 3.0))),
			P3: p0.Translate(a1.Add(a2).Add(a3)),
		}, nil
	default:
		return nil, fmt.Errorf("curve of degree %d: %w", deg, ErrUnsupportedDegree)
	}
}

// Bounds returns the bounding box of c. It is the same as c.BoundingBox().
func Bounds(c Curve) Rect {
	return c.BoundingBox()
}

// NearestParameter returns the parameter in [0, 1] of the point on c nearest
// to pt.
func NearestParameter(c Curve, pt Point) float64 {
	return NearestParameterOpt(c, pt, DefaultOptions())
}

// NearestParameterOpt is like [NearestParameter], but finds the parameter
// with opts.Accuracy.
func NearestParameterOpt(c Curve, pt Point, opts Options) float64 {
	_, t := c.Nearest(pt, opts.withDefaults().Accuracy)
	return t
}

// Distance returns the distance between pt and the point on c nearest to it.
func Distance(c Curve, pt Point) float64 {
	return DistanceOpt(c, pt, DefaultOptions())
}

// DistanceOpt is like [Distance], but locates the nearest point with
// opts.Accuracy.
func DistanceOpt(c Curve, pt Point, opts Options) float64 {
	distSq, _ := c.Nearest(pt, opts.withDefaults().Accuracy)
	return math.Sqrt(distSq)
}

// Length returns the arc length of c, computed with [DefaultOptions].
func Length(c Curve) Estimate {
	return c.Length(DefaultOptions())
}

// LengthOpt returns the arc length of c, computed with the given options.
func LengthOpt(c Curve, opts Options) Estimate {
	return c.Length(opts.withDefaults())
}

// Extrema returns the parameters in the open interval (0, 1) at which either
// coordinate of c reaches a local extremum, in increasing order.
func Extrema(c Curve) []float64 {
	x, y := c.Polynomials()
	out := append(x.Derivative().RootsIn(0, 1), y.Derivative().RootsIn(0, 1)...)
	out = slices.DeleteFunc(out, func(t float64) bool { return t <= 0 || t >= 1 })
	slices.Sort(out)
	return slices.Compact(out)
}

// ExtremaRanges returns parameter ranges, each of which is monotonic in both
// coordinates.
func ExtremaRanges(c Curve) [][2]float64 {
	ex := Extrema(c)
	out := make([][2]float64, 0, len(ex)+1)
	var t0 float64
	for _, t := range ex {
		out = append(out, [2]float64{t0, t})
		t0 = t
	}
	return append(out, [2]float64{t0, 1})
}
