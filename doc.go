// Package curve answers three metric questions about planar curves: where is
// the point on a curve nearest to a given point, what is the smallest
// axis-aligned rectangle enclosing a curve, and how long is a curve.
//
// # Curves
//
// [Curve] describes curves given by a pair of polynomials X(t) and Y(t),
// evaluated for t ∈ [0, 1]. There is one implementation per degree:
//   - [PointCurve] (constant)
//   - [Line] (linear)
//   - [QuadBez] (quadratic Bézier)
//   - [CubicBez] (cubic Bézier)
//
// [NewCurve] turns a pair of power-basis polynomials into the matching curve.
// Polynomials of higher degree are not supported.
//
// Elliptical and circular arcs are not polynomial and are represented by
// [Arc], which is parametrized by angle. [Circle] is a convenience for full
// circles.
//
// # Queries
//
// The package-level functions [Bounds], [NearestParameter], [Distance] and
// [Length] work on any [Curve]. The same operations are available as methods,
// which additionally accept an accuracy or [Options].
//
// Bounding boxes of Béziers are tight: they are computed from the roots of the
// coordinates' derivatives. Arcs compute theirs from the angles at which the
// rotated ellipse is extremal.
//
// Nearest points on Béziers are found from the real roots of the derivative of
// the squared distance, a polynomial of degree three for quadratics and five
// for cubics. Arcs, lacking a polynomial form, use a coarse-to-fine angular
// search ([Arc.Nearest]).
//
// Lines, circular arcs and quadratic Béziers have closed-form lengths. Cubic
// Béziers are measured with the adaptive Simpson rule. Results of iterative
// methods are reported as an [Estimate] or [ArcNearest], which state whether
// the iteration converged. Non-convergence is not an error: the best estimate
// is returned all the same, and callers decide whether it is good enough.
//
// # Polynomials
//
// [Polynomial] is the algebraic workhorse of the package. It supports
// evaluation, differentiation, arithmetic, and finding real roots and extrema
// on intervals. Roots of polynomials up to degree three are computed in closed
// form by [SolveQuadratic] and [SolveCubic]. Higher degrees are solved by
// isolating roots between the roots of the derivative and refining them with
// [SolveITP].
//
// # Configuration
//
// [Options] holds the tolerances and iteration budgets of the iterative
// methods. It can be loaded from YAML with [LoadOptions] and carries an
// optional [log/slog.Logger] that receives a debug record whenever an
// iteration stops before reaching its tolerance.
//
// # Concurrency
//
// All types are values and all functions are pure. Everything in this package
// is safe for concurrent use.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - Ramanujan's approximations of the [perimeter of an ellipse]
//   - https://github.com/Pomax/BezierInfo-2/issues/77
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [perimeter of an ellipse]: https://en.wikipedia.org/wiki/Ellipse#Circumference
package curve
