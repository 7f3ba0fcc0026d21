package curve

import (
	"errors"
	"math"
)

// Arc is an elliptical arc. It is parametrized by angle rather than by t in
// [0, 1]: the point at angle θ is the point at θ on the ellipse with radii
// Radii, rotated by XRotation and moved to Center. The arc runs from
// StartAngle to StartAngle+SweepAngle; a negative SweepAngle runs clockwise.
//
// Arcs with equal radii are circular.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// ArcNearest is the result of [Arc.Nearest].
type ArcNearest struct {
	// Angle is the parameter of the nearest point found.
	Angle float64
	// DistSq is the squared distance between the query point and the point at
	// Angle.
	DistSq float64
	// Converged reports whether the search narrowed its angular step below the
	// configured tolerance. Closed-form results are always converged.
	Converged bool
	// Passes is the number of refinement passes run after the initial
	// sampling.
	Passes int
}

// Take the ellipse radii, how the radii are rotated, and the sweep angle, and return a
// point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// Rotate pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// Eval returns the point at the given angle.
func (a Arc) Eval(angle float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle))
}

func (a Arc) StartPoint() Point {
	return a.Eval(a.StartAngle)
}

func (a Arc) EndPoint() Point {
	return a.Eval(a.StartAngle + a.SweepAngle)
}

// IsCircular reports whether both radii are equal.
func (a Arc) IsCircular() bool {
	return math.Abs(a.Radii.X-a.Radii.Y) <= Epsilon*max(math.Abs(a.Radii.X), math.Abs(a.Radii.Y))
}

// isPoint reports whether the arc has collapsed onto its center.
func (a Arc) isPoint() bool {
	return math.Abs(a.Radii.X) <= Epsilon && math.Abs(a.Radii.Y) <= Epsilon
}

// angleRange returns the arc's angular bounds in increasing order.
func (a Arc) angleRange() (lo, hi float64) {
	lo, hi = a.StartAngle, a.StartAngle+a.SweepAngle
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the arc.
//
// On the full ellipse, each coordinate has exactly two extrema, at angles
// that depend only on the radii and the rotation. The box is that of the
// arc's end points, grown by those extreme points that lie on the sweep.
func (a Arc) BoundingBox() Rect {
	if a.isPoint() {
		return NewRectFromPoint(a.Center)
	}
	bbox := NewRectFromPoints(a.StartPoint(), a.EndPoint())
	sin, cos := math.Sincos(a.XRotation)
	rx, ry := a.Radii.X, a.Radii.Y
	thx := math.Atan2(-ry*sin, rx*cos)
	thy := math.Atan2(ry*cos, rx*sin)
	for _, th := range [4]float64{thx, thx + math.Pi, thy, thy + math.Pi} {
		if IsAngleBetween(th, a.StartAngle, a.SweepAngle) {
			bbox = bbox.UnionPoint(a.Eval(th))
		}
	}
	return bbox
}

// Nearest returns the angle of the point on the arc nearest to pt.
//
// There is no closed form for elliptical arcs. The arc is sampled at
// opts.ArcSearch.Samples equally spaced angles, and the search window is then
// narrowed to one sampling step on either side of the best sample, clipped to
// the arc, for at most opts.ArcSearch.Passes further passes. The search stops
// early once the step is below opts.ArcSearch.Tolerance. It finds the nearest
// point for well-behaved geometry but is not guaranteed to find the global
// minimum.
//
// Circular arcs are solved exactly. An arc with zero radii reports its start
// angle and the distance to its center. Invalid search options, such as fewer
// than two samples, are replaced by the defaults.
func (a Arc) Nearest(pt Point, opts Options) ArcNearest {
	opts = opts.withDefaults()
	if a.isPoint() {
		return ArcNearest{
			Angle:     a.StartAngle,
			DistSq:    pt.DistanceSquared(a.Center),
			Converged: true,
		}
	}
	if a.IsCircular() {
		return a.nearestCircular(pt)
	}

	cfg := opts.ArcSearch
	if errs := cfg.validate(); len(errs) > 0 {
		opts.debug("invalid arc search options, using defaults", "err", errors.Join(errs...))
		cfg = DefaultOptions().ArcSearch
	}
	a0, a1 := a.angleRange()
	best, bestDist := a0, math.Inf(1)
	scan := func(lo, step float64) {
		for i := range cfg.Samples {
			th := lo + float64(i)*step
			if d := pt.DistanceSquared(a.Eval(th)); d < bestDist {
				best, bestDist = th, d
			}
		}
	}

	step := (a1 - a0) / float64(cfg.Samples-1)
	scan(a0, step)
	passes := 0
	for step >= cfg.Tolerance && passes < cfg.Passes {
		lo := max(best-step, a0)
		hi := min(best+step, a1)
		step = (hi - lo) / float64(cfg.Samples-1)
		scan(lo, step)
		passes++
	}

	converged := step < cfg.Tolerance
	if !converged {
		opts.debug("arc nearest point search did not converge",
			"angle", best,
			"step", step,
			"tolerance", cfg.Tolerance,
			"passes", passes)
	}
	return ArcNearest{
		Angle:     best,
		DistSq:    bestDist,
		Converged: converged,
		Passes:    passes,
	}
}

// nearestCircular projects pt radially onto the circle and clamps the
// projection to the arc.
func (a Arc) nearestCircular(pt Point) ArcNearest {
	at := func(th float64) ArcNearest {
		return ArcNearest{Angle: th, DistSq: pt.DistanceSquared(a.Eval(th)), Converged: true}
	}
	v := pt.Sub(a.Center)
	if v.Hypot2() == 0 {
		// Every point of the arc is equally far away.
		return at(a.StartAngle)
	}
	theta := v.Angle() - a.XRotation
	if a.Radii.X < 0 {
		theta += math.Pi
	}
	lo, hi := a.angleRange()
	d := AngleNorm(theta - lo)
	if hi-lo >= 2*math.Pi || d <= hi-lo {
		return at(lo + d)
	}
	start, end := at(lo), at(hi)
	if end.DistSq < start.DistSq {
		return end
	}
	return start
}

// Length returns the arc length.
//
// Circular arcs are measured exactly. For elliptical arcs, the length is
// approximated from the chord c and the sweep Δ as c / (2 sin(Δ/2)) · Δ,
// which is exact for circles and a rough approximation otherwise. The
// approximation degrades as Δ approaches a full turn, where the chord
// vanishes: at 2π − ε it measures the speed at the start point times 2π
// rather than the perimeter. Once sin(Δ/2) is below [Epsilon], and for sweeps
// of a full turn or more, Ramanujan's second approximation of the perimeter
// is used, scaled by Δ/2π.
//
// Only circular arcs and whole turns of an ellipse are reported as
// converged. Use [Arc.IntegratedLength] when accuracy matters.
func (a Arc) Length(opts Options) Estimate {
	sweep := math.Abs(a.SweepAngle)
	if a.isPoint() {
		return exactEstimate(0)
	}
	if a.IsCircular() {
		return exactEstimate(math.Abs(a.Radii.X) * sweep)
	}
	if sweep <= Epsilon {
		return exactEstimate(a.EndPoint().Distance(a.StartPoint()))
	}
	halfSin := math.Sin(0.5 * sweep)
	if sweep >= 2*math.Pi || halfSin <= Epsilon {
		turns := sweep / (2 * math.Pi)
		return Estimate{
			Value:     ellipsePerimeter(a.Radii) * turns,
			Converged: turns == math.Trunc(turns),
		}
	}
	chord := a.EndPoint().Distance(a.StartPoint())
	return Estimate{Value: chord / (2 * halfSin) * sweep}
}

// IntegratedLength returns the arc length by integrating the speed of the
// parametrization with the adaptive Simpson rule configured by opts.Arclen.
func (a Arc) IntegratedLength(opts Options) Estimate {
	rx, ry := a.Radii.X, a.Radii.Y
	lo, hi := a.angleRange()
	return integrateSimpson(func(th float64) float64 {
		sin, cos := math.Sincos(th)
		return math.Hypot(rx*sin, ry*cos)
	}, lo, hi, opts)
}

// ellipsePerimeter returns Ramanujan's second approximation of the perimeter
// of the ellipse with the given radii.
func ellipsePerimeter(radii Vec2) float64 {
	a, b := math.Abs(radii.X), math.Abs(radii.Y)
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}
