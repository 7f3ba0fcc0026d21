package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezArclen(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	est := q.Length(Options{})
	if !est.Converged || est.Iterations != 0 {
		t.Errorf("closed form reported %+v", est)
	}
	if error := math.Abs(est.Value - want); error > 1e-12 {
		t.Errorf("got error %g", error)
	}
}

func TestQuadBezArclenNearlyStraight(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.5, 0.001),
		Pt(1.0, 0.0),
	}
	// The same curve, evaluated through the general cubic integrator with a
	// tight tolerance.
	ref := q.Raise().Length(Options{Arclen: ArclenOptions{Tolerance: 1e-12, MaxSubdivisions: 1 << 16}})
	if error := math.Abs(Length(q).Value - ref.Value); error > 1e-9 {
		t.Errorf("got error %g", error)
	}
}

func TestQuadBezArclenCollinear(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	if got, want := Length(q).Value, 2*math.Sqrt2; math.Abs(got-want) > 1e-15 {
		t.Errorf("got %v, want %v", got, want)
	}

	// The curve overshoots its end point and comes back.
	q = QuadBez{
		Pt(-1.0, 0.0),
		Pt(1.03, 0.0),
		Pt(1.0, 0.0),
	}
	want := 2*2.03*2.03/2.06 - 2
	if error := math.Abs(Length(q).Value - want); error > 1e-12 {
		t.Errorf("got error %g", error)
	}

	// All control points coincide.
	q = QuadBez{Pt(3, 3), Pt(3, 3), Pt(3, 3)}
	diff(t, Estimate{Value: 0, Converged: true}, Length(q))
}

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	q0, q1 := q.Subdivide()
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / n
		assertNear(t, q.Eval(tt*0.5), q0.Eval(tt), 1e-12)
		assertNear(t, q.Eval(0.5+tt*0.5), q1.Eval(tt), 1e-12)
	}
	if got, want := Length(q0).Value+Length(q1).Value, Length(q).Value; math.Abs(got-want) > 1e-10 {
		t.Errorf("got %v for halves, %v for whole", got, want)
	}
}

func TestQuadBezDifferentiate(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	deriv := q.Differentiate()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		const delta = 1e-6
		p := q.Eval(ts)
		p1 := q.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if error := d.Sub(dApprox).Hypot(); error > delta*2 {
			t.Errorf("got difference of %g, want at most %g", error, delta*2)
		}
	}
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	qd := q.Differentiate()
	cd := c.Differentiate()
	const epsilon = 1e-12
	const n = 10

	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(ts), c.Eval(ts), epsilon)
		assertNear(t, qd.Eval(ts), cd.Eval(ts), epsilon)
	}
}

func TestQuadbezNearest(t *testing.T) {
	verify := func(q QuadBez, pt Point, want float64) {
		t.Helper()
		_, got := q.Nearest(pt, 1e-3)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	// y = x^2
	q := QuadBez{Pt(-1.0, 1.0), Pt(0.0, -1.0), Pt(1.0, 1.0)}
	verify(q, Pt(0.0, 0.0), 0.5)
	verify(q, Pt(0.0, 0.1), 0.5)
	verify(q, Pt(0.0, -0.1), 0.5)
	verify(q, Pt(0.5, 0.25), 0.75)
	verify(q, Pt(1.0, 1.0), 1.0)
	verify(q, Pt(1.1, 1.1), 1.0)
	verify(q, Pt(-1.1, 1.1), 0.0)
	const angle = 0.5
	qr := QuadBez{rotate(q.P0, angle), rotate(q.P1, angle), rotate(q.P2, angle)}
	verify(qr, rotate(Pt(0.5, 0.25), angle), 0.75)
}

func TestQuadBezNearestLowOrder(t *testing.T) {
	// The squared distance of a straight quadratic has a vanishing leading
	// coefficient.
	verify := func(q QuadBez, pt Point, want float64) {
		t.Helper()
		_, got := q.Nearest(pt, 1e-3)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	q := QuadBez{Pt(-1.0, 0.0), Pt(0.0, 0.0), Pt(1.0, 0.0)}

	verify(q, Pt(0.0, 0.0), 0.5)
	verify(q, Pt(0.0, 1.0), 0.5)
}

func TestQuadBezNearestSampled(t *testing.T) {
	curves := []QuadBez{
		{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
		{Pt(0, 0), Pt(10, 0), Pt(0, 1)},
		{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)},
	}
	pts := []Point{Pt(5, 2), Pt(5, 20), Pt(-3, -3), Pt(7, 0.5), Pt(4.5, 4.5)}
	for _, q := range curves {
		for _, pt := range pts {
			distSq, _ := q.Nearest(pt, DefaultAccuracy)
			if sampled := sampleMinDistSq(q, pt, 1000); distSq > sampled+1e-9 {
				t.Errorf("%v, %v: got %v, sampling found %v", q, pt, distSq, sampled)
			}
		}
	}
}

func TestQuadbezExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	// y = x^2
	q := QuadBez{Pt(-1.0, 1.0), Pt(0.0, -1.0), Pt(1.0, 1.0)}
	want := []float64{0.5}
	diff(t, want, Extrema(q), approx)

	q = QuadBez{Pt(0.0, 0.5), Pt(1.0, 1.0), Pt(0.5, 0.0)}
	want = []float64{1.0 / 3.0, 2.0 / 3.0}
	diff(t, want, Extrema(q), approx)

	// Reverse direction
	q = QuadBez{Pt(0.5, 0.0), Pt(1.0, 1.0), Pt(0.0, 0.5)}
	want = []float64{1.0 / 3.0, 2.0 / 3.0}
	diff(t, want, Extrema(q), approx)
}

func TestQuadBezBoundingBox(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	q := QuadBez{Pt(-1.0, 1.0), Pt(0.0, -1.0), Pt(1.0, 1.0)}
	diff(t, Rect{-1, 0, 1, 1}, q.BoundingBox(), approx)

	q = QuadBez{Pt(0.0, 0.5), Pt(1.0, 1.0), Pt(0.5, 0.0)}
	// x peaks at t = 2/3, y at t = 1/3.
	diff(t, Rect{0, 0, 2.0 / 3.0, 2.0 / 3.0}, q.BoundingBox(), approx)
}
