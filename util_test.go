package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})

// rotate rotates p about the origin.
func rotate(p Point, angle float64) Point {
	return Point(rotatePt(Vec2(p), angle))
}

// sampleMinDistSq returns the smallest squared distance between pt and n+1
// equally spaced samples of c.
func sampleMinDistSq(c Curve, pt Point, n int) float64 {
	best := math.Inf(1)
	for i := range n + 1 {
		best = min(best, c.Eval(float64(i)/float64(n)).DistanceSquared(pt))
	}
	return best
}

func approxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

var vecComparer = cmp.Comparer(func(v1, v2 Vec2) bool {
	return v1.Sub(v2).Hypot() <= 1e-12
})
