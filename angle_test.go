package curve

import (
	"math"
	"testing"
)

func TestAngleNorm(t *testing.T) {
	f := func(in, want float64) {
		t.Helper()
		if got := AngleNorm(in); math.Abs(got-want) > 1e-12 {
			t.Errorf("AngleNorm(%v) = %v, want %v", in, got, want)
		}
	}
	f(0, 0)
	f(1, 1)
	f(2*math.Pi, 0)
	f(-math.Pi/2, 3*math.Pi/2)
	f(5*math.Pi, math.Pi)
	f(-7*math.Pi/2, math.Pi/2)

	if got := AngleNorm(-1e-300); got < 0 || got >= 2*math.Pi {
		t.Errorf("AngleNorm(-1e-300) = %v, outside of [0, 2π)", got)
	}
}

func TestIsAngleBetween(t *testing.T) {
	f := func(theta, start, sweep float64, want bool) {
		t.Helper()
		if got := IsAngleBetween(theta, start, sweep); got != want {
			t.Errorf("IsAngleBetween(%v, %v, %v) = %t, want %t", theta, start, sweep, got, want)
		}
	}
	f(0.5, 0, 1, true)
	f(1.5, 0, 1, false)
	// End points are included.
	f(0, 0, 1, true)
	f(1, 0, 1, true)
	// Clockwise sweeps.
	f(-0.5, 0, -1, true)
	f(0.5, 0, -1, false)
	// Sweeps across the 0/2π seam.
	f(0, -0.5, 1, true)
	f(2*math.Pi, -0.5, 1, true)
	f(math.Pi, -0.5, 1, false)
	f(0.1, 2*math.Pi-0.2, 0.4, true)
	// Angles outside [0, 2π).
	f(0.5+4*math.Pi, 0, 1, true)
	f(-2*math.Pi+0.5, 0, 1, true)
	// Full turns include everything.
	f(3, 0, 2*math.Pi, true)
	f(3, 1, -7, true)
	// An empty sweep contains only its start.
	f(1, 1, 0, true)
	f(1.1, 1, 0, false)
}

func TestClamp(t *testing.T) {
	for _, tt := range []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}} {
		if got := clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("clamp(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
