package curve

import "math"

// Epsilon is the magnitude below which lengths, radii and denominators are
// treated as zero.
const Epsilon = 1e-12

// AngleNorm returns the angle theta in the range [0, 2π).
func AngleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if theta >= 2.0*math.Pi {
		theta = 0.0
	}
	return theta
}

// IsAngleBetween reports whether theta lies on the sweep from start to
// start+sweep, end points included. A negative sweep runs clockwise. Angles
// may lie outside [0, 2π); they are compared modulo 2π, so the predicate is
// correct for sweeps that cross the 0/2π seam.
func IsAngleBetween(theta, start, sweep float64) bool {
	if math.Abs(sweep) >= 2.0*math.Pi {
		return true
	}
	lower := start
	if sweep < 0.0 {
		lower = start + sweep
		sweep = -sweep
	}
	const slack = 1e-9
	return AngleNorm(theta-lower+slack) <= sweep+2.0*slack
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
