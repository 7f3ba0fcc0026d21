package curve

import (
	"errors"
	"math"
)

// Estimate is the result of a measurement that may be approximate.
type Estimate struct {
	Value float64
	// Converged reports whether the iteration that produced Value met its
	// tolerance. Closed-form results are always converged.
	Converged bool
	// Iterations is the number of refinement steps taken. It is zero for
	// closed-form results.
	Iterations int
}

func exactEstimate(v float64) Estimate {
	return Estimate{Value: v, Converged: true}
}

// integrateSimpson integrates f over [a, b] with the composite Simpson rule.
//
// It starts with two subintervals and doubles their number each step, reusing
// the samples of the previous step: the old odd samples become even samples,
// and only the new odd samples are evaluated. Integration stops once the
// relative change between two estimates is at most opts.Arclen.Tolerance, as
// long as at least opts.Arclen.MinSubdivisions subintervals are in use, or
// once the number of subintervals reaches opts.Arclen.MaxSubdivisions. Invalid
// options are replaced by the defaults.
func integrateSimpson(f func(float64) float64, a, b float64, opts Options) Estimate {
	opts = opts.withDefaults()
	cfg := opts.Arclen
	if errs := cfg.validate(); len(errs) > 0 {
		opts.debug("invalid arc length options, using defaults", "err", errors.Join(errs...))
		cfg = DefaultOptions().Arclen
	}
	n := 2
	h := (b - a) / 2
	ends := f(a) + f(b)
	odd := f(a + h)
	var even float64
	est := h / 3 * (ends + 4*odd)

	var iters int
	for n < cfg.MaxSubdivisions {
		even += odd
		h *= 0.5
		n *= 2
		odd = 0
		for i := 1; i < n; i += 2 {
			odd += f(a + float64(i)*h)
		}
		next := h / 3 * (ends + 4*odd + 2*even)
		iters++
		delta := math.Abs(next - est)
		est = next
		if n >= cfg.MinSubdivisions && delta <= cfg.Tolerance*math.Abs(est) {
			return Estimate{Value: est, Converged: true, Iterations: iters}
		}
	}
	opts.debug("arc length integration did not converge",
		"estimate", est,
		"subdivisions", n,
		"tolerance", cfg.Tolerance)
	return Estimate{Value: est, Iterations: iters}
}
