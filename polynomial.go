package curve

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// normalizeEpsilon is the magnitude, relative to the largest coefficient, below
// which a leading coefficient is considered to be zero by [Polynomial.Normalize].
const normalizeEpsilon = 1e-14

// Polynomial is a real polynomial in one variable. Coefficients are stored in
// increasing order of power, so that p(t) = p[0] + p[1] t + p[2] t² + …
//
// The zero value (and any polynomial whose coefficients are all zero) is the
// zero polynomial. Methods never modify the receiver.
type Polynomial []float64

// Poly returns the polynomial with the given coefficients, constant term first.
func Poly(coeffs ...float64) Polynomial {
	return Polynomial(slices.Clone(coeffs))
}

// Degree returns the index of the highest non-zero coefficient. The zero
// polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

// Coeff returns the coefficient of tⁱ, which is zero for i beyond the stored
// coefficients.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// Eval evaluates the polynomial at t using Horner's scheme.
func (p Polynomial) Eval(t float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}
	return v
}

// Derivative returns the first derivative of p.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	out := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out
}

// Normalize returns p rescaled so that its leading coefficient is 1.
//
// Leading coefficients that are negligible compared to the largest coefficient
// are dropped first. Such coefficients are typically the result of roundoff,
// for example in the cubic term of a cubic Bézier that is really a raised
// quadratic, and dividing by them would wreck the conditioning of root
// finding. The zero polynomial normalizes to itself.
//
// Normalization preserves roots but not values; evaluate the original
// polynomial when values matter.
func (p Polynomial) Normalize() Polynomial {
	var scale float64
	for _, c := range p {
		scale = max(scale, math.Abs(c))
	}
	if scale == 0 || math.IsNaN(scale) {
		return Polynomial{0}
	}
	n := len(p) - 1
	for n > 0 && math.Abs(p[n]) <= normalizeEpsilon*scale {
		n--
	}
	lead := p[n]
	out := make(Polynomial, n+1)
	for i := range out {
		out[i] = p[i] / lead
	}
	out[n] = 1
	return out
}

// Add returns p + o.
func (p Polynomial) Add(o Polynomial) Polynomial {
	out := make(Polynomial, max(len(p), len(o)))
	for i := range out {
		out[i] = p.Coeff(i) + o.Coeff(i)
	}
	return out
}

// Sub returns p − o.
func (p Polynomial) Sub(o Polynomial) Polynomial {
	out := make(Polynomial, max(len(p), len(o)))
	for i := range out {
		out[i] = p.Coeff(i) - o.Coeff(i)
	}
	return out
}

// Scale returns p multiplied by the scalar f.
func (p Polynomial) Scale(f float64) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c * f
	}
	return out
}

// Mul returns the product p · o.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	if len(p) == 0 || len(o) == 0 {
		return Polynomial{0}
	}
	out := make(Polynomial, len(p)+len(o)-1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] += a * b
		}
	}
	return out
}

// RealRoots returns all real roots of p in increasing order.
//
// Polynomials of degree three or less are solved in closed form. Higher
// degrees are solved by isolating each root between consecutive roots of the
// derivative (themselves found recursively) and refining it with [SolveITP]
// inside the Cauchy bound. Roots of even multiplicity are only reported if the
// polynomial evaluates to exactly zero there.
//
// The zero polynomial and non-zero constants report no roots.
func (p Polynomial) RealRoots() []float64 {
	q := p.Normalize()
	n := len(q) - 1
	if n <= 0 {
		return nil
	}
	if n <= 3 {
		return q.closedFormRoots()
	}
	// Cauchy's bound for a monic polynomial.
	var bound float64
	for _, c := range q[:n] {
		bound = max(bound, math.Abs(c))
	}
	bound += 1
	return q.isolateRoots(-bound, bound, 0)
}

// RootsIn returns the real roots of p in the closed interval [t0, t1], in
// increasing order.
func (p Polynomial) RootsIn(t0, t1 float64) []float64 {
	return p.rootsIn(t0, t1, 0)
}

// rootsIn is RootsIn with an absolute accuracy for roots of degree four and
// higher. An accuracy of zero refines roots to the limits of float64.
func (p Polynomial) rootsIn(t0, t1, accuracy float64) []float64 {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	q := p.Normalize()
	n := len(q) - 1
	if n <= 0 {
		return nil
	}
	if n <= 3 {
		roots := q.closedFormRoots()
		return slices.DeleteFunc(roots, func(t float64) bool {
			return t < t0 || t > t1
		})
	}
	return q.isolateRoots(t0, t1, accuracy)
}

// MinMax returns the minimum and maximum values p takes on [t0, t1].
//
// The extrema are found analytically, as the larger and smaller of the values
// at both ends of the interval and at every critical point inside of it.
func (p Polynomial) MinMax(t0, t1 float64) (lo, hi float64) {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	lo, hi = p.Eval(t0), p.Eval(t1)
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, t := range p.Derivative().RootsIn(t0, t1) {
		v := p.Eval(t)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func (p Polynomial) String() string {
	if len(p) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p {
		if c == 0 && len(p) > 1 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch i {
		case 0:
		case 1:
			sb.WriteString("t")
		default:
			sb.WriteString("t^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// closedFormRoots solves a normalized polynomial of degree 1 to 3.
func (q Polynomial) closedFormRoots() []float64 {
	switch len(q) - 1 {
	case 1:
		return []float64{-q[0]}
	case 2:
		roots, n := SolveQuadratic(q[0], q[1], q[2])
		return slices.Clone(roots[:n])
	case 3:
		roots, n := SolveCubic(q[0], q[1], q[2], q[3])
		out := slices.Clone(roots[:n])
		slices.Sort(out)
		return slices.Compact(out)
	default:
		panic("unreachable")
	}
}

// isolateRoots finds the roots of the normalized polynomial q in [a, b].
//
// Between two consecutive critical points q is monotonic, so each such
// interval contains at most one root, and it contains one exactly when q
// changes sign across it.
func (q Polynomial) isolateRoots(a, b, accuracy float64) []float64 {
	crit := q.Derivative().rootsIn(a, b, accuracy)
	pts := make([]float64, 0, len(crit)+2)
	pts = append(pts, a)
	for _, c := range crit {
		if c > pts[len(pts)-1] && c < b {
			pts = append(pts, c)
		}
	}
	pts = append(pts, b)

	var roots []float64
	ya := q.Eval(pts[0])
	if ya == 0 {
		roots = append(roots, pts[0])
	}
	for i := 1; i < len(pts); i++ {
		lo, hi := pts[i-1], pts[i]
		yb := q.Eval(hi)
		if yb == 0 {
			roots = append(roots, hi)
		} else if ya != 0 && math.Signbit(ya) != math.Signbit(yb) {
			roots = append(roots, bracketRoot(q, lo, hi, ya, yb, accuracy))
		}
		ya = yb
	}
	return roots
}

// bracketRoot finds the single root of p in [a, b], given p(a) = ya and
// p(b) = yb of opposite signs.
func bracketRoot(p Polynomial, a, b, ya, yb, accuracy float64) float64 {
	f := p.Eval
	if ya > 0 {
		f = func(t float64) float64 { return -p.Eval(t) }
		ya, yb = -ya, -yb
	}
	width := b - a
	epsilon := max(accuracy, width*1e-15, math.Abs(a)*1e-16, math.Abs(b)*1e-16, 1e-300)
	x := SolveITP(f, a, b, epsilon, 1, 0.2/width, ya, yb)

	// Polish with Newton steps; ITP accuracy is relative to the bracket, which
	// can be wide when it comes from the Cauchy bound.
	d := p.Derivative()
	fx := p.Eval(x)
	for range 3 {
		dx := d.Eval(x)
		if dx == 0 || fx == 0 {
			break
		}
		nx := x - fx/dx
		if nx < a || nx > b {
			break
		}
		nfx := p.Eval(nx)
		if math.Abs(nfx) >= math.Abs(fx) {
			break
		}
		x, fx = nx, nfx
	}
	return x
}
