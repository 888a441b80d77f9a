package roots

import "math"

// RegulaFalsi — false-position root search
//
// Description:
//
//	RegulaFalsi keeps a sign-changing bracket like Bisection, but picks
//	the interior point by linear interpolation between (a, f(a)) and
//	(b, f(b)) instead of halving. On smooth functions the interpolated
//	point lands much closer to the root, at the cost of one endpoint
//	often staying fixed (so the bracket width rarely collapses; the
//	|f(c)| test is what usually fires).
//
// Algorithm Outline:
//  1. Require a strict sign change: f(a)·f(b) < 0. An exact zero at
//     either endpoint fails with ErrNoBracket — stricter than
//     Bisection, which returns such an endpoint immediately.
//  2. Up to MaxIter times:
//     c = a − f(a)·(b−a) / (f(b)−f(a))
//     if |f(c)| < Tol or |b-a| < Tol → c is the root
//     if f(a)·f(c) > 0 → a = c
//     else             → b = c
//  3. Cap exhausted → ErrNoConvergence.
//
// The interpolation denominator f(b)−f(a) carries no explicit guard:
// the strict sign-change precondition makes f(a) = f(b) impossible at
// entry, and the bracket-update rule keeps the endpoint signs opposite
// on every later step.
//
// Complexity:
//
//	Time   = O(MaxIter) function evaluations; superlinear on smooth f.
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc         — f is nil.
//   - ErrInvalidInterval — endpoints are not finite with a < b.
//   - ErrNoBracket       — f(a)·f(b) ≥ 0.
//   - ErrNoConvergence   — iteration cap exhausted.
//
// On error the returned root is 0 and must not be used.
func RegulaFalsi(f Func, a, b float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	o := buildOptions(opts)

	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return 0, ErrNoBracket
	}

	for iter := 0; iter < o.MaxIter; iter++ {
		c := a - fa*(b-a)/(fb-fa)
		fc := f(c)
		if math.Abs(fc) < o.Tol || math.Abs(b-a) < o.Tol {
			return c, nil
		}
		if fa*fc > 0 {
			a, fa = c, fc
		} else {
			b, fb = c, fc
		}
	}

	return 0, ErrNoConvergence
}
