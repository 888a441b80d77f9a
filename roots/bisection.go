package roots

import "math"

// Bisection — interval-halving root search
//
// Description:
//
//	Bisection locates a root of f inside [a,b] by repeatedly halving the
//	interval and keeping the half across which f changes sign. It is the
//	slowest of the four methods here but the most robust: once a valid
//	bracket exists, the interval width shrinks by half on every step.
//
// Algorithm Outline:
//  1. If f(a) or f(b) is exactly zero, return that endpoint immediately.
//  2. Require f(a)·f(b) ≤ 0; otherwise fail with ErrNoBracket.
//  3. Up to MaxIter times:
//     c = (a+b)/2
//     if |f(c)| < Tol or |b-a| < Tol → c is the root
//     if f(a)·f(c) > 0 → a = c   (root lies in [c,b])
//     else             → b = c   (root lies in [a,c])
//  4. Cap exhausted → ErrNoConvergence.
//
// Complexity:
//
//	Time   = O(MaxIter) function evaluations, in practice
//	         O(log((b-a)/Tol)) because the bracket halves each step.
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc         — f is nil.
//   - ErrInvalidInterval — endpoints are not finite with a < b.
//   - ErrNoBracket       — f(a)·f(b) > 0.
//   - ErrNoConvergence   — iteration cap exhausted.
//
// On error the returned root is 0 and must not be used.
func Bisection(f Func, a, b float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	o := buildOptions(opts)

	fa, fb := f(a), f(b)
	// Exact roots at the endpoints short-circuit the whole search.
	// This fast path is deliberately bisection-only: RegulaFalsi rejects
	// the same inputs with ErrNoBracket (its precondition is strict).
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoBracket
	}

	for iter := 0; iter < o.MaxIter; iter++ {
		c := (a + b) / 2
		fc := f(c)
		if math.Abs(fc) < o.Tol || math.Abs(b-a) < o.Tol {
			return c, nil
		}
		if fa*fc > 0 {
			// Same sign at a and c: the sign change is in [c,b].
			a, fa = c, fc
		} else {
			b = c
		}
	}

	return 0, ErrNoConvergence
}
