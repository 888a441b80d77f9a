package roots

import "math"

// NewtonRaphson — derivative-driven root search
//
// Description:
//
//	NewtonRaphson iterates x ← x − f(x)/g(x) from an initial guess x0,
//	where g is the derivative of f supplied by the caller (no numeric or
//	symbolic differentiation happens here). Convergence is quadratic
//	near a simple root, but the method is open: it carries no bracket,
//	so [a,b] serves as an escape fence rather than a guarantee.
//
// Algorithm Outline:
//  1. xn = x0.
//  2. Up to MaxIter times:
//     fx = f(xn); dfx = g(xn)
//     if |dfx| < Tol            → ErrZeroDerivative
//     next = xn − fx/dfx
//     if next < a or next > b   → ErrOutOfDomain
//     if |next − xn| < Tol      → next is the root
//     xn = next
//  3. Cap exhausted → ErrNoConvergence.
//
// Unlike the bracketing methods, the stop test is on step size, not on
// |f|: for well-behaved f a vanishing step implies a vanishing residual.
//
// Complexity:
//
//	Time   = O(MaxIter) evaluations of f and g; typically a handful of
//	         iterations near a simple root.
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc         — f or g is nil.
//   - ErrInvalidInterval — endpoints are not finite with a < b.
//   - ErrZeroDerivative  — |g(xn)| < Tol at some iterate.
//   - ErrOutOfDomain     — an iterate left [a,b].
//   - ErrNoConvergence   — iteration cap exhausted.
//
// On error the returned root is 0 and must not be used.
func NewtonRaphson(f, g Func, a, b, x0 float64, opts ...Option) (float64, error) {
	if f == nil || g == nil {
		return 0, ErrNilFunc
	}
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	o := buildOptions(opts)

	xn := x0
	for iter := 0; iter < o.MaxIter; iter++ {
		fx := f(xn)
		dfx := g(xn)
		if math.Abs(dfx) < o.Tol {
			return 0, ErrZeroDerivative
		}
		next := xn - fx/dfx
		if next < a || next > b {
			return 0, ErrOutOfDomain
		}
		if math.Abs(next-xn) < o.Tol {
			return next, nil
		}
		xn = next
	}

	return 0, ErrNoConvergence
}
