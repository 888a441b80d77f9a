package roots

import "math"

// Secant — two-point derivative-free root search
//
// Description:
//
//	Secant approximates the Newton step by replacing the derivative with
//	the slope through the last two iterates, so it needs no derivative
//	function. The interval endpoints a and b double as the two starting
//	points and as the escape fence for later iterates.
//
// Algorithm Outline:
//  1. prev = a, xn = b.
//  2. Up to MaxIter times:
//     fxn = f(xn); fprev = f(prev)
//     if |fxn − fprev| < Tol     → ErrNearZeroDenominator
//     next = xn − fxn·(xn−prev) / (fxn−fprev)
//     if next < a or next > b    → ErrOutOfDomain
//     if |next − xn| < Tol       → next is the root
//     prev = xn; xn = next
//  3. Cap exhausted → ErrNoConvergence.
//
// The division guard tests the function-value difference against Tol —
// a coarser criterion than an exact zero check, tuned to reject flat
// secants before they produce a wild step.
//
// Complexity:
//
//	Time   = O(MaxIter) function evaluations; order ≈ 1.618 near a
//	         simple root.
//	Memory = O(1)
//
// Errors:
//   - ErrNilFunc             — f is nil.
//   - ErrInvalidInterval     — endpoints are not finite with a < b.
//   - ErrNearZeroDenominator — |f(xn)−f(prev)| < Tol at some iterate.
//   - ErrOutOfDomain         — an iterate left [a,b].
//   - ErrNoConvergence       — iteration cap exhausted.
//
// On error the returned root is 0 and must not be used.
func Secant(f Func, a, b float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if err := validateInterval(a, b); err != nil {
		return 0, err
	}
	o := buildOptions(opts)

	prev, xn := a, b
	for iter := 0; iter < o.MaxIter; iter++ {
		fxn := f(xn)
		fprev := f(prev)
		if math.Abs(fxn-fprev) < o.Tol {
			return 0, ErrNearZeroDenominator
		}
		next := xn - fxn*(xn-prev)/(fxn-fprev)
		if next < a || next > b {
			return 0, ErrOutOfDomain
		}
		if math.Abs(next-xn) < o.Tol {
			return next, nil
		}
		prev, xn = xn, next
	}

	return 0, ErrNoConvergence
}
