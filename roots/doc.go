// Package roots provides four classic scalar root-finding routines:
// Bisection, RegulaFalsi (false position), NewtonRaphson and Secant.
//
// Overview:
//
//   - Every routine is a free function: it takes the caller-supplied
//     function(s), the interval, optional functional options, and
//     returns (root, error). No solver object, no shared state, no I/O.
//   - Bisection and RegulaFalsi are bracketing methods: they require a
//     sign change over [a,b] and keep the root bracketed on every step.
//   - NewtonRaphson and Secant are open methods: they iterate from
//     starting point(s) and use [a,b] only as an escape fence, failing
//     with ErrOutOfDomain the moment an iterate leaves it.
//
// When to use:
//
//   - Bisection — you have a guaranteed sign change and want certainty
//     over speed.
//   - RegulaFalsi — same guarantee, noticeably fewer iterations on
//     smooth functions.
//   - NewtonRaphson — you can supply the derivative and start near the
//     root; fastest of the four.
//   - Secant — Newton-like speed without a derivative.
//
// Choosing between the bracketing methods, note the deliberate
// asymmetry: Bisection returns an endpoint immediately when f is
// exactly zero there, while RegulaFalsi rejects that same input with
// ErrNoBracket because its precondition is the strict f(a)·f(b) < 0.
//
// Configuration:
//
//	Tolerance and the iteration cap are policy, not magic numbers.
//	Every routine accepts functional options:
//
//	  root, err := roots.Bisection(f, 0, 3,
//	      roots.WithTolerance(1e-9),
//	      roots.WithMaxIterations(200),
//	  )
//
//	Defaults are DefaultTolerance (1e-6) and DefaultMaxIterations
//	(1,000,000). One tolerance knob drives every stop and guard test of
//	a call: |f(c)| and bracket width for the bracketing methods, step
//	size and the division guards for the open methods.
//
// Error handling (sentinel errors):
//
//   - ErrNilFunc:             a required function argument is nil.
//   - ErrInvalidInterval:     endpoints not finite or not a < b.
//   - ErrNoBracket:           no sign change over [a,b] (bracketing methods).
//   - ErrZeroDerivative:      |g(xn)| below tolerance (NewtonRaphson).
//   - ErrNearZeroDenominator: flat secant slope (Secant).
//   - ErrOutOfDomain:         an iterate escaped [a,b] (open methods).
//   - ErrNoConvergence:       iteration cap exhausted.
//
// Every failure is local and terminal for that call — no retries, no
// partial results, no logging. On error the returned root is 0 and is
// not meaningful; dispatch on the error with errors.Is.
//
// API reference:
//
//	func Bisection(f Func, a, b float64, opts ...Option) (float64, error)
//	func RegulaFalsi(f Func, a, b float64, opts ...Option) (float64, error)
//	func NewtonRaphson(f, g Func, a, b, x0 float64, opts ...Option) (float64, error)
//	func Secant(f Func, a, b float64, opts ...Option) (float64, error)
//
// Thread safety:
//
//	The routines keep all state in locals, so concurrent calls are safe
//	provided the supplied Funcs are themselves side-effect-free and
//	safe for concurrent use. Identical inputs always produce identical
//	results — there is no hidden state between calls.
package roots
