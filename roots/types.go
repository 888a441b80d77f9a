// Package roots defines the function type, configuration options and
// sentinel errors shared by the scalar root-finding routines.
package roots

import (
	"errors"
	"math"
)

// Sentinel errors returned by the root-finding routines.
var (
	// ErrNilFunc indicates that a required function argument is nil.
	ErrNilFunc = errors.New("roots: function must be non-nil")

	// ErrInvalidInterval indicates that the interval endpoints are not
	// finite numbers ordered as a < b.
	ErrInvalidInterval = errors.New("roots: interval endpoints must be finite with a < b")

	// ErrNoBracket indicates that f(a) and f(b) do not bracket a sign
	// change, so the bracketing methods cannot make progress.
	// Bisection raises it for f(a)*f(b) > 0; RegulaFalsi is stricter and
	// raises it for f(a)*f(b) >= 0 (an exact root at an endpoint counts
	// as no bracket there).
	ErrNoBracket = errors.New("roots: f(a) and f(b) do not bracket a sign change")

	// ErrZeroDerivative indicates that NewtonRaphson evaluated a
	// derivative with magnitude below the tolerance and stopped rather
	// than divide by a near-zero value.
	ErrZeroDerivative = errors.New("roots: derivative magnitude below tolerance")

	// ErrNearZeroDenominator indicates that Secant saw two consecutive
	// function values closer than the tolerance, which would make the
	// secant slope numerically meaningless.
	ErrNearZeroDenominator = errors.New("roots: secant denominator magnitude below tolerance")

	// ErrOutOfDomain indicates that the next iterate escaped the [a,b]
	// domain, i.e. the open methods diverged from the expected root
	// region.
	ErrOutOfDomain = errors.New("roots: iterate escaped the [a,b] domain")

	// ErrNoConvergence indicates that the iteration cap was exhausted
	// before any stop condition was met.
	ErrNoConvergence = errors.New("roots: iteration cap reached before convergence")

	// ErrBadTolerance indicates that WithTolerance was given a value
	// that is not a positive finite number.
	ErrBadTolerance = errors.New("roots: tolerance must be a positive finite number")

	// ErrBadMaxIterations indicates that WithMaxIterations was given a
	// value below 1.
	ErrBadMaxIterations = errors.New("roots: max iterations must be at least 1")
)

// Default solver policy. Both values are plain policy knobs, overridable
// per call through functional options.
const (
	// DefaultTolerance is the absolute tolerance used by every stop and
	// guard test: |f(c)| and bracket width for the bracketing methods,
	// step size and the division guards for the open methods.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the number of iterations of every
	// routine before it gives up with ErrNoConvergence.
	DefaultMaxIterations = 1_000_000
)

// Func is a caller-supplied scalar function f: float64 → float64.
// The solvers evaluate it as needed within a single call, never retain
// it afterwards and never mutate any state it closes over. A Func is
// also used for the derivative passed to NewtonRaphson.
type Func func(x float64) float64

// Options configures a single root-finding call.
//
// Tol     – absolute tolerance for every stop and guard test (must be a
//
//	positive finite number). Default is DefaultTolerance.
//
// MaxIter – iteration cap before ErrNoConvergence (must be ≥ 1).
//
//	Default is DefaultMaxIterations.
type Options struct {
	Tol     float64 // Absolute tolerance for stop and guard tests
	MaxIter int     // Iteration cap before ErrNoConvergence
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// WithTolerance overrides the absolute tolerance used by the stop and
// guard tests. Must pass a positive finite value; zero, negative,
// NaN or infinite values cause a panic with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 1) {
			// Panic to signal invalid configuration early.
			panic(ErrBadTolerance.Error())
		}
		o.Tol = tol
	}
}

// WithMaxIterations overrides the iteration cap. Must pass a value ≥ 1;
// anything smaller causes a panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIter = n
	}
}

// DefaultOptions returns an Options struct initialized with the default
// solver policy. Use this as a starting point for further overrides.
//
// Defaults:
//   - Tol:     DefaultTolerance (1e-6).
//   - MaxIter: DefaultMaxIterations (1,000,000).
func DefaultOptions() Options {
	return Options{
		Tol:     DefaultTolerance,
		MaxIter: DefaultMaxIterations,
	}
}

// buildOptions applies the supplied functional options over the
// defaults and returns the resulting policy.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validateInterval rejects non-finite endpoints and intervals that are
// not strictly ordered. The open methods test escape against [a,b], so
// an unordered interval would make that test vacuous.
func validateInterval(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return ErrInvalidInterval
	}

	return nil
}
