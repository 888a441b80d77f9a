package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlroots/roots"
)

// TestDefaultOptions verifies the default solver policy.
func TestDefaultOptions(t *testing.T) {
	o := roots.DefaultOptions()
	assert.Equal(t, roots.DefaultTolerance, o.Tol, "default tolerance is 1e-6")
	assert.Equal(t, roots.DefaultMaxIterations, o.MaxIter, "default cap is 1,000,000")
}

// TestWithTolerance_Applied verifies the option overrides the default.
func TestWithTolerance_Applied(t *testing.T) {
	o := roots.DefaultOptions()
	roots.WithTolerance(1e-3)(&o)
	assert.Equal(t, 1e-3, o.Tol)
}

// TestWithTolerance_PanicsOnInvalid ensures zero, negative, NaN and
// infinite tolerances panic with ErrBadTolerance.
func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	for _, tol := range []float64{0, -1e-6, math.NaN(), math.Inf(1)} {
		o := roots.DefaultOptions()
		assert.PanicsWithValue(t, roots.ErrBadTolerance.Error(), func() {
			roots.WithTolerance(tol)(&o)
		}, "tolerance %v must panic", tol)
	}
}

// TestWithMaxIterations_Applied verifies the option overrides the
// default.
func TestWithMaxIterations_Applied(t *testing.T) {
	o := roots.DefaultOptions()
	roots.WithMaxIterations(42)(&o)
	assert.Equal(t, 42, o.MaxIter)
}

// TestWithMaxIterations_PanicsBelowOne ensures caps below 1 panic with
// ErrBadMaxIterations.
func TestWithMaxIterations_PanicsBelowOne(t *testing.T) {
	for _, n := range []int{0, -1} {
		o := roots.DefaultOptions()
		assert.PanicsWithValue(t, roots.ErrBadMaxIterations.Error(), func() {
			roots.WithMaxIterations(n)(&o)
		}, "cap %d must panic", n)
	}
}

// TestOptions_PanicSurfacesThroughSolver confirms that an invalid
// option panics at solve time, when the options are applied.
func TestOptions_PanicSurfacesThroughSolver(t *testing.T) {
	f := func(x float64) float64 { return x }
	assert.PanicsWithValue(t, roots.ErrBadTolerance.Error(), func() {
		_, _ = roots.Bisection(f, -1, 1, roots.WithTolerance(-1))
	})
}
