package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlroots/roots"
)

// TestSecant_FindsCosineFixedPoint verifies convergence to the Dottie
// number, the fixed point of cos(x), via f(x) = cos(x) - x on [0,1].
func TestSecant_FindsCosineFixedPoint(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	root, err := roots.Secant(f, 0, 1)
	require.NoError(t, err, "cos(x)-x changes sign over [0,1]")
	assert.InDelta(t, 0.7390851332151607, root, 1e-6, "fixed point of cos is ≈0.739085")
	assert.True(t, scalar.EqualWithinAbs(f(root), 0, 1e-5), "small step must imply small residual here")
}

// TestSecant_FindsQuadraticRoot verifies convergence on x²-4 with the
// interval endpoints as the two starting points.
func TestSecant_FindsQuadraticRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	root, err := roots.Secant(f, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-5, "root of x²-4 on [0,3] is 2")
}

// TestSecant_FlatFunction ensures a flat secant slope fails with
// ErrNearZeroDenominator on the very first iteration.
func TestSecant_FlatFunction(t *testing.T) {
	f := func(x float64) float64 { return 0.5 }

	_, err := roots.Secant(f, 0, 1)
	assert.ErrorIs(t, err, roots.ErrNearZeroDenominator, "constant f makes the slope zero")
}

// TestSecant_OutOfDomain ensures a secant step that escapes [a,b] fails
// with ErrOutOfDomain. For x³-2x+2 on [-0.5,0.5] the first step lands
// at ≈1.14.
func TestSecant_OutOfDomain(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }

	_, err := roots.Secant(f, -0.5, 0.5)
	assert.ErrorIs(t, err, roots.ErrOutOfDomain, "first secant step overshoots the interval")
}

// TestSecant_InputValidation covers the shared preflight checks.
func TestSecant_InputValidation(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := roots.Secant(nil, 0, 1)
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.Secant(f, 1, 1)
	assert.ErrorIs(t, err, roots.ErrInvalidInterval, "a == b must be rejected")

	_, err = roots.Secant(f, math.Inf(-1), 0)
	assert.ErrorIs(t, err, roots.ErrInvalidInterval, "infinite endpoint must be rejected")
}

// TestSecant_Deterministic confirms that identical inputs produce
// bit-identical results.
func TestSecant_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	r1, err1 := roots.Secant(f, 0, 1)
	r2, err2 := roots.Secant(f, 0, 1)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2, "repeated calls must agree exactly")
}
