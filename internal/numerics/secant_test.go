package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecant(t *testing.T) {
	t.Run("sqrt2", func(t *testing.T) {
		root, err := Secant(func(x float64) float64 { return x*x - 2 }, 1, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, root, 1e-9)
	})

	t.Run("zero start", func(t *testing.T) {
		root, err := Secant(func(x float64) float64 { return math.Exp(x) - 2 }, 0, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, math.Ln2, root, 1e-9)
	})

	t.Run("root at start", func(t *testing.T) {
		root, err := Secant(func(x float64) float64 { return x - 3 }, 3, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 3.0, root)
	})

	t.Run("no convergence", func(t *testing.T) {
		_, err := Secant(func(x float64) float64 { return 1 + x*x }, 1, 0, 10)
		require.Error(t, err)
	})
}

func TestHornerPolynomial(t *testing.T) {
	// 2x^3 - 3x + 5 at x = 2.
	assert.Equal(t, 15.0, Horner([]float64{2, 0, -3, 5}, 2))
	assert.Equal(t, 5.0, Horner([]float64{2, 0, -3, 5}, 0))
	assert.Equal(t, 7.0, Horner([]float64{7}, 123))
	assert.Zero(t, Horner(nil, 1))
}
