package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrent(t *testing.T) {
	t.Run("sqrt2", func(t *testing.T) {
		root, err := Brent(func(x float64) float64 { return x*x - 2 }, 0, 2, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, root, 1e-12)
	})

	t.Run("cosine", func(t *testing.T) {
		root, err := Brent(math.Cos, 0, 3, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, root, 1e-12)
	})

	t.Run("endpoint root", func(t *testing.T) {
		root, err := Brent(func(x float64) float64 { return x }, 0, 1, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, root)
	})

	t.Run("unbracketed", func(t *testing.T) {
		_, err := Brent(func(x float64) float64 { return x*x - 2 }, 0, 1, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not bracketed")
	})
}

func TestBisect(t *testing.T) {
	root, err := Bisect(func(x float64) float64 { return x*x*x - 8 }, 0, 10, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-10)

	_, err = Bisect(func(x float64) float64 { return x + 5 }, 0, 1, 0, 0)
	require.Error(t, err)
}
