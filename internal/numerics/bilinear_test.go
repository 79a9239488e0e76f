package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBilinear(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1}
	z := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	assert.InDelta(t, 1.0, Bilinear(xs, ys, z, 0, 0), 1e-14)
	assert.InDelta(t, 6.0, Bilinear(xs, ys, z, 2, 1), 1e-14)
	assert.InDelta(t, 2.5, Bilinear(xs, ys, z, 0.5, 0.5), 1e-14)
	assert.InDelta(t, 4.5, Bilinear(xs, ys, z, 1.5, 0.5), 1e-14)

	// Clamped outside the grid.
	assert.InDelta(t, 1.0, Bilinear(xs, ys, z, -5, -5), 1e-14)
	assert.InDelta(t, 6.0, Bilinear(xs, ys, z, 9, 9), 1e-14)
}

func TestInterp(t *testing.T) {
	xs := []float64{1, 2, 4}
	ys := []float64{10, 20, 40}

	assert.InDelta(t, 15.0, Interp(1.5, xs, ys), 1e-14)
	assert.InDelta(t, 20.0, Interp(2, xs, ys), 1e-14)
	assert.InDelta(t, 30.0, Interp(3, xs, ys), 1e-14)
	assert.InDelta(t, 10.0, Interp(0, xs, ys), 1e-14)
	assert.InDelta(t, 40.0, Interp(9, xs, ys), 1e-14)
}

func TestHorner(t *testing.T) {
	// 2x^2 - 3x + 1 at x=4.
	assert.InDelta(t, 21.0, Horner([]float64{2, -3, 1}, 4), 1e-14)
	assert.InDelta(t, 1.0, Horner([]float64{2, -3, 1}, 0), 1e-14)
}
