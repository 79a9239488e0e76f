package radiation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackbodySpectralRadiance(t *testing.T) {
	// Checked against spectral-calc.com.
	assert.InDelta(t, 1311692056.2430143, BlackbodySpectralRadiance(800., 4e-6), 1e-3)
}

func TestQRad(t *testing.T) {
	assert.InDelta(t, 1451.613952, QRad(1., 400, 0), 1e-9)
	assert.InDelta(t, 816.7821722650002, QRad(.85, 400, 305.), 1e-9)

	// Hotter surroundings give a negative net flux.
	assert.Negative(t, QRad(.85, 305., 400))
}
