package ht

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLMTD(t *testing.T) {
	// Bergman, Introduction to Heat Transfer 6E, example 11.1.
	assert.InDelta(t, 43.200409294131525, LMTD(100., 60., 30., 40.2, true), 1e-12)
	assert.InDelta(t, 39.75251118049003, LMTD(100., 60., 30., 40.2, false), 1e-12)

	// Equal terminal differences: arithmetic mean for counterflow, zero for
	// co-current.
	assert.Equal(t, 40.0, LMTD(100., 60., 20., 60, true))
	assert.Equal(t, 0.0, LMTD(100., 60., 20., 60, false))
}

func TestHeatingDirection(t *testing.T) {
	assert.True(t, IsHeatingTemperature(298.15, 350))
	assert.False(t, IsHeatingTemperature(350, 298.15))
	assert.False(t, IsHeatingProperty(1e-3, 1.2e-3))
	assert.True(t, IsHeatingProperty(1.2e-3, 1e-3))
}

func TestWallFactorFd(t *testing.T) {
	assert.InDelta(t, 0.7825422900366437, WallFactorFd(8e-4, 3e-4, true, true), 1e-12)
}

func TestWallFactorNu(t *testing.T) {
	assert.InDelta(t, 1.1139265634480144, WallFactorNu(8e-4, 3e-4, true, true), 1e-12)
	assert.InDelta(t, 1.147190712947014, WallFactorNu(8e-4, 3e-4, false, true), 1e-12)
	assert.InDelta(t, 1.0741723110591495, WallFactorNu(1.5e-5, 1.3e-5, true, false), 1e-12)
	assert.Equal(t, 1.0, WallFactorNu(1.5e-5, 1.3e-5, false, false))
}

func TestWallFactor(t *testing.T) {
	props := WallFactorProperties{Mu: 8e-4, MuWall: 3e-4, Pr: 1.2, PrWall: 1.1, T: 300, TWall: 350}

	f, err := WallFactor(props, DefaultWallFactorSpec())
	require.NoError(t, err)
	assert.InDelta(t, 1.0096172023817749, f, 1e-12)

	spec := DefaultWallFactorSpec()
	spec.PropertyOption = WallFactorTemperature
	f, err = WallFactor(props, spec)
	require.NoError(t, err)
	assert.InDelta(t, 0.9831863787917198, f, 1e-12)

	t.Run("missing values", func(t *testing.T) {
		spec := DefaultWallFactorSpec()
		spec.PropertyOption = WallFactorViscosity
		_, err := WallFactor(WallFactorProperties{Pr: 1.2, PrWall: 1.1}, spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "viscosity")
	})

	t.Run("unknown option", func(t *testing.T) {
		spec := DefaultWallFactorSpec()
		spec.PropertyOption = "Density"
		_, err := WallFactor(props, spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supported options")
	})
}

func TestFinEfficiencyKernKraus(t *testing.T) {
	eta := FinEfficiencyKernKraus(0.0254, 0.05715, 3.8e-4, 200, 58)
	assert.InEpsilon(t, 0.8412588620231153, eta, 1e-6)
}
