package conduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConductivityConversions(t *testing.T) {
	assert.InDelta(t, 0.5, RToK(0.05, 0.025, 1), 1e-14)
	assert.InDelta(t, 0.05, KToR(0.5, 0.025, 1), 1e-14)
	assert.InDelta(t, 4.0, KToThermalResistivity(0.25), 1e-14)
	assert.InDelta(t, 0.25, ThermalResistivityToK(4), 1e-14)
}

func TestRValueConversions(t *testing.T) {
	assert.InDelta(t, 0.2116666666666667, RValueToK(0.12, true), 1e-14)
	assert.InDelta(t, 0.20313787163983468, RValueToK(0.71, false), 1e-14)

	// Imperial-to-SI R-value ratio.
	assert.InDelta(t, 5.678263341113488, RValueToK(1., false)/RValueToK(1., true), 1e-12)

	// Round trips.
	assert.InDelta(t, 0.12, KToRValue(RValueToK(0.12, true), true), 1e-12)
	assert.InDelta(t, 0.71, KToRValue(RValueToK(0.71, false), false), 1e-12)
}

func TestRCylinder(t *testing.T) {
	assert.InDelta(t, 8.38432343682705e-05, RCylinder(0.9, 1., 20, 10), 1e-18)
}

func TestShapeFactors(t *testing.T) {
	assert.InDelta(t, 6.298932638776527, SIsothermalSphereToPlane(1, 100), 1e-12)
	assert.InDelta(t, 3.146071454894645, SIsothermalPipeToPlane(1, 100, 3), 1e-12)
	assert.InDelta(t, 104.86893910124888, SIsothermalPipeNormalToPlane(1, 100), 1e-12)
	assert.InDelta(t, 1.188711034982268, SIsothermalPipeToIsothermalPipe(.1, .2, 1, 1), 1e-12)
	assert.InDelta(t, 1.2963749299921428, SIsothermalPipeToTwoPlanes(.1, 5, 1), 1e-12)
	assert.InDelta(t, 47.709841915608976, SIsothermalPipeEccentricToIsothermalPipe(.1, .4, .05, 10), 1e-12)
}

func TestShapeFactorDispatch(t *testing.T) {
	for _, geometry := range ShapeFactorGeometries {
		t.Run(geometry, func(t *testing.T) {
			s, err := ShapeFactor(geometry, ShapeFactorConfig{D1: 0.1, D2: 0.4, Z: 5, W: 1, L: 10})
			require.NoError(t, err)
			assert.Greater(t, s, 0.0)
		})
	}

	s, err := ShapeFactor(SphereToPlane, ShapeFactorConfig{D1: 1, Z: 100})
	require.NoError(t, err)
	assert.InDelta(t, 6.298932638776527, s, 1e-12)

	_, err = ShapeFactor("cube to plane", ShapeFactorConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid geometries")

	assert.InDelta(t, 100.0, QShapeFactor(5, 2, 310, 300), 1e-14)
}

func TestCylindricalHeatTransfer(t *testing.T) {
	res, err := CylindricalHeatTransfer(453.15, 301.15, 1e12, 22.697193, 0.0779272,
		[]float64{0.0054864, .05}, []float64{56.045, 0.0598535265})
	require.NoError(t, err)

	assert.InDelta(t, 73.12000884069367, res.Q, 1e-9)
	assert.InDelta(t, 0.48105268974140575, res.UA, 1e-12)
	assert.InDelta(t, 1.9649599487726137, res.UInner, 1e-12)
	assert.InDelta(t, 0.8106078714663484, res.UOuter, 1e-12)
	assert.InDelta(t, 123.21239646288495, res.SpecQ, 1e-9)

	require.Len(t, res.Rs, 2)
	assert.InDelta(t, 0.00022201030738405449, res.Rs[0], 1e-15)
	assert.InDelta(t, 1.189361782070256, res.Rs[1], 1e-12)

	require.Len(t, res.Ts, 3)
	assert.InDelta(t, 453.15, res.Ts[0], 1e-12)
	assert.InDelta(t, 453.1226455779877, res.Ts[1], 1e-9)
	assert.InDelta(t, 306.578530147744, res.Ts[2], 1e-9)

	_, err = CylindricalHeatTransfer(453.15, 301.15, 1e12, 22.7, 0.08, []float64{0.01}, []float64{1, 2})
	require.Error(t, err)
}
