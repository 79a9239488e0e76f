package convection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHJacketLehrer(t *testing.T) {
	base := Jacket{
		M: 2.5, Dtank: 0.6, Djacket: 0.65, H: 0.6, Dinlet: 0.025,
		Rho: 995.7, Cp: 4178.1, K: 0.615, Mu: 798e-6,
	}

	j := base
	j.Muw = 355e-6
	j.DT = 20
	assert.InEpsilon(t, 2922.128124761829, HJacketLehrer(j), 1e-12)

	// Without the wall viscosity correction.
	j.Muw = 0
	assert.InEpsilon(t, 2608.8602693706853, HJacketLehrer(j), 1e-12)

	// Radial inlets add the natural circulation velocity.
	j = base
	j.Muw = 355e-6
	j.DT = 20
	j.IsobaricExpansion = 0.000303
	j.InletType = JacketInletRadial
	j.InletLocation = JacketLocationAuto
	assert.InEpsilon(t, 3269.4389632666557, HJacketLehrer(j), 1e-12)

	j.InletLocation = JacketLocationTop
	assert.InEpsilon(t, 2566.1198726589996, HJacketLehrer(j), 1e-12)

	j.DT = -20
	j.InletLocation = JacketLocationAuto
	assert.InEpsilon(t, 3269.4389632666557, HJacketLehrer(j), 1e-12)

	j.InletLocation = JacketLocationBottom
	assert.InEpsilon(t, 2566.1198726589996, HJacketLehrer(j), 1e-12)
}

func TestHJacketSteinSchmidt(t *testing.T) {
	base := Jacket{
		M: 2.5, Dtank: 0.6, Djacket: 0.65, H: 0.6, Dinlet: 0.025,
		Rho: 995.7, Cp: 4178.1, K: 0.615, Mu: 798e-6, Muw: 355e-6,
		Rhow: 971.8, InletLocation: JacketLocationAuto,
	}

	h, err := HJacketSteinSchmidt(base)
	require.NoError(t, err)
	assert.InEpsilon(t, 5695.204169808863, h, 1e-9)

	j := base
	j.InletType = JacketInletRadial
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 1217.1449686341773, h, 1e-9)

	j = base
	j.InletLocation = JacketLocationTop
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 5675.841635061595, h, 1e-9)

	j.InletLocation = JacketLocationBottom
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 5695.2041698088633, h, 1e-9)

	// Wall fluid denser than the bulk reverses the aiding direction.
	j.Rho, j.Rhow = 971.8, 995.7
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 5694.9722658952096, h, 1e-9)

	j.InletLocation = JacketLocationTop
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 5676.0744960391157, h, 1e-9)

	// No wall density, no buoyancy correction.
	j = base
	j.Rho, j.Rhow = 971.8, 0
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 5685.532991556428, h, 1e-9)

	j.M = 0.1
	j.Muw = 0
	h, err = HJacketSteinSchmidt(j)
	require.NoError(t, err)
	assert.InEpsilon(t, 151.78819106776797, h, 1e-9)

	j.InletType = "spiral"
	_, err = HJacketSteinSchmidt(j)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inlet type")
}
