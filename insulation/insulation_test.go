package insulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialsEnumeration(t *testing.T) {
	names := Materials()
	require.Len(t, names, 390)
	assert.IsIncreasing(t, names)

	src, err := MaterialSource("Metals, copper")
	require.NoError(t, err)
	assert.Equal(t, SourceBuilding, src)

	src, err = MaterialSource("Mineral fiber")
	require.NoError(t, err)
	assert.Equal(t, SourceASHRAE, src)

	src, err = MaterialSource("Fused silica")
	require.NoError(t, err)
	assert.Equal(t, SourceRefractory, src)

	_, err = MaterialSource("unobtainium")
	require.Error(t, err)
}

func TestNearestMaterial(t *testing.T) {
	assert.Equal(t, "Metals, stainless steel", NearestMaterial("stainless steel"))
	assert.Equal(t, "Metals, stainless steel", NearestMaterial("stainless wood"))
	assert.Equal(t, "Metals, stainless steel", NearestCompleteMaterial("stainless steel"))

	// Exact keys match themselves.
	assert.Equal(t, "Mineral fiber", NearestMaterial("Mineral fiber"))

	// Even garbage resolves to some bundled material.
	hit := NearestMaterial("asdfasdfasdfasdfasdfasdfads ")
	_, err := MaterialSource(hit)
	require.NoError(t, err)

	// The complete filter steers incomplete ASHRAE rows to a full entry.
	hit = NearestCompleteMaterial("Clay tile, hollow, 1 cell deep")
	rho, err := RhoMaterial(hit)
	require.NoError(t, err)
	assert.Positive(t, rho)
	cp, err := CpMaterial(hit, 0)
	require.NoError(t, err)
	assert.Positive(t, cp)
}

func TestKMaterial(t *testing.T) {
	k, err := KMaterial("Mineral fiber", 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.036, k, 1e-14)

	k, err = KMaterial("stainless steel", 0)
	require.NoError(t, err)
	assert.InDelta(t, 17.0, k, 1e-14)

	// Exact building table entry.
	k, err = KMaterial("Metals, copper", 298.15)
	require.NoError(t, err)
	assert.InDelta(t, 380.0, k, 1e-14)

	// Refractory entries interpolate in temperature.
	k, err = KMaterial("Fused silica", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1.58074, k, 1e-9)
}

func TestRhoMaterial(t *testing.T) {
	rho, err := RhoMaterial("Board, Asbestos/cement")
	require.NoError(t, err)
	assert.InDelta(t, 1900.0, rho, 1e-14)

	rho, err = RhoMaterial("Mineral fiber")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, rho, 1e-14)

	rho, err = RhoMaterial("stainless steel")
	require.NoError(t, err)
	assert.InDelta(t, 7900.0, rho, 1e-14)

	_, err = RhoMaterial("Clay tile, hollow, 1 cell deep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density is not available")
}

func TestCpMaterial(t *testing.T) {
	cp, err := CpMaterial("Mineral fiber", 0)
	require.NoError(t, err)
	assert.InDelta(t, 840.0, cp, 1e-14)

	cp, err = CpMaterial("stainless steel", 0)
	require.NoError(t, err)
	assert.InDelta(t, 460.0, cp, 1e-14)

	_, err = CpMaterial("Siding, Aluminum, steel, or vinyl, over sheathing foil-backed", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heat capacity is not available")
}

func TestASHRAEK(t *testing.T) {
	k, err := ASHRAEK("Mineral fiber")
	require.NoError(t, err)
	assert.InDelta(t, 0.036, k, 1e-14)

	// R-and-thickness rows convert: k = t/R with t in mm.
	k, err = ASHRAEK("Plywood (douglas fir)")
	require.NoError(t, err)
	assert.InDelta(t, 0.0127/0.14, k, 1e-12)

	_, err = ASHRAEK("Metals, copper")
	require.Error(t, err)
}

func TestRefractoryVDI(t *testing.T) {
	// VDI Heat Atlas fused silica row at the default, a clamped low, an
	// interior and a clamped high temperature.
	for _, tc := range []struct {
		t  float64
		k  float64
		cp float64
	}{
		{0, 1.44, 917.0},
		{200, 1.44, 917.0},
		{1000, 1.58074, 956.78225},
		{1500, 1.73, 982.0},
	} {
		k, err := RefractoryVDIK("Fused silica", tc.t)
		require.NoError(t, err)
		assert.InDelta(t, tc.k, k, 1e-9, "k at T=%g", tc.t)

		cp, err := RefractoryVDICp("Fused silica", tc.t)
		require.NoError(t, err)
		assert.InDelta(t, tc.cp, cp, 1e-9, "cp at T=%g", tc.t)
	}

	_, err := RefractoryVDIK("Metals, copper", 800)
	require.Error(t, err)
	_, err = RefractoryVDICp("Metals, copper", 800)
	require.Error(t, err)
}

// Every material must yield a finite conductivity, and density/heat
// capacity wherever the source table carries them.
func TestAllMaterialsResolve(t *testing.T) {
	for _, name := range Materials() {
		k, err := KMaterial(name, 298.15)
		require.NoError(t, err, name)
		assert.Positive(t, k, name)

		src, err := MaterialSource(name)
		require.NoError(t, err)
		if src != SourceASHRAE || complete(name) {
			rho, err := RhoMaterial(name)
			require.NoError(t, err, name)
			assert.Positive(t, rho, name)
			cp, err := CpMaterial(name, 298.15)
			require.NoError(t, err, name)
			assert.Positive(t, cp, name)
		}
	}
}
