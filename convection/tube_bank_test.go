package convection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuGrimisonTubeBank(t *testing.T) {
	assert.InEpsilon(t, 79.07883866010, NuGrimisonTubeBank(10263.37, 0.708, 0.025, 11, 0.05, 0.05), 1e-9)
	// Unequal pitches select the staggered constants.
	assert.InEpsilon(t, 79.92721078571, NuGrimisonTubeBank(10263.37, 0.708, 0.025, 11, 0.05, 0.07), 1e-9)
}

func TestZukauskasTubeRowCorrection(t *testing.T) {
	assert.Equal(t, 0.8942, ZukauskasTubeRowCorrection(4, true, 1e4))
	assert.Equal(t, 0.9465, ZukauskasTubeRowCorrection(6, false, 1e4))
	assert.Equal(t, 1.0, ZukauskasTubeRowCorrection(25, true, 1e4))
	// Staggered factors change with the Reynolds regime.
	assert.Equal(t, 0.9402, ZukauskasTubeRowCorrection(4, true, 100))
}

func TestNuZukauskasBejan(t *testing.T) {
	assert.InEpsilon(t, 175.9202277145248, NuZukauskasBejan(1e4, 7, 10, 0.05, 0.05, 0), 1e-12)
}

func TestESDUTubeRowCorrection(t *testing.T) {
	assert.Equal(t, 0.8984, ESDUTubeRowCorrection(4, true))
	assert.Equal(t, 0.9551, ESDUTubeRowCorrection(6, false))
	assert.Equal(t, 1.0, ESDUTubeRowCorrection(10, true))
	assert.Equal(t, 0.8593, ESDUTubeRowCorrection(1, true))
}

func TestESDUTubeAngleCorrection(t *testing.T) {
	assert.InEpsilon(t, 0.9794139080247666, ESDUTubeAngleCorrection(75), 1e-12)
}

func TestNuESDU73031(t *testing.T) {
	assert.InEpsilon(t, 98.2563319140594, NuESDU73031(1.32e4, 0.71, 8, 0.09, 0.05, 0, 0), 1e-12)
}

func TestNuHEDHTubeBank(t *testing.T) {
	assert.InEpsilon(t, 382.4636554404698, NuHEDHTubeBank(1e4, 7, 0.03, 10, 0.05, 0.05), 1e-12)
	assert.InEpsilon(t, 149.18735251017594, NuHEDHTubeBank(10263.37, 0.708, 0.025, 11, 0.05, 0.05), 1e-12)
}

func TestKernFRe(t *testing.T) {
	expected := []float64{6.0155491322862771, 0.19881943524161752, 0.1765198121811164,
		0.16032260681398205, 0.14912064432650635, 0.14180674990498099,
		0.13727374873569789, 0.13441446600494875, 0.13212172689902535,
		0.12928835660421958}
	for i, want := range expected {
		re := 10 + float64(i)*(1e6-10)/9
		assert.InEpsilon(t, want, kernFRe(re), 1e-9)
	}
}

func TestDPKern(t *testing.T) {
	dp := DPKern(11, 995, 0.000803, 0.584, 0.1524, 0.0254, 0.019, 22, 0.000657)
	assert.InEpsilon(t, 18980.58768759033, dp, 1e-9)

	// Without the wall viscosity correction.
	dp = DPKern(11, 995, 0.000803, 0.584, 0.1524, 0.0254, 0.019, 22, 0)
	assert.InEpsilon(t, 19521.38738647667, dp, 1e-9)
}

func TestDPZukauskas(t *testing.T) {
	dp1 := DPZukauskas(13943, 7, 0.0313, 0.0343, 0.0164, 1.217, 12.6)
	assert.InEpsilon(t, 235.22916169118335, dp1, 1e-9)

	dp2 := DPZukauskas(13943, 7, 0.0313, 0.0313, 0.0164, 1.217, 12.6)
	assert.InEpsilon(t, 217.0750033117563, dp2, 1e-9)
}

func TestBaffleCorrectionBell(t *testing.T) {
	jc, err := BaffleCorrectionBell(0.82, "")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1258554691854046, jc, 1e-9)

	jc, err = BaffleCorrectionBell(0.82, BellHEDH)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.55+0.72*0.82, jc, 1e-12)

	jc, err = BaffleCorrectionBell(0.82, BellChebyshev)
	require.NoError(t, err)
	assert.InDelta(t, 1.126, jc, 0.05)

	_, err = BaffleCorrectionBell(0.82, "BADMETHOD")
	require.Error(t, err)
}

func TestBaffleLeakageBell(t *testing.T) {
	jl, err := BaffleLeakageBell(1, 3, 8, "")
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5906621282470, jl, 1e-9)

	jl, err = BaffleLeakageBell(1, 3, 8, BellHEDH)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5530236260777, jl, 1e-9)

	_, err = BaffleLeakageBell(-1, 0.5, 8, "")
	require.Error(t, err)

	_, err = BaffleLeakageBell(1, 3, 8, "BADMETHOD")
	require.Error(t, err)
}

func TestBundleBypassingBell(t *testing.T) {
	jb, err := BundleBypassingBell(0.5, 5, 25, false, "")
	require.NoError(t, err)
	assert.InEpsilon(t, 0.8469611760884599, jb, 1e-9)

	jb, err = BundleBypassingBell(0.5, 5, 25, false, BellHEDH)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.8483210970579099, jb, 1e-12)

	_, err = BundleBypassingBell(0.5, 5, 25, false, "BADMETHOD")
	require.Error(t, err)
}

func TestUnequalBaffleSpacingBell(t *testing.T) {
	js := UnequalBaffleSpacingBell(16, 0.1, 0.15, 0.15, false)
	assert.InEpsilon(t, 0.9640087802805195, js, 1e-12)
}

func TestLaminarCorrectionBell(t *testing.T) {
	assert.InEpsilon(t, 0.7267995454361379, LaminarCorrectionBell(30, 80), 1e-12)
	assert.Equal(t, 1.0, LaminarCorrectionBell(1000, 80))
}
