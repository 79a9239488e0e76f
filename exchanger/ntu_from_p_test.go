package exchanger

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logUniform draws from [lo, hi] with logarithmic density, matching the
// operating envelopes the solvers are rated for.
func logUniform(rng *rand.Rand, lo, hi float64) float64 {
	return math.Exp(math.Log(lo) + rng.Float64()*(math.Log(hi)-math.Log(lo)))
}

func TestNTUFromPBasicClosedForms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, subtype := range []string{"counterflow", "parallel", "crossflow, mixed 1", "crossflow, mixed 2"} {
		t.Run(subtype, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				r1 := logUniform(rng, 2e-5, 1e2)
				ntu1 := logUniform(rng, 1e-4, 1e2)
				p1, err := TemperatureEffectivenessBasic(r1, ntu1, subtype)
				require.NoError(t, err)
				if math.IsNaN(p1) || math.IsInf(p1, 0) || p1 <= 0 || p1 >= 1 {
					continue
				}
				ntu1Calc, err := NTUFromPBasic(p1, r1, subtype)
				if err != nil || math.IsNaN(ntu1Calc) || math.IsInf(ntu1Calc, 0) {
					continue
				}
				// Several transfer unit counts can share a P1; compare
				// the recomputed effectiveness instead.
				p1Calc, err := TemperatureEffectivenessBasic(r1, ntu1Calc, subtype)
				require.NoError(t, err)
				if math.IsNaN(p1Calc) {
					continue
				}
				assert.InEpsilon(t, p1, p1Calc, 1e-7)
			}
		})
	}
}

func TestNTUFromPBasicMixedBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		r1 := logUniform(rng, 2e-5, 1e2)
		ntu1 := logUniform(rng, 1e-4, 1e2)
		p1, err := TemperatureEffectivenessBasic(r1, ntu1, "crossflow, mixed 1&2")
		require.NoError(t, err)
		ntu1Calc, err := NTUFromPBasic(p1, r1, "crossflow, mixed 1&2")
		if err != nil {
			continue
		}
		p1Calc, err := TemperatureEffectivenessBasic(r1, ntu1Calc, "crossflow, mixed 1&2")
		require.NoError(t, err)
		assert.InEpsilon(t, p1, p1Calc, 1e-7)
	}
}

func TestNTUFromPBasicCrossflow(t *testing.T) {
	// Explicit approximation.
	p1, err := TemperatureEffectivenessBasic(0.1, 2, "crossflow approximate")
	require.NoError(t, err)
	assert.InEpsilon(t, 0.8408180737140558, p1, 1e-12)
	ntu1, err := NTUFromPBasic(0.8408180737140558, 0.1, "crossflow approximate")
	require.NoError(t, err)
	assert.InEpsilon(t, 2, ntu1, 1e-6)

	// Exact integral solution.
	p1, err = TemperatureEffectivenessBasic(0.5, 10, "crossflow")
	require.NoError(t, err)
	ntu1, err = NTUFromPBasic(p1, 0.5, "crossflow")
	require.NoError(t, err)
	assert.InEpsilon(t, 10, ntu1, 1e-5)

	_, err = NTUFromPBasic(0.975, 0.1, "BADTYPE")
	require.Error(t, err)
}

func TestNTUFromPE(t *testing.T) {
	// One tube pass is plain counterflow.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		r1 := logUniform(rng, 2e-5, 1e2)
		ntu1 := logUniform(rng, 1e-4, 1e2)
		p1, err := TemperatureEffectivenessTEMAE(r1, ntu1, 1, true)
		require.NoError(t, err)
		if math.IsNaN(p1) || p1 <= 0 || p1 >= 1 {
			continue
		}
		ntu1Calc, err := NTUFromPE(p1, r1, 1, true)
		if err != nil || math.IsNaN(ntu1Calc) {
			continue
		}
		p1Calc, err := TemperatureEffectivenessTEMAE(r1, ntu1Calc, 1, true)
		require.NoError(t, err)
		assert.InEpsilon(t, p1, p1Calc, 1e-7)
	}

	// Two pass optimal inverts analytically.
	p1, err := TemperatureEffectivenessTEMAE(1.1, 10, 2, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5576299522073297, p1, 1e-12)
	ntu1, err := NTUFromPE(p1, 1.1, 2, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 10, ntu1, 1e-9)

	// Two pass unoptimal and higher even pass counts solve numerically.
	for _, ntp := range []int{4, 6, 8, 10, 12} {
		p1, err := TemperatureEffectivenessTEMAE(0.8, 1.5, ntp, true)
		require.NoError(t, err)
		ntu1, err := NTUFromPE(p1, 0.8, ntp, true)
		require.NoError(t, err)
		assert.InEpsilon(t, 1.5, ntu1, 1e-6, "ntp=%d", ntp)
	}
	for _, optimal := range []bool{true, false} {
		p1, err := TemperatureEffectivenessTEMAE(1.3, 0.7, 3, optimal)
		require.NoError(t, err)
		ntu1, err := NTUFromPE(p1, 1.3, 3, optimal)
		require.NoError(t, err)
		assert.InEpsilon(t, 0.7, ntu1, 1e-6, "optimal=%v", optimal)
	}

	_, err = NTUFromPE(1, 1, 17, true)
	require.Error(t, err)
}

func TestNTUFromPG(t *testing.T) {
	p1, err := TemperatureEffectivenessTEMAG(1.1, 2, 1, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5868787117241955, p1, 1e-12)
	ntu1, err := NTUFromPG(p1, 1.1, 1, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 2, ntu1, 1e-6)

	p1, err = TemperatureEffectivenessTEMAG(1.1, 2, 2, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.6110347802764724, p1, 1e-12)
	ntu1, err = NTUFromPG(p1, 1.1, 2, true)
	require.NoError(t, err)
	assert.InEpsilon(t, 2, ntu1, 1e-6)

	p1, err = TemperatureEffectivenessTEMAG(0.1, 2, 2, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.8121969945075509, p1, 1e-12)
	ntu1, err = NTUFromPG(p1, 0.1, 2, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 2, ntu1, 1e-6)

	// A target beyond the achievable maximum names it.
	_, err = NTUFromPG(0.99, 2, 2, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum P1")

	_, err = NTUFromPG(0.573, 1/3., 10, true)
	require.Error(t, err)
}

func TestNTUFromPJ(t *testing.T) {
	p1, err := TemperatureEffectivenessTEMAJ(1.1, 3, 1)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5996529947927913, p1, 1e-12)
	ntu1, err := NTUFromPJ(p1, 1.1, 1)
	require.NoError(t, err)
	assert.InEpsilon(t, 3, ntu1, 1e-6)

	// The two pass curve is nearly flat at its peak; back off the target
	// slightly and accept the solver's nearby transfer unit count.
	p1, err = TemperatureEffectivenessTEMAJ(1.1, 2.7363888898379249, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.53635261090479802, p1, 1e-12)
	ntu1, err = NTUFromPJ(p1*(1-2e-9), 1.1, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.7363888898379249, ntu1, 1e-3)

	p1, err = TemperatureEffectivenessTEMAJ(1.1, 2.8702676768833268, 4)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.53812561986477236, p1, 1e-12)
	ntu1, err = NTUFromPJ(p1*(1-1e-12), 1.1, 4)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.8702676768833268, ntu1, 1e-4)

	_, err = NTUFromPJ(0.57, 1/3., 10)
	require.Error(t, err)
}

func TestNTUFromPH(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, cfg := range []struct {
		ntp     int
		optimal bool
	}{{1, true}, {2, true}, {2, false}} {
		for i := 0; i < 50; i++ {
			r1 := logUniform(rng, 2e-5, 1e1)
			ntu1 := logUniform(rng, 1e-4, 1e1)
			p1, err := TemperatureEffectivenessTEMAH(r1, ntu1, cfg.ntp, cfg.optimal)
			require.NoError(t, err)
			ntu1Calc, err := NTUFromPH(p1, r1, cfg.ntp, cfg.optimal)
			if err != nil {
				continue
			}
			p1Calc, err := TemperatureEffectivenessTEMAH(r1, ntu1Calc, cfg.ntp, cfg.optimal)
			require.NoError(t, err)
			assert.InEpsilon(t, p1, p1Calc, 1e-6)
		}
	}

	_, err := NTUFromPH(0.573, 1/3., 101, true)
	require.Error(t, err)
}

func TestNTUFromPPlate(t *testing.T) {
	// 1 pass - 1 pass counterflow, analytical.
	p1, err := TemperatureEffectivenessPlate(0.25, 3.5, 1, 1, true, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.944668125335067, p1, 1e-12)
	ntu1, err := NTUFromPPlate(p1, 0.25, 1, 1, true, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 3.5, ntu1, 1e-9)

	_, err = NTUFromPPlate(0.10001, 10, 1, 1, true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum P1")

	// 1 pass - 1 pass parallel flow, analytical.
	p1, err = TemperatureEffectivenessPlate(0.25, 3.5, 1, 1, false, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.7899294862060529, p1, 1e-12)
	ntu1, err = NTUFromPPlate(p1, 0.25, 1, 1, false, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 3.5, ntu1, 1e-9)

	_, err = NTUFromPPlate(0.091, 10, 1, 1, false, false)
	require.Error(t, err)

	// Numeric inversions across the multi pass arrangements.
	cases := []struct {
		np1, np2                       int
		counterflow, passesCounterflow bool
		p1                             float64
	}{
		{2, 2, false, false, 0.5174719601105934},
		{2, 2, false, true, 0.529647502598342},
		{2, 3, true, false, 0.5696402802155714},
		{2, 3, false, false, 0.5272339114328507},
		{2, 4, true, false, 0.5717083161054717},
		{2, 4, false, false, 0.5238412695944656},
	}
	for _, tc := range cases {
		p1, err := TemperatureEffectivenessPlate(0.6, 1.1, tc.np1, tc.np2, tc.counterflow, tc.passesCounterflow)
		require.NoError(t, err)
		assert.InEpsilon(t, tc.p1, p1, 1e-12)
		ntu1, err := NTUFromPPlate(p1, 0.6, tc.np1, tc.np2, tc.counterflow, tc.passesCounterflow)
		require.NoError(t, err)
		assert.InEpsilon(t, 1.1, ntu1, 1e-6,
			"%d/%d counterflow=%v passesCounterflow=%v", tc.np1, tc.np2, tc.counterflow, tc.passesCounterflow)
	}

	// Side 2 described arrangement.
	ntu1, err = NTUFromPPlate(0.5743514352720835, 1/3., 3, 1, true, false)
	require.NoError(t, err)
	assert.InEpsilon(t, 1, ntu1, 1e-6)

	_, err = NTUFromPPlate(0.5743, 1/3., 3, 13415151213, true, false)
	require.Error(t, err)
}
