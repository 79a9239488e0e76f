package convection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNuSupercriticalMcAdams(t *testing.T) {
	assert.InEpsilon(t, 261.3838629346147, NuSupercriticalMcAdams(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}

func TestNuSupercriticalShitsman(t *testing.T) {
	// Symmetric in the bulk and wall Prandtl numbers.
	assert.InEpsilon(t, 266.1171311047253, NuSupercriticalShitsman(SupercriticalFluid{Re: 1e5, Pr: 1.2, PrW: 1.6}), 1e-12)
	assert.InEpsilon(t, 266.1171311047253, NuSupercriticalShitsman(SupercriticalFluid{Re: 1e5, Pr: 1.6, PrW: 1.2}), 1e-12)
}

func TestNuSupercriticalGriem(t *testing.T) {
	assert.InEpsilon(t, 275.4818576600527, NuSupercriticalGriem(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)

	expected := []float64{225.8951232812432, 240.77114359488607, 275.4818576600527}
	for i, h := range []float64{1.52e6, 1.6e6, 1.8e6} {
		nu := NuSupercriticalGriem(SupercriticalFluid{Re: 1e5, Pr: 1.2, H: h})
		assert.InEpsilon(t, expected[i], nu, 1e-12)
	}
}

func TestNuSupercriticalJackson(t *testing.T) {
	assert.InEpsilon(t, 252.37231572974918, NuSupercriticalJackson(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)

	expected := []float64{206.91175020307264, 206.93567238866916, 206.97455183928113}
	for i, tpc := range []float64{750, 675, 600} {
		nu := NuSupercriticalJackson(SupercriticalFluid{
			Re: 1e5, Pr: 1.2, RhoW: 125.8, RhoB: 249.0233,
			CpAvg: 2080.845, CpB: 2048.621, TB: 650, TW: 700, TPc: tpc,
		})
		assert.InEpsilon(t, expected[i], nu, 1e-12)
	}
}

func TestNuSupercriticalGupta(t *testing.T) {
	assert.InEpsilon(t, 189.78727690467736, NuSupercriticalGupta(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
	nu := NuSupercriticalGupta(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290, MuW: 8e-4, MuB: 9e-4})
	assert.InEpsilon(t, 186.20135477175126, nu, 1e-12)
}

func TestNuSupercriticalSwenson(t *testing.T) {
	assert.InEpsilon(t, 211.51968418167206, NuSupercriticalSwenson(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
	nu := NuSupercriticalSwenson(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290})
	assert.InEpsilon(t, 217.92827034803668, nu, 1e-12)
}

func TestNuSupercriticalXu(t *testing.T) {
	assert.InEpsilon(t, 293.9572513612297, NuSupercriticalXu(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
	nu := NuSupercriticalXu(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290, MuW: 8e-4, MuB: 9e-4})
	assert.InEpsilon(t, 289.133054256742, nu, 1e-12)
}

func TestNuSupercriticalMokry(t *testing.T) {
	assert.InEpsilon(t, 228.8178008454556, NuSupercriticalMokry(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
	nu := NuSupercriticalMokry(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290})
	assert.InEpsilon(t, 246.1156319156992, nu, 1e-12)
}

func TestNuSupercriticalBringerSmith(t *testing.T) {
	assert.InEpsilon(t, 208.17631753279107, NuSupercriticalBringerSmith(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}

func TestNuSupercriticalOrnatsky(t *testing.T) {
	nu := NuSupercriticalOrnatsky(SupercriticalFluid{Re: 1e5, Pr: 1.2, PrW: 1.5, RhoW: 330, RhoB: 290})
	assert.InEpsilon(t, 276.63531150832307, nu, 1e-12)
	nu = NuSupercriticalOrnatsky(SupercriticalFluid{Re: 1e5, Pr: 1.2, PrW: 1.5})
	assert.InEpsilon(t, 266.1171311047253, nu, 1e-12)
}

func TestNuSupercriticalGorban(t *testing.T) {
	assert.InEpsilon(t, 182.5367282733999, NuSupercriticalGorban(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}

func TestNuSupercriticalZhu(t *testing.T) {
	nu := NuSupercriticalZhu(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290, KW: 0.63, KB: 0.69})
	assert.InEpsilon(t, 240.1459854494706, nu, 1e-12)
	assert.InEpsilon(t, 241.2087720246979, NuSupercriticalZhu(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}

func TestNuSupercriticalBishop(t *testing.T) {
	nu := NuSupercriticalBishop(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290, D: 0.01, X: 1.2})
	assert.InEpsilon(t, 265.3620050072533, nu, 1e-12)
	assert.InEpsilon(t, 246.09835634820243, NuSupercriticalBishop(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}

func TestNuSupercriticalYamagata(t *testing.T) {
	assert.InEpsilon(t, 283.9383689412967, NuSupercriticalYamagata(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)

	// The E = (Tpc-Tb)/(Tw-Tb) breakpoints select all three heat capacity factors.
	expected := []float64{283.9383689412967, 187.02304885276828, 292.3473428004679}
	for i, tpc := range []float64{750, 675, 600} {
		nu := NuSupercriticalYamagata(SupercriticalFluid{
			Re: 1e5, Pr: 1.2, PrPc: 1.5,
			CpAvg: 2080.845, CpB: 2048.621, TB: 650, TW: 700, TPc: tpc,
		})
		assert.InEpsilon(t, expected[i], nu, 1e-12)
	}
}

func TestNuSupercriticalKitoh(t *testing.T) {
	assert.InEpsilon(t, 302.5006546293724, NuSupercriticalKitoh(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)

	expected := []float64{331.80234139591306, 174.8417387874232, 308.40146536866945}
	for i, h := range []float64{1.4e6, 2e6, 3.5e6} {
		nu := NuSupercriticalKitoh(SupercriticalFluid{Re: 1e5, Pr: 1.2, H: h, G: 1500, Q: 5e6})
		assert.InEpsilon(t, expected[i], nu, 1e-12)
	}
}

func TestNuSupercriticalKrasnoshchekovProtopopov(t *testing.T) {
	nu := NuSupercriticalKrasnoshchekovProtopopov(SupercriticalFluid{
		Re: 1e5, Pr: 1.2, CpAvg: 330, CpB: 290, KW: 0.62, KB: 0.52, MuW: 8e-4, MuB: 9e-4,
	})
	assert.InEpsilon(t, 228.85296737400222, nu, 1e-12)
}

func TestNuSupercriticalPetukhov(t *testing.T) {
	nu := NuSupercriticalPetukhov(SupercriticalFluid{Re: 1e5, Pr: 1.2, RhoW: 330, RhoB: 290, MuW: 8e-4, MuB: 9e-4})
	assert.InEpsilon(t, 254.8258598466738, nu, 1e-12)
}

func TestNuSupercriticalKrasnoshchekov(t *testing.T) {
	expected := []float64{192.52819597784372, 192.54822916468785}
	for i, tpc := range []float64{750, 675} {
		nu := NuSupercriticalKrasnoshchekov(SupercriticalFluid{
			Re: 1e5, Pr: 1.2, RhoW: 125.8, RhoB: 249.0233,
			CpAvg: 2080.845, CpB: 2048.621, TB: 650, TW: 700, TPc: tpc,
		})
		assert.InEpsilon(t, expected[i], nu, 1e-12)
	}

	nu := NuSupercriticalKrasnoshchekov(SupercriticalFluid{
		Re: 1e5, Pr: 1.2, RhoW: 125.8, RhoB: 249.0233,
		CpAvg: 2080.845, CpB: 2048.621, TB: 400, TW: 200, TPc: 400,
	})
	assert.InEpsilon(t, 192.2579518680533, nu, 1e-12)

	assert.InEpsilon(t, 234.82855185610364, NuSupercriticalKrasnoshchekov(SupercriticalFluid{Re: 1e5, Pr: 1.2}), 1e-12)
}
