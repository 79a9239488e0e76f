package convection

import (
	"fmt"
	"math"

	"ht/internal/numerics"
)

// NuNusseltRayleighHollands returns the Nusselt number for natural convection
// between two horizontal plates heated from below, after Hollands et al.
// rac is the critical Rayleigh number of the enclosure (pass zero for the
// infinite-plate 1708). Below the critical Rayleigh number, or without aiding
// buoyancy, heat moves by conduction only and Nu is 1.
func NuNusseltRayleighHollands(pr, gr float64, buoyancy bool, rac float64) float64 {
	if !buoyancy {
		return 1.0
	}
	if rac == 0 {
		rac = 1708
	}
	ra := gr * pr
	if ra < rac {
		return 1.0
	}
	k1 := 1.44 / (1.0 + 0.018/pr + 0.00136/(pr*pr))
	k2 := 75 * math.Exp(1.5*math.Pow(pr, -0.5))
	t1 := 1.0 - rac/ra
	raThird := math.Cbrt(ra)
	t2 := k1 + 2.0*math.Pow(raThird/k2, 1.0-math.Log(raThird/k2))
	t3 := math.Cbrt(ra/5803.0) - 1.0
	t5 := 1.0
	if rac != 1708 {
		t4 := math.Max(0.0, math.Cbrt(ra/rac)-1.0)
		t5 = 1.0 - math.Exp(-0.95*t4)
	}
	return 1.0 + math.Max(0.0, t1)*math.Max(0.0, t2) + math.Max(0.0, t3)*t5
}

// NuNusseltRayleighProbert returns the Nusselt number for natural convection
// between two horizontal plates heated from below, from the simple power
// laws of Probert.
func NuNusseltRayleighProbert(pr, gr float64, buoyancy bool) float64 {
	if !buoyancy {
		return 1.0
	}
	ra := gr * pr
	switch {
	case ra < 1708:
		return 1.0
	case ra < 2.2e4:
		return 0.208 * math.Pow(ra, 0.25)
	default:
		return 0.092 * math.Cbrt(ra)
	}
}

// NuNusseltRayleighHollingHerwig returns the Nusselt number for natural
// convection between two horizontal plates heated from below, from the
// implicit logarithmic law of Holling and Herwig solved numerically.
func NuNusseltRayleighHollingHerwig(pr, gr float64, buoyancy bool) (float64, error) {
	if !buoyancy {
		return 1.0, nil
	}
	ra := gr * pr
	if ra < 1708 {
		return 1.0, nil
	}
	raThird := math.Cbrt(ra)
	d2 := 2.0 * (-14.94*math.Pow(ra, -0.25) + 3.43)
	guess := raThird * math.Pow(0.1/2.0*math.Log(.078/16.0*math.Pow(ra, 1.323))+d2, -4.0/3.0)
	nu, err := numerics.Secant(func(nu float64) float64 {
		return raThird*math.Pow(0.1/2.0*math.Log(1.0/16.0*ra*nu)+d2, -4.0/3.0) - nu
	}, guess, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("Holling-Herwig Nusselt number: %w", err)
	}
	return nu, nil
}

// NuNusseltVerticalThess returns the Nusselt number of natural convection in
// a vertical enclosure heated on one side, after Thess. The laminar branch
// needs the cavity height h and gap l; with either zero the turbulent law
// applies.
func NuNusseltVerticalThess(pr, gr, h, l float64) float64 {
	ra := gr * pr
	if ra < 1e7 && h != 0 && l != 0 {
		return 0.42 * math.Pow(pr, 0.012) * math.Pow(ra, 0.25) * math.Pow(l/h, 0.25)
	}
	return 0.049 * math.Pow(ra, 0.33)
}

// Critical Rayleigh number surfaces for rectangular boxes heated from below,
// fitted to the tabulated stability results of Catton (1970) on the
// (W/L, H/L) plane in log space.
var (
	racUninsulatedTx = []float64{0.125, 0.125, 0.125, 0.125, 0.41375910864088195,
		0.5819413331927507, 1.9885569998423345, 2.8009586482973834,
		3.922852887459219, 6.0, 6.0, 6.0, 6.0}
	racUninsulatedTy = []float64{0.125, 0.125, 0.125, 0.125, 0.4180739258304788,
		0.6521218159098487, 1.4270223336187269, 2.89426640315332,
		3.9239774081390215, 6.0, 6.0, 6.0, 6.0}
	racUninsulatedC = []float64{16.098194938851986, 14.026983058722742, 13.35866942808268, 13.043296359953983,
		13.008470795621905, 12.991279831677808, 13.040841344665466, 13.07803101947673,
		13.111789672293794, 14.074352449019207, 14.878522936155216, 11.151352953023258,
		11.096394321545977, 10.813773781060574, 10.796217122120712, 10.78189560829848,
		10.774336865714089, 10.78004622910552, 13.400086198278455, 11.369928815173187,
		11.82067779495709, 9.6860949637944, 9.686120336218499, 9.50952376562826,
		9.444619552074945, 9.452058024482865, 9.441608909473647, 12.933722760010111,
		10.873615956186896, 8.971126166473885, 8.520162104980807, 8.317346176887659,
		7.837750498437191, 7.78951404473208, 7.690715685713949, 7.695209247397283,
		13.025815591825872, 10.75723159025179, 9.734653433466208, 8.569056561731081,
		8.77031704228521, 7.853798846698488, 7.939088236475908, 7.748880239519593,
		7.785611785518214, 12.992898431724237, 10.728320934519346, 9.37520794405935,
		8.247995842200584, 7.753730020752022, 7.937553314495094, 7.6598493250444255,
		7.673199977054488, 7.63790748099515, 13.041869920313422, 10.713059500923494,
		9.364505568407685, 8.18000143764639, 7.927764179244221, 7.660718938605501,
		7.85174473958641, 7.5354388646400965, 7.614740168201775, 13.077057211283323,
		10.706667262420716, 9.341451094646674, 8.122270764822368, 7.671593316397699,
		7.697000470802994, 7.530680469875164, 7.720180133976149, 7.59900173760075,
		13.111791693551362, 10.711047679739433, 9.339770955175847, 8.117021359757253,
		7.727537757463738, 7.654072928976537, 7.607359118625173, 7.602197791148399,
		7.596844236081228}

	racInsulatedTx = []float64{0.125, 0.125, 0.2165763979498294, 0.25, 0.4948545767149843,
		0.8432690088415454, 2.297018168305444, 5.324310151069744, 12.0, 12.0}
	racInsulatedTy = []float64{0.125, 0.125, 0.125, 0.37135574365684176, 0.8160817162671293, 1.1103105500488575,
		1.9000136398530074, 3.521092600950009, 12.0, 12.0, 12.0}
	racInsulatedC = []float64{14.917942380813974, 12.196391449028951, 10.665084931671647, 10.531834082947338,
		10.57637568816619, 10.486173564722383, 10.471864979770599, 10.468190753935556,
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 12.715841947316376, 12.462417612931137,
		9.174421085152083, 9.411191211042704, 9.409695481542864, 9.28122664900159,
		9.249608368005552, 9.251639244971427, 11.165512470689693, 10.01308504970903,
		9.75292707527754, 8.509349912597454, 8.566854764542974, 8.372517445356857,
		8.32618713246236, 8.329704835832104, 10.56848779064929, 9.163970117017675,
		8.369187019066972, 8.19799054440329, 8.087508877612247, 7.896372367041187,
		7.806891615973793, 7.835687464634469, 10.509836235182163, 9.041210689705586,
		8.118960504225761, 7.909354018896528, 7.735269232380504, 7.614379036546508,
		7.4775491512154515, 7.529024952770015, 10.474423221467699, 8.98482837851057,
		8.036532362247245, 7.822308882170893, 7.6362269726600065, 7.539826337638537,
		7.459554042916101, 7.480930154132415, 10.469149134470264, 8.978694786931275,
		8.024134988827441, 7.811393154091167, 7.627457342156321, 7.521833838146938,
		7.4376750879045455, 7.462202956737165}
)

// RacNusseltRayleigh returns the critical Rayleigh number below which a
// rectangular box of height h (in the gravity direction), depth l and width
// w heated from below sustains no convection, interpolated from Catton's
// results. insulated selects perfectly insulating side walls over perfectly
// conducting ones.
func RacNusseltRayleigh(h, l, w float64, insulated bool) float64 {
	hl := math.Min(math.Max(h/l, 0.125), 12.0)
	wl := math.Min(math.Max(w/l, 0.125), 12.0)
	if insulated {
		return math.Exp(numerics.Spline2DEval(racInsulatedTx, racInsulatedTy, racInsulatedC, 1, 2, wl, hl))
	}
	return math.Exp(numerics.Spline2DEval(racUninsulatedTx, racUninsulatedTy, racUninsulatedC, 3, 3, wl, hl))
}

var uninsulatedDiskCoeffs = []float64{1.3624571738082523, -0.24301326192178863, -6.152310426160362,
	1.1950540229805053, 11.401090141352329, -2.405543860763877,
	-11.091871509655324, 2.519761389270987, 5.992609902331248,
	-1.4345227368881952, -1.7445130176764998, 0.42892571421446996,
	0.22897205478499438, -0.042179780698649895, -0.01904413256783342,
	0.006771075600246057, 0.13171026423861615}

var insulatedDiskCoeffs = []float64{0.2173851248644496, 0.09672312658254612, -1.0800494968302843,
	-0.3323452633903514, 2.1789014174652115, 0.43391756058946473,
	-2.275756526433769, -0.29309565826688255, 1.3153930583762103,
	0.14707146242791974, -0.44891166228441826, -0.045070571352735386,
	0.08693822836596571, 0.010343944709216, -0.01325209778273359,
	0.0035707992137628142, 0.13258956599554672}

// RacNusseltRayleighDisk returns the critical Rayleigh number of a vertical
// cylindrical enclosure of height h and diameter d heated from below, from a
// polynomial fit on d/h (clamped to [0.4, 6]).
func RacNusseltRayleighDisk(h, d float64, insulated bool) float64 {
	x := math.Min(math.Max(d/h, 0.4), 6.0)
	coeffs := uninsulatedDiskCoeffs
	if insulated {
		coeffs = insulatedDiskCoeffs
	}
	return math.Exp(1.0 / numerics.Horner(coeffs, 0.357142857142857151*(x-3.2)))
}

// NuVerticalHelicalCoilAli returns the external natural convection Nusselt
// number of a vertical helical coil in water, after Ali.
func NuVerticalHelicalCoilAli(pr, gr float64) float64 {
	return 0.555 * math.Pow(gr, 0.301) * math.Pow(pr, 0.314)
}

// NuVerticalHelicalCoilPrabhanjanRennieRaghavan returns the external natural
// convection Nusselt number of a vertical helical coil, after Prabhanjan,
// Rennie and Raghavan.
func NuVerticalHelicalCoilPrabhanjanRennieRaghavan(pr, gr float64) float64 {
	return 0.0749 * math.Pow(pr*gr, 0.3421)
}
