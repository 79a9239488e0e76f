package convection

import (
	"fmt"
	"math"

	"ht"
	"ht/internal/numerics"
)

// Row-count corrections for the Grimison correlation, rows 1 through 9.
var (
	grimisonNlAligned   = []float64{0.64, 0.8, 0.87, 0.9, 0.92, 0.94, 0.96, 0.98, 0.99}
	grimisonNlStaggered = []float64{0.68, 0.75, 0.83, 0.89, 0.92, 0.95, 0.97, 0.98, 0.99}
)

// Spline fits of the Grimison C1 and m constants over the transverse and
// longitudinal pitch ratios, for aligned and staggered tube banks.
var (
	grimisonAlignedKnots = []float64{1.25, 1.25, 1.25, 1.25, 3.0, 3.0, 3.0, 3.0}

	grimisonC1AlignedC = []float64{
		0.34800000000000003, 0.20683194444444492, -0.18023055555555617, 0.06330000000000001,
		0.3755277777777776, -0.28351037808642043, 0.24365763888889008, -0.0007166666666667326,
		0.5481111111111114, 0.2925767746913588, 0.8622214506172828, 0.5207777777777779,
		0.29, 0.5062500000000002, 0.26944444444444426, 0.286,
	}
	grimisonMAlignedC = []float64{
		0.5920000000000001, 0.5877777777777775, 0.9133333333333344, 0.752,
		0.5828472222222219, 0.7998613040123475, 0.7413584104938251, 0.7841111111111112,
		0.5320833333333332, 0.5504147376543196, 0.30315663580247154, 0.4148888888888891,
		0.601, 0.5454861111111109, 0.6097500000000002, 0.608,
	}

	grimisonStaggeredMTx = []float64{1.25, 1.25, 1.8667584356619125, 2.0, 2.8366905775206916, 3.0, 3.0}
	grimisonStaggeredMTy = []float64{0.6, 0.6, 1.0085084989709654, 1.340729148958038, 1.5154196399508033, 3.0, 3.0}
	grimisonStaggeredMC  = []float64{
		1.731351706314169, 0.3675823638826614, 0.6267891238439347, 0.5623083927989683, 0.5920000000000982,
		1.180171700201992, 0.7874995409316767, 0.4622370503994375, 0.562004066622535, 0.5623955950882191,
		0.5680620929528815, 0.5720626262793304, 0.5510099520872309, 0.5641771077227365, 0.5597975310692721,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.6361653765016168, 0.5601991640778442, 0.5621224100266599, 0.5684014375982079, 0.573932491076899,
	}

	grimisonStaggeredC1Tx = []float64{1.25, 1.25, 1.936293121624252, 2.0, 2.094408820089069, 3.0, 3.0}
	grimisonStaggeredC1Ty = []float64{0.6, 0.6, 1.1841422334268308, 1.3897531616318943, 1.6483901017748916, 3.0, 3.0}
	grimisonStaggeredC1C  = []float64{
		0.534042720665836, 0.5446897215451869, 0.4613632028066018, 0.4370513304331604, 0.31000000000000005,
		0.3060114256888106, 0.4719357486311919, 0.5043332405690643, 0.4371755864391464, 0.4362779343788622,
		0.364660449991649, 0.5144234623651529, 0.4513822953351327, 0.4852710459180796, 0.4420724694173403,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.21898644381978172, 0.5500312131715677, 0.4969529176876636, 0.46150347905703587, 0.4270770845430577,
	}
)

// NuGrimisonTubeBank returns the Nusselt number for crossflow across a tube
// bank of the given geometry, after Grimison. The tube bank is taken as
// staggered when the normal and parallel pitches differ by more than 5%.
func NuGrimisonTubeBank(re, pr, do float64, tubeRows int, pitchParallel, pitchNormal float64) float64 {
	staggered := math.Abs(1-pitchNormal/pitchParallel) > 0.05
	a := pitchNormal / do
	b := pitchParallel / do
	var c1, m float64
	if !staggered {
		c1 = numerics.Spline2DEval(grimisonAlignedKnots, grimisonAlignedKnots, grimisonC1AlignedC, 3, 3, b, a)
		m = numerics.Spline2DEval(grimisonAlignedKnots, grimisonAlignedKnots, grimisonMAlignedC, 3, 3, b, a)
	} else {
		c1 = numerics.Spline2DEval(grimisonStaggeredC1Tx, grimisonStaggeredC1Ty, grimisonStaggeredC1C, 1, 1, b, a)
		m = numerics.Spline2DEval(grimisonStaggeredMTx, grimisonStaggeredMTy, grimisonStaggeredMC, 1, 1, b, a)
	}
	c2 := 1.0
	if tubeRows < 10 {
		if tubeRows < 1 {
			tubeRows = 1
		}
		idx := tubeRows
		if idx > len(grimisonNlAligned)-1 {
			idx = len(grimisonNlAligned) - 1
		}
		if staggered {
			c2 = grimisonNlStaggered[idx]
		} else {
			c2 = grimisonNlAligned[idx]
		}
	}
	return 1.13 * math.Pow(re, m) * math.Cbrt(pr) * c2 * c1
}

// Mean-to-front-row Nusselt number ratios for banks of 1 through 19 rows.
var (
	zukauskasCzLowReStaggered = []float64{0.8295, 0.8792, 0.9151, 0.9402, 0.957, 0.9677,
		0.9745, 0.9785, 0.9808, 0.9823, 0.9838, 0.9855, 0.9873, 0.9891, 0.991,
		0.9929, 0.9948, 0.9967, 0.9987}
	zukauskasCzHighReStaggered = []float64{0.6273, 0.7689, 0.8473, 0.8942, 0.9254,
		0.945, 0.957, 0.9652, 0.9716, 0.9765, 0.9803, 0.9834, 0.9862, 0.989,
		0.9918, 0.9943, 0.9965, 0.998, 0.9986}
	zukauskasCzInline = []float64{0.6768, 0.8089, 0.8687, 0.9054, 0.9303, 0.9465, 0.9569,
		0.9647, 0.9712, 0.9766, 0.9811, 0.9847, 0.9877, 0.99, 0.992, 0.9937,
		0.9953, 0.9969, 0.9986}
)

// ZukauskasTubeRowCorrection returns the tube row count correction of the
// Zukauskas tube bank correlation. Banks of 20 or more rows need none. The
// staggered factors switch between the low and high Reynolds number sets at
// re of 1000.
func ZukauskasTubeRowCorrection(tubeRows int, staggered bool, re float64) float64 {
	if tubeRows < 1 {
		tubeRows = 1
	}
	if tubeRows > 19 {
		return 1.0
	}
	if staggered {
		if re < 1000 {
			return zukauskasCzLowReStaggered[tubeRows-1]
		}
		return zukauskasCzHighReStaggered[tubeRows-1]
	}
	return zukauskasCzInline[tubeRows-1]
}

// NuZukauskasBejan returns the Nusselt number for crossflow across a tube
// bank, after Zukauskas as presented by Bejan. Pass prWall nonzero to apply
// the Prandtl number wall correction.
func NuZukauskasBejan(re, pr float64, tubeRows int, pitchParallel, pitchNormal, prWall float64) float64 {
	staggered := math.Abs(1-pitchNormal/pitchParallel) > 0.05
	f := 1.0
	var c, m float64
	if !staggered {
		switch {
		case re < 100:
			c, m = 0.9, 0.4
		case re < 1000:
			c, m = 0.52, 0.05
		case re < 2e5:
			c, m = 0.27, 0.63
		default:
			c, m = 0.033, 0.8
		}
	} else {
		switch {
		case re < 500:
			c, m = 1.04, 0.4
		case re < 1000:
			c, m = 0.71, 0.5
		case re < 2e5:
			c, m = 0.35, 0.6
			f = math.Pow(pitchNormal/pitchParallel, 0.2)
		default:
			c, m = 0.031, 0.8
			f = math.Pow(pitchNormal/pitchParallel, 0.2)
		}
	}
	nu := c * math.Pow(re, m) * math.Pow(pr, 0.36) * f
	if prWall != 0 {
		nu *= math.Pow(pr/prWall, 0.25)
	}
	return nu * ZukauskasTubeRowCorrection(tubeRows, staggered, re)
}

// Row-count factors for banks of 3 through 9 rows; 10 or more rows need none
// and fewer than 3 rows take the 3-row value.
var (
	esduF2Inline    = []float64{0.8479, 0.8957, 0.9306, 0.9551, 0.9724, 0.9839, 0.9902}
	esduF2Staggered = []float64{0.8593, 0.8984, 0.9268, 0.9482, 0.965, 0.9777, 0.9868}
)

// ESDUTubeRowCorrection returns the tube row count correction factor of the
// ESDU 73031 tube bank method, as curve-fit by Hewitt.
func ESDUTubeRowCorrection(tubeRows int, staggered bool) float64 {
	table := esduF2Inline
	if staggered {
		table = esduF2Staggered
	}
	if tubeRows <= 2 {
		return table[0]
	}
	if tubeRows >= 10 {
		return 1.0
	}
	return table[tubeRows-3]
}

// ESDUTubeAngleCorrection returns the correction factor for tube banks
// inclined at the given angle to the flow, in degrees. A crossflow bank is
// at 90 degrees.
func ESDUTubeAngleCorrection(angle float64) float64 {
	return math.Pow(math.Sin(angle*math.Pi/180), 0.6)
}

// NuESDU73031 returns the Nusselt number for crossflow across a tube bank,
// after ESDU 73031. Pass prWall nonzero to apply the Prandtl number wall
// correction, and angle nonzero (degrees) for inclined banks; angle zero is
// taken as perpendicular flow.
func NuESDU73031(re, pr float64, tubeRows int, pitchParallel, pitchNormal, prWall, angle float64) float64 {
	staggered := math.Abs(1-pitchNormal/pitchParallel) > 0.05
	var a, m float64
	if staggered {
		switch {
		case re <= 300:
			a, m = 1.309, 0.360
		case re <= 2e5:
			a, m = 0.273, 0.635
		default:
			a, m = 0.124, 0.700
		}
	} else {
		switch {
		case re <= 300:
			a, m = 0.742, 0.431
		case re <= 2e5:
			a, m = 0.211, 0.651
		default:
			a, m = 0.116, 0.700
		}
	}
	f2 := ESDUTubeRowCorrection(tubeRows, staggered)
	if angle == 0 {
		angle = 90.0
	}
	f3 := ESDUTubeAngleCorrection(angle)
	f1 := 1.0
	if prWall != 0 {
		spec := ht.DefaultWallFactorSpec()
		spec.PrHeatingCoeff = 0.26
		spec.PrCoolingCoeff = 0.26
		factor, err := ht.WallFactor(ht.WallFactorProperties{Pr: pr, PrWall: prWall}, spec)
		if err == nil {
			f1 = factor
		}
	}
	return a * math.Pow(re, m) * math.Pow(pr, 0.34) * f1 * f2 * f3
}

// NuHEDHTubeBank returns the Nusselt number for crossflow across a tube bank
// per the Heat Exchanger Design Handbook method, built on the single-cylinder
// Gnielinski correlation evaluated at the void velocity.
func NuHEDHTubeBank(re, pr, do float64, tubeRows int, pitchParallel, pitchNormal float64) float64 {
	staggered := math.Abs(1-pitchNormal/pitchParallel) > 0.05
	a := pitchNormal / do
	b := pitchParallel / do
	var voidage float64
	if b >= 1 {
		voidage = 1 - math.Pi/(4*a)
	} else {
		voidage = 1 - math.Pi/(4*a*b)
	}
	re = re / voidage
	nuLaminar := 0.664 * math.Sqrt(re) * math.Cbrt(pr)
	nuTurbulent := 0.037 * math.Pow(re, 0.8) * pr /
		(1 + 2.443*math.Pow(re, -0.1)*(math.Pow(pr, 2/3.)-1))
	nu := 0.3 + math.Sqrt(nuLaminar*nuLaminar+nuTurbulent*nuTurbulent)
	var fa float64
	if !staggered {
		fa = 1 + 0.7/math.Pow(voidage, 1.5)*(b/a-0.3)/((b/a+0.7)*(b/a+0.7))
	} else {
		fa = 1 + 2/(3*b)
	}
	if tubeRows < 10 {
		return nu * (1 + (float64(tubeRows)-1)*fa) / float64(tubeRows)
	}
	return nu * fa
}

// Spline fit of the Kern shell-side friction factor chart over Reynolds
// number.
var (
	kernFReKnots = []float64{9.9524, 9.9524, 9.9524, 9.9524, 17.9105, 27.7862, 47.2083, 83.9573,
		281.996, 1122.76, 42999.9, 1012440.0, 1012440.0, 1012440.0, 1012440.0}
	kernFReC = []float64{6.040435949178239, 4.64973456285782, 2.95274850806163, 1.9569061885042,
		1.1663069946420412, 0.6830549536215098, 0.4588680265447762, 0.22387792331971723,
		0.12721190975530583, 0.1395456548881242, 0.12888895743468684}
)

func kernFRe(re float64) float64 {
	return numerics.SplineEval(kernFReKnots, kernFReC, 3, re)
}

// DPKern returns the shell-side pressure drop of a baffled shell-and-tube
// exchanger by the Kern method, from the shell diameter, baffle spacing,
// tube pitch and outer diameter, and baffle count. Pass muW nonzero to apply
// the viscosity wall correction.
func DPKern(m, rho, mu, dShell, lSpacing, pitch, do float64, nBaffles int, muW float64) float64 {
	ss := dShell * (pitch - do) * lSpacing / pitch
	de := 4 * (pitch*pitch - math.Pi*do*do/4) / math.Pi / do
	vs := m / ss / rho
	re := rho * de * vs / mu
	f := kernFRe(re)
	dP := f * (vs * rho) * (vs * rho) * dShell * float64(nBaffles+1) / (2 * rho * de)
	if muW != 0 {
		dP /= math.Pow(mu/muW, 0.14)
	}
	return dP
}

var (
	dPStaggeredPitches = []float64{1.25, 1.5, 2, 2.5}
	dPStaggeredCorrRes = []float64{1e2, 1e3, 1e4, 1e5}
	dPInlinePitches    = []float64{1.25, 1.5, 2, 2.5}
	dPInlineCorrRes    = []float64{1e3, 1e4, 1e5, 1e6}
)

func chartInterp(xs []float64, cols [][]float64, colAxis []float64, x, y float64) float64 {
	vals := make([]float64, len(cols))
	for i, col := range cols {
		vals[i] = numerics.Interp(x, xs, col)
	}
	return numerics.Interp(y, colAxis, vals)
}

// DPZukauskas returns the pressure drop across an n-row tube bank by the
// Zukauskas chart method, from the digitized friction factor and geometry
// correction charts. Aligned banks are those with equal transverse and
// longitudinal pitches st and sl.
func DPZukauskas(re float64, n int, st, sl, d, rho, vMax float64) float64 {
	a := st / d
	b := sl / d
	var f, x float64
	if a == b {
		parameter := (a - 1) / (b - 1)
		f = chartInterp(dPInlineRes,
			[][]float64{dPInlineF125, dPInlineF15, dPInlineF2, dPInlineF25},
			dPInlinePitches, re, b)
		x = chartInterp(dPInlineCorrParams,
			[][]float64{dPInlineCorrRe1000, dPInlineCorrRe10000, dPInlineCorrRe100000, dPInlineCorrRe1000000},
			dPInlineCorrRes, parameter, re)
	} else {
		parameter := a / b
		f = chartInterp(dPStaggeredRes,
			[][]float64{dPStaggeredF125, dPStaggeredF15, dPStaggeredF2, dPStaggeredF25},
			dPStaggeredPitches, re, a)
		x = chartInterp(dPStaggeredCorrParams,
			[][]float64{dPStaggeredCorrRe100, dPStaggeredCorrRe1000, dPStaggeredCorrRe10000, dPStaggeredCorrRe100000},
			dPStaggeredCorrRes, parameter, re)
	}
	return float64(n) * x * f * rho / 2 * vMax * vMax
}

// Methods accepted by the Bell-Delaware correction factor functions.
const (
	BellSpline    = "spline"
	BellChebyshev = "chebyshev"
	BellHEDH      = "HEDH"
)

var (
	bellBaffleConfigKnots = []float64{0.0, 0.0, 0.0, 0.0, 0.517361, 0.802083, 0.866319,
		0.934028, 0.977431, 1.0, 1.0, 1.0, 1.0}
	bellBaffleConfigC = []float64{0.5328447885827443, 0.6821475548927218, 0.9074424740361304,
		1.0828783604984582, 1.1485665329698214, 1.1612486065399008, 1.1216591944456349,
		1.0762015137576528, 1.0314244120288227}

	bellBaffleConfigCoeffs = []float64{-17.267087530974095, -17.341072676377735,
		60.38380262590988, 60.78202803861199, -83.86556326987701, -84.74024411236306,
		58.66461844872558, 59.56146082596216, -21.786957547130935, -22.229378707598116,
		4.1167302227508, 4.226246012504343, -0.3349723004600481, -0.3685826653263089,
		-0.0629839069257099, 0.35883309630976157, 0.9345478582873352}
)

// BaffleCorrectionBell returns the baffle configuration correction factor Jc
// of the Bell-Delaware method from the fraction of tubes in crossflow between
// the baffle tips. An empty method selects the spline fit of Bell's chart;
// BellChebyshev uses a Chebyshev fit and BellHEDH the linear HEDH
// approximation.
func BaffleCorrectionBell(crossflowTubeFraction float64, method string) (float64, error) {
	frac := crossflowTubeFraction
	switch method {
	case BellSpline, "":
		return numerics.SplineEval(bellBaffleConfigKnots, bellBaffleConfigC, 3, frac), nil
	case BellChebyshev:
		return numerics.Horner(bellBaffleConfigCoeffs, 2*frac-1), nil
	case BellHEDH:
		return 0.55 + 0.72*frac, nil
	}
	return 0, fmt.Errorf("unknown baffle correction method %q: valid methods are %v",
		method, []string{BellSpline, BellChebyshev, BellHEDH})
}

const bellBaffleLeakageXMax = 0.743614

var (
	bellBaffleLeakageTx = []float64{0.0, 0.0, 0.0, 0.0, 0.0213694, 0.0552542, 0.144818,
		0.347109, 0.743614, 0.743614, 0.743614, 0.743614}
	bellBaffleLeakageTy = []float64{0.0, 0.0, 0.25, 0.5, 0.75, 1.0, 1.0}
	bellBaffleLeakageC  = []float64{
		1.0001228445490002, 0.9988161050974387, 0.9987070557919563, 0.9979385859402731, 0.9970983069823832,
		0.96602540121758, 0.955136014969614, 0.9476842472211648, 0.9351143114374392, 0.9059649602818451,
		0.9218915266550902, 0.9086000082864022, 0.8934758292610783, 0.8737960765592091, 0.83185251064324,
		0.8664296734965998, 0.8349705397843921, 0.809133298969704, 0.7752206120745123, 0.7344035693011536,
		0.817047920445813, 0.7694560150930563, 0.7250979336267909, 0.6766754605968431, 0.629304180420512,
		0.7137237030611423, 0.6408238328161417, 0.5772000233279148, 0.504889627280836, 0.440579886434288,
		0.6239736474980684, 0.5273646894226224, 0.43995388722059986, 0.34359277007615313, 0.26986439252143746,
		0.5640689738382749, 0.4540959882735219, 0.35278120580740957, 0.24364672351604122, 0.1606942128340308,
	}
)

// BaffleLeakageBell returns the baffle leakage correction factor Jl of the
// Bell-Delaware method, from the shell-to-baffle, tube-to-baffle and
// crossflow areas. An empty method selects the spline fit of Bell's chart;
// BellHEDH uses the exponential HEDH approximation.
func BaffleLeakageBell(ssb, stb, sm float64, method string) (float64, error) {
	x := (ssb + stb) / sm
	if x > bellBaffleLeakageXMax {
		x = bellBaffleLeakageXMax
	}
	z := ssb / (ssb + stb)
	if z > 1 || z < 0 {
		return 0, fmt.Errorf("shell-to-baffle fraction of leakage area is %g, must be between 0 and 1", z)
	}
	switch method {
	case BellSpline, "":
		jl := numerics.Spline2DEval(bellBaffleLeakageTx, bellBaffleLeakageTy, bellBaffleLeakageC, 3, 1, x, z)
		return math.Min(jl, 1.0), nil
	case BellHEDH:
		return 0.44*(1-z) + (1-0.44*(1-z))*math.Exp(-2.2*x), nil
	}
	return 0, fmt.Errorf("unknown baffle leakage method %q: valid methods are %v",
		method, []string{BellSpline, BellHEDH})
}

const bellBundleBypassXMax = 0.69532

var (
	bellBundleBypassTx = []float64{0.0, 0.0, 0.0, 0.0, 0.434967, 0.69532, 0.69532, 0.69532, 0.69532}
	bellBundleBypassTy = []float64{0.0, 0.0, 0.0, 0.0, 0.1, 0.16666666666666666, 0.5, 0.5, 0.5, 0.5}

	bellBundleBypassHighC = []float64{
		0.9992518012440722, 0.9989007625058475, 1.0018411070735471, 0.9941457497302127, 1.0054152224744488,
		1.0000002120327414, 0.8193710201718651, 0.8906557463728106, 0.9236476444228989, 0.9466472125718047,
		1.002564972451326, 1.0000001328221189, 0.6099796629837915, 0.7779198818216049, 0.8128716798013131,
		0.935864247770527, 0.932707600057425, 0.9999978349038892, 0.46653330555544065, 0.6543895994806808,
		0.7244471950409509, 0.8599376452211228, 0.9622021460141503, 0.9999989177211911, 0.42206076955873406,
		0.6230810793228677, 0.6903177740858685, 0.8544752061829647, 0.9373953303873518, 0.9999983130568033,
	}
	bellBundleBypassLowC = []float64{
		1.0015970586968514, 0.9976793473578099, 1.0037098839305505, 0.9953304170745584, 1.0031587186511541,
		1.00000028406872, 0.8027498596582175, 0.9050562101782131, 0.9133675590990569, 0.9611563766991582,
		0.9879481797594364, 0.9999988983171519, 0.5813496854191834, 0.7520908533825839, 0.7927234268976187,
		0.9090698658126287, 0.9857133220039945, 0.9999986096716597, 0.43493461007512263, 0.6478801160783917,
		0.6961255921403956, 0.861432071791341, 0.9243020549338703, 0.999997894037133, 0.39110224578093694,
		0.606829928454368, 0.6600680810505178, 0.8482579667665061, 0.9223728343461776, 0.9999978298360785,
	}
)

// BundleBypassingBell returns the bundle bypass correction factor Jb of the
// Bell-Delaware method, from the bypass area fraction and the number of
// sealing strips per crossflow row. Set laminar for Reynolds numbers under
// 100. An empty method selects the spline fits of Bell's chart; BellHEDH
// uses the exponential HEDH approximation.
func BundleBypassingBell(bypassAreaFraction float64, sealStrips, crossflowRows int, laminar bool, method string) (float64, error) {
	z := float64(sealStrips) / float64(crossflowRows)
	x := bypassAreaFraction
	switch method {
	case BellSpline, "":
		if x > bellBundleBypassXMax {
			x = bellBundleBypassXMax
		}
		c := bellBundleBypassHighC
		if laminar {
			c = bellBundleBypassLowC
		}
		jb := numerics.Spline2DEval(bellBundleBypassTx, bellBundleBypassTy, c, 3, 3, x, z)
		return math.Min(jb, 1.0), nil
	case BellHEDH:
		c := 1.25
		if laminar {
			c = 1.35
		}
		return math.Exp(-c * x * (1 - math.Cbrt(2*z))), nil
	}
	return 0, fmt.Errorf("unknown bundle bypassing method %q: valid methods are %v",
		method, []string{BellSpline, BellHEDH})
}

// UnequalBaffleSpacingBell returns the correction factor Js of the
// Bell-Delaware method for inlet and outlet baffle spacings that differ from
// the central spacing. Pass spacingIn or spacingOut zero when equal to the
// central spacing. Set laminar for Reynolds numbers under 100.
func UnequalBaffleSpacingBell(baffles int, spacing, spacingIn, spacingOut float64, laminar bool) float64 {
	if spacingIn == 0 {
		spacingIn = spacing
	}
	if spacingOut == 0 {
		spacingOut = spacing
	}
	n := 0.6
	if laminar {
		n = 1.0 / 3.0
	}
	b := float64(baffles)
	return ((b - 1) + math.Pow(spacingIn/spacing, 1-n) + math.Pow(spacingOut/spacing, 1-n)) /
		((b - 1) + spacingIn/spacing + spacingOut/spacing)
}

// LaminarCorrectionBell returns the laminar flow correction factor Jr of the
// Bell-Delaware method, from the shell Reynolds number and the total number
// of tube rows passed. It is 1 above a Reynolds number of 100 and never
// falls below 0.4.
func LaminarCorrectionBell(re float64, totalRowPasses int) float64 {
	if re > 100 {
		return 1.0
	}
	jrr := math.Pow(10/float64(totalRowPasses), 0.18)
	jr := jrr
	if re >= 20 {
		jr = jrr + (20-re)/80*(jrr-1)
	}
	if jr < 0.4 {
		jr = 0.4
	}
	return jr
}
