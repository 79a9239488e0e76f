package convection

import (
	"fmt"
	"math"
)

// TwoPhaseFlow carries the state of a gas-liquid flow in a tube and the
// liquid and gas properties the two-phase heat transfer correlations draw
// from. Optional fields are zero when unknown; each method's requirements
// are listed with its name constant.
type TwoPhaseFlow struct {
	M     float64 // total mass flow rate, [kg/s]
	X     float64 // gas mass quality, [-]
	D     float64 // tube inner diameter, [m]
	L     float64 // tube length, [m]
	Alpha float64 // gas void fraction, [-]
	Rhol  float64 // liquid density, [kg/m^3]
	Rhog  float64 // gas density, [kg/m^3]
	Cpl   float64 // liquid heat capacity, [J/kg/K]
	Kl    float64 // liquid thermal conductivity, [W/m/K]
	Mul   float64 // liquid viscosity, [Pa*s]
	Mug   float64 // gas viscosity, [Pa*s]
	MuB   float64 // liquid viscosity at the bulk temperature, [Pa*s]
	MuW   float64 // liquid viscosity at the wall temperature, [Pa*s]
}

// HDavisDavid returns the two-phase heat transfer coefficient after Davis and
// David (1964), for annular flow at moderate void fractions.
func HDavisDavid(m, x, d, rhol, rhog, cpl, kl, mul float64) float64 {
	gFlux := m / (math.Pi / 4 * d * d)
	prl := cpl * mul / kl
	nu := 0.060 * math.Pow(rhol/rhog, 0.28) * math.Pow(d*gFlux*x/mul, 0.87) * math.Pow(prl, 0.4)
	return nu * kl / d
}

// HElamvaluthiSrinivas returns the two-phase heat transfer coefficient after
// Elamvaluthi and Srinivas (1984), from the mixture Reynolds number, with an
// optional viscosity wall correction.
func HElamvaluthiSrinivas(m, x, d, rhol, rhog, cpl, kl, mug, muB, muW float64) float64 {
	vg := m * x / (rhog * math.Pi / 4 * d * d)
	vl := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	prl := cpl * muB / kl
	reM := d*vl*rhol/muB + d*vg*rhog/mug
	nu := 0.5 * math.Pow(mug/muB, 0.25) * math.Pow(reM, 0.7) * math.Cbrt(prl)
	if muW != 0 {
		nu *= math.Pow(muB/muW, 0.14)
	}
	return nu * kl / d
}

// HGroothuisHendal returns the two-phase heat transfer coefficient after
// Groothuis and Hendal (1959). water selects the constants fitted to
// air-water data over the gas-oil set.
func HGroothuisHendal(m, x, d, rhol, rhog, cpl, kl, mug, muB, muW float64, water bool) float64 {
	vg := m * x / (rhog * math.Pi / 4 * d * d)
	vl := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	prl := cpl * muB / kl
	reM := d*vl*rhol/muB + d*vg*rhog/mug
	var nu float64
	if water {
		nu = 0.029 * math.Pow(reM, 0.87) * math.Cbrt(prl)
	} else {
		nu = 2.6 * math.Pow(reM, 0.39) * math.Cbrt(prl)
	}
	if muW != 0 {
		nu *= math.Pow(muB/muW, 0.14)
	}
	return nu * kl / d
}

// HHughmark returns the two-phase heat transfer coefficient after Hughmark
// (1965), for horizontal slug flow, from the liquid holdup 1-alpha.
func HHughmark(m, x, alpha, d, l, cpl, kl, muB, muW float64) float64 {
	ml := m * (1 - x)
	rl := 1 - alpha
	nu := 1.75 * math.Pow(rl, -0.5) * math.Cbrt(ml*cpl/rl/kl/l)
	if muB != 0 && muW != 0 {
		nu *= math.Pow(muB/muW, 0.14)
	}
	return nu * kl / d
}

// HKnott returns the two-phase heat transfer coefficient after Knott et al.
// (1959), scaling a liquid-only coefficient by the superficial velocity
// ratio. Pass hl zero to compute it from the Sieder-Tate laminar entry
// correlation over length l.
func HKnott(m, x, d, rhol, rhog, cpl, kl, muB, muW, l, hl float64) float64 {
	vgs := m * x / (rhog * math.Pi / 4 * d * d)
	vls := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	if hl == 0 {
		v := vgs + vls
		re := v * d * rhol / muB
		pr := cpl * muB / kl
		hl = LaminarEntrySiederTate(re, pr, l, d, muB, muW) * kl / d
	}
	return hl * math.Cbrt(1+vgs/vls)
}

// HKudirkaGroshMcFadden returns the two-phase heat transfer coefficient after
// Kudirka, Grosh and McFadden (1965).
func HKudirkaGroshMcFadden(m, x, d, rhol, rhog, cpl, kl, mug, muB, muW float64) float64 {
	vgs := m * x / (rhog * math.Pi / 4 * d * d)
	vls := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	prl := cpl * muB / kl
	rels := d * vls * rhol / muB
	nu := 125 * math.Pow(vgs/vls, 0.125) * math.Pow(mug/muB, 0.6) *
		math.Pow(rels, 0.25) * math.Cbrt(prl)
	if muW != 0 {
		nu *= math.Pow(muB/muW, 0.14)
	}
	return nu * kl / d
}

// HMartinSims returns the two-phase heat transfer coefficient after Martin
// and Sims (1971). Pass hl zero to compute the liquid-only coefficient from
// the Sieder-Tate laminar entry correlation over length l.
func HMartinSims(m, x, d, rhol, rhog, cpl, kl, muB, muW, l, hl float64) float64 {
	vgs := m * x / (rhog * math.Pi / 4 * d * d)
	vls := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	if hl == 0 {
		v := vgs + vls
		re := v * d * rhol / muB
		pr := cpl * muB / kl
		hl = LaminarEntrySiederTate(re, pr, l, d, muB, muW) * kl / d
	}
	return hl * (1.0 + 0.64*math.Sqrt(vgs/vls))
}

// HRavipudiGodbold returns the two-phase heat transfer coefficient after
// Ravipudi and Godbold (1978).
func HRavipudiGodbold(m, x, d, rhol, rhog, cpl, kl, mug, muB, muW float64) float64 {
	vgs := m * x / (rhog * math.Pi / 4 * d * d)
	vls := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	prl := cpl * muB / kl
	rels := d * vls * rhol / muB
	nu := 0.56 * math.Pow(vgs/vls, 0.3) * math.Pow(mug/muB, 0.2) *
		math.Pow(rels, 0.6) * math.Cbrt(prl)
	if muW != 0 {
		nu *= math.Pow(muB/muW, 0.14)
	}
	return nu * kl / d
}

// HAggour returns the two-phase heat transfer coefficient after Aggour
// (1978), from the true liquid velocity at void fraction alpha. The regime
// switches at a true liquid Reynolds number of 2000; the laminar branch
// needs the tube length l.
func HAggour(m, x, alpha, d, rhol, cpl, kl, muB, muW, l float64) float64 {
	vls := m * (1 - x) / (rhol * math.Pi / 4 * d * d)
	vl := vls / (1. - alpha)
	prl := cpl * muB / kl
	rel := vl * d * rhol / muB
	if rel > 2000.0 {
		hl := 0.0155 * (kl / d) * math.Pow(rel, 0.83) * math.Sqrt(prl)
		return hl * math.Pow(1-alpha, -0.83)
	}
	hl := 1.615 * (kl / d) * math.Cbrt(rel*prl*d/l)
	if muW != 0 {
		hl *= math.Pow(muB/muW, 0.14)
	}
	return hl * math.Cbrt(1.0/(1.0-alpha))
}

// Method names accepted by HTwoPhase.
const (
	MethodKnott                = "Knott"
	MethodMartinSims           = "Martin-Sims"
	MethodKudirkaGroshMcFadden = "Kudirka-Grosh-McFadden"
	MethodGroothuisHendal      = "Groothuis-Hendal"
	MethodAggour               = "Aggour"
	MethodHughmark             = "Hughmark"
	MethodElamvaluthiSrinivas  = "Elamvaluthi-Srinivas"
	MethodDavisDavid           = "Davis-David"
	MethodRavipudiGodbold      = "Ravipudi-Godbold"
)

// HTwoPhaseMethods lists the two-phase heat transfer methods in order of
// preference.
var HTwoPhaseMethods = []string{
	MethodKnott,
	MethodMartinSims,
	MethodKudirkaGroshMcFadden,
	MethodGroothuisHendal,
	MethodAggour,
	MethodHughmark,
	MethodElamvaluthiSrinivas,
	MethodDavisDavid,
	MethodRavipudiGodbold,
}

// ApplicableTwoPhaseMethods lists the two-phase methods the given flow state
// can evaluate, in preference order. The first entry is what HTwoPhase
// selects when no method is named.
func ApplicableTwoPhaseMethods(flow TwoPhaseFlow) []string {
	var methods []string
	densities := flow.Rhol != 0 && flow.Rhog != 0
	wall := flow.MuB != 0 && flow.MuW != 0
	if densities && wall && flow.L != 0 {
		methods = append(methods, MethodKnott, MethodMartinSims)
	}
	if densities && flow.Mug != 0 && wall {
		methods = append(methods, MethodKudirkaGroshMcFadden, MethodGroothuisHendal)
	}
	if flow.Alpha != 0 && flow.Rhol != 0 && wall && flow.L != 0 {
		methods = append(methods, MethodAggour)
	}
	if flow.Alpha != 0 && flow.L != 0 && wall {
		methods = append(methods, MethodHughmark)
	}
	if densities && flow.Mug != 0 && wall {
		methods = append(methods, MethodElamvaluthiSrinivas)
	}
	if densities && flow.Mul != 0 {
		methods = append(methods, MethodDavisDavid)
	}
	if densities && flow.Mug != 0 && wall {
		methods = append(methods, MethodRavipudiGodbold)
	}
	return methods
}

// HTwoPhase returns the heat transfer coefficient of a gas-liquid flow in a
// tube by the named method, or by the most preferred applicable method when
// method is empty.
func HTwoPhase(method string, flow TwoPhaseFlow) (float64, error) {
	if method == "" {
		applicable := ApplicableTwoPhaseMethods(flow)
		if len(applicable) == 0 {
			return 0, fmt.Errorf("two-phase heat transfer: insufficient property data for any method")
		}
		method = applicable[0]
	}
	switch method {
	case MethodKnott:
		return HKnott(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog, flow.Cpl, flow.Kl,
			flow.MuB, flow.MuW, flow.L, 0), nil
	case MethodMartinSims:
		return HMartinSims(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog, flow.Cpl, flow.Kl,
			flow.MuB, flow.MuW, flow.L, 0), nil
	case MethodKudirkaGroshMcFadden:
		return HKudirkaGroshMcFadden(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog,
			flow.Cpl, flow.Kl, flow.Mug, flow.MuB, flow.MuW), nil
	case MethodGroothuisHendal:
		return HGroothuisHendal(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog,
			flow.Cpl, flow.Kl, flow.Mug, flow.MuB, flow.MuW, false), nil
	case MethodAggour:
		return HAggour(flow.M, flow.X, flow.Alpha, flow.D, flow.Rhol, flow.Cpl,
			flow.Kl, flow.MuB, flow.MuW, flow.L), nil
	case MethodHughmark:
		return HHughmark(flow.M, flow.X, flow.Alpha, flow.D, flow.L, flow.Cpl,
			flow.Kl, flow.MuB, flow.MuW), nil
	case MethodElamvaluthiSrinivas:
		return HElamvaluthiSrinivas(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog,
			flow.Cpl, flow.Kl, flow.Mug, flow.MuB, flow.MuW), nil
	case MethodDavisDavid:
		return HDavisDavid(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog,
			flow.Cpl, flow.Kl, flow.Mul), nil
	case MethodRavipudiGodbold:
		return HRavipudiGodbold(flow.M, flow.X, flow.D, flow.Rhol, flow.Rhog,
			flow.Cpl, flow.Kl, flow.Mug, flow.MuB, flow.MuW), nil
	}
	return 0, fmt.Errorf("unknown two-phase method %q: valid methods are %v", method, HTwoPhaseMethods)
}
