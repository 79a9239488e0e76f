package convection

import (
	"fmt"
	"math"
)

// LaminarTConst returns the Nusselt number of fully developed laminar flow in
// a round tube with a constant wall temperature.
func LaminarTConst() float64 {
	return 3.66
}

// LaminarQConst returns the Nusselt number of fully developed laminar flow in
// a round tube with a constant wall heat flux.
func LaminarQConst() float64 {
	return 48 / 11.
}

// LaminarEntryThermalHausen returns the average Nusselt number of laminar
// tube flow developing thermally over length l, after Hausen.
func LaminarEntryThermalHausen(re, pr, l, di float64) float64 {
	gz := di / l * re * pr
	return 3.66 + (0.0668*gz)/(1+0.04*math.Pow(gz, 2/3.))
}

// LaminarEntrySiederTate returns the average Nusselt number of laminar tube
// flow in the thermal entry region after Sieder and Tate, with an optional
// viscosity wall correction (pass zero viscosities to skip it).
func LaminarEntrySiederTate(re, pr, l, di, mu, muW float64) float64 {
	nu := 1.86 * math.Cbrt(di/l*re*pr)
	if mu != 0 && muW != 0 {
		nu *= math.Pow(mu/muW, 0.14)
	}
	return nu
}

// LaminarEntryBaehrStephan returns the average Nusselt number of laminar tube
// flow with simultaneously developing velocity and thermal profiles, after
// Baehr and Stephan.
func LaminarEntryBaehrStephan(re, pr, l, di float64) float64 {
	gz := di / l * re * pr
	return (3.657/math.Tanh(2.264*math.Pow(gz, -1/3.)+1.7*math.Pow(gz, -2/3.)) +
		0.0499*gz*math.Tanh(1./gz)) / math.Tanh(2.432*math.Pow(pr, 1/6.)*math.Pow(gz, -1/6.))
}

// TurbulentDittusBoelter returns the Nusselt number of turbulent tube flow
// after Dittus and Boelter. heating selects the 0.4 Prandtl exponent,
// revised the 0.023 coefficient of the revised formulation.
func TurbulentDittusBoelter(re, pr float64, heating, revised bool) float64 {
	m := 0.023
	power := 0.3
	if heating {
		power = 0.4
	}
	if !revised {
		if heating {
			m = 0.0243
		} else {
			m = 0.0265
		}
	}
	return m * math.Pow(re, 0.8) * math.Pow(pr, power)
}

// TurbulentSiederTate returns the Nusselt number of turbulent tube flow after
// Sieder and Tate, with an optional viscosity wall correction (pass zero
// viscosities to skip it).
func TurbulentSiederTate(re, pr, mu, muW float64) float64 {
	nu := 0.027 * math.Pow(re, 0.8) * math.Cbrt(pr)
	if mu != 0 && muW != 0 {
		nu *= math.Pow(mu/muW, 0.14)
	}
	return nu
}

// TurbulentEntryHausen returns the Nusselt number of turbulent tube flow in
// the entry region, at distance x from the inlet, after Hausen.
func TurbulentEntryHausen(re, pr, di, x float64) float64 {
	return 0.037 * (math.Pow(re, 0.75) - 180) * math.Pow(pr, 0.42) *
		(1 + math.Pow(x/di, -2/3.))
}

// TurbulentColburn returns the Nusselt number of turbulent tube flow after
// Colburn.
func TurbulentColburn(re, pr float64) float64 {
	return 0.023 * math.Pow(re, 0.8) * math.Cbrt(pr)
}

// TurbulentDrexelMcAdams returns the Nusselt number of turbulent tube flow at
// low Prandtl numbers after Drexel and McAdams.
func TurbulentDrexelMcAdams(re, pr float64) float64 {
	return 0.021 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
}

// TurbulentVonKarman returns the Nusselt number of turbulent tube flow from
// the friction factor analogy of von Karman.
func TurbulentVonKarman(re, pr, fd float64) float64 {
	return fd / 8.0 * re * pr / (1.0 + 5.0*math.Sqrt(fd/8.0)*
		(pr-1.0+math.Log((5.0*pr+1.0)/6.)))
}

// TurbulentPrandtl returns the Nusselt number of turbulent tube flow from
// Prandtl's friction analogy.
func TurbulentPrandtl(re, pr, fd float64) float64 {
	return (fd / 8.) * re * pr / (1.0 + 8.7*math.Sqrt(fd/8.)*(pr-1.0))
}

// TurbulentFriendMetzner returns the Nusselt number of turbulent tube flow
// after Friend and Metzner, valid to very high Prandtl numbers.
func TurbulentFriendMetzner(re, pr, fd float64) float64 {
	return (fd / 8.) * re * pr / (1.2 + 11.8*math.Sqrt(fd/8.)*(pr-1.)*math.Pow(pr, -1/3.))
}

// TurbulentPetukhovKirillovPopov returns the Nusselt number of turbulent tube
// flow after Petukhov, Kirillov and Popov.
func TurbulentPetukhovKirillovPopov(re, pr, fd float64) float64 {
	c := 1.07 + 900./re - (0.63 / (1. + 10.*pr))
	return (fd / 8.) * re * pr / (c + 12.7*math.Sqrt(fd/8.)*(math.Pow(pr, 2/3.)-1.))
}

// TurbulentWebb returns the Nusselt number of turbulent tube flow after Webb.
func TurbulentWebb(re, pr, fd float64) float64 {
	return (fd / 8.) * re * pr / (1.07 + 9.*math.Sqrt(fd/8.)*(pr-1.)*math.Pow(pr, 0.25))
}

// TurbulentSandall returns the Nusselt number of turbulent tube flow after
// Sandall.
func TurbulentSandall(re, pr, fd float64) float64 {
	c := 2.78 * math.Log(math.Sqrt(fd/8.)*re/45.)
	return math.Sqrt(fd/8.) * re * pr / (12.48*math.Pow(pr, 2/3.) -
		7.853*math.Cbrt(pr) + 3.613*math.Log(pr) + 5.8 + c)
}

// TurbulentGnielinski returns the Nusselt number of turbulent tube flow after
// Gnielinski, the most accurate general-purpose correlation of the family.
func TurbulentGnielinski(re, pr, fd float64) float64 {
	return (fd / 8.) * (re - 1e3) * pr / (1. + 12.7*math.Sqrt(fd/8.)*(math.Pow(pr, 2/3.)-1.))
}

// TurbulentGnielinskiSmoothLowPr returns the Nusselt number of turbulent
// smooth tube flow from Gnielinski's simpler low-Prandtl fit (0.5 < Pr < 1.5).
func TurbulentGnielinskiSmoothLowPr(re, pr float64) float64 {
	return 0.0214 * (math.Pow(re, 0.8) - 100.) * math.Pow(pr, 0.4)
}

// TurbulentGnielinskiSmoothHighPr returns the Nusselt number of turbulent
// smooth tube flow from Gnielinski's simpler high-Prandtl fit (1.5 < Pr < 500).
func TurbulentGnielinskiSmoothHighPr(re, pr float64) float64 {
	return 0.012 * (math.Pow(re, 0.87) - 280.) * math.Pow(pr, 0.4)
}

// TurbulentChurchillZajic returns the Nusselt number of turbulent tube flow
// from the theoretically derived expression of Churchill and Zajic.
func TurbulentChurchillZajic(re, pr, fd float64) float64 {
	prT := 0.85 + 0.015/pr
	nuDi := re * (fd / 8.) / (1. + 145*math.Pow(8./fd, -1.25))
	nuDinf := 0.07343 * re * math.Cbrt(pr/prT) * math.Sqrt(fd/8.)
	return 1. / (prT/pr/nuDi + (1.-math.Pow(prT/pr, 2/3.))/nuDinf)
}

// TurbulentESDU returns the Nusselt number of turbulent tube flow from the
// ESDU 68006 fit.
func TurbulentESDU(re, pr float64) float64 {
	lp := math.Log(pr)
	return 0.0225 * math.Pow(re, 0.795) * math.Pow(pr, 0.495) * math.Exp(-0.0225*lp*lp)
}

// TurbulentMartinelli returns the Nusselt number of turbulent tube flow at
// very low Prandtl numbers, after Martinelli.
func TurbulentMartinelli(re, pr, fd float64) float64 {
	return re * pr * math.Sqrt(fd/8.) / 5 /
		(pr + math.Log(1.+5.*pr) + 0.5*math.Log(re*math.Sqrt(fd/8.)/60.))
}

// TurbulentNunner returns the Nusselt number of turbulent flow in rough
// tubes after Nunner, from the rough and smooth friction factors.
func TurbulentNunner(re, pr, fd, fdSmooth float64) float64 {
	return re * pr * fd / 8. / (1 + 1.5*math.Pow(re, -0.125)*math.Pow(pr, -1/6.)*(pr*fd/fdSmooth-1.))
}

// TurbulentDippreySabersky returns the Nusselt number of turbulent flow in
// rough tubes of relative roughness eD, after Dipprey and Sabersky.
func TurbulentDippreySabersky(re, pr, fd, eD float64) float64 {
	reE := re * eD * math.Sqrt(fd/8.)
	return re * pr * fd / 8. / (1 + math.Sqrt(fd/8.)*(5.19*math.Pow(reE, 0.2)*math.Pow(pr, 0.44)-8.48))
}

// TurbulentGowenSmith returns the Nusselt number of turbulent tube flow after
// Gowen and Smith.
func TurbulentGowenSmith(re, pr, fd float64) float64 {
	return re * pr * math.Sqrt(fd/8.) /
		(4.5 + (0.155*math.Pow(re*math.Sqrt(fd/8.), 0.54)+math.Sqrt(8./fd))*math.Sqrt(pr))
}

// TurbulentKawaseUlbrecht returns the Nusselt number of turbulent tube flow
// after Kawase and Ulbrecht.
func TurbulentKawaseUlbrecht(re, pr, fd float64) float64 {
	return 0.0523 * re * math.Sqrt(pr) * math.Sqrt(fd/4.)
}

// TurbulentKawaseDe returns the Nusselt number of turbulent tube flow after
// Kawase and De.
func TurbulentKawaseDe(re, pr, fd float64) float64 {
	return 0.0471 * re * math.Sqrt(pr) * math.Sqrt(fd/4.) *
		(1.11 + 0.44*math.Pow(pr, -1/3.) - 0.7*math.Pow(pr, -1/6.))
}

// TurbulentBhattiShah returns the Nusselt number of turbulent flow in rough
// tubes of relative roughness eD, after Bhatti and Shah.
func TurbulentBhattiShah(re, pr, fd, eD float64) float64 {
	reE := re * eD * math.Sqrt(fd/8.)
	return re * pr * fd / 8. / (1 + math.Sqrt(fd/8.)*(4.5*math.Pow(reE, 0.2)*math.Sqrt(pr)-8.48))
}

// Method names accepted by NuConvInternal, laminar regime.
const (
	MethodLaminarTConst            = "Laminar - constant T"
	MethodLaminarQConst            = "Laminar - constant Q"
	MethodLaminarEntryBaehrStephan = "Baehr-Stephan laminar thermal/velocity entry"
	MethodLaminarEntryHausen       = "Hausen laminar thermal entry"
	MethodLaminarEntrySiederTate   = "Seider-Tate laminar thermal entry"
)

// Method names accepted by NuConvInternal, turbulent regime.
const (
	MethodChurchillZajic           = "Churchill-Zajic"
	MethodPetukhovKirillovPopov    = "Petukhov-Kirillov-Popov"
	MethodGnielinski               = "Gnielinski"
	MethodSandall                  = "Sandall"
	MethodWebb                     = "Webb"
	MethodFriendMetzner            = "Friend-Metzner"
	MethodPrandtl                  = "Prandtl"
	MethodVonKarman                = "von-Karman"
	MethodMartinelli               = "Martinelli"
	MethodGowenSmith               = "Gowen-Smith"
	MethodKawaseUlbrecht           = "Kawase-Ulbrecht"
	MethodKawaseDe                 = "Kawase-De"
	MethodDittusBoelter            = "Dittus-Boelter"
	MethodSiederTate               = "Sieder-Tate"
	MethodDrexelMcAdams            = "Drexel-McAdams"
	MethodColburn                  = "Colburn"
	MethodESDU                     = "ESDU"
	MethodGnielinskiSmoothLowPr    = "Gnielinski smooth low Pr"
	MethodGnielinskiSmoothHighPr   = "Gnielinski smooth high Pr"
	MethodTurbulentEntryHausen     = "Hausen"
	MethodBhattiShah               = "Bhatti-Shah"
	MethodDippreySabersky          = "Dipprey-Sabersky"
	MethodNunner                   = "Nunner"
)

// NuConvInternalMethods lists every method NuConvInternal accepts, laminar
// first, each regime in order of preference.
var NuConvInternalMethods = []string{
	MethodLaminarEntryBaehrStephan,
	MethodLaminarEntryHausen,
	MethodLaminarEntrySiederTate,
	MethodLaminarTConst,
	MethodLaminarQConst,
	MethodMartinelli,
	MethodTurbulentEntryHausen,
	MethodChurchillZajic,
	MethodPetukhovKirillovPopov,
	MethodGnielinski,
	MethodBhattiShah,
	MethodDippreySabersky,
	MethodSandall,
	MethodWebb,
	MethodFriendMetzner,
	MethodPrandtl,
	MethodVonKarman,
	MethodGowenSmith,
	MethodKawaseUlbrecht,
	MethodKawaseDe,
	MethodNunner,
	MethodDittusBoelter,
	MethodSiederTate,
	MethodDrexelMcAdams,
	MethodColburn,
	MethodESDU,
	MethodGnielinskiSmoothLowPr,
	MethodGnielinskiSmoothHighPr,
}

// InternalFlow carries the state of a pipe-flow Nusselt number calculation.
// Re and Pr are always required. ED (relative roughness) or Fd (Darcy
// friction factor) feed the analogy-based methods; Di and X (axial position)
// feed the entry-region methods.
type InternalFlow struct {
	Re float64 // Reynolds number, [-]
	Pr float64 // Prandtl number, [-]
	ED float64 // relative roughness e/D, [-]
	Di float64 // inner diameter, [m]
	X  float64 // axial distance from the inlet, [m]
	Fd float64 // Darcy friction factor override, [-]
}

// ApplicableInternalMethods lists the pipe-flow methods the given state can
// evaluate, in preference order for its flow regime. The first entry is what
// NuConvInternal selects when no method is named.
func ApplicableInternalMethods(flow InternalFlow) []string {
	var methods []string
	if flow.Re < LaminarTransitionPipe {
		if flow.X != 0 && flow.Di != 0 {
			methods = append(methods, MethodLaminarEntryBaehrStephan,
				MethodLaminarEntryHausen, MethodLaminarEntrySiederTate)
		}
		methods = append(methods, MethodLaminarTConst, MethodLaminarQConst)
		return methods
	}
	if flow.Pr < 0.03 {
		methods = append(methods, MethodMartinelli)
	}
	if flow.X != 0 && flow.Di != 0 {
		methods = append(methods, MethodTurbulentEntryHausen)
	}
	methods = append(methods,
		MethodChurchillZajic, MethodPetukhovKirillovPopov, MethodGnielinski,
		MethodBhattiShah, MethodDippreySabersky, MethodSandall, MethodWebb,
		MethodFriendMetzner, MethodPrandtl, MethodVonKarman, MethodGowenSmith,
		MethodKawaseUlbrecht, MethodKawaseDe, MethodNunner,
		MethodDittusBoelter, MethodSiederTate, MethodDrexelMcAdams,
		MethodColburn, MethodESDU, MethodGnielinskiSmoothLowPr,
		MethodGnielinskiSmoothHighPr)
	return methods
}

// NuConvInternal returns the Nusselt number of convection inside a pipe by
// the named method, or by the most preferred method applicable to the flow
// regime when method is empty. The friction factor, when a method needs it
// and Fd is zero, comes from the Colebrook equation at the given relative
// roughness.
func NuConvInternal(method string, flow InternalFlow) (float64, error) {
	if method == "" {
		methods := ApplicableInternalMethods(flow)
		if len(methods) == 0 {
			return 0, fmt.Errorf("internal convection: no applicable method for the given inputs")
		}
		method = methods[0]
	}
	fd := flow.Fd
	if fd == 0 {
		fd = FrictionFactor(flow.Re, flow.ED)
	}
	re, pr := flow.Re, flow.Pr
	switch method {
	case MethodLaminarTConst:
		return LaminarTConst(), nil
	case MethodLaminarQConst:
		return LaminarQConst(), nil
	case MethodLaminarEntryBaehrStephan:
		return LaminarEntryThermalHausen(re, pr, flow.X, flow.Di), nil
	case MethodLaminarEntryHausen:
		return LaminarEntrySiederTate(re, pr, flow.X, flow.Di, 0, 0), nil
	case MethodLaminarEntrySiederTate:
		return LaminarEntryBaehrStephan(re, pr, flow.X, flow.Di), nil
	case MethodChurchillZajic:
		return TurbulentChurchillZajic(re, pr, fd), nil
	case MethodPetukhovKirillovPopov:
		return TurbulentPetukhovKirillovPopov(re, pr, fd), nil
	case MethodGnielinski:
		return TurbulentGnielinski(re, pr, fd), nil
	case MethodSandall:
		return TurbulentSandall(re, pr, fd), nil
	case MethodWebb:
		return TurbulentWebb(re, pr, fd), nil
	case MethodFriendMetzner:
		return TurbulentFriendMetzner(re, pr, fd), nil
	case MethodPrandtl:
		return TurbulentPrandtl(re, pr, fd), nil
	case MethodVonKarman:
		return TurbulentVonKarman(re, pr, fd), nil
	case MethodMartinelli:
		return TurbulentMartinelli(re, pr, fd), nil
	case MethodGowenSmith:
		return TurbulentGowenSmith(re, pr, fd), nil
	case MethodKawaseUlbrecht:
		return TurbulentKawaseUlbrecht(re, pr, fd), nil
	case MethodKawaseDe:
		return TurbulentKawaseDe(re, pr, fd), nil
	case MethodDittusBoelter:
		return TurbulentDittusBoelter(re, pr, true, true), nil
	case MethodSiederTate:
		return TurbulentSiederTate(re, pr, 0, 0), nil
	case MethodDrexelMcAdams:
		return TurbulentDrexelMcAdams(re, pr), nil
	case MethodColburn:
		return TurbulentColburn(re, pr), nil
	case MethodESDU:
		return TurbulentESDU(re, pr), nil
	case MethodGnielinskiSmoothLowPr:
		return TurbulentGnielinskiSmoothLowPr(re, pr), nil
	case MethodGnielinskiSmoothHighPr:
		return TurbulentGnielinskiSmoothHighPr(re, pr), nil
	case MethodTurbulentEntryHausen:
		return TurbulentEntryHausen(re, pr, flow.Di, flow.X), nil
	case MethodBhattiShah:
		return TurbulentBhattiShah(re, pr, fd, flow.ED), nil
	case MethodDippreySabersky:
		return TurbulentDippreySabersky(re, pr, fd, flow.ED), nil
	case MethodNunner:
		return TurbulentNunner(re, pr, fd, FrictionFactor(re, 0)), nil
	}
	return 0, fmt.Errorf("unknown internal convection method %q: valid methods are %v", method, NuConvInternalMethods)
}

// MorimotoHotta returns the Nusselt number of turbulent flow in a spiral
// coil of hydraulic diameter dh and centerline radius rm, after Morimoto and
// Hotta.
func MorimotoHotta(re, pr, dh, rm float64) float64 {
	return 0.0239 * (1. + 5.54*dh/rm) * math.Pow(re, 0.806) * math.Pow(pr, 0.268)
}

// HelicalTurbulentNuMoriNakayama returns the Nusselt number of turbulent flow
// in a helical coil of tube diameter di and coil diameter dc, after Mori and
// Nakayama.
func HelicalTurbulentNuMoriNakayama(re, pr, di, dc float64) float64 {
	dRatio := di / dc
	var term1, term2 float64
	if pr < 1 {
		term1 = pr / (26.2 * (math.Pow(pr, 2/3.) - 0.074)) * math.Pow(re, 0.8) * math.Pow(dRatio, 0.1)
		term2 = 1. + 0.098*math.Pow(re*dRatio*dRatio, -0.2)
	} else {
		term1 = math.Pow(pr, 0.4) / 41. * math.Pow(re, 5/6.) * math.Pow(dRatio, 1/12.)
		term2 = 1. + 0.061/math.Pow(re*math.Pow(dRatio, 2.5), 1/6.)
	}
	return term1 * term2
}

// HelicalTurbulentNuSchmidt returns the Nusselt number of turbulent flow in a
// helical coil after Schmidt, with separate fits below and above Re 22000.
func HelicalTurbulentNuSchmidt(re, pr, di, dc float64) float64 {
	dRatio := di / dc
	if re <= 2.2e4 {
		term := math.Pow(re, 0.8-0.22*math.Pow(dRatio, 0.1)) * math.Cbrt(pr)
		return 0.023 * (1. + 14.8*(1.+dRatio)*math.Cbrt(dRatio)) * term
	}
	return 0.023 * (1. + 3.6*(1.-dRatio)*math.Pow(dRatio, 0.8)) * math.Pow(re, 0.8) * math.Cbrt(pr)
}

// HelicalTurbulentNuXinEbadian returns the Nusselt number of turbulent flow
// in a helical coil after Xin and Ebadian.
func HelicalTurbulentNuXinEbadian(re, pr, di, dc float64) float64 {
	return 0.00619 * math.Pow(re, 0.92) * math.Pow(pr, 0.4) * (1. + 3.455*di/dc)
}

// NuLaminarRectangularShahLondon returns the Nusselt number of fully
// developed laminar flow in a rectangular duct of aspect ratio aR (short over
// long side), with a constant wall temperature, from the Shah and London
// polynomial fit.
func NuLaminarRectangularShahLondon(aR float64) float64 {
	return 8.235 * (1 - 2.0421*aR + 3.0853*aR*aR - 2.4765*aR*aR*aR +
		1.0578*aR*aR*aR*aR - 0.1861*aR*aR*aR*aR*aR)
}
