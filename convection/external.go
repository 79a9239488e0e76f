package convection

import (
	"fmt"
	"math"
)

// NuCylinderZukauskas returns the Nusselt number of crossflow over a single
// cylinder after Zukauskas, with a Prandtl wall correction when prw is
// nonzero. Constants switch on the Reynolds number range.
func NuCylinderZukauskas(re, pr, prw float64) float64 {
	var c, m float64
	switch {
	case re <= 40:
		c, m = 0.75, 0.4
	case re < 1e3:
		c, m = 0.51, 0.5
	case re < 2e5:
		c, m = 0.26, 0.6
	default:
		c, m = 0.076, 0.7
	}
	n := 0.37
	if pr > 10.0 {
		n = 0.36
	}
	nu := c * math.Pow(re, m) * math.Pow(pr, n)
	if prw != 0 {
		nu *= math.Pow(pr/prw, 0.25)
	}
	return nu
}

// NuCylinderChurchillBernstein returns the Nusselt number of crossflow over a
// single cylinder from the comprehensive Churchill-Bernstein correlation.
func NuCylinderChurchillBernstein(re, pr float64) float64 {
	return 0.3 + (0.62*math.Sqrt(re)*math.Cbrt(pr))/
		math.Pow(1+math.Pow(0.4/pr, 2/3.), 0.25)*
		math.Pow(1+math.Pow(re/282000., 0.625), 0.8)
}

// NuCylinderSanitjaiGoldstein returns the Nusselt number of crossflow over a
// single cylinder after Sanitjai and Goldstein (2004), blending the front,
// separated and wake contributions.
func NuCylinderSanitjaiGoldstein(re, pr float64) float64 {
	return 0.446*math.Sqrt(re)*math.Pow(pr, 0.35) +
		0.528*math.Pow(math.Pow(6.5, -5)*math.Exp(-5*re/5000.)+
			math.Pow(0.031*math.Pow(re, 0.8), -5), -0.2)*math.Pow(pr, 0.42)
}

// NuCylinderFand returns the Nusselt number of crossflow over a single
// cylinder after Fand.
func NuCylinderFand(re, pr float64) float64 {
	return (0.35 + 0.34*math.Sqrt(re) + 0.15*math.Pow(re, 0.58)) * math.Pow(pr, 0.3)
}

// NuCylinderMcAdams returns the Nusselt number of crossflow over a single
// cylinder after McAdams.
func NuCylinderMcAdams(re, pr float64) float64 {
	return (0.35 + 0.56*math.Pow(re, 0.52)) * math.Pow(pr, 0.3)
}

// NuCylinderWhitaker returns the Nusselt number of crossflow over a single
// cylinder after Whitaker, with an optional viscosity wall correction (pass
// zero viscosities to skip it).
func NuCylinderWhitaker(re, pr, mu, muw float64) float64 {
	nu := (0.4*math.Sqrt(re) + 0.06*math.Pow(re, 2/3.)) * math.Pow(pr, 0.3)
	if mu != 0 && muw != 0 {
		nu *= math.Pow(mu/muw, 0.25)
	}
	return nu
}

// NuCylinderPerkinsLeppert1962 returns the Nusselt number of crossflow over a
// single cylinder from the 1962 Perkins-Leppert fit, with an optional
// viscosity wall correction.
func NuCylinderPerkinsLeppert1962(re, pr, mu, muw float64) float64 {
	nu := (0.30*math.Sqrt(re) + 0.10*math.Pow(re, 0.67)) * math.Pow(pr, 0.4)
	if mu != 0 && muw != 0 {
		nu *= math.Pow(mu/muw, 0.25)
	}
	return nu
}

// NuCylinderPerkinsLeppert1964 returns the Nusselt number of crossflow over a
// single cylinder from the revised 1964 Perkins-Leppert fit, with an optional
// viscosity wall correction.
func NuCylinderPerkinsLeppert1964(re, pr, mu, muw float64) float64 {
	nu := (0.31*math.Sqrt(re) + 0.11*math.Pow(re, 0.67)) * math.Pow(pr, 0.4)
	if mu != 0 && muw != 0 {
		nu *= math.Pow(mu/muw, 0.25)
	}
	return nu
}

// Method names accepted by NuExternalCylinder.
const (
	MethodSanitjaiGoldstein  = "Sanitjai-Goldstein"
	MethodChurchillBernstein = "Churchill-Bernstein"
	MethodZukauskas          = "Zukauskas"
	MethodWhitaker           = "Whitaker"
	MethodPerkinsLeppert1964 = "Perkins-Leppert 1964"
	MethodMcAdamsCylinder    = "McAdams"
	MethodFand               = "Fand"
	MethodPerkinsLeppert1962 = "Perkins-Leppert 1962"
)

// NuExternalCylinderMethods lists the external cylinder crossflow methods in
// order of preference. The first entry is the default.
var NuExternalCylinderMethods = []string{
	MethodSanitjaiGoldstein,
	MethodChurchillBernstein,
	MethodZukauskas,
	MethodWhitaker,
	MethodPerkinsLeppert1964,
	MethodMcAdamsCylinder,
	MethodFand,
	MethodPerkinsLeppert1962,
}

// ExternalCylinder carries the inputs of the external cylinder crossflow
// methods. Prw feeds only Zukauskas; Mu and Muw feed the wall corrections of
// Whitaker and both Perkins-Leppert fits.
type ExternalCylinder struct {
	Re  float64 // Reynolds number on the cylinder diameter, [-]
	Pr  float64 // free-stream Prandtl number, [-]
	Prw float64 // Prandtl number at the wall temperature, [-]
	Mu  float64 // free-stream viscosity, [Pa*s]
	Muw float64 // viscosity at the wall temperature, [Pa*s]
}

// NuExternalCylinder returns the Nusselt number of crossflow over a single
// cylinder by the named method, defaulting to Sanitjai-Goldstein when method
// is empty.
func NuExternalCylinder(method string, flow ExternalCylinder) (float64, error) {
	if method == "" {
		method = MethodSanitjaiGoldstein
	}
	switch method {
	case MethodSanitjaiGoldstein:
		return NuCylinderSanitjaiGoldstein(flow.Re, flow.Pr), nil
	case MethodChurchillBernstein:
		return NuCylinderChurchillBernstein(flow.Re, flow.Pr), nil
	case MethodFand:
		return NuCylinderFand(flow.Re, flow.Pr), nil
	case MethodMcAdamsCylinder:
		return NuCylinderMcAdams(flow.Re, flow.Pr), nil
	case MethodZukauskas:
		return NuCylinderZukauskas(flow.Re, flow.Pr, flow.Prw), nil
	case MethodWhitaker:
		return NuCylinderWhitaker(flow.Re, flow.Pr, flow.Mu, flow.Muw), nil
	case MethodPerkinsLeppert1962:
		return NuCylinderPerkinsLeppert1962(flow.Re, flow.Pr, flow.Mu, flow.Muw), nil
	case MethodPerkinsLeppert1964:
		return NuCylinderPerkinsLeppert1964(flow.Re, flow.Pr, flow.Mu, flow.Muw), nil
	}
	return 0, fmt.Errorf("unknown external cylinder method %q: valid methods are %v", method, NuExternalCylinderMethods)
}

// NuHorizontalPlateLaminarBaehr returns the Nusselt number of laminar flow
// over a flat plate, with Prandtl-range constants after Baehr and Stephan.
func NuHorizontalPlateLaminarBaehr(re, pr float64) float64 {
	switch {
	case pr < 0.005:
		return 1.128 * math.Sqrt(re*pr)
	case pr < 0.05:
		return math.Sqrt(re * pr)
	case pr < 10.0:
		return 0.664 * math.Sqrt(re) * math.Cbrt(pr)
	default:
		return 0.678 * math.Sqrt(re) * math.Cbrt(pr)
	}
}

// NuHorizontalPlateLaminarChurchillOzoe returns the Nusselt number of laminar
// flow over a flat plate from the single smooth expression of Churchill and
// Ozoe.
func NuHorizontalPlateLaminarChurchillOzoe(re, pr float64) float64 {
	return 0.6774 * math.Sqrt(re) * math.Cbrt(pr) *
		math.Pow(1.0+math.Pow(0.0468/pr, 2.0/3.0), -0.25)
}

// NuHorizontalPlateTurbulentSchlichting returns the Nusselt number of
// turbulent flow over a flat plate after Schlichting.
func NuHorizontalPlateTurbulentSchlichting(re, pr float64) float64 {
	return 0.037 * math.Pow(re, 0.8) * pr /
		(1.0 + 2.443*math.Pow(re, -0.1)*(math.Pow(pr, 2.0/3.0)-1.0))
}

// NuHorizontalPlateTurbulentKreith returns the Nusselt number of turbulent
// flow over a flat plate after Kreith.
func NuHorizontalPlateTurbulentKreith(re, pr float64) float64 {
	return 0.036 * math.Cbrt(pr) * math.Pow(re, 0.8)
}

// LaminarTransitionHorizontalPlate is the Reynolds number at which external
// flat plate flow is taken to become turbulent.
const LaminarTransitionHorizontalPlate = 5e5

// Method names accepted by NuExternalHorizontalPlate.
const (
	MethodPlateBaehr         = "Baehr"
	MethodPlateChurchillOzoe = "Churchill Ozoe"
	MethodPlateSchlichting   = "Schlichting"
	MethodPlateKreith        = "Kreith"
)

// NuExternalHorizontalPlateMethods lists the flat plate methods, laminar
// first.
var NuExternalHorizontalPlateMethods = []string{
	MethodPlateBaehr,
	MethodPlateChurchillOzoe,
	MethodPlateSchlichting,
	MethodPlateKreith,
}

// NuExternalHorizontalPlate returns the Nusselt number of external flow over
// a flat plate by the named method, or by the regime default (Baehr laminar,
// Schlichting turbulent at the 5e5 transition) when method is empty.
func NuExternalHorizontalPlate(method string, re, pr float64) (float64, error) {
	if method == "" {
		if re < LaminarTransitionHorizontalPlate {
			method = MethodPlateBaehr
		} else {
			method = MethodPlateSchlichting
		}
	}
	switch method {
	case MethodPlateBaehr:
		return NuHorizontalPlateLaminarBaehr(re, pr), nil
	case MethodPlateChurchillOzoe:
		return NuHorizontalPlateLaminarChurchillOzoe(re, pr), nil
	case MethodPlateSchlichting:
		return NuHorizontalPlateTurbulentSchlichting(re, pr), nil
	case MethodPlateKreith:
		return NuHorizontalPlateTurbulentKreith(re, pr), nil
	}
	return 0, fmt.Errorf("unknown external plate method %q: valid methods are %v", method, NuExternalHorizontalPlateMethods)
}
