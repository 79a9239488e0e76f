// Package condensation covers film condensation heat transfer: the Nusselt
// laminar analysis for plates, the kinetic-theory upper limit, and in-tube
// correlations with a method-name dispatcher.
package condensation

import (
	"fmt"
	"math"
)

const (
	g = 9.80665   // standard gravity, [m/s^2]
	r = 8.3144598 // molar gas constant (CODATA 2014), [J/mol/K]
)

// NusseltLaminar returns the heat transfer coefficient for laminar film
// condensation of a pure chemical on a flat plate, from the analysis
// performed by Nusselt in 1916. The plate has length l and is inclined at
// angle degrees from the horizontal (90 for a vertical plate).
func NusseltLaminar(tsat, tw, rhog, rhol, kl, mul, hvap, l, angle float64) float64 {
	return 0.943 * math.Pow(kl*kl*kl*rhol*(rhol-rhog)*g*
		math.Sin(angle/180.*math.Pi)*hvap/(mul*(tsat-tw)*l), 0.25)
}

// HKinetic returns the kinetic-theory limit on the condensation heat
// transfer coefficient of a pure chemical with molecular weight mw at
// saturation temperature t and pressure p, with condensation coefficient f
// (1 for a clean surface).
func HKinetic(t, p, mw, hvap, f float64) float64 {
	return 2.0 * f / (2.0 - f) * math.Sqrt(mw/(1000.*2.*math.Pi*r*t)) *
		(hvap * hvap * p * mw) / (1000. * r * t * t)
}

// BoykoKruzhilin returns the condensation heat transfer coefficient of a
// pure chemical inside a vertical tube or tube bundle at local quality x,
// after Boyko and Kruzhilin (1967). Averaging the values at x = 1 and x = 0
// approximates the overall coefficient.
func BoykoKruzhilin(m, rhog, rhol, kl, mul, cpl, d, x float64) float64 {
	vlo := m / rhol / (math.Pi / 4. * d * d)
	relo := rhol * vlo * d / mul
	prl := mul * cpl / kl
	hlo := 0.021 * kl / d * math.Pow(relo, 0.8) * math.Pow(prl, 0.43)
	return hlo * math.Sqrt(1.+x*(rhol/rhog-1.))
}

// AkersDeansCrosser returns the condensation heat transfer coefficient
// inside a horizontal tube at local quality x, after Akers, Deans and
// Crosser (1958), using the equivalent all-liquid Reynolds number.
func AkersDeansCrosser(m, rhog, rhol, kl, mul, cpl, d, x float64) float64 {
	gFlux := m / (math.Pi / 4. * d * d)
	ge := gFlux * ((1. - x) + x*math.Sqrt(rhol/rhog))
	ree := d * ge / mul
	prl := cpl * mul / kl
	c, n := 5.03, 1./3.
	if ree > 5e4 {
		c, n = 0.0265, 0.8
	}
	nu := c * math.Pow(ree, n) * math.Cbrt(prl)
	return nu * kl / d
}

// CavalliniSmithZecchin returns the condensation heat transfer coefficient
// inside a tube at local quality x, after Cavallini, Smith and Zecchin
// (1974), from an equivalent Reynolds number blending the liquid and gas
// contributions.
func CavalliniSmithZecchin(m, x, d, rhol, rhog, mul, mug, kl, cpl float64) float64 {
	gFlux := m / (math.Pi / 4. * d * d)
	prl := cpl * mul / kl
	rel := d * gFlux * (1. - x) / mul
	reg := d * gFlux * x / mug
	reeq := reg*(mug/mul)*math.Sqrt(rhol/rhog) + rel
	nul := 0.05 * math.Pow(reeq, 0.8) * math.Pow(prl, 0.33)
	return nul * kl / d
}

// Shah returns the condensation heat transfer coefficient inside a tube at
// local quality x, after Shah (1979), correcting the all-liquid
// Dittus-Boelter coefficient with the reduced pressure p/pc.
func Shah(m, x, d, rhol, mul, kl, cpl, p, pc float64) float64 {
	vl := m / (rhol * math.Pi / 4. * d * d)
	rel := rhol * vl * d / mul
	prl := cpl * mul / kl
	hl := 0.023 * math.Pow(rel, 0.8) * math.Pow(prl, 0.4) * kl / d
	pr := p / pc
	return hl * (math.Pow(1.-x, 0.8) + 3.8*math.Pow(x, 0.76)*math.Pow(1.-x, 0.04)/math.Pow(pr, 0.38))
}

// Method names accepted by HCondensation, for condensation inside tubes.
const (
	MethodShah                  = "Shah"
	MethodBoykoKruzhilin        = "Boyko-Kruzhilin"
	MethodAkersDeansCrosser     = "Akers-Deans-Crosser"
	MethodCavalliniSmithZecchin = "Cavallini-Smith-Zecchin"
)

// HCondensationMethods lists the in-tube condensation methods in order of
// preference. The first entry is the default.
var HCondensationMethods = []string{
	MethodShah,
	MethodBoykoKruzhilin,
	MethodAkersDeansCrosser,
	MethodCavalliniSmithZecchin,
}

// TubeConditions carries the flow state and fluid properties the in-tube
// condensation correlations draw from. Only the fields the chosen method
// needs must be set: all methods use M, X, D, RhoL, MuL, KL and CpL; the
// Shah method additionally needs P and PC, Cavallini-Smith-Zecchin needs
// MuG, and all but Shah need RhoG.
type TubeConditions struct {
	M    float64 // mass flow rate, [kg/s]
	X    float64 // vapor quality, [-]
	D    float64 // tube inner diameter, [m]
	RhoL float64 // liquid density, [kg/m^3]
	RhoG float64 // gas density, [kg/m^3]
	MuL  float64 // liquid viscosity, [Pa*s]
	MuG  float64 // gas viscosity, [Pa*s]
	KL   float64 // liquid thermal conductivity, [W/m/K]
	CpL  float64 // liquid heat capacity, [J/kg/K]
	P    float64 // operating pressure, [Pa]
	PC   float64 // critical pressure of the condensing fluid, [Pa]
}

// HCondensation returns the heat transfer coefficient for condensation of a
// pure chemical inside a tube by the named method, defaulting to Shah when
// method is empty. Missing inputs for the chosen method and unknown method
// names return descriptive errors.
func HCondensation(method string, cond TubeConditions) (float64, error) {
	if method == "" {
		method = MethodShah
	}
	if cond.M == 0 || cond.D == 0 || cond.RhoL == 0 || cond.MuL == 0 || cond.KL == 0 || cond.CpL == 0 {
		return 0, fmt.Errorf("condensation method %q: M, D, RhoL, MuL, KL and CpL are all required", method)
	}
	switch method {
	case MethodShah:
		if cond.P == 0 || cond.PC == 0 {
			return 0, fmt.Errorf("condensation method %q requires P and PC", method)
		}
		return Shah(cond.M, cond.X, cond.D, cond.RhoL, cond.MuL, cond.KL, cond.CpL, cond.P, cond.PC), nil
	case MethodBoykoKruzhilin:
		if cond.RhoG == 0 {
			return 0, fmt.Errorf("condensation method %q requires RhoG", method)
		}
		return BoykoKruzhilin(cond.M, cond.RhoG, cond.RhoL, cond.KL, cond.MuL, cond.CpL, cond.D, cond.X), nil
	case MethodAkersDeansCrosser:
		if cond.RhoG == 0 {
			return 0, fmt.Errorf("condensation method %q requires RhoG", method)
		}
		return AkersDeansCrosser(cond.M, cond.RhoG, cond.RhoL, cond.KL, cond.MuL, cond.CpL, cond.D, cond.X), nil
	case MethodCavalliniSmithZecchin:
		if cond.RhoG == 0 || cond.MuG == 0 {
			return 0, fmt.Errorf("condensation method %q requires RhoG and MuG", method)
		}
		return CavalliniSmithZecchin(cond.M, cond.X, cond.D, cond.RhoL, cond.RhoG, cond.MuL, cond.MuG, cond.KL, cond.CpL), nil
	}
	return 0, fmt.Errorf("unknown condensation method %q: valid methods are %v", method, HCondensationMethods)
}
