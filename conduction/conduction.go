package conduction

import (
	"fmt"
	"math"
)

// Unit conversion constants used by the R-value conversions.
const (
	inch             = 0.0254
	foot             = 0.3048
	hour             = 3600.0
	btu              = 1055.05585262
	degreeFahrenheit = 5.0 / 9.0
)

// RToK returns the thermal conductivity of a substance from its thermal
// resistance R measured over thickness t and area a (normally 1 m^2).
func RToK(r, t, a float64) float64 {
	return t / (a * r)
}

// KToR returns the thermal resistance over thickness t and area a (normally
// 1 m^2) of a substance with thermal conductivity k.
func KToR(k, t, a float64) float64 {
	return t / (k * a)
}

// KToThermalResistivity returns the thermal resistivity of a substance from
// its thermal conductivity. Not to be confused with thermal resistance.
func KToThermalResistivity(k float64) float64 {
	return 1. / k
}

// ThermalResistivityToK returns the thermal conductivity of a substance from
// its thermal resistivity.
func ThermalResistivityToK(r float64) float64 {
	return 1. / r
}

// RValueToK converts an insulation R-value to thermal conductivity. SI
// R-values are in m^2*K/(W*inch); imperial values in ft^2*degF*h/(BTU*inch).
func RValueToK(rValue float64, si bool) float64 {
	var r float64
	if si {
		r = rValue / inch
	} else {
		r = rValue * foot * foot * degreeFahrenheit * hour / btu / inch
	}
	return ThermalResistivityToK(r)
}

// KToRValue converts a thermal conductivity to an insulation R-value, the
// reverse of RValueToK.
func KToRValue(k float64, si bool) float64 {
	r := KToThermalResistivity(k)
	if si {
		return r * inch
	}
	return r / (foot * foot * degreeFahrenheit * hour / btu / inch)
}

// RCylinder returns the thermal resistance of a cylindrical wall of constant
// thermal conductivity k, inner and outer diameters di and do, and length l.
func RCylinder(di, do, k, l float64) float64 {
	hA := k * 2 * math.Pi * l / math.Log(do/di)
	return 1. / hA
}

// CylindricalHeatTransferResults holds the resolved state of a multilayer
// cylindrical wall: the heat duty per meter of length, the specific flux on
// the external area, overall coefficients on both area bases, and the
// per-layer resistances and boundary temperatures.
type CylindricalHeatTransferResults struct {
	Q      float64   // heat exchanged per meter of length, [W/m]
	SpecQ  float64   // heat flux on the external area basis, [W/m^2]
	UA     float64   // coefficient-area product per meter of length, [W/K/m]
	UInner float64   // overall coefficient on the inside area, [W/m^2/K]
	UOuter float64   // overall coefficient on the external area, [W/m^2/K]
	Ts     []float64 // temperatures at the outside of each layer, first entry is the inside fluid, [K]
	Rs     []float64 // thermal resistance of each layer, [m*K/W]
}

// CylindricalHeatTransfer solves heat transfer through a multilayer
// cylindrical wall such as an insulated pipe, from the inside and outside
// temperatures and film coefficients, the inside diameter, and the
// thickness and conductivity of each layer. The temperature profile in the
// result lets callers iterate an outer layer against a fixed specification
// or temperature-dependent conductivities.
func CylindricalHeatTransfer(ti, to, hi, ho, di float64, ts, ks []float64) (CylindricalHeatTransferResults, error) {
	if len(ts) != len(ks) {
		return CylindricalHeatTransferResults{}, fmt.Errorf("cylindrical heat transfer: %d thicknesses but %d conductivities", len(ts), len(ks))
	}
	const length = 1.0 // per-meter basis

	var sumT float64
	for _, t := range ts {
		sumT += t
	}
	externalDiameter := di + 2.0*sumT
	aExternal := math.Pi * externalDiameter * length
	aInternal := math.Pi * di * length

	rs := make([]float64, 0, len(ts))
	doRunning := di
	var rLayers float64
	for i := range ts {
		diRunning := doRunning
		doRunning += 2.0 * ts[i]
		ri := 0.5 * externalDiameter * math.Log(doRunning/diRunning) / ks[i]
		rLayers += ri
		rs = append(rs, ri)
	}

	dRatio := externalDiameter / di
	uExternal := 1.0 / (dRatio/hi + rLayers + 1.0/ho)
	ua := aExternal * uExternal
	q := ua * (ti - to)
	specQ := q / aExternal

	temps := make([]float64, 0, len(rs)+1)
	temps = append(temps, ti)
	for _, ri := range rs {
		temps = append(temps, temps[len(temps)-1]-specQ*ri)
	}

	return CylindricalHeatTransferResults{
		Q:      q,
		SpecQ:  specQ,
		UA:     ua,
		UInner: ua / aInternal,
		UOuter: uExternal,
		Ts:     temps,
		Rs:     rs,
	}, nil
}
