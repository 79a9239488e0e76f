package ht

import (
	"fmt"
	"math"

	"ht/internal/numerics"
)

// LMTD returns the log-mean temperature difference of an ideal counterflow
// or co-current heat exchanger, from the hot-side inlet/outlet and cold-side
// inlet/outlet temperatures.
//
// When both terminal differences are equal the limit is the arithmetic
// difference for counterflow and zero for co-current flow.
func LMTD(thi, tho, tci, tco float64, counterflow bool) float64 {
	var dT1, dT2 float64
	if counterflow {
		dT1 = thi - tco
		dT2 = tho - tci
	} else {
		dT1 = thi - tci
		dT2 = tho - tco
	}
	ratio := dT2 / dT1
	if ratio <= 0 || ratio == 1 {
		if counterflow {
			return dT1
		}
		return 0
	}
	return (dT2 - dT1) / math.Log(dT2/dT1)
}

// IsHeatingTemperature reports whether the wall is heating the bulk fluid,
// from the bulk and wall temperatures.
func IsHeatingTemperature(t, tWall float64) bool {
	return tWall > t
}

// IsHeatingProperty reports whether the wall is heating the bulk fluid, from
// a temperature-sensitive property (viscosity or Prandtl number) of the bulk
// fluid and of the fluid at the wall.
func IsHeatingProperty(prop, propWall float64) bool {
	return propWall < prop
}

// Property options for WallFactor.
const (
	WallFactorViscosity   = "Viscosity"
	WallFactorPrandtl     = "Prandtl"
	WallFactorTemperature = "Temperature"
	WallFactorDefault     = "Default"
)

// WallFactorCoeffs holds the heating and cooling exponents of a wall
// correction power law and the property the law is written in.
type WallFactorCoeffs struct {
	HeatingCoeff   float64
	CoolingCoeff   float64
	PropertyOption string
}

// Kays-Crawford wall correction exponent sets for fully developed friction
// factors (fd) and Nusselt numbers, by flow regime and phase. The exponents
// apply to the bulk-to-wall property ratio.
var (
	KaysCrawfordLaminarLiquidNu   = WallFactorCoeffs{0.14, 0.14, WallFactorViscosity}
	KaysCrawfordLaminarLiquidFd   = WallFactorCoeffs{-0.58, -0.5, WallFactorViscosity}
	KaysCrawfordLaminarGasFd      = WallFactorCoeffs{-1, -1, WallFactorViscosity}
	KaysCrawfordLaminarGasNu      = WallFactorCoeffs{0, 0, WallFactorViscosity}
	KaysCrawfordTurbulentLiquidFd = WallFactorCoeffs{-0.25, -0.25, WallFactorViscosity}
	KaysCrawfordTurbulentLiquidNu = WallFactorCoeffs{0.11, 0.25, WallFactorViscosity}
	KaysCrawfordTurbulentGasFd    = WallFactorCoeffs{0.1, 0.1, WallFactorViscosity}
	KaysCrawfordTurbulentGasNu    = WallFactorCoeffs{0.5, 0, WallFactorViscosity}
)

func wallFactorFdCoeffs(turbulent, liquid bool) WallFactorCoeffs {
	switch {
	case turbulent && liquid:
		return KaysCrawfordTurbulentLiquidFd
	case turbulent:
		return KaysCrawfordTurbulentGasFd
	case liquid:
		return KaysCrawfordLaminarLiquidFd
	default:
		return KaysCrawfordLaminarGasFd
	}
}

func wallFactorNuCoeffs(turbulent, liquid bool) WallFactorCoeffs {
	switch {
	case turbulent && liquid:
		return KaysCrawfordTurbulentLiquidNu
	case turbulent:
		return KaysCrawfordTurbulentGasNu
	case liquid:
		return KaysCrawfordLaminarLiquidNu
	default:
		return KaysCrawfordLaminarGasNu
	}
}

func powerLawFactor(ratio, heatingCoeff, coolingCoeff float64, heating bool) float64 {
	if heating {
		return math.Pow(ratio, heatingCoeff)
	}
	return math.Pow(ratio, coolingCoeff)
}

// WallFactorFd computes the Kays-Crawford wall correction factor for
// friction pressure drop from the bulk and wall viscosities. Multiply the
// constant-property friction factor or pressure drop by the result.
func WallFactorFd(mu, muWall float64, turbulent, liquid bool) float64 {
	c := wallFactorFdCoeffs(turbulent, liquid)
	return powerLawFactor(mu/muWall, c.HeatingCoeff, c.CoolingCoeff, IsHeatingProperty(mu, muWall))
}

// WallFactorNu computes the Kays-Crawford wall correction factor for heat
// transfer from the bulk and wall viscosities. Multiply the
// constant-property Nusselt number or heat transfer coefficient by the
// result.
func WallFactorNu(mu, muWall float64, turbulent, liquid bool) float64 {
	c := wallFactorNuCoeffs(turbulent, liquid)
	return powerLawFactor(mu/muWall, c.HeatingCoeff, c.CoolingCoeff, IsHeatingProperty(mu, muWall))
}

// WallFactorProperties carries the bulk and wall values WallFactor may
// correct with. Only the pair matching the chosen property option needs to
// be set; unset values are zero.
type WallFactorProperties struct {
	Mu, MuWall float64
	Pr, PrWall float64
	T, TWall   float64
}

// WallFactorSpec selects the property the correction power law is written in
// and its heating/cooling exponents per property. The zero value uses the
// turbulent-liquid heat transfer exponents with the Prandtl option.
type WallFactorSpec struct {
	MuHeatingCoeff float64
	MuCoolingCoeff float64
	PrHeatingCoeff float64
	PrCoolingCoeff float64
	THeatingCoeff  float64
	TCoolingCoeff  float64
	PropertyOption string
}

// DefaultWallFactorSpec returns the exponent set for heat transfer of a
// turbulent liquid, correcting on the Prandtl number ratio.
func DefaultWallFactorSpec() WallFactorSpec {
	return WallFactorSpec{
		MuHeatingCoeff: 0.11, MuCoolingCoeff: 0.25,
		PrHeatingCoeff: 0.11, PrCoolingCoeff: 0.25,
		THeatingCoeff: 0.11, TCoolingCoeff: 0.25,
		PropertyOption: WallFactorPrandtl,
	}
}

// WallFactor computes a wall correction factor for heat, mass or momentum
// transfer between a fluid and a wall, as a power of the bulk-to-wall ratio
// of the selected property. Both values of the selected property must be
// provided.
func WallFactor(props WallFactorProperties, spec WallFactorSpec) (float64, error) {
	option := spec.PropertyOption
	if option == WallFactorDefault || option == "" {
		option = WallFactorPrandtl
	}
	switch option {
	case WallFactorViscosity:
		if props.Mu == 0 || props.MuWall == 0 {
			return 0, fmt.Errorf("viscosity wall correction specified but both viscosity values are not available")
		}
		return powerLawFactor(props.Mu/props.MuWall, spec.MuHeatingCoeff, spec.MuCoolingCoeff,
			IsHeatingProperty(props.Mu, props.MuWall)), nil
	case WallFactorTemperature:
		if props.T == 0 || props.TWall == 0 {
			return 0, fmt.Errorf("temperature wall correction specified but both temperature values are not available")
		}
		return powerLawFactor(props.T/props.TWall, spec.THeatingCoeff, spec.TCoolingCoeff,
			IsHeatingTemperature(props.T, props.TWall)), nil
	case WallFactorPrandtl:
		if props.Pr == 0 || props.PrWall == 0 {
			return 0, fmt.Errorf("Prandtl number wall correction specified but both Prandtl number values are not available")
		}
		return powerLawFactor(props.Pr/props.PrWall, spec.PrHeatingCoeff, spec.PrCoolingCoeff,
			IsHeatingProperty(props.Pr, props.PrWall)), nil
	}
	return 0, fmt.Errorf("unknown wall factor property option %q: supported options are %v", option,
		[]string{WallFactorViscosity, WallFactorPrandtl, WallFactorTemperature, WallFactorDefault})
}

// FinEfficiencyKernKraus returns the efficiency of a circular fin of
// constant thickness attached to a circular tube, after Kern and Kraus.
// Do is the bare tube outer diameter, dFin the fin tip diameter, tFin the
// fin thickness, kFin the fin thermal conductivity and h the heat transfer
// coefficient of the finned surface.
func FinEfficiencyKernKraus(do, dFin, tFin, kFin, h float64) float64 {
	re := 0.5 * dFin
	ro := 0.5 * do
	m := math.Sqrt(2.0 * h / (kFin * tFin))

	mre := m * re
	mro := m * ro
	x0 := numerics.BesselI1(mre)
	x1 := numerics.BesselK1(mre)
	num := x0*numerics.BesselK1(mro) - x1*numerics.BesselI1(mro)
	den := numerics.BesselI0(mro)*x1 + x0*numerics.BesselK0(mro)
	return 2.0 * ro / (m * (re*re - ro*ro)) * num / den
}
