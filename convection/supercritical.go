package convection

import "math"

// SupercriticalFluid holds the bulk state of a supercritical fluid flowing
// in a tube and the optional wall and pseudo-critical values the individual
// correlations correct on. Zero-valued optional fields leave the matching
// correction out, as most correlations permit.
type SupercriticalFluid struct {
	Re    float64 // Reynolds number at bulk conditions, [-]
	Pr    float64 // Prandtl number at bulk conditions, [-]
	PrW   float64 // Prandtl number at the wall temperature, [-]
	PrPc  float64 // Prandtl number at the pseudo-critical temperature, [-]
	RhoW  float64 // density at the wall temperature, [kg/m^3]
	RhoB  float64 // density at the bulk temperature, [kg/m^3]
	MuW   float64 // viscosity at the wall temperature, [Pa*s]
	MuB   float64 // viscosity at the bulk temperature, [Pa*s]
	KW    float64 // thermal conductivity at the wall temperature, [W/m/K]
	KB    float64 // thermal conductivity at the bulk temperature, [W/m/K]
	CpAvg float64 // average heat capacity between bulk and wall, [J/kg/K]
	CpB   float64 // heat capacity at the bulk temperature, [J/kg/K]
	TB    float64 // bulk temperature, [K]
	TW    float64 // wall temperature, [K]
	TPc   float64 // pseudo-critical temperature, [K]
	H     float64 // bulk enthalpy, [J/kg]
	G     float64 // mass flux, [kg/m^2/s]
	Q     float64 // heat flux to the fluid, [W/m^2]
	D     float64 // tube inner diameter, [m]
	X     float64 // axial distance along the tube, [m]
}

// NuSupercriticalMcAdams returns the Nusselt number of supercritical water
// by the McAdams correlation, a Dittus-Boelter form with no corrections.
func NuSupercriticalMcAdams(f SupercriticalFluid) float64 {
	return 0.0243 * math.Pow(f.Re, 0.8) * math.Pow(f.Pr, 0.4)
}

// NuSupercriticalShitsman returns the Nusselt number of supercritical water
// by the Shitsman correlation, taking the lower of the bulk and wall Prandtl
// numbers.
func NuSupercriticalShitsman(f SupercriticalFluid) float64 {
	return 0.023 * math.Pow(f.Re, 0.8) * math.Pow(math.Min(f.Pr, f.PrW), 0.8)
}

// NuSupercriticalGriem returns the Nusselt number of supercritical water by
// the Griem correlation. The enthalpy damping term applies when H is set.
func NuSupercriticalGriem(f SupercriticalFluid) float64 {
	w := 1.0
	if f.H != 0 {
		switch {
		case f.H < 1.54e6:
			w = 0.82
		case f.H > 1.74e6:
			w = 1.0
		default:
			w = 0.82 + 9e-7*(f.H-1.54e6)
		}
	}
	return 0.0169 * math.Pow(f.Re, 0.8356) * math.Pow(f.Pr, 0.432) * w
}

// NuSupercriticalJackson returns the Nusselt number of a supercritical fluid
// by the Jackson correlation. The density ratio applies when RhoW and RhoB
// are set, the heat capacity ratio when CpAvg and CpB are set, and the heat
// capacity exponent draws on TB, TW and TPc when available.
func NuSupercriticalJackson(f SupercriticalFluid) float64 {
	n := 0.4
	if f.TB != 0 && f.TW != 0 && f.TPc != 0 {
		switch {
		case (f.TB < f.TW && f.TW < f.TPc) || (1.2*f.TPc < f.TB && f.TB < f.TW):
			n = 0.4
		case f.TB < f.TPc && f.TPc < f.TW:
			n = 0.4 + 0.2*(f.TW/f.TPc-1)
		default:
			n = 0.4 + 0.2*(f.TW/f.TPc-1)*(1-5*(f.TB/f.TPc-1))
		}
	}
	nu := 0.0183 * math.Pow(f.Re, 0.82) * math.Pow(f.Pr, 0.5)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.3)
	}
	if f.CpAvg != 0 && f.CpB != 0 {
		nu *= math.Pow(f.CpAvg/f.CpB, n)
	}
	return nu
}

// NuSupercriticalGupta returns the Nusselt number of supercritical water by
// the Gupta correlation.
func NuSupercriticalGupta(f SupercriticalFluid) float64 {
	nu := 0.004 * math.Pow(f.Re, 0.923) * math.Pow(f.Pr, 0.773)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.186)
	}
	if f.MuW != 0 && f.MuB != 0 {
		nu *= math.Pow(f.MuW/f.MuB, 0.366)
	}
	return nu
}

// NuSupercriticalSwenson returns the Nusselt number of supercritical water
// by the Swenson correlation.
func NuSupercriticalSwenson(f SupercriticalFluid) float64 {
	nu := 0.00459 * math.Pow(f.Re, 0.923) * math.Pow(f.Pr, 0.613)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.231)
	}
	return nu
}

// NuSupercriticalXu returns the Nusselt number of supercritical water by the
// Xu correlation.
func NuSupercriticalXu(f SupercriticalFluid) float64 {
	nu := 0.02269 * math.Pow(f.Re, 0.8079) * math.Pow(f.Pr, 0.9213)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.6638)
	}
	if f.MuW != 0 && f.MuB != 0 {
		nu *= math.Pow(f.MuW/f.MuB, 0.8687)
	}
	return nu
}

// NuSupercriticalMokry returns the Nusselt number of supercritical water by
// the Mokry correlation.
func NuSupercriticalMokry(f SupercriticalFluid) float64 {
	nu := 0.0061 * math.Pow(f.Re, 0.904) * math.Pow(f.Pr, 0.684)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.564)
	}
	return nu
}

// NuSupercriticalBringerSmith returns the Nusselt number of supercritical
// water or carbon dioxide by the Bringer and Smith correlation.
func NuSupercriticalBringerSmith(f SupercriticalFluid) float64 {
	return 0.0266 * math.Pow(f.Re, 0.77) * math.Pow(f.Pr, 0.55)
}

// NuSupercriticalOrnatsky returns the Nusselt number of supercritical water
// by the Ornatsky correlation, taking the lower of the bulk and wall Prandtl
// numbers.
func NuSupercriticalOrnatsky(f SupercriticalFluid) float64 {
	nu := 0.023 * math.Pow(f.Re, 0.8) * math.Pow(math.Min(f.Pr, f.PrW), 0.8)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.3)
	}
	return nu
}

// NuSupercriticalGorban returns the Nusselt number of supercritical water by
// the Gorban correlation.
func NuSupercriticalGorban(f SupercriticalFluid) float64 {
	return 0.0059 * math.Pow(f.Re, 0.90) * math.Pow(f.Pr, -0.12)
}

// NuSupercriticalZhu returns the Nusselt number of supercritical water by
// the Zhu correlation.
func NuSupercriticalZhu(f SupercriticalFluid) float64 {
	nu := 0.0068 * math.Pow(f.Re, 0.9) * math.Pow(f.Pr, 0.63)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.17)
	}
	if f.KW != 0 && f.KB != 0 {
		nu *= math.Pow(f.KW/f.KB, 0.29)
	}
	return nu
}

// NuSupercriticalBishop returns the Nusselt number of supercritical water by
// the Bishop correlation, with an entrance effect term when D and X are set.
func NuSupercriticalBishop(f SupercriticalFluid) float64 {
	nu := 0.0069 * math.Pow(f.Re, 0.9) * math.Pow(f.Pr, 0.66)
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.43)
	}
	if f.D != 0 && f.X != 0 {
		nu *= 1 + 2.4*f.D/f.X
	}
	return nu
}

// NuSupercriticalYamagata returns the Nusselt number of supercritical water
// by the Yamagata correlation. The heat capacity factor applies only when
// the temperatures, the pseudo-critical Prandtl number and the heat
// capacities are all set.
func NuSupercriticalYamagata(f SupercriticalFluid) float64 {
	factor := 1.0
	if f.TB != 0 && f.TW != 0 && f.TPc != 0 && f.PrPc != 0 && f.CpAvg != 0 && f.CpB != 0 {
		e := (f.TPc - f.TB) / (f.TW - f.TB)
		if e < 0 {
			n2 := 1.44*(1+1/f.PrPc) - 0.53
			factor = math.Pow(f.CpAvg/f.CpB, n2)
		} else if e < 1 {
			n1 := -0.77*(1+1/f.PrPc) + 1.49
			factor = 0.67 * math.Pow(f.PrPc, -0.05) * math.Pow(f.CpAvg/f.CpB, n1)
		}
	}
	return 0.0138 * math.Pow(f.Re, 0.85) * math.Pow(f.Pr, 0.8) * factor
}

// NuSupercriticalKitoh returns the Nusselt number of supercritical water by
// the Kitoh correlation. The Prandtl exponent draws on H, G and Q when all
// are set.
func NuSupercriticalKitoh(f SupercriticalFluid) float64 {
	m := 0.69
	if f.H != 0 && f.G != 0 && f.Q != 0 {
		qht := 200 * math.Pow(f.G, 1.2)
		var fc float64
		switch {
		case f.H < 1.5e6:
			fc = 2.9e-8 + 0.11/qht
		case f.H <= 3.3e6:
			fc = -8.7e-8 - 0.65/qht
		default:
			fc = -9.7e-7 + 1.3/qht
		}
		m = 0.69 - 81000/qht + fc*f.Q
	}
	return 0.015 * math.Pow(f.Re, 0.85) * math.Pow(f.Pr, m)
}

// NuSupercriticalKrasnoshchekovProtopopov returns the Nusselt number of
// supercritical water or carbon dioxide by the Krasnoshchekov and Protopopov
// correlation, a Petukhov form with property-ratio corrections.
func NuSupercriticalKrasnoshchekovProtopopov(f SupercriticalFluid) float64 {
	fd := math.Pow(1.82*math.Log10(f.Re)-1.64, -2)
	nu := (fd / 8) * f.Re * f.Pr /
		(1.07 + 12.7*math.Sqrt(fd/8)*(math.Pow(f.Pr, 2/3.)-1))
	if f.MuW != 0 && f.MuB != 0 {
		nu *= math.Pow(f.MuW/f.MuB, 0.11)
	}
	if f.KW != 0 && f.KB != 0 {
		nu *= math.Pow(f.KW/f.KB, -0.33)
	}
	if f.CpAvg != 0 && f.CpB != 0 {
		nu *= math.Pow(f.CpAvg/f.CpB, 0.35)
	}
	return nu
}

// NuSupercriticalPetukhov returns the Nusselt number of supercritical water
// by the modified Petukhov correlation, correcting the friction factor on
// the wall-to-bulk density and viscosity ratios.
func NuSupercriticalPetukhov(f SupercriticalFluid) float64 {
	fd := math.Pow(1.82*math.Log10(f.Re)-1.64, -2)
	if f.RhoW != 0 && f.RhoB != 0 {
		fd *= math.Pow(f.RhoW/f.RhoB, 0.4)
	}
	if f.MuW != 0 && f.MuB != 0 {
		fd *= math.Pow(f.MuW/f.MuB, 0.2)
	}
	return (fd / 8) * f.Re * f.Pr /
		(1 + 900/f.Re + 12.7*math.Sqrt(fd/8)*(math.Pow(f.Pr, 2/3.)-1))
}

// NuSupercriticalKrasnoshchekov returns the Nusselt number of a
// supercritical fluid by the Krasnoshchekov correlation. The heat capacity
// exponent draws on TB, TW and TPc when all are set.
func NuSupercriticalKrasnoshchekov(f SupercriticalFluid) float64 {
	n := 0.4
	if f.TB != 0 && f.TW != 0 && f.TPc != 0 {
		n1 := 0.22 + 0.18*f.TW/f.TPc
		switch {
		case (f.TB < f.TW && f.TW < f.TPc) || (1.2*f.TPc < f.TB && f.TB < f.TW):
			n = 0.4
		case 1 < f.TW/f.TPc && f.TW/f.TPc < 2.5:
			n = n1
		default:
			n = n1 + (5*n1-2)*(1-f.TB/f.TPc)
		}
	}
	fd := math.Pow(1.82*math.Log10(f.Re)-1.64, -2)
	nu := (fd / 8) * f.Re * f.Pr /
		(1.07 + 12.7*math.Sqrt(fd/8)*(math.Pow(f.Pr, 2/3.)-1))
	if f.RhoW != 0 && f.RhoB != 0 {
		nu *= math.Pow(f.RhoW/f.RhoB, 0.3)
	}
	if f.CpAvg != 0 && f.CpB != 0 {
		nu *= math.Pow(f.CpAvg/f.CpB, n)
	}
	return nu
}
