package convection

import (
	"fmt"
	"math"
)

// NuPackedBedGnielinski returns the Nusselt number of convection in a packed
// bed of spheres of diameter dp, after Gnielinski's extension of the single
// sphere result. vs is the superficial velocity; fa is the shape arrangement
// factor (pass zero for the spherical-particle default 1 + 1.5(1-voidage)).
func NuPackedBedGnielinski(dp, voidage, vs, rho, mu, pr, fa float64) float64 {
	re := rho * vs * dp / mu / voidage
	nuLam := 0.664 * math.Sqrt(re) * math.Cbrt(pr)
	nuTurb := 0.037 * math.Pow(re, 0.8) * pr / (1 + 2.443*math.Pow(re, -0.1)*(math.Pow(pr, 2/3.)-1))
	nuSphere := 2 + math.Sqrt(nuLam*nuLam+nuTurb*nuTurb)
	if fa == 0 {
		fa = 1.0 + 1.5*(1.0-voidage)
	}
	return fa * nuSphere
}

// NuWakaoKagei returns the Nusselt number of convection in a packed bed after
// Wakao and Kagei.
func NuWakaoKagei(re, pr float64) float64 {
	return 2 + 1.1*math.Cbrt(pr)*math.Pow(re, 0.6)
}

// NuAchenbach returns the Nusselt number of convection in a packed bed after
// Achenbach, valid to very high Reynolds numbers.
func NuAchenbach(re, pr, voidage float64) float64 {
	return math.Pow(math.Pow(1.18*math.Pow(re, 0.58), 4)+
		math.Pow(0.23*math.Pow(re/(1-voidage), 0.75), 4), 0.25)
}

// NuKTA returns the Nusselt number of convection in a packed bed per the
// German nuclear safety standard KTA 3102.2.
func NuKTA(re, pr, voidage float64) float64 {
	return 1.27*math.Cbrt(pr)*math.Pow(re, 0.36)/math.Pow(voidage, 1.18) +
		0.033*math.Sqrt(pr)/math.Pow(voidage, 1.07)*math.Pow(re, 0.86)
}

// Method names accepted by NuPackedBed.
const (
	MethodWakaoKagei = "Wakao-Kagei"
	MethodAchenbach  = "Achenbach"
	MethodKTA        = "KTA"
)

// NuPackedBedMethods lists the Reynolds-Prandtl packed bed methods in order
// of preference.
var NuPackedBedMethods = []string{MethodWakaoKagei, MethodAchenbach, MethodKTA}

// NuPackedBed returns the Nusselt number of convection in a packed bed by the
// named method, defaulting to Wakao-Kagei. The voidage feeds the Achenbach
// and KTA methods only.
func NuPackedBed(method string, re, pr, voidage float64) (float64, error) {
	if method == "" {
		method = MethodWakaoKagei
	}
	switch method {
	case MethodWakaoKagei:
		return NuWakaoKagei(re, pr), nil
	case MethodAchenbach:
		return NuAchenbach(re, pr, voidage), nil
	case MethodKTA:
		return NuKTA(re, pr, voidage), nil
	}
	return 0, fmt.Errorf("unknown packed bed method %q: valid methods are %v", method, NuPackedBedMethods)
}
