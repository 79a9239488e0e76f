package boiling

import "math"

// HBoilingAmalfi returns the two-phase saturated boiling heat transfer
// coefficient in a brazed plate exchanger by the correlation of Amalfi,
// Vakili-Farahani and Thome (2016), fit to a multi-laboratory plate boiling
// database. dh is the hydraulic diameter of the channel, aChannelFlow its
// flow area and chevronAngle the plate chevron angle in degrees; pass
// chevronAngle zero for the reference 45 degree plates. The Bond number
// splits the micro and macro scale branches at 4.
func HBoilingAmalfi(m, x, dh, rhol, rhog, mul, mug, kl, hvap, sigma, q, aChannelFlow, chevronAngle float64) float64 {
	if chevronAngle == 0 {
		chevronAngle = 45
	}
	betaS := chevronAngle / 45.0
	rhoS := rhol / rhog
	gFlux := m / aChannelFlow
	bd := g * (rhol - rhog) * dh * dh / sigma
	rhoH := 1 / (x/rhog + (1-x)/rhol)
	weM := gFlux * gFlux * dh / sigma / rhoH
	bo := q / (gFlux * hvap)
	var nuTp float64
	if bd < 4 {
		nuTp = 982 * math.Pow(betaS, 1.101) * math.Pow(weM, 0.315) *
			math.Pow(bo, 0.320) * math.Pow(rhoS, -0.224)
	} else {
		reLo := gFlux * dh / mul
		reG := gFlux * x * dh / mug
		nuTp = 18.495 * math.Pow(betaS, 0.135) * math.Pow(reG, 0.135) *
			math.Pow(reLo, 0.351) * math.Pow(bd, 0.235) *
			math.Pow(bo, 0.198) * math.Pow(rhoS, -0.223)
	}
	return kl / dh * nuTp
}
