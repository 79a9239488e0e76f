package convection

import "math"

// LaminarTransitionPipe is the Reynolds number taken as the end of the
// laminar regime in pipe flow, following the analysis of Avila et al.
const LaminarTransitionPipe = 2040.

// FrictionFactor returns the Darcy friction factor of pipe flow at Reynolds
// number re and relative roughness eD. Below the laminar transition the
// analytical 64/Re result applies; above it the Colebrook equation is solved
// by fixed-point iteration on 1/sqrt(fd), which converges to machine
// precision for all physical inputs.
func FrictionFactor(re, eD float64) float64 {
	if re < LaminarTransitionPipe {
		return 64. / re
	}
	// x = 1/sqrt(fd): x = -2 log10(eD/3.7 + 2.51 x/Re)
	x := 7.0
	for i := 0; i < 100; i++ {
		next := -2 * math.Log10(eD/3.7+2.51*x/re)
		if math.Abs(next-x) < 1e-15 {
			x = next
			break
		}
		x = next
	}
	return 1. / (x * x)
}
