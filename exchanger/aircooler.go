package exchanger

import (
	"fmt"
	"math"

	"ht"
)

// TemperatureEffectivenessAirCooler returns the stream 1 (tube side)
// temperature effectiveness of an air cooler with the given tube row and
// tube pass counts, from the heat capacity ratio R1 and transfer units NTU1.
// Single pass arrangements support any row count by Schedwill's series;
// equal row/pass counts up to 5 and the 4 row 2 pass case have explicit
// solutions. Other combinations are coerced to the nearest solved
// arrangement.
func TemperatureEffectivenessAirCooler(r1, ntu1 float64, rows, passes int) (float64, error) {
	if rows < 1 || passes < 1 {
		return 0, fmt.Errorf("air cooler: %d rows and %d passes are not a valid arrangement", rows, passes)
	}
	switch {
	case passes == 1:
		return airCoolerOnePass(r1, ntu1, rows), nil
	case rows == 2 && passes == 2:
		k := 1. - math.Exp(-0.5*ntu1)
		xi := 0.5*k + (1.-0.5*k)*math.Exp(2.*k*r1)
		return 1. / r1 * (1. - 1./xi), nil
	case rows == 3 && passes == 3:
		k := 1. - math.Exp(-ntu1/3.)
		xi := k*(1.-0.25*k-r1*k*(1.-0.5*k))*math.Exp(k*r1) +
			math.Exp(3.*k*r1)*(1.-0.5*k)*(1.-0.5*k)
		return 1. / r1 * (1. - 1./xi), nil
	case rows == 4 && passes == 4:
		k := 1. - math.Exp(-0.25*ntu1)
		xi := 0.5*k*(1.-0.5*k+0.25*k*k) +
			k*(1.-0.5*k)*(1.-0.125*r1*k*(1.-0.5*k)*math.Exp(2.*k*r1)) +
			math.Exp(4.*k*r1)*math.Pow(1.-0.5*k, 3)
		return 1. / r1 * (1. - 1./xi), nil
	case rows == 5 && passes == 5:
		k := 1. - math.Exp(-0.2*ntu1)
		k2 := k * k
		k3 := k2 * k
		xi := (k*(1.-.75*k+.5*k2-.125*k3) -
			r1*k2*(1.-k+.75*k2-.25*k3-
				.5*r1*k2*(1.-.5*k)*(1.-.5*k))) * math.Exp(k*r1)
		xi += (k*(1.-.75*k+1./16.*k3)-3.*r1*k2*math.Pow(1.-.5*k, 3))*math.Exp(3.*k*r1) +
			math.Pow(1.-.5*k, 4)*math.Exp(5.*k*r1)
		return 1. / r1 * (1. - 1./xi), nil
	case rows == 4 && passes == 2:
		k := 1. - math.Exp(-0.25*ntu1)
		t := 1. + r1*k*k
		xi := (0.5*r1*k*k*k*(4.-k+2.*r1*k*k) + math.Exp(4.*k*r1) +
			k*(1.-0.5*k+0.125*k*k)*(1.-math.Exp(4.*k*r1))) / (t * t)
		return 1. / r1 * (1. - 1./xi), nil
	}
	// Domain reduction onto the solved arrangements.
	if passes > rows {
		passes = rows
	}
	if passes > 5 {
		passes = 5
	}
	if rows > 5 {
		rows = 5
	}
	if rows-1 == passes {
		rows--
	} else if (passes == 2 || passes == 3 || passes == 5) && rows >= 4 {
		rows, passes = 4, 2
	}
	return TemperatureEffectivenessAirCooler(r1, ntu1, rows, passes)
}

// airCoolerOnePass evaluates Schedwill's series solution for one tube pass
// distributed over any number of rows.
func airCoolerOnePass(r1, ntu1 float64, rows int) float64 {
	n := float64(rows)
	k := 1. - math.Exp(-ntu1/n)
	nkr1 := n * k * r1
	top := n * math.Exp(nkr1)

	fact := make([]float64, rows+1)
	fact[0] = 1
	for i := 1; i <= rows; i++ {
		fact[i] = fact[i-1] * float64(i)
	}
	// cum[j] holds the partial exponential series sum_{k<=j} (NKR1)^k/k!.
	cum := make([]float64, rows)
	pow := 1.0
	for j := 0; j < rows; j++ {
		if j > 0 {
			pow *= nkr1
		}
		cum[j] = pow / fact[j]
		if j > 0 {
			cum[j] += cum[j-1]
		}
	}

	var tot float64
	for i := 1; i < rows; i++ {
		for j := 0; j <= i; j++ {
			binom := fact[i] / (fact[i-j] * fact[j])
			tot += binom * math.Exp(float64(j-i)*ntu1/n) * math.Pow(k, float64(j)) * cum[j]
		}
	}
	return 1. / r1 * (1. - (1.+tot)/top)
}

// Roetzel-Nicole sine series coefficients for the crossflow LMTD correction,
// one 4x4 table per solved rows/passes arrangement.
var (
	ftCrossflow1Row1Pass = [4][4]float64{
		{-4.62e-1, -3.13e-2, -1.74e-1, -4.2e-2},
		{5.08e0, 5.29e-1, 1.32e0, 3.47e-1},
		{-1.57e1, -2.37e0, -2.93e0, -8.53e-1},
		{1.72e1, 3.18e0, 1.99e0, 6.49e-1},
	}
	ftCrossflow2Rows1Pass = [4][4]float64{
		{-3.34e-1, -1.54e-1, -8.65e-2, 5.53e-2},
		{3.3e0, 1.28e0, 5.46e-1, -4.05e-1},
		{-8.7e0, -3.35e0, -9.29e-1, 9.53e-1},
		{8.7e0, 2.83e0, 4.71e-1, -7.17e-1},
	}
	ftCrossflow3Rows1Pass = [4][4]float64{
		{-8.74e-2, -3.18e-2, -1.83e-2, 7.1e-3},
		{1.05e0, 2.74e-1, 1.23e-1, -4.99e-2},
		{-2.45e0, -7.46e-1, -1.56e-1, 1.09e-1},
		{3.21e0, 6.68e-1, 6.17e-2, -7.46e-2},
	}
	ftCrossflow4Rows1Pass = [4][4]float64{
		{-4.14e-2, -1.39e-2, -7.23e-3, 6.1e-3},
		{6.15e-1, 1.23e-1, 5.66e-2, -4.68e-2},
		{-1.2e0, -3.45e-1, -4.37e-2, 1.07e-1},
		{2.06e0, 3.18e-1, 1.11e-2, -7.57e-2},
	}
	ftCrossflow2Rows2Pass = [4][4]float64{
		{-2.35e-1, -7.73e-2, -5.98e-2, 5.25e-3},
		{2.28e0, 6.32e-1, 3.64e-1, -1.27e-2},
		{-6.44e0, -1.63e0, -6.13e-1, -1.14e-2},
		{6.24e0, 1.35e0, 2.76e-1, 2.72e-2},
	}
	ftCrossflow3Rows3Pass = [4][4]float64{
		{-8.43e-1, 3.02e-2, 4.8e-1, 8.12e-2},
		{5.85e0, -9.64e-3, -3.28e0, -8.34e-1},
		{-1.28e1, -2.28e-1, 7.11e0, 2.19e0},
		{9.24e0, 2.66e-1, -4.9e0, -1.69e0},
	}
	ftCrossflow4Rows4Pass = [4][4]float64{
		{-3.39e-1, 2.77e-2, 1.79e-1, -1.99e-2},
		{2.38e0, -9.99e-2, -1.21e0, 4e-2},
		{-5.26e0, 9.04e-2, 2.62e0, 4.94e-2},
		{3.9e0, -8.45e-4, -1.81e0, -9.81e-2},
	}
	ftCrossflow4Rows2Pass = [4][4]float64{
		{-6.05e-1, 2.31e-2, 2.94e-1, 1.98e-2},
		{4.34e0, 5.9e-3, -1.99e0, -3.05e-1},
		{-9.72e0, -2.48e-1, 4.32, 8.97e-1},
		{7.54e0, 2.87e-1, -3e0, -7.31e-1},
	}
)

// FtAirCooler returns the log-mean temperature difference correction factor
// of a crossflow air cooler by the Roetzel-Nicole explicit fit, from the
// terminal temperatures and the tube pass and row counts. The hot fluid is
// taken as tubeside; the model is not symmetric. Arrangements beyond the
// eight fitted cases fall back on the nearest fitted table.
func FtAirCooler(thi, tho, tci, tco float64, ntp, rows int) float64 {
	dTlm := ht.LMTD(thi, tho, tci, tco, true)
	rlm := dTlm / (thi - tci)
	r := (thi - tho) / (tco - tci)

	var coefs *[4][4]float64
	switch {
	case ntp == 1 && rows == 1:
		coefs = &ftCrossflow1Row1Pass
	case ntp == 1 && rows == 2:
		coefs = &ftCrossflow2Rows1Pass
	case ntp == 1 && rows == 3:
		coefs = &ftCrossflow3Rows1Pass
	case ntp == 1 && rows >= 4:
		coefs = &ftCrossflow4Rows1Pass
	case ntp == 2 && rows == 2:
		coefs = &ftCrossflow2Rows2Pass
	case ntp == 3 && rows == 3:
		coefs = &ftCrossflow3Rows3Pass
	case ntp == 4 && rows == 4, ntp > 4 && rows > 4 && ntp == rows:
		coefs = &ftCrossflow4Rows4Pass
	default:
		coefs = &ftCrossflow4Rows2Pass
	}
	atanR := math.Atan(r)
	var tot float64
	for k := range coefs {
		x0 := math.Pow(1.-rlm, float64(k)+1.)
		for i := range coefs[k] {
			tot += coefs[k][i] * x0 * math.Sin(2.*(float64(i)+1.)*atanR)
		}
	}
	return 1. - tot
}
