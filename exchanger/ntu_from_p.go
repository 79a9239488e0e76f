package exchanger

import (
	"fmt"
	"math"

	"ht/internal/numerics"
)

// Numeric NTU-from-P inversions search within this NTU1 window. Most
// configurations peak in temperature effectiveness at a finite NTU and
// decline past it; the solver reports only the rising branch.
const (
	ntuSolveMin = 1e-11
	ntuSolveMax = 1e4
)

// ntuFromPSolve inverts a temperature effectiveness relation for NTU1. A
// logarithmic scan locates the achievable maximum of P1, a golden section
// pass sharpens the peak, and a bracketed Brent solve finds the NTU1 on the
// rising branch reaching the target. Targets above the maximum error with
// the achievable value.
func ntuFromPSolve(f func(float64) float64, p1 float64) (float64, error) {
	safe := func(x float64) float64 {
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.Inf(-1)
		}
		return v
	}
	points := solverSettings.ScanPoints
	ratio := math.Pow(ntuSolveMax/ntuSolveMin, 1./float64(points-1))
	pts := make([]float64, points)
	best, bestIdx := math.Inf(-1), 0
	x := ntuSolveMin
	for i := range pts {
		pts[i] = x
		if v := safe(x); v > best {
			best, bestIdx = v, i
		}
		x *= ratio
	}

	// Sharpen the peak between the neighboring scan points.
	lo := pts[maxInt(bestIdx-1, 0)]
	hi := pts[minInt(bestIdx+1, points-1)]
	const gr = 0.6180339887498949
	c := hi - gr*(hi-lo)
	d := lo + gr*(hi-lo)
	for i := 0; i < 80; i++ {
		if safe(c) < safe(d) {
			lo = c
		} else {
			hi = d
		}
		c = hi - gr*(hi-lo)
		d = lo + gr*(hi-lo)
	}
	peakNTU := 0.5 * (lo + hi)
	pMax := math.Max(best, safe(peakNTU))
	if p1 > pMax {
		return 0, fmt.Errorf("no solution possible gives such a high P1; maximum P1=%f at NTU1=%f", pMax, peakNTU)
	}
	root, err := numerics.Brent(func(ntu1 float64) float64 {
		return safe(ntu1) - p1
	}, ntuSolveMin, peakNTU, solverSettings.Tolerance, 2*solverSettings.MaxIterations)
	if err != nil {
		return 0, fmt.Errorf("NTU from P solve: %w", err)
	}
	return root, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NTUFromPBasic returns the stream 1 transfer units of a basic flow
// configuration reaching temperature effectiveness P1 at capacity ratio R1,
// the inverse of TemperatureEffectivenessBasic. Counterflow, parallel flow
// and the singly mixed crossflow cases have closed forms; the rest solve
// numerically.
func NTUFromPBasic(p1, r1 float64, subtype string) (float64, error) {
	switch subtype {
	case "counterflow":
		if r1 == 1 {
			return p1 / (1. - p1), nil
		}
		return -math.Log((p1*r1-1.)/(p1-1.)) / (r1 - 1.), nil
	case "parallel":
		return math.Log(-1./(p1*(r1+1.)-1.)) / (r1 + 1.), nil
	case "crossflow, mixed 1":
		return -math.Log(r1*math.Log(-(p1-1.)*math.Exp(1./r1))) / r1, nil
	case "crossflow, mixed 2":
		return -math.Log(math.Log(-(p1*r1-1.)*math.Exp(r1)) / r1), nil
	case "crossflow, mixed 1&2", "crossflow approximate":
		return ntuFromPSolve(func(ntu1 float64) float64 {
			p, _ := TemperatureEffectivenessBasic(r1, ntu1, subtype)
			return p
		}, p1)
	case "crossflow":
		// The exact solution flattens at high NTU; a seeded secant from
		// the explicit approximation converges where bracketing stalls.
		guess, err := NTUFromPBasic(p1, r1, "crossflow approximate")
		if err != nil {
			return 0, err
		}
		ntu1, err := numerics.Secant(func(ntu1 float64) float64 {
			p, _ := TemperatureEffectivenessBasic(r1, ntu1, "crossflow")
			return p - p1
		}, guess, solverSettings.Tolerance, solverSettings.MaxIterations)
		if err != nil {
			return 0, fmt.Errorf("crossflow NTU iteration: %w", err)
		}
		return ntu1, nil
	}
	return 0, fmt.Errorf("unknown basic subtype %q: valid subtypes are %v", subtype, BasicPNTUSubtypes)
}

// NTUFromPE returns the stream 1 transfer units of a TEMA E shell reaching
// temperature effectiveness P1, the inverse of
// TemperatureEffectivenessTEMAE. One pass is the counterflow closed form and
// two optimal passes have an analytical solution; the rest solve
// numerically.
func NTUFromPE(p1, r1 float64, ntp int, optimal bool) (float64, error) {
	switch {
	case ntp == 1:
		return NTUFromPBasic(p1, r1, "counterflow")
	case ntp == 2 && optimal:
		// The second root of the defining equation is complex.
		x1 := r1*r1 + 1.
		sx1 := math.Sqrt(x1)
		return 2. * math.Log(math.Sqrt((p1*r1-p1*sx1+p1-2.)/(p1*r1+p1*sx1+p1-2.))) / sx1, nil
	case ntp == 2 || ntp == 3 || ntp%2 == 0:
		return ntuFromPSolve(func(ntu1 float64) float64 {
			p, _ := TemperatureEffectivenessTEMAE(r1, ntu1, ntp, optimal)
			return p
		}, p1)
	}
	return 0, fmt.Errorf("E shell: no solution exists for %d tube passes (odd counts above 3 are unsupported)", ntp)
}

// NTUFromPG returns the stream 1 transfer units of a TEMA G shell reaching
// temperature effectiveness P1, the inverse of
// TemperatureEffectivenessTEMAG.
func NTUFromPG(p1, r1 float64, ntp int, optimal bool) (float64, error) {
	if ntp != 1 && ntp != 2 {
		return 0, fmt.Errorf("G shell: supported tube pass counts are 1 and 2, not %d", ntp)
	}
	return ntuFromPSolve(func(ntu1 float64) float64 {
		p, _ := TemperatureEffectivenessTEMAG(r1, ntu1, ntp, optimal)
		return p
	}, p1)
}

// NTUFromPJ returns the stream 1 transfer units of a TEMA J shell reaching
// temperature effectiveness P1, the inverse of
// TemperatureEffectivenessTEMAJ.
func NTUFromPJ(p1, r1 float64, ntp int) (float64, error) {
	if ntp != 1 && ntp != 2 && ntp != 4 {
		return 0, fmt.Errorf("J shell: supported tube pass counts are 1, 2 and 4, not %d", ntp)
	}
	return ntuFromPSolve(func(ntu1 float64) float64 {
		p, _ := TemperatureEffectivenessTEMAJ(r1, ntu1, ntp)
		return p
	}, p1)
}

// NTUFromPH returns the stream 1 transfer units of a TEMA H shell reaching
// temperature effectiveness P1, the inverse of
// TemperatureEffectivenessTEMAH.
func NTUFromPH(p1, r1 float64, ntp int, optimal bool) (float64, error) {
	if ntp != 1 && ntp != 2 {
		return 0, fmt.Errorf("H shell: supported tube pass counts are 1 and 2, not %d", ntp)
	}
	return ntuFromPSolve(func(ntu1 float64) float64 {
		p, _ := TemperatureEffectivenessTEMAH(r1, ntu1, ntp, optimal)
		return p
	}, p1)
}

// NTUFromPPlate returns the stream 1 transfer units of a plate exchanger
// reaching temperature effectiveness P1, the inverse of
// TemperatureEffectivenessPlate. Single pass arrangements have closed forms
// with an explicit achievable maximum; arrangements covered on the side 2
// basis convert through R1 like the forward solution.
func NTUFromPPlate(p1, r1 float64, np1, np2 int, counterflow, passesCounterflow bool) (float64, error) {
	return ntuFromPPlate(p1, r1, np1, np2, counterflow, passesCounterflow, false)
}

func ntuFromPPlate(p1, r1 float64, np1, np2 int, counterflow, passesCounterflow, reversed bool) (float64, error) {
	solve := func() (float64, error) {
		return ntuFromPSolve(func(ntu1 float64) float64 {
			p, err := plateEffectiveness(r1, ntu1, np1, np2, counterflow, passesCounterflow, reversed)
			if err != nil {
				return math.NaN()
			}
			return p
		}, p1)
	}
	switch {
	case np1 == 1 && np2 == 1:
		if counterflow {
			if r1 == 1 {
				return p1 / (1. - p1), nil
			}
			x := (p1*r1 - 1.) / (p1 - 1.)
			if x <= 0 {
				return 0, fmt.Errorf("the maximum P1 obtainable at the specified R1 is %f at the limit of NTU1=inf", 1./r1)
			}
			return -math.Log(x) / (r1 - 1.), nil
		}
		x := -1. / (p1*(r1+1.) - 1.)
		if x <= 0 {
			return 0, fmt.Errorf("the maximum P1 obtainable at the specified R1 is %f at the limit of NTU1=inf", Pp(1e10, r1))
		}
		return math.Log(x) / (r1 + 1.), nil
	case np1 == 1 && (np2 == 2 || np2 == 3 || np2 == 4):
		return solve()
	case np1 == 2 && np2 == 2:
		if counterflow && passesCounterflow {
			return ntuFromPPlate(p1, r1, 1, 1, true, true, reversed)
		}
		if !counterflow && !passesCounterflow {
			return ntuFromPPlate(p1, r1, 1, 1, false, false, reversed)
		}
		return solve()
	case np1 == 2 && (np2 == 3 || np2 == 4):
		return solve()
	}
	if !reversed {
		ntu2, err := ntuFromPPlate(p1*r1, 1./r1, np2, np1, counterflow, passesCounterflow, true)
		if err != nil {
			return 0, err
		}
		return ntu2 / r1, nil
	}
	return 0, fmt.Errorf("no plate exchanger formula is available for %d/%d passes", np2, np1)
}
