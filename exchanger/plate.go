package exchanger

import "fmt"

// TemperatureEffectivenessPlate returns the stream 1 temperature
// effectiveness of a plate exchanger, from the stream 1 heat capacity ratio
// R1 and transfer units NTU1 and the pass counts of both sides. Counterflow
// selects the overall countercurrent arrangement; passesCounterflow the
// orientation of the individual passes where the distinction exists. All
// formulas assume an infinite number of plates. Configurations with more
// passes on side 1 than covered directly are solved on the side 2 basis and
// converted back, so a 3/1 arrangement reuses the 1/3 solution.
func TemperatureEffectivenessPlate(r1, ntu1 float64, np1, np2 int, counterflow, passesCounterflow bool) (float64, error) {
	return plateEffectiveness(r1, ntu1, np1, np2, counterflow, passesCounterflow, false)
}

func plateEffectiveness(r1, ntu1 float64, np1, np2 int, counterflow, passesCounterflow, reversed bool) (float64, error) {
	switch {
	case np1 == 1 && np2 == 1:
		if counterflow {
			return Pc(ntu1, r1), nil
		}
		return Pp(ntu1, r1), nil
	case np1 == 1 && np2 == 2:
		// Four arrangements share this formula at infinite plate count.
		a := Pp(ntu1, 0.5*r1)
		b := Pc(ntu1, 0.5*r1)
		return 0.5 * (a + b - 0.5*a*b*r1), nil
	case np1 == 1 && np2 == 3:
		a := Pp(ntu1, r1/3.)
		b := Pc(ntu1, r1/3.)
		if counterflow {
			return 1. / 3. * (a + b*(1.-r1*a/3.)*(2.-r1*b/3.)), nil
		}
		return 1. / 3. * (b + a*(1.-r1*b/3.)*(2.-r1*a/3.)), nil
	case np1 == 1 && np2 == 4:
		a := Pp(ntu1, 0.25*r1)
		b := Pc(ntu1, 0.25*r1)
		t := (1. - 0.25*a*r1) * (1. - 0.25*b*r1)
		return (1. - t*t) / r1, nil
	case np1 == 2 && np2 == 2:
		switch {
		case counterflow && passesCounterflow:
			return Pc(ntu1, r1), nil
		case counterflow:
			a := Pp(0.5*ntu1, r1)
			return (2.*a - a*a*(1.+r1)) / (1. - r1*a*a), nil
		case passesCounterflow:
			b := Pc(0.5*ntu1, r1)
			return b * (2. - b*(1.+r1)), nil
		default:
			return Pp(ntu1, r1), nil
		}
	case np1 == 2 && np2 == 3:
		if counterflow {
			h := Pp(0.5*ntu1, 2./3.*r1)
			g := Pc(0.5*ntu1, 2./3.*r1)
			e := 1. / (2. / 3. * r1 * g)
			f := 1. / (2. / 3. * r1 * h)
			a := (2.*r1*e*f*f - 2.*e*f + f - f*f) /
				(2.*r1*e*e*f*f - e*e - f*f - 2.*e*f + e + f)
			c := (1. - a) / e
			d := r1*e*e*c - r1*e + r1 - 0.5*c
			b := a * (e - 1.) / f
			return (a + 0.5*b + 0.5*c + d) / r1, nil
		}
		d := 2. * r1 / 3.
		a := Pp(0.5*ntu1, d)
		b := Pc(0.5*ntu1, d)
		return a + b - (2./9.+d/3.)*(a*a+b*b) -
			(5./9.+4./3.*d)*a*b +
			d*(1.+d)*a*b*(a+b)/3. -
			d*d*a*a*b*b/9., nil
	case np1 == 2 && np2 == 4:
		// Identical for either pass orientation.
		a := Pp(0.5*ntu1, 0.5*r1)
		b := Pc(0.5*ntu1, 0.5*r1)
		d := 0.5 * (a + b - 0.5*a*b*r1)
		if counterflow {
			return (2.*d - (1.+r1)*d*d) / (1. - d*d*r1), nil
		}
		return 2.*d - (1.+r1)*d*d, nil
	}
	if !reversed {
		// Only the asymmetric arrangements resolve by swapping sides; the
		// result converts back to the side 1 basis through R2.
		r2 := 1. / r1
		p2, err := plateEffectiveness(r2, ntu1*r1, np2, np1, counterflow, passesCounterflow, true)
		if err != nil {
			return 0, err
		}
		return p2 * r2, nil
	}
	return 0, fmt.Errorf("no plate exchanger formula is available for %d/%d passes", np2, np1)
}
