package exchanger

import (
	"fmt"
	"math"
)

// TemperatureEffectivenessTEMAJ returns the stream 1 temperature
// effectiveness of a TEMA J divided-flow shell with 1, 2 or 4 tube passes,
// from the shell-side heat capacity ratio R1 and transfer units NTU1.
func TemperatureEffectivenessTEMAJ(r1, ntu1 float64, ntp int) (float64, error) {
	switch ntp {
	case 1:
		a := math.Exp(ntu1)
		b := math.Exp(-ntu1 * r1 / 2.)
		if r1 != 2 {
			return 1. / r1 * (1. - (2.-r1)*(2.*a+r1*b)/(2.+r1)/(2.*a-r1/b)), nil
		}
		return 0.5 * (1. - (1.+1./(a*a))/2./(1.+ntu1)), nil
	case 2:
		lambda1 := math.Sqrt(1. + r1*r1/4.)
		a := math.Exp(ntu1)
		al := math.Pow(a, lambda1)
		d := 1. + lambda1*math.Pow(a, (lambda1-1.)/2.)/(al-1.)
		c := math.Pow(a, (1.+lambda1)/2.) / (lambda1 - 1. + (1.+lambda1)*al)
		b := (al + 1.) / (al - 1.)
		return 1. / (1. + r1/2. + lambda1*b - 2.*lambda1*c*d), nil
	case 4:
		lambda1 := math.Sqrt(1. + r1*r1/16.)
		e := math.Exp(r1 * ntu1 / 2.)
		a := math.Exp(ntu1)
		al := math.Pow(a, lambda1)
		d := 1. + lambda1*math.Pow(a, (lambda1-1.)/2.)/(al-1.)
		c := math.Pow(a, (1.+lambda1)/2.) / (lambda1 - 1. + (1.+lambda1)*al)
		b := (al + 1.) / (al - 1.)
		return 1. / (1. + r1/4.*(1.+3.*e)/(1.+e) + lambda1*b - 2.*lambda1*c*d), nil
	}
	return 0, fmt.Errorf("J shell: supported tube pass counts are 1, 2 and 4, not %d", ntp)
}

// TemperatureEffectivenessTEMAH returns the stream 1 temperature
// effectiveness of a TEMA H double split flow shell with 1 or 2 tube passes.
// For two passes, optimal selects the overall-counterflow orientation.
func TemperatureEffectivenessTEMAH(r1, ntu1 float64, ntp int, optimal bool) (float64, error) {
	switch {
	case ntp == 1:
		a := 1. / (1. + r1/2.) * (1. - math.Exp(-ntu1*(1.+r1/2.)/2.))
		d := math.Exp(-ntu1 * (1. - r1/2.) / 2.)
		var b float64
		if r1 != 2 {
			b = (1. - d) / (1. - r1*d/2.)
		} else {
			b = ntu1 / (2. + ntu1)
		}
		e := (a + b - a*b*r1/2.) / 2.
		return e*(1.+(1.-b*r1/2.)*(1.-a*r1/2.+a*b*r1)) - a*b*(1.-b*r1/2.), nil
	case ntp == 2 && optimal:
		alpha := ntu1 * (4. + r1) / 8.
		beta := ntu1 * (4. - r1) / 8.
		d := (1. - math.Exp(-alpha)) / (4./r1 + 1.)
		var e, h float64
		if r1 != 4 {
			e = (1. - math.Exp(-beta)) / (4./r1 - 1.)
			h = (1. - math.Exp(-2.*beta)) / (4./r1 - 1.)
		} else {
			e = ntu1 / 2.
			h = ntu1
		}
		g := (1.-d)*(1.-d)*(d*d+e*e) + d*d*(1.+e)*(1.+e)
		b := (1. + h) * (1. + e) * (1. + e)
		return 1. / r1 * (1. - math.Pow(1.-d, 4)/(b-4.*g/r1)), nil
	case ntp == 2:
		// Solved on the stream 2 basis and converted back.
		r1Orig := r1
		ntu1 = ntu1 * r1Orig
		r1 = 1. / r1Orig

		beta := ntu1 * (4.*r1 + 1.) / 8.
		alpha := ntu1 / 8. * (4.*r1 - 1.)
		h := (math.Exp(-2.*beta) - 1.) / (4.*r1 + 1.)
		e := (math.Exp(-beta) - 1.) / (4.*r1 + 1.)
		b := (1. + h) * (1. + e) * (1. + e)
		var d float64
		if r1 != 0.25 {
			d = (1. - math.Exp(-alpha)) / (1. - 4.*r1)
		} else {
			d = -ntu1 / 8.
		}
		g := (1.-d)*(1.-d)*(d*d+e*e) + d*d*(1.+e)*(1.+e)
		p1 := 1. - (b+4.*g*r1)/math.Pow(1.-d, 4)
		return p1 / r1Orig, nil
	}
	return 0, fmt.Errorf("H shell: supported tube pass counts are 1 and 2, not %d", ntp)
}

// TemperatureEffectivenessTEMAG returns the stream 1 temperature
// effectiveness of a TEMA G split flow shell with 1 or 2 tube passes. For
// two passes, optimal selects the overall-counterflow orientation.
func TemperatureEffectivenessTEMAG(r1, ntu1 float64, ntp int, optimal bool) (float64, error) {
	switch {
	case ntp == 1:
		d := math.Exp(-ntu1 * (1. - r1) / 2.)
		var b float64
		if r1 != 1 {
			b = (1. - d) / (1. - r1*d)
		} else {
			b = ntu1 / (2. + ntu1)
		}
		a := 1. / (1. + r1) * (1. - math.Exp(-ntu1*(1.+r1)/2.))
		return a + b - a*b*(1.+r1) + r1*a*b*b, nil
	case ntp == 2 && optimal:
		if r1 != 2 {
			beta := math.Exp(-ntu1 * (2. - r1) / 2.)
			alpha := math.Exp(-ntu1 * (2. + r1) / 4.)
			b := (4. - beta*(2.+r1)) / (2. - r1)
			a := -2. * r1 * (1. - alpha) * (1. - alpha) / (2. + r1)
			return (b - alpha*alpha) / (a + 2. + r1*b), nil
		}
		alpha := math.Exp(-ntu1)
		return (1. + 2.*ntu1 - alpha*alpha) / (4. + 4.*ntu1 - (1.-alpha)*(1.-alpha)), nil
	case ntp == 2:
		// Solved on the stream 2 basis and converted back.
		r1Orig := r1
		ntu1 = ntu1 * r1Orig
		r1 = 1. / r1Orig
		var p1 float64
		if r1 != 0.5 {
			beta := math.Exp(-ntu1 * (2.*r1 + 1.) / 2.)
			alpha := math.Exp(-ntu1 * (2.*r1 - 1.) / 4.)
			b := (4.*r1 - beta*(2.*r1-1.)) / (2.*r1 + 1.)
			a := (1. - alpha) * (1. - alpha) / (r1 - 0.5)
			p1 = (b - alpha*alpha) / (r1 * (a - alpha*alpha/r1 + 2.))
		} else {
			beta := math.Exp(-2. * r1 * ntu1)
			p1 = (1. + 2.*r1*ntu1 - beta) / r1 / (4. + 4.*r1*ntu1 + r1*r1*ntu1*ntu1)
		}
		return p1 / r1Orig, nil
	}
	return 0, fmt.Errorf("G shell: supported tube pass counts are 1 and 2, not %d", ntp)
}

// TemperatureEffectivenessTEMAE returns the stream 1 temperature
// effectiveness of a TEMA E shell with 1, 2, 3 or any even number of tube
// passes. One pass is plain counterflow. For multipass shells, optimal
// selects the orientation where the shell stream enters at the
// countercurrent end; odd pass counts above 3 have no published solution
// and error.
func TemperatureEffectivenessTEMAE(r1, ntu1 float64, ntp int, optimal bool) (float64, error) {
	switch {
	case ntp == 1:
		if r1 != 1 {
			return (1. - math.Exp(-ntu1*(1.-r1))) / (1. - r1*math.Exp(-ntu1*(1.-r1))), nil
		}
		return ntu1 / (1. + ntu1), nil
	case ntp == 2 && optimal:
		if r1 != 1 {
			e := math.Sqrt(1. + r1*r1)
			return 2. / (1. + r1 + e/math.Tanh(e*ntu1/2.)), nil
		}
		return 1. / (1. + 1./math.Tanh(ntu1/math.Sqrt2)/math.Sqrt2), nil
	case ntp == 2:
		// Shell fluid reversed against the divider; identical in form to
		// the single pass J shell.
		return TemperatureEffectivenessTEMAJ(r1, ntu1, 1)
	case ntp == 3 && optimal:
		lambda3 := r1
		root := math.Sqrt(2.25 + r1*(r1-1.))
		lambda2 := -1.5 - root
		lambda1 := -1.5 + root
		delta := lambda1 - lambda2
		x1 := math.Exp(lambda1*ntu1/3.) / 2. / delta
		x2 := math.Exp(lambda2*ntu1/3.) / 2. / delta
		x3 := math.Exp(lambda3*ntu1/3.) / 2. / delta
		c := x2*(3.*r1+lambda1) - x1*(3.*r1+lambda2) + x3*delta
		b := x1*(r1-lambda2) - x2*(r1-lambda1) + x3*delta
		var a float64
		if r1 != 1 {
			a = x1*(r1+lambda1)*(r1-lambda2)/2./lambda1 - x3*delta -
				x2*(r1+lambda2)*(r1-lambda1)/2./lambda2 + 1./(1.-r1)
		} else {
			a = -math.Exp(-ntu1)/18. - math.Exp(ntu1/3.)/2. + (ntu1+5.)/9.
		}
		return 1. / r1 * (1. - c/(a*c+b*b)), nil
	case ntp == 3:
		// Solved on the stream 2 basis and converted back.
		r1Orig := r1
		ntu1 = ntu1 * r1Orig
		r1 = 1. / r1Orig

		delta := math.Sqrt(9.*r1*r1+4.*(1.-r1)) / r1
		l1 := (-3. + delta) / 2.
		l2 := (-3. - delta) / 2.
		chi1 := math.Exp(l1*r1*ntu1/3.) / 2. / delta
		chi2 := math.Exp(l2*r1*ntu1/3.) / 2. / delta
		e := 0.5 * math.Exp(ntu1/3.)
		c := -chi1*(3.+r1*l2)/r1 + chi2*(3.+r1*l1)/r1 + e
		b := chi1*(1.-r1*l2)/r1 - chi2*(1.-r1*l1)/r1 + e
		a := chi1*(1.+r1*l1)*(1.-r1*l2)/(2.*r1*r1*l1) - e -
			chi2*(1.+r1*l2)*(1.-r1*l1)/(2.*r1*r1*l2) + r1*(r1-1.)
		p1 := 1. - c/(a*c+b*b)
		return p1 / r1Orig, nil
	case ntp == 4 || ntp%2 == 0:
		// Thulukkanam's form holds for any even pass count.
		r1Orig := r1
		ntu1 = ntu1 * r1Orig
		r1 = 1. / r1Orig

		n1 := float64(ntp) / 2.
		root := math.Sqrt(1. + n1*n1*r1*r1)
		c := 1. / n1 * root / math.Tanh(ntu1/(2.*n1)*root)
		b := -1. / n1 / math.Tanh(ntu1/(2.*n1))
		a := 1. + r1 + 1./math.Tanh(ntu1/2.)
		p1 := 2. / (a + b + c)
		return p1 / r1Orig, nil
	}
	return 0, fmt.Errorf("E shell: no solution exists for %d tube passes (odd counts above 3 are unsupported)", ntp)
}
