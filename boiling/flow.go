package boiling

import (
	"fmt"
	"math"

	"ht/convection"
	"ht/internal/numerics"
)

// lockhartMartinelliXtt returns the Lockhart-Martinelli Xtt parameter for
// turbulent-turbulent two-phase flow.
func lockhartMartinelliXtt(x, rhol, rhog, mul, mug float64) float64 {
	return math.Pow((1-x)/x, 0.9) * math.Sqrt(rhog/rhol) * math.Pow(mul/mug, 0.1)
}

// LazarekBlack returns the two-phase saturated boiling heat transfer
// coefficient of Lazarek and Black (1982), developed for R-113 in vertical
// tubes. Exactly one of te and q must be nonzero; the te form was obtained
// by solving the q form for itself.
func LazarekBlack(m, d, mul, kl, hvap, te, q float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	relo := gFlux * d / mul
	if q != 0 {
		bg := q / (gFlux * hvap)
		return 30 * math.Pow(relo, 0.857) * math.Pow(bg, 0.714) * kl / d, nil
	}
	if te != 0 {
		return 27000 * math.Pow(30, 71.0/143.0) * math.Pow(1/(gFlux*hvap), 357.0/143.0) *
			math.Pow(relo, 857.0/286.0) * math.Pow(te, 357.0/143.0) *
			math.Pow(kl, 500.0/143.0) / math.Pow(d, 500.0/143.0), nil
	}
	return 0, errNeitherTeNorQ("Lazarek-Black")
}

// LiWu returns the two-phase saturated boiling heat transfer coefficient of
// Li and Wu (2010), fit to a broad database of micro and mini channel data.
// Exactly one of te and q must be nonzero.
func LiWu(m, x, d, rhol, rhog, mul, kl, hvap, sigma, te, q float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	rel := gFlux * d * (1 - x) / mul
	bond := g * (rhol - rhog) * d * d / sigma
	if q != 0 {
		bg := q / (gFlux * hvap)
		return 334 * math.Pow(bg, 0.3) * math.Pow(bond*math.Pow(rel, 0.36), 0.4) * kl / d, nil
	}
	if te != 0 {
		a := 334 * math.Pow(bond*math.Pow(rel, 0.36), 0.4) * kl / d
		return math.Pow(a, 10/7.) * math.Pow(te, 3/7.) / (math.Pow(gFlux, 3/7.) * math.Pow(hvap, 3/7.)), nil
	}
	return 0, errNeitherTeNorQ("Li-Wu")
}

// SunMishima returns the two-phase saturated boiling heat transfer
// coefficient of Sun and Mishima (2009), fit to mini-channel data of eleven
// fluids. Exactly one of te and q must be nonzero.
func SunMishima(m, d, rhol, rhog, mul, kl, hvap, sigma, te, q float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	v := gFlux / rhol
	relo := gFlux * d / mul
	we := v * v * d * rhol / sigma
	if q != 0 {
		bg := q / (gFlux * hvap)
		return 6 * math.Pow(relo, 1.05) * math.Pow(bg, 0.54) /
			(math.Pow(we, 0.191) * math.Pow(rhol/rhog, 0.142)) * kl / d, nil
	}
	if te != 0 {
		a := 6 * math.Pow(relo, 1.05) / (math.Pow(we, 0.191) * math.Pow(rhol/rhog, 0.142)) * kl / d
		return math.Pow(a, 50/23.) * math.Pow(te, 27/23.) / (math.Pow(gFlux, 27/23.) * math.Pow(hvap, 27/23.)), nil
	}
	return 0, errNeitherTeNorQ("Sun-Mishima")
}

// ThomeFlow holds the fluid state the three-zone Thome flow boiling model
// draws on. Exactly one of Te and Q must be nonzero; the Te form solves the
// heat flux iteratively from q = h(q) * Te.
type ThomeFlow struct {
	M     float64 // mass flow rate, [kg/s]
	X     float64 // vapor quality, [-]
	D     float64 // tube inner diameter, [m]
	Rhol  float64 // liquid density, [kg/m^3]
	Rhog  float64 // vapor density, [kg/m^3]
	Mul   float64 // liquid viscosity, [Pa*s]
	Mug   float64 // vapor viscosity, [Pa*s]
	Kl    float64 // liquid thermal conductivity, [W/m/K]
	Kg    float64 // vapor thermal conductivity, [W/m/K]
	Cpl   float64 // liquid heat capacity, [J/kg/K]
	Cpg   float64 // vapor heat capacity, [J/kg/K]
	Hvap  float64 // heat of vaporization, [J/kg]
	Sigma float64 // surface tension, [N/m]
	Psat  float64 // saturation pressure, [Pa]
	Pc    float64 // critical pressure, [Pa]
	Te    float64 // excess wall temperature, [K]
	Q     float64 // heat flux, [W/m^2]
}

// Thome returns the two-phase saturated boiling heat transfer coefficient by
// the three-zone transient model of Thome, Dupont and Jacobi (2004) for
// evaporation in microchannels, cycling a liquid slug, an evaporating
// elongated bubble film and a vapor slug past the wall.
func Thome(f ThomeFlow) (float64, error) {
	if f.Q == 0 && f.Te == 0 {
		return 0, errNeitherTeNorQ("Thome")
	}
	if f.Q == 0 {
		q, err := numerics.Secant(func(q float64) float64 {
			return q/thomeQ(f, q) - f.Te
		}, 1e4, 1e-7, 100)
		if err != nil {
			return 0, fmt.Errorf("Thome heat flux iteration: %w", err)
		}
		return thomeQ(f, q), nil
	}
	return thomeQ(f, f.Q), nil
}

func thomeQ(f ThomeFlow, q float64) float64 {
	const cDelta0 = 0.3e-6
	gFlux := f.M / (math.Pi / 4 * f.D * f.D)
	rel := gFlux * f.D * (1 - f.X) / f.Mul
	reg := gFlux * f.D * f.X / f.Mug
	qref := 3328 * math.Pow(f.Psat/f.Pc, -0.5)
	fopt := math.Pow(q/qref, 1.74)
	tau := 1 / fopt
	vp := gFlux * (f.X/f.Rhog + (1-f.X)/f.Rhol)
	// confinement number built on the pair velocity, not the standard Bond
	bo := f.Rhol * f.D / f.Sigma * vp * vp
	nul := f.Mul / f.Rhol
	delta0 := f.D * 0.29 * math.Pow(3*math.Sqrt(nul/vp/f.D), 0.84) *
		math.Pow(math.Pow(0.07*math.Pow(bo, 0.41), -8)+math.Pow(0.1, -8), -1/8.)
	tl := tau / (1 + f.Rhol/f.Rhog*(f.X/(1-f.X)))
	tv := tau / (1 + f.Rhog/f.Rhol*((1-f.X)/f.X))
	tDryFilm := f.Rhol * f.Hvap / q * (delta0 - cDelta0)
	var tFilm, tDry float64
	if tDryFilm > tv {
		tFilm = tv
		tDry = 0
	} else {
		tFilm = tDryFilm
		tDry = tv - tFilm
	}
	ll := tau * gFlux / f.Rhol * (1 - f.X)
	lDry := tDry * vp
	prg := f.Cpg * f.Mug / f.Kg
	prl := f.Cpl * f.Mul / f.Kl
	fg := math.Pow(1.82*math.Log10(reg)-1.64, -2)
	fl := math.Pow(1.82*math.Log10(rel)-1.64, -2)
	nuLamZl := 2 * 0.455 * math.Cbrt(prl) * math.Sqrt(f.D*rel/ll)
	nuTransZl := convection.TurbulentGnielinski(rel, prl, fl) * (1 + math.Pow(f.D/ll, 2/3.))
	var nuLamZg, nuTransZg float64
	if lDry != 0 {
		nuLamZg = 2 * 0.455 * math.Cbrt(prg) * math.Sqrt(f.D*reg/lDry)
		nuTransZg = convection.TurbulentGnielinski(reg, prg, fg) * (1 + math.Pow(f.D/lDry, 2/3.))
	}
	hZg := f.Kg / f.D * math.Pow(math.Pow(nuLamZg, 4)+math.Pow(nuTransZg, 4), 0.25)
	hZl := f.Kl / f.D * math.Pow(math.Pow(nuLamZl, 4)+math.Pow(nuTransZl, 4), 0.25)
	hFilm := 2 * f.Kl / (delta0 + cDelta0)
	return tl/tau*hZl + tFilm/tau*hFilm + tDry/tau*hZg
}

// YunHeoKim returns the two-phase saturated boiling heat transfer
// coefficient of Yun, Heo and Kim (2006) for carbon dioxide in horizontal
// tubes. Exactly one of te and q must be nonzero.
func YunHeoKim(m, x, d, rhol, mul, hvap, sigma, te, q float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	v := gFlux / rhol
	rel := gFlux * d * (1 - x) / mul
	we := v * v * d * rhol / sigma
	if q != 0 {
		bg := q / (gFlux * hvap)
		return 136876 * math.Pow(bg*we, 0.1993) * math.Pow(rel, -0.1626), nil
	}
	if te != 0 {
		a := 136876 * math.Pow(we, 0.1993) * math.Pow(rel, -0.1626) * math.Pow(te/gFlux/hvap, 0.1993)
		return math.Pow(a, 10000/8007.), nil
	}
	return 0, errNeitherTeNorQ("Yun-Heo-Kim")
}

// ChenEdelstein returns the two-phase saturated boiling heat transfer
// coefficient by the Chen (1966) model with the Edelstein enhancement and
// suppression curve fits, superposing a Dittus-Boelter convective term and a
// suppressed Forster-Zuber nucleate term. te is the excess wall temperature
// and dPsat the saturation pressure difference it produces.
func ChenEdelstein(m, x, d, rhol, rhog, mul, mug, kl, cpl, hvap, sigma, dPsat, te float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	rel := d * gFlux * (1 - x) / mul
	prl := cpl * mul / kl
	hl := convection.TurbulentDittusBoelter(rel, prl, true, true) * kl / d
	xtt := lockhartMartinelliXtt(x, rhol, rhog, mul, mug)
	enhancement := math.Pow(1+math.Pow(xtt, -0.5), 1.78)
	re := rel * math.Pow(enhancement, 1.25)
	suppression := 0.9622 - 0.5822*math.Atan(re/6.18e4)
	hnb, err := ForsterZuber(rhol, rhog, mul, kl, cpl, hvap, sigma, dPsat, te, 0)
	if err != nil {
		return 0, err
	}
	return hnb*suppression + hl*enhancement, nil
}

// ChenBennett returns the two-phase saturated boiling heat transfer
// coefficient by the Chen (1966) model with the Bennett and Chen (1980)
// enhancement and suppression terms.
func ChenBennett(m, x, d, rhol, rhog, mul, mug, kl, cpl, hvap, sigma, dPsat, te float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	rel := d * gFlux * (1 - x) / mul
	prl := cpl * mul / kl
	hl := convection.TurbulentDittusBoelter(rel, prl, true, true) * kl / d
	xtt := lockhartMartinelliXtt(x, rhol, rhog, mul, mug)
	enhancement := math.Pow((prl+1)/2, 0.444) * math.Pow(1+math.Pow(xtt, -0.5), 1.78)
	x0 := 0.041 * math.Sqrt(sigma/(g*(rhol-rhog)))
	arg := enhancement * hl * x0 / kl
	suppression := (1 - math.Exp(-arg)) / arg
	hnb, err := ForsterZuber(rhol, rhog, mul, kl, cpl, hvap, sigma, dPsat, te, 0)
	if err != nil {
		return 0, err
	}
	return hnb*suppression + hl*enhancement, nil
}

// LiuWinterton returns the two-phase saturated boiling heat transfer
// coefficient by the Liu and Winterton (1991) correlation, combining an
// enhanced Dittus-Boelter convective term with a suppressed Cooper nucleate
// term in quadrature. te is the excess wall temperature.
func LiuWinterton(m, x, d, rhol, rhog, mul, kl, cpl, mw, p, pc, te float64) (float64, error) {
	gFlux := m / (math.Pi / 4 * d * d)
	reL := d * gFlux / mul
	prl := cpl * mul / kl
	hl := convection.TurbulentDittusBoelter(reL, prl, true, true) * kl / d
	enhancement := math.Pow(1+x*prl*(rhol/rhog-1), 0.35)
	suppression := 1 / (1 + 0.055*math.Pow(enhancement, 0.1)*math.Pow(reL, 0.16))
	hnb, err := Cooper(p, pc, mw, te, 0, 0)
	if err != nil {
		return 0, err
	}
	fhl := enhancement * hl
	shnb := suppression * hnb
	return math.Sqrt(fhl*fhl + shnb*shnb), nil
}
