package exchanger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/integrate/quad"

	"ht/internal/numerics"
)

// Effectiveness-NTU configuration names accepted by EffectivenessFromNTU and
// NTUFromEffectiveness. Shell-and-tube exchangers with multiple shell passes
// are named with a leading shell count, as in "2S&T".
var EffectivenessSubtypes = []string{
	"counterflow", "parallel", "S&T", "crossflow", "crossflow approximate",
	"crossflow, mixed Cmin", "crossflow, mixed Cmax", "boiler", "condenser",
}

func crossflowIntegrand(v, ntu, t0 float64) float64 {
	return (1. + ntu - v*v*t0) * math.Exp(-v*v*t0) * v * numerics.BesselI0(v)
}

// parseShells extracts the shell pass count from a subtype such as "2S&T";
// a bare "S&T" means one shell pass.
func parseShells(subtype string) (int, error) {
	prefix := strings.TrimSuffix(subtype, "S&T")
	if prefix == "" {
		return 1, nil
	}
	shells, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("shell and tube subtype %q: shell count %q is not an integer", subtype, prefix)
	}
	return shells, nil
}

// EffectivenessFromNTU returns the effectiveness of a heat exchanger from its
// number of transfer units NTU and heat capacity ratio cr for the given flow
// configuration. The "crossflow" subtype evaluates the exact integral
// solution for both fluids unmixed; "crossflow approximate" is the common
// explicit approximation of it. Boilers and condensers ignore cr.
func EffectivenessFromNTU(ntu, cr float64, subtype string) (float64, error) {
	if cr > 1 {
		return 0, fmt.Errorf("heat capacity ratio is %g, must not exceed 1", cr)
	}
	switch {
	case subtype == "counterflow":
		if cr < 1 {
			return (1. - math.Exp(-ntu*(1.-cr))) / (1. - cr*math.Exp(-ntu*(1.-cr))), nil
		}
		return ntu / (1. + ntu), nil
	case subtype == "parallel":
		return (1. - math.Exp(-ntu*(1.+cr))) / (1. + cr), nil
	case strings.HasSuffix(subtype, "S&T"):
		shells, err := parseShells(subtype)
		if err != nil {
			return 0, err
		}
		ntu /= float64(shells)
		x0 := math.Sqrt(1. + cr*cr)
		x1 := math.Exp(-ntu * x0)
		eff := 2. / (1. + cr + x0*(1.+x1)/(1.-x1))
		if shells > 1 {
			// Applies to crossflow in series as well, per Domingos'
			// analysis of exchanger assemblies.
			term := math.Pow((1.-eff*cr)/(1.-eff), float64(shells))
			eff = (term - 1.) / (term - cr)
		}
		return eff, nil
	case subtype == "crossflow":
		t0 := 1. / (4. * cr * ntu)
		intTerm := quad.Fixed(func(v float64) float64 {
			return crossflowIntegrand(v, ntu, t0)
		}, 0, 2.*ntu*math.Sqrt(cr), 100, nil, 0)
		return 1./cr - math.Exp(-cr*ntu)/(2.*cr*cr*ntu*ntu)*intTerm, nil
	case subtype == "crossflow approximate":
		return 1. - math.Exp(1./cr*math.Pow(ntu, 0.22)*(math.Exp(-cr*math.Pow(ntu, 0.78))-1.)), nil
	case subtype == "crossflow, mixed Cmin":
		return 1. - math.Exp(-1./cr*(1.-math.Exp(-cr*ntu))), nil
	case subtype == "crossflow, mixed Cmax":
		return 1. / cr * (1. - math.Exp(-cr*(1.-math.Exp(-ntu)))), nil
	case subtype == "boiler", subtype == "condenser":
		return 1. - math.Exp(-ntu), nil
	}
	return 0, fmt.Errorf("unknown exchanger subtype %q: valid subtypes are %v", subtype, EffectivenessSubtypes)
}

// NTUFromEffectiveness returns the number of transfer units needed to reach
// an effectiveness in the given flow configuration, the inverse of
// EffectivenessFromNTU. Configurations with an effectiveness ceiling below
// one return an error naming the achievable maximum when asked to exceed it.
func NTUFromEffectiveness(eff, cr float64, subtype string) (float64, error) {
	if cr > 1 {
		return 0, fmt.Errorf("heat capacity ratio is %g, must not exceed 1", cr)
	}
	switch {
	case subtype == "counterflow":
		if cr < 1 {
			return 1. / (cr - 1.) * math.Log((eff-1.)/(eff*cr-1.)), nil
		}
		return eff / (1. - eff), nil
	case subtype == "parallel":
		if eff*(1.+cr) > 1 {
			return 0, maxEffectivenessErr(1. / (cr + 1.))
		}
		return -math.Log(1.-eff*(1.+cr)) / (1. + cr), nil
	case strings.HasSuffix(subtype, "S&T"):
		shells, err := parseShells(subtype)
		if err != nil {
			return 0, err
		}
		n := float64(shells)
		f := math.Pow((eff*cr-1.)/(eff-1.), 1./n)
		e1 := (f - 1.) / (f - cr)
		e := (2./e1 - (1. + cr)) / math.Sqrt(1.+cr*cr)
		if (e-1.)/(e+1.) <= 0 {
			x := math.Sqrt(cr*cr + 1.)
			term := math.Pow((-cr+x+1.)/(cr+x-1.), n)
			return 0, maxEffectivenessErr((1. - term) / (cr - term))
		}
		ntu := -math.Log((e-1.)/(e+1.)) / math.Sqrt(1.+cr*cr)
		return n * ntu, nil
	case subtype == "crossflow":
		// A bracketing solver stalls here: at high NTU the integral term
		// is flat near one. Seed a secant from the explicit approximation.
		guess, err := NTUFromEffectiveness(eff, cr, "crossflow approximate")
		if err != nil {
			return 0, err
		}
		ntu, err := numerics.Secant(func(ntu float64) float64 {
			p, _ := EffectivenessFromNTU(ntu, cr, "crossflow")
			return p - eff
		}, guess, solverSettings.Tolerance, solverSettings.MaxIterations)
		if err != nil {
			return 0, fmt.Errorf("crossflow NTU iteration: %w", err)
		}
		return ntu, nil
	case subtype == "crossflow approximate":
		// Monotonic in NTU; no analytical inverse exists.
		ntu, err := numerics.Brent(func(ntu float64) float64 {
			return 1. - math.Exp(1./cr*math.Pow(ntu, 0.22)*(math.Exp(-cr*math.Pow(ntu, 0.78))-1.)) - eff
		}, 1e-7, 1e5, solverSettings.Tolerance, solverSettings.MaxIterations)
		if err != nil {
			return 0, fmt.Errorf("approximate crossflow NTU solve: %w", err)
		}
		return ntu, nil
	case subtype == "crossflow, mixed Cmin":
		if cr*math.Log(1.-eff) < -1 {
			return 0, maxEffectivenessErr(1. - math.Exp(-1./cr))
		}
		return -1. / cr * math.Log(cr*math.Log(1.-eff)+1.), nil
	case subtype == "crossflow, mixed Cmax":
		if 1./cr*math.Log(1.-eff*cr) < -1 {
			return 0, maxEffectivenessErr((math.Exp(cr) - 1.) * math.Exp(-cr) / cr)
		}
		return -math.Log(1. + 1./cr*math.Log(1.-eff*cr)), nil
	case subtype == "boiler", subtype == "condenser":
		return -math.Log(1. - eff), nil
	}
	return 0, fmt.Errorf("unknown exchanger subtype %q: valid subtypes are %v", subtype, EffectivenessSubtypes)
}

func maxEffectivenessErr(max float64) error {
	return fmt.Errorf("the specified effectiveness is not physically possible for this configuration; the maximum effectiveness possible is %v", max)
}

// CalcCmin returns the lower of the two heat capacity rates of an exchanger
// from the mass flows and heat capacities of the hot and cold streams.
func CalcCmin(mh, mc, cph, cpc float64) float64 {
	return math.Min(mh*cph, mc*cpc)
}

// CalcCmax returns the higher of the two heat capacity rates of an exchanger.
func CalcCmax(mh, mc, cph, cpc float64) float64 {
	return math.Max(mh*cph, mc*cpc)
}

// CalcCr returns the heat capacity rate ratio Cmin/Cmax, always between 0
// and 1.
func CalcCr(mh, mc, cph, cpc float64) float64 {
	return CalcCmin(mh, mc, cph, cpc) / CalcCmax(mh, mc, cph, cpc)
}

// NTUFromUA converts a coefficient-area product to a number of transfer
// units on the Cmin basis.
func NTUFromUA(ua, cmin float64) float64 {
	return ua / cmin
}

// UAFromNTU converts a number of transfer units on the Cmin basis to a
// coefficient-area product.
func UAFromNTU(ntu, cmin float64) float64 {
	return ntu * cmin
}

// EffectivenessNTUSpec is a rating or sizing request for the
// effectiveness-NTU method. Mass flows and heat capacities of both streams
// and a subtype are always required. A zero temperature or UA field means
// the value is unknown: with UA set, one cold-side and one hot-side
// temperature resolve the rest; with UA unset, three temperatures are needed
// to size the exchanger.
type EffectivenessNTUSpec struct {
	Mh      float64 // hot stream mass flow, [kg/s]
	Mc      float64 // cold stream mass flow, [kg/s]
	Cph     float64 // hot stream heat capacity, [J/kg/K]
	Cpc     float64 // cold stream heat capacity, [J/kg/K]
	Subtype string  // flow configuration, per EffectivenessSubtypes
	Thi     float64 // hot stream inlet temperature, [K]
	Tho     float64 // hot stream outlet temperature, [K]
	Tci     float64 // cold stream inlet temperature, [K]
	Tco     float64 // cold stream outlet temperature, [K]
	UA      float64 // coefficient-area product, [W/K]
}

// EffectivenessNTUResults is the fully resolved state of an exchanger from
// the effectiveness-NTU method: the duty, all four terminal temperatures,
// the capacity rates and the transfer units.
type EffectivenessNTUResults struct {
	Q             float64 // heat duty, [W]
	UA            float64 // coefficient-area product, [W/K]
	Cr            float64 // heat capacity rate ratio Cmin/Cmax, [-]
	Cmin          float64 // lower heat capacity rate, [W/K]
	Cmax          float64 // higher heat capacity rate, [W/K]
	Effectiveness float64 // fraction of the thermodynamic maximum duty, [-]
	NTU           float64 // number of transfer units on the Cmin basis, [-]
	Thi           float64 // hot stream inlet temperature, [K]
	Tho           float64 // hot stream outlet temperature, [K]
	Tci           float64 // cold stream inlet temperature, [K]
	Tco           float64 // cold stream outlet temperature, [K]
}

// EffectivenessNTUMethod solves an exchanger with the effectiveness-NTU
// method. With UA given it rates the exchanger, resolving the duty and the
// missing terminal temperatures from any hot-side/cold-side temperature
// pair; without UA it sizes one from three given temperatures, checking the
// two-sided heat balance to 1% when all four are supplied.
func EffectivenessNTUMethod(spec EffectivenessNTUSpec) (EffectivenessNTUResults, error) {
	cmin := CalcCmin(spec.Mh, spec.Mc, spec.Cph, spec.Cpc)
	cmax := CalcCmax(spec.Mh, spec.Mc, spec.Cph, spec.Cpc)
	cr := cmin / cmax
	cc := spec.Mc * spec.Cpc
	ch := spec.Mh * spec.Cph
	thi, tho, tci, tco := spec.Thi, spec.Tho, spec.Tci, spec.Tco

	res := EffectivenessNTUResults{Cr: cr, Cmin: cmin, Cmax: cmax}
	if spec.UA != 0 {
		ntu := NTUFromUA(spec.UA, cmin)
		eff, err := EffectivenessFromNTU(ntu, cr, spec.Subtype)
		if err != nil {
			return res, err
		}
		var q float64
		switch {
		case thi != 0 && tci != 0:
			q = eff * cmin * (thi - tci)
		case tho != 0 && tco != 0:
			q = eff * cmin * cc * ch * (tco - tho) / (eff*cmin*(cc+ch) - ch*cc)
		case thi != 0 && tco != 0:
			q = cmin * cc * eff * (tco - thi) / (eff*cmin - cc)
		case tho != 0 && tci != 0:
			q = cmin * ch * eff * (tci - tho) / (eff*cmin - ch)
		default:
			return res, fmt.Errorf("one pair of (Tci, Thi), (Tci, Tho), (Tco, Thi) or (Tco, Tho) is required along with UA")
		}
		if tci != 0 && tco == 0 {
			tco = tci + q/cc
		} else {
			tci = tco - q/cc
		}
		if thi != 0 && tho == 0 {
			tho = thi - q/ch
		} else {
			thi = tho + q/ch
		}
		res.Q, res.UA, res.Effectiveness, res.NTU = q, spec.UA, eff, ntu
		res.Thi, res.Tho, res.Tci, res.Tco = thi, tho, tci, tco
		return res, nil
	}

	// Solving for UA: three temperatures pin down the duty.
	var q float64
	switch {
	case thi != 0 && tho != 0:
		q = ch * (thi - tho)
		switch {
		case tci != 0 && tco == 0:
			tco = tci + q/cc
		case tco != 0 && tci == 0:
			tci = tco - q/cc
		case tco != 0 && tci != 0:
			q2 := cc * (tco - tci)
			if math.Abs((q-q2)/q) > 0.01 {
				return res, fmt.Errorf("the specified heat capacities, mass flows and temperatures are inconsistent")
			}
		default:
			return res, fmt.Errorf("at least one cold side temperature is required")
		}
	case tci != 0 && tco != 0:
		q = cc * (tco - tci)
		switch {
		case thi != 0 && tho == 0:
			tho = thi - q/ch
		case tho != 0 && thi == 0:
			thi = tho + q/ch
		default:
			return res, fmt.Errorf("at least one hot side temperature is required")
		}
	default:
		return res, fmt.Errorf("three temperatures are required when solving for UA")
	}
	eff := q / cmin / (thi - tci)
	ntu, err := NTUFromEffectiveness(eff, cr, spec.Subtype)
	if err != nil {
		return res, err
	}
	res.Q, res.UA, res.Effectiveness, res.NTU = q, UAFromNTU(ntu, cmin), eff, ntu
	res.Thi, res.Tho, res.Tci, res.Tco = thi, tho, tci, tco
	return res, nil
}

// FLMTDFakheri returns the log-mean temperature difference correction factor
// for a shell and tube exchanger with one or more shell passes and an even
// number of tube passes, by Fakheri's closed form. Inputs are the terminal
// temperatures of both streams and the shell pass count.
func FLMTDFakheri(thi, tho, tci, tco float64, shells int) float64 {
	n := float64(shells)
	r := (thi - tho) / (tco - tci)
	p := (tco - tci) / (thi - tci)
	if r == 1.0 {
		np := n * p
		w2 := (n - np) / (n - np + p)
		return math.Sqrt2 * (1. - w2) / w2 / math.Log((w2/(1.-w2)+1./math.Sqrt2)/(w2/(1.-w2)-1./math.Sqrt2))
	}
	w := math.Pow((1.-p*r)/(1.-p), 1./n)
	s := math.Sqrt(r*r+1.) / (r - 1.)
	return s * math.Log(w) / math.Log((1.+w-s+s*w)/(1.+w+s-s*w))
}
