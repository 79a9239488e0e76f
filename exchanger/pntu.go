package exchanger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/integrate/quad"
)

// Basic flow configuration names accepted by TemperatureEffectivenessBasic
// and NTUFromPBasic. The mixed crossflow variants name which side is mixed;
// they are not symmetric in the two streams.
var BasicPNTUSubtypes = []string{
	"counterflow", "parallel", "crossflow", "crossflow approximate",
	"crossflow, mixed 1", "crossflow, mixed 2", "crossflow, mixed 1&2",
}

// Pp is the purely parallel stream interaction term of the plate exchanger
// solutions, the temperature effectiveness of a single cocurrent pass at
// units x and ratio y.
func Pp(x, y float64) float64 {
	if y == -1.0 {
		return x
	}
	return (1. - math.Exp(-x*(1.+y))) / (1. + y)
}

// Pc is the purely countercurrent stream interaction term of the plate
// exchanger solutions, the temperature effectiveness of a single
// countercurrent pass at units x and ratio y.
func Pc(x, y float64) float64 {
	term := math.Exp(-x * (1. - y))
	if 1.-y*term == 0.0 {
		return x / (1. + x)
	}
	return (1. - term) / (1. - y*term)
}

// TemperatureEffectivenessBasic returns the temperature effectiveness P1 of
// stream 1 for the basic flow configurations, from the stream 1 heat
// capacity ratio R1 and transfer units NTU1. "crossflow" is the exact
// both-unmixed solution; the approximate form can differ from it by over a
// percent.
func TemperatureEffectivenessBasic(r1, ntu1 float64, subtype string) (float64, error) {
	switch subtype {
	case "counterflow":
		return (1. - math.Exp(-ntu1*(1.-r1))) / (1. - r1*math.Exp(-ntu1*(1.-r1))), nil
	case "parallel":
		return (1. - math.Exp(-ntu1*(1.+r1))) / (1. + r1), nil
	case "crossflow approximate":
		return 1. - math.Exp(math.Pow(ntu1, 0.22)/r1*(math.Exp(-r1*math.Pow(ntu1, 0.78))-1.)), nil
	case "crossflow":
		t0 := 1. / (4. * r1 * ntu1)
		intTerm := quad.Fixed(func(v float64) float64 {
			return crossflowIntegrand(v, ntu1, t0)
		}, 0, 2.*ntu1*math.Sqrt(r1), 100, nil, 0)
		return 1./r1 - math.Exp(-r1*ntu1)/(2.*r1*r1*ntu1*ntu1)*intTerm, nil
	case "crossflow, mixed 1":
		k := 1. - math.Exp(-r1*ntu1)
		return 1. - math.Exp(-k/r1), nil
	case "crossflow, mixed 2":
		k := 1. - math.Exp(-ntu1)
		return (1. - math.Exp(-k*r1)) / r1, nil
	case "crossflow, mixed 1&2":
		k1 := 1. - math.Exp(-ntu1)
		k2 := 1. - math.Exp(-r1*ntu1)
		return 1. / (1./k1 + r1/k2 - 1./ntu1), nil
	}
	return 0, fmt.Errorf("unknown basic subtype %q: valid subtypes are %v", subtype, BasicPNTUSubtypes)
}

// PNTUSpec is a rating or sizing request for the P-NTU method. Stream 1 is
// the shell side and stream 2 the tube side. A zero temperature or UA field
// means the value is unknown: with UA set, any two temperatures resolve the
// rest; with UA unset, three temperatures size the exchanger. Subtype names
// a basic configuration, a TEMA shell ("E", "G", "H", "J" with Ntp tube
// passes), or a plate arrangement such as "2/2", "3/1c" or "2/4p" where the
// trailing letter forces counterflow or parallelflow passes. Optimal selects
// the countercurrent arrangement of multipass configurations; set
// OptimalGiven to force the cocurrent one.
type PNTUSpec struct {
	M1      float64 // stream 1 mass flow, [kg/s]
	M2      float64 // stream 2 mass flow, [kg/s]
	Cp1     float64 // stream 1 heat capacity, [J/kg/K]
	Cp2     float64 // stream 2 heat capacity, [J/kg/K]
	Subtype string  // flow configuration
	Ntp     int     // TEMA tube pass count, defaults to 1
	T1i     float64 // stream 1 inlet temperature, [K]
	T1o     float64 // stream 1 outlet temperature, [K]
	T2i     float64 // stream 2 inlet temperature, [K]
	T2o     float64 // stream 2 outlet temperature, [K]
	UA      float64 // coefficient-area product, [W/K]

	// NonOptimal selects the less thermally effective orientation of the
	// multipass TEMA and plate configurations.
	NonOptimal bool
}

// PNTUResults is the fully resolved state of an exchanger from the P-NTU
// method, symmetric in both streams.
type PNTUResults struct {
	Q    float64 // heat duty, [W]
	UA   float64 // coefficient-area product, [W/K]
	C1   float64 // stream 1 heat capacity rate, [W/K]
	C2   float64 // stream 2 heat capacity rate, [W/K]
	R1   float64 // heat capacity ratio C1/C2, [-]
	R2   float64 // heat capacity ratio C2/C1, [-]
	P1   float64 // stream 1 temperature effectiveness, [-]
	P2   float64 // stream 2 temperature effectiveness, [-]
	NTU1 float64 // transfer units on the stream 1 basis, [-]
	NTU2 float64 // transfer units on the stream 2 basis, [-]
	T1i  float64 // stream 1 inlet temperature, [K]
	T1o  float64 // stream 1 outlet temperature, [K]
	T2i  float64 // stream 2 inlet temperature, [K]
	T2o  float64 // stream 2 outlet temperature, [K]
}

// parsePlateSubtype splits an "Np1/Np2[c|p]" plate arrangement code into its
// pass counts and the optional pass orientation override.
func parsePlateSubtype(subtype string) (np1, np2 int, passesCounterflow bool, err error) {
	passesCounterflow = true
	left, right, _ := strings.Cut(subtype, "/")
	if right == "" {
		return 0, 0, false, fmt.Errorf("plate subtype %q: pass counts must be integers", subtype)
	}
	if last := right[len(right)-1]; last == 'c' || last == 'p' {
		passesCounterflow = last == 'c'
		right = right[:len(right)-1]
	}
	np1, err = strconv.Atoi(left)
	if err == nil {
		np2, err = strconv.Atoi(right)
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("plate subtype %q: pass counts must be integers", subtype)
	}
	return np1, np2, passesCounterflow, nil
}

func pntuSubtypeErr(subtype string) error {
	return fmt.Errorf("unknown subtype %q: valid subtypes are 'E', 'G', 'H', 'J', "+
		"'counterflow', 'parallel', 'crossflow', 'crossflow, mixed 1', "+
		"'crossflow, mixed 2', 'crossflow, mixed 1&2', or 'Np1/Np2' for plate exchangers", subtype)
}

func pntuEffectiveness(spec PNTUSpec, r1, ntu1 float64) (float64, error) {
	optimal := !spec.NonOptimal
	ntp := spec.Ntp
	if ntp == 0 {
		ntp = 1
	}
	switch spec.Subtype {
	case "counterflow", "parallel", "crossflow", "crossflow, mixed 1",
		"crossflow, mixed 2", "crossflow, mixed 1&2":
		return TemperatureEffectivenessBasic(r1, ntu1, spec.Subtype)
	case "E":
		return TemperatureEffectivenessTEMAE(r1, ntu1, ntp, optimal)
	case "G":
		return TemperatureEffectivenessTEMAG(r1, ntu1, ntp, optimal)
	case "H":
		return TemperatureEffectivenessTEMAH(r1, ntu1, ntp, optimal)
	case "J":
		return TemperatureEffectivenessTEMAJ(r1, ntu1, ntp)
	}
	if strings.Contains(spec.Subtype, "/") {
		np1, np2, passesCounterflow, err := parsePlateSubtype(spec.Subtype)
		if err != nil {
			return 0, err
		}
		return TemperatureEffectivenessPlate(r1, ntu1, np1, np2, optimal, passesCounterflow)
	}
	return 0, pntuSubtypeErr(spec.Subtype)
}

func pntuUnits(spec PNTUSpec, p1, r1 float64) (float64, error) {
	optimal := !spec.NonOptimal
	ntp := spec.Ntp
	if ntp == 0 {
		ntp = 1
	}
	switch spec.Subtype {
	case "counterflow", "parallel", "crossflow", "crossflow, mixed 1",
		"crossflow, mixed 2", "crossflow, mixed 1&2":
		return NTUFromPBasic(p1, r1, spec.Subtype)
	case "E":
		return NTUFromPE(p1, r1, ntp, optimal)
	case "G":
		return NTUFromPG(p1, r1, ntp, optimal)
	case "H":
		return NTUFromPH(p1, r1, ntp, optimal)
	case "J":
		return NTUFromPJ(p1, r1, ntp)
	}
	if strings.Contains(spec.Subtype, "/") {
		np1, np2, passesCounterflow, err := parsePlateSubtype(spec.Subtype)
		if err != nil {
			return 0, err
		}
		return NTUFromPPlate(p1, r1, np1, np2, optimal, passesCounterflow)
	}
	return 0, pntuSubtypeErr(spec.Subtype)
}

// PNTUMethod solves an exchanger with the P-NTU temperature effectiveness
// method. With UA given it rates the exchanger, resolving the duty and the
// missing terminal temperatures from any two given temperatures; without UA
// it sizes one from three given temperatures, inverting the configuration's
// effectiveness relation, and checks the two-sided heat balance to 1% when
// all four temperatures are supplied.
func PNTUMethod(spec PNTUSpec) (PNTUResults, error) {
	c1 := spec.M1 * spec.Cp1
	c2 := spec.M2 * spec.Cp2
	r1 := c1 / c2
	t1i, t1o, t2i, t2o := spec.T1i, spec.T1o, spec.T2i, spec.T2o

	res := PNTUResults{C1: c1, C2: c2, R1: r1, R2: c2 / c1}
	var p1, ntu1, ua float64
	if spec.UA != 0 {
		ua = spec.UA
		ntu1 = ua / c1
		var err error
		p1, err = pntuEffectiveness(spec, r1, ntu1)
		if err != nil {
			return res, err
		}
		// Temperature pair resolution, derived symbolically from the
		// defining relations of P1 and R1.
		switch {
		case t1i != 0 && t2i != 0:
			t2o = p1*r1*t1i - p1*r1*t2i + t2i
			t1o = -p1*t1i + p1*t2i + t1i
		case t1o != 0 && t2o != 0:
			t2i = (p1*r1*t1o + p1*t2o - t2o) / (p1*r1 + p1 - 1.)
			t1i = (p1*r1*t1o + p1*t2o - t1o) / (p1*r1 + p1 - 1.)
		case t1o != 0 && t2i != 0:
			t2o = (r1*(p1*t2i-t1o) - (p1-1.)*(r1*t1o-t2i)) / (p1 - 1.)
			t1i = (p1*t2i - t1o) / (p1 - 1.)
		case t1i != 0 && t2o != 0:
			t1o = (p1*r1*t1i + p1*t1i - p1*t2o - t1i) / (p1*r1 - 1.)
			t2i = (p1*r1*t1i - t2o) / (p1*r1 - 1.)
		case t2i != 0 && t2o != 0:
			t1o = (p1*r1*t2i + (p1-1.)*(t2i-t2o)) / (p1 * r1)
			t1i = (p1*r1*t2i - t2i + t2o) / (p1 * r1)
		case t1i != 0 && t1o != 0:
			t2o = (p1*r1*(t1i-t1o) + p1*t1i - t1i + t1o) / p1
			t2i = (p1*t1i - t1i + t1o) / p1
		default:
			return res, fmt.Errorf("two temperatures are required along with UA")
		}
	} else {
		// Solving for UA: three temperatures pin down the duty.
		var q float64
		switch {
		case t1i != 0 && t1o != 0:
			q = c1 * (t1i - t1o)
			switch {
			case t2i != 0 && t2o == 0:
				t2o = t2i + q/c2
			case t2o != 0 && t2i == 0:
				t2i = t2o - q/c2
			case t2o != 0 && t2i != 0:
				q2 := c2 * (t2o - t2i)
				if math.Abs((q-q2)/q) > 0.01 {
					return res, fmt.Errorf("the specified heat capacities, mass flows and temperatures are inconsistent")
				}
			default:
				return res, fmt.Errorf("at least one stream 2 temperature is required")
			}
		case t2i != 0 && t2o != 0:
			q = c2 * (t2o - t2i)
			switch {
			case t1i != 0 && t1o == 0:
				t1o = t1i - q/c1
			case t1o != 0 && t1i == 0:
				t1i = t1o + q/c1
			default:
				return res, fmt.Errorf("at least one stream 1 temperature is required")
			}
		default:
			return res, fmt.Errorf("three temperatures are required when solving for UA")
		}
		p1 = q / (c1 * math.Abs(t2i-t1i))
		var err error
		ntu1, err = pntuUnits(spec, p1, r1)
		if err != nil {
			return res, err
		}
		ua = ntu1 * c1
	}

	res.Q = math.Abs(t1i-t2i) * p1 * c1
	res.UA = ua
	res.P1, res.P2 = p1, p1*r1
	res.NTU1, res.NTU2 = ntu1, ua/c2
	res.T1i, res.T1o, res.T2i, res.T2o = t1i, t1o, t2i, t2o
	return res, nil
}
