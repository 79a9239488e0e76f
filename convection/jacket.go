package convection

import (
	"fmt"
	"math"
)

const g = 9.80665 // standard gravity, [m/s^2]

// Inlet nozzle orientations of an agitated vessel jacket.
const (
	JacketInletTangential = "tangential"
	JacketInletRadial     = "radial"
)

// Inlet nozzle positions on the jacket. The auto position assumes the inlet
// was placed to aid the natural circulation of the jacket fluid.
const (
	JacketLocationAuto   = "auto"
	JacketLocationTop    = "top"
	JacketLocationBottom = "bottom"
)

// Jacket describes an annular heat transfer jacket on a vessel and the fluid
// circulating through it. Optional fields are zero when unknown: Muw enables
// the viscosity wall correction, Rhow (Stein-Schmidt) and
// IsobaricExpansion/DT (Lehrer) enable the buoyancy term.
type Jacket struct {
	M       float64 // jacket fluid mass flow rate, [kg/s]
	Dtank   float64 // tank outer diameter, [m]
	Djacket float64 // jacket inner diameter, [m]
	H       float64 // jacket height, [m]
	Dinlet  float64 // inlet nozzle diameter, [m]
	Rho     float64 // jacket fluid density, [kg/m^3]
	Cp      float64 // jacket fluid heat capacity, [J/kg/K]
	K       float64 // jacket fluid thermal conductivity, [W/m/K]
	Mu      float64 // jacket fluid viscosity, [Pa*s]
	Muw     float64 // viscosity at the wall temperature, [Pa*s]
	Rhow    float64 // density at the wall temperature, [kg/m^3]

	IsobaricExpansion float64 // fluid isobaric expansion coefficient, [1/K]
	DT                float64 // temperature change of the jacket fluid, [K]

	InletType     string  // tangential (default) or radial
	InletLocation string  // auto (default), top or bottom
	Roughness     float64 // jacket wall roughness, [m]
}

// HJacketLehrer returns the heat transfer coefficient inside an annular
// jacket without spiral baffles, after Lehrer (1970). The buoyancy correction
// applies only for radial inlets with the expansion coefficient and
// temperature change known.
func HJacketLehrer(j Jacket) float64 {
	delta := (j.Djacket - j.Dtank) / 2.
	q := j.M / j.Rho
	pr := j.Cp * j.Mu / j.K
	vs := q / j.H / delta
	vo := q / (math.Pi / 4 * j.Dinlet * j.Dinlet)

	va := 0.0
	if j.DT != 0 && j.IsobaricExpansion != 0 && j.InletType == JacketInletRadial && j.InletLocation != "" {
		mag := 0.5 * math.Sqrt(2*g*j.H*j.IsobaricExpansion*math.Abs(j.DT))
		loc := j.InletLocation
		if j.DT > 0 {
			if loc == JacketLocationAuto || loc == JacketLocationBottom {
				va = mag
			} else {
				va = -mag
			}
		} else {
			if loc == JacketLocationAuto || loc == JacketLocationTop {
				va = mag
			} else {
				va = -mag
			}
		}
	}
	vh := math.Sqrt(vs*vo) + va
	dg := math.Sqrt(8/3.) * delta
	res := vh * dg * j.Rho / j.Mu
	nu := (0.03 * math.Pow(res, 0.75) * pr) / (1 + 1.74*(pr-1)/math.Pow(res, 0.125))
	if j.Muw != 0 {
		nu *= math.Pow(j.Mu/j.Muw, 0.14)
	}
	return nu * j.K / dg
}

// HJacketSteinSchmidt returns the heat transfer coefficient inside an
// annular jacket without spiral baffles, after Stein and Schmidt (1986), the
// recommended method for conventional jackets. The characteristic velocity
// follows the inlet type; the buoyancy correction applies when the wall
// density is known.
func HJacketSteinSchmidt(j Jacket) (float64, error) {
	delta := (j.Djacket - j.Dtank) / 2.
	q := j.M / j.Rho
	pr := j.Cp * j.Mu / j.K
	lch := math.Sqrt(math.Pi*math.Pi/4*j.Dtank*j.Dtank + j.H*j.H)
	dch := 2 * delta

	inlet := j.InletType
	if inlet == "" {
		inlet = JacketInletTangential
	}
	var reJ float64
	switch inlet {
	case JacketInletRadial:
		bEin := math.Pi / 8 * j.Dinlet * j.Dinlet / delta
		bMit := math.Pi / 2 * j.Dtank * math.Sqrt(1+math.Pi*math.Pi/4*j.Dtank*j.Dtank/(j.H*j.H))
		vMit := q / (2 * delta * bMit)
		vch := vMit * math.Log(bMit/bEin) / (1 - bEin/bMit)
		reJ = vch * dch * j.Rho / j.Mu
	case JacketInletTangential:
		f := FrictionFactor(1e5, j.Roughness/dch)
		for run := 0; run < 5; run++ {
			vinlet := q / (math.Pi / 4 * j.Dinlet * j.Dinlet)
			vz := q / (math.Pi * j.Dtank * delta)
			k4 := j.Dinlet * j.Dinlet * vinlet * vinlet / (2 * f * j.Dtank * j.H)
			k3 := vinlet/4. - j.Dinlet*j.Dinlet*vinlet/(4*f*j.Dtank*j.H)
			vx0 := k3 + math.Sqrt(k3*k3+k4)
			vx := vinlet * math.Log(1+f*j.Dtank*j.H/(j.Dinlet*j.Dinlet)*vx0/vinlet) /
				(f * j.Dtank * j.H / (j.Dinlet * j.Dinlet))
			vch := math.Sqrt(vx*vx + vz*vz)
			reJ = vch * dch * j.Rho / j.Mu
			f = FrictionFactor(reJ, j.Roughness/dch)
		}
	default:
		return 0, fmt.Errorf("unknown jacket inlet type %q: valid types are %v", inlet,
			[]string{JacketInletTangential, JacketInletRadial})
	}

	reJeq := reJ
	if j.InletLocation != "" && j.Rhow != 0 {
		grJ := g * j.Rho * (j.Rho - j.Rhow) * dch * dch * dch / (j.Mu * j.Mu)
		loc := j.InletLocation
		aided := false
		if j.Rhow < j.Rho {
			aided = loc == JacketLocationAuto || loc == JacketLocationBottom
		} else {
			aided = loc == JacketLocationAuto || loc == JacketLocationTop
		}
		if aided {
			reJeq = math.Sqrt(reJ*reJ + grJ*j.H/dch/50.)
		} else {
			reJeq = math.Sqrt(reJ*reJ - grJ*j.H/dch/50.)
		}
	}

	nuA := 3.66
	nuB := 1.62 * math.Cbrt(pr) * math.Cbrt(reJeq) * math.Cbrt(dch/lch)
	nuC := 0.664 * math.Cbrt(pr) * math.Sqrt(reJeq*dch/lch)
	nuD := 0.0
	if reJeq >= 2300 {
		nuD = 0.0115 * math.Cbrt(pr) * math.Pow(reJeq, 0.9) *
			(1 - math.Pow(2300./reJeq, 2.5)) * (1 + math.Pow(dch/lch, 2/3.))
	}
	nu := math.Cbrt(nuA*nuA*nuA + nuB*nuB*nuB + nuC*nuC*nuC + nuD*nuD*nuD)
	if j.Muw != 0 {
		nu *= math.Pow(j.Mu/j.Muw, 0.14)
	}
	return nu * j.K / dch, nil
}
