package exchanger

import (
	"fmt"
	"math"
)

const (
	inch = 0.0254
	foot = 0.3048
)

// RValue is the conversion factor between the imperial insulation R-value
// unit ft^2*degF*hr/Btu and its SI equivalent m^2*K/W.
const RValue = foot * foot * (5. / 9.) * 3600. / 1055.05585262

// TEMA standard tubing, parallel by index: nominal pipe size in inches,
// outer diameter, gauge, wall thickness and inner diameter in meters.
var (
	temaTubingNPS = []float64{0.25, 0.25, 0.375, 0.375, 0.375, 0.5, 0.5, 0.625, 0.625, 0.625,
		0.75, 0.75, 0.75, 0.75, 0.75, 0.875, 0.875, 0.875, 0.875, 1, 1, 1, 1,
		1.25, 1.25, 1.25, 1.25, 2, 2}
	temaTubingDo = []float64{0.00635, 0.00635, 0.009525, 0.009525, 0.009525, 0.0127, 0.0127,
		0.015875, 0.015875, 0.015875, 0.01905, 0.01905, 0.01905, 0.01905, 0.01905,
		0.022225, 0.022225, 0.022225, 0.022225, 0.0254, 0.0254, 0.0254, 0.0254,
		0.03175, 0.03175, 0.03175, 0.03175, 0.0508, 0.0508}
	temaTubingBWG = []int{22, 24, 18, 20, 22, 18, 20, 16, 18, 20, 12, 14, 16, 18, 20,
		14, 16, 18, 20, 12, 14, 16, 18, 10, 12, 14, 16, 12, 14}
	temaTubingT = []float64{0.000711, 0.000559, 0.001245, 0.000889, 0.000711, 0.001245, 0.000889,
		0.001651, 0.001245, 0.000889, 0.002769, 0.002108, 0.001651, 0.001245, 0.000889,
		0.002108, 0.001651, 0.001245, 0.000889, 0.002769, 0.002108, 0.001651, 0.001245,
		0.003404, 0.002769, 0.002108, 0.001651, 0.002769, 0.002108}
	temaTubingDi = []float64{0.004928, 0.005232, 0.007035, 0.007747, 0.008103, 0.01021, 0.010922,
		0.012573, 0.013385, 0.014097, 0.013512, 0.014834, 0.015748, 0.01656, 0.017272,
		0.018009, 0.018923, 0.019735, 0.020447, 0.019862, 0.021184, 0.022098, 0.02291,
		0.024942, 0.026212, 0.027534, 0.028448, 0.045262, 0.046584}
)

// TEMATubing maps each TEMA nominal pipe size in inches to its listed
// Birmingham wire gauges, thickest first.
var TEMATubing = map[float64][]int{
	0.25:  {22, 24},
	0.375: {18, 20, 22},
	0.5:   {18, 20},
	0.625: {16, 18, 20},
	0.75:  {12, 14, 16, 18, 20},
	0.875: {14, 16, 18, 20},
	1:     {12, 14, 16, 18},
	1.25:  {10, 12, 14, 16},
	2:     {12, 14},
}

// Birmingham wire gauge wall thicknesses, gauges 1 through 36, in meters.
var (
	bwgGauges = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
		19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36}
	bwgThickness = []float64{0.008636, 0.007214, 0.006579, 0.006045, 0.005588, 0.005156,
		0.004572, 0.004191, 0.003759, 0.003404, 0.003048, 0.002769, 0.002413, 0.002108,
		0.001829, 0.001651, 0.001473, 0.001245, 0.001067, 0.000889, 0.000813, 0.000711,
		0.000635, 0.000559, 0.000508, 0.000457, 0.000406, 0.000356, 0.00033, 0.000305,
		0.000254, 0.000229, 0.000203, 0.000178, 0.000127, 0.000102}
)

func bwgToThickness(bwg int) (float64, error) {
	for i, g := range bwgGauges {
		if g == bwg {
			return bwgThickness[i], nil
		}
	}
	return 0, fmt.Errorf("BWG %d is not a recognized Birmingham wire gauge", bwg)
}

func thicknessToBWG(t float64) (int, error) {
	for i, w := range bwgThickness {
		if math.Abs(w-t) < 1e-9 {
			return bwgGauges[i], nil
		}
	}
	return 0, fmt.Errorf("wall thickness %g m does not match any Birmingham wire gauge", t)
}

// CheckTubingTEMA reports whether a nominal pipe size and gauge pair is
// listed in the TEMA tubing standard.
func CheckTubingTEMA(nps float64, bwg int) bool {
	for _, g := range TEMATubing[nps] {
		if g == bwg {
			return true
		}
	}
	return false
}

// TEMATube is a fully resolved TEMA standard tube.
type TEMATube struct {
	NPS float64 // nominal pipe size, [inch]
	BWG int     // Birmingham wire gauge
	Do  float64 // outer diameter, [m]
	Di  float64 // inner diameter, [m]
	T   float64 // wall thickness, [m]
}

// TEMATubeQuery selects a tube from the TEMA tubing standard. Zero fields
// are unspecified; any complete combination of size and wall resolves a
// tube. Tmin matches the thinnest listed wall at least that thick, and a
// bare NPS takes the thickest listed wall.
type TEMATubeQuery struct {
	NPS  float64 // nominal pipe size, [inch]
	BWG  int     // Birmingham wire gauge
	Do   float64 // outer diameter, [m]
	Di   float64 // inner diameter, [m]
	Tmin float64 // minimum wall thickness, [m]
}

// GetTubeTEMA resolves a TEMA standard tube from any sufficient combination
// of nominal size, gauge, diameters or minimum wall thickness. Exact-valued
// inputs must match the standard exactly.
func GetTubeTEMA(q TEMATubeQuery) (TEMATube, error) {
	switch {
	case q.NPS != 0 && q.BWG != 0:
		if !CheckTubingTEMA(q.NPS, q.BWG) {
			return TEMATube{}, errNotTEMATube(q.NPS, q.BWG)
		}
		t, err := bwgToThickness(q.BWG)
		if err != nil {
			return TEMATube{}, err
		}
		do := inch * q.NPS
		return TEMATube{NPS: q.NPS, BWG: q.BWG, Do: do, Di: do - 2*t, T: t}, nil
	case q.Do != 0 && q.BWG != 0:
		nps := q.Do / inch
		if !CheckTubingTEMA(nps, q.BWG) {
			return TEMATube{}, errNotTEMATube(nps, q.BWG)
		}
		t, err := bwgToThickness(q.BWG)
		if err != nil {
			return TEMATube{}, err
		}
		return TEMATube{NPS: nps, BWG: q.BWG, Do: q.Do, Di: q.Do - 2*t, T: t}, nil
	case q.BWG != 0 && q.Di != 0:
		t, err := bwgToThickness(q.BWG)
		if err != nil {
			return TEMATube{}, err
		}
		do := 2*t + q.Di
		nps := do / inch
		if !CheckTubingTEMA(nps, q.BWG) {
			return TEMATube{}, errNotTEMATube(nps, q.BWG)
		}
		return TEMATube{NPS: nps, BWG: q.BWG, Do: do, Di: q.Di, T: t}, nil
	case q.NPS != 0 && q.Di != 0:
		do := inch * q.NPS
		t := (do - q.Di) / 2
		bwg, err := thicknessToBWG(t)
		if err != nil {
			return TEMATube{}, err
		}
		if !CheckTubingTEMA(q.NPS, bwg) {
			return TEMATube{}, errNotTEMATube(q.NPS, bwg)
		}
		return TEMATube{NPS: q.NPS, BWG: bwg, Do: do, Di: q.Di, T: t}, nil
	case q.Di != 0 && q.Do != 0:
		nps := q.Do / inch
		t := (q.Do - q.Di) / 2
		bwg, err := thicknessToBWG(t)
		if err != nil {
			return TEMATube{}, err
		}
		if !CheckTubingTEMA(nps, bwg) {
			return TEMATube{}, errNotTEMATube(nps, bwg)
		}
		return TEMATube{NPS: nps, BWG: bwg, Do: q.Do, Di: q.Di, T: t}, nil
	case q.NPS != 0 && q.Tmin != 0:
		return resolveTubeByMinWall(q.NPS, q.Tmin)
	case q.Do != 0 && q.Tmin != 0:
		return resolveTubeByMinWall(q.Do/inch, q.Tmin)
	case q.Di != 0 && q.Tmin != 0:
		return TEMATube{}, fmt.Errorf("an inner diameter and minimum wall thickness admit multiple TEMA tubes")
	case q.NPS != 0:
		gauges, ok := TEMATubing[q.NPS]
		if !ok {
			return TEMATube{}, fmt.Errorf("NPS %g in is not listed in TEMA", q.NPS)
		}
		t, err := bwgToThickness(gauges[0])
		if err != nil {
			return TEMATube{}, err
		}
		do := inch * q.NPS
		return TEMATube{NPS: q.NPS, BWG: gauges[0], Do: do, Di: do - 2*t, T: t}, nil
	}
	return TEMATube{}, fmt.Errorf("insufficient information to select a TEMA tube")
}

func resolveTubeByMinWall(nps, tmin float64) (TEMATube, error) {
	gauges, ok := TEMATubing[nps]
	if !ok {
		return TEMATube{}, fmt.Errorf("NPS %g in is not listed in TEMA", nps)
	}
	// Gauges are listed thickest first; walk from the thinnest up.
	for i := len(gauges) - 1; i >= 0; i-- {
		t, err := bwgToThickness(gauges[i])
		if err != nil {
			return TEMATube{}, err
		}
		if tmin <= t || i == 0 {
			if tmin > t {
				return TEMATube{}, fmt.Errorf("minimum wall thickness %g m exceeds the thickest TEMA wall for NPS %g in", tmin, nps)
			}
			do := inch * nps
			return TEMATube{NPS: nps, BWG: gauges[i], Do: do, Di: do - 2*t, T: t}, nil
		}
	}
	return TEMATube{}, fmt.Errorf("NPS %g in has no TEMA tubing listed", nps)
}

func errNotTEMATube(nps float64, bwg int) error {
	return fmt.Errorf("NPS %g in with BWG %d is not listed in TEMA", nps, bwg)
}

// Standard tube lengths in meters.
var (
	// TEMALengths are the preferred tube lengths of the TEMA standard.
	TEMALengths = []float64{2.438, 3.048, 3.658, 4.877, 6.096}
	// HTRILengths are the tube lengths HTRI recommends considering.
	HTRILengths = []float64{1.829, 2.438, 3.048, 3.658, 4.267, 4.877, 5.486,
		6.096, 6.706, 7.315, 8.534, 9.754, 10.973, 12.192, 13.411, 14.63,
		15.85, 17.069, 18.288}
)

// HEDHShells are the standard plate shell inner diameters of the Heat
// Exchanger Design Handbook, in meters.
var HEDHShells = []float64{0.3048, 0.3302, 0.3556, 0.381, 0.4064, 0.4318,
	0.4572, 0.4826, 0.508, 0.5334, 0.5588, 0.6096, 0.6604, 0.7112, 0.762,
	0.8128, 0.8636, 0.9144, 0.9652, 1.016, 1.0668, 1.1176, 1.1684, 1.2192,
	1.27, 1.3208, 1.3716, 1.4224, 1.4732, 1.524, 1.6002, 1.6764, 1.7526,
	1.8288, 1.905, 1.9812, 2.0574, 2.1336, 2.2098, 2.286, 2.3622, 2.4384,
	2.5146, 2.5908, 2.667, 2.7432, 2.8194, 2.8956, 2.9718, 3.048}

// HEDHPitches maps tube outer diameters in inches to the pitch ratios the
// Heat Exchanger Design Handbook lists for them.
var HEDHPitches = map[float64][]float64{
	0.25:  {1.25, 1.5},
	0.375: {1.330, 1.420},
	0.5:   {1.250, 1.310, 1.380},
	0.625: {1.250, 1.300, 1.400},
	0.75:  {1.250, 1.330, 1.420, 1.500},
	1:     {1.250, 1.312, 1.375},
	1.25:  {1.250},
	1.5:   {1.250},
	2:     {1.250},
}

// DBundleMin returns the minimum recommended tube bundle diameter for a
// tube outer diameter, both in meters, per the HEDH mechanical standards.
func DBundleMin(do float64) float64 {
	steps := [][2]float64{{0.006, 0.1}, {0.01, 0.1}, {0.014, 0.3}, {0.02, 0.5}, {0.03, 1.0}}
	for _, s := range steps {
		if do <= s[0] {
			return s[1]
		}
	}
	return 1.5
}

// ShellClearance returns the diametral clearance between a tube bundle and
// its shell from either the bundle or the shell diameter in meters,
// whichever is nonzero, per TEMA class R.
func ShellClearance(dBundle, dShell float64) (float64, error) {
	shellSteps := [][2]float64{{0.457, 0.0032}, {1.016, 0.0048}, {1.397, 0.0064},
		{1.778, 0.0079}, {2.159, 0.0095}}
	if dShell != 0 {
		for _, s := range shellSteps {
			if dShell < s[0] {
				return s[1], nil
			}
		}
		return 0.011, nil
	}
	if dBundle != 0 {
		bundleSteps := [][2]float64{{0.457 - 0.0048, 0.0032}, {1.016 - 0.0064, 0.0048},
			{1.397 - 0.0079, 0.0064}, {1.778 - 0.0095, 0.0079}, {2.159 - 0.011, 0.0095}}
		for _, s := range bundleSteps {
			if dBundle < s[0] {
				return s[1], nil
			}
		}
		return 0.011, nil
	}
	return 0, fmt.Errorf("either the shell or the bundle diameter must be specified")
}

// TEMA minimum baffle thicknesses by shell diameter and unsupported tube
// length class.
var (
	temaBafflesRefinery = [5][5]float64{
		{0.0032, 0.0048, 0.0064, 0.0095, 0.0095},
		{0.0048, 0.0064, 0.0095, 0.0095, 0.0127},
		{0.0064, 0.0075, 0.0095, 0.0127, 0.0159},
		{0.0064, 0.0095, 0.0127, 0.0159, 0.0159},
		{0.0095, 0.0127, 0.0159, 0.0191, 0.0191},
	}
	temaBafflesOther = [5][6]float64{
		{0.0016, 0.0032, 0.0048, 0.0064, 0.0095, 0.0095},
		{0.0032, 0.0048, 0.0064, 0.0095, 0.0095, 0.0127},
		{0.0048, 0.0064, 0.0075, 0.0095, 0.0127, 0.0159},
		{0.0064, 0.0064, 0.0095, 0.0127, 0.0159, 0.0159},
		{0.0064, 0.0095, 0.0127, 0.0127, 0.0191, 0.0191},
	}
)

// BaffleThickness returns the TEMA minimum baffle or support plate
// thickness from the shell diameter and unsupported tube length in meters,
// for service class "R" (refinery), "C" (general) or "B" (chemical).
func BaffleThickness(dShell, lUnsupported float64, service string) (float64, error) {
	var j int
	switch {
	case dShell < 0.381:
		j = 0
	case dShell < 0.737:
		j = 1
	case dShell < 0.991:
		j = 2
	case dShell < 1.524:
		j = 3
	default:
		j = 4
	}
	switch service {
	case "R":
		var i int
		switch {
		case lUnsupported <= 0.61:
			i = 0
		case lUnsupported <= 0.914:
			i = 1
		case lUnsupported <= 1.219:
			i = 2
		case lUnsupported <= 1.524:
			i = 3
		default:
			i = 4
		}
		return temaBafflesRefinery[j][i], nil
	case "C", "B":
		var i int
		switch {
		case lUnsupported <= 0.305:
			i = 0
		case lUnsupported <= 0.610:
			i = 1
		case lUnsupported <= 0.914:
			i = 2
		case lUnsupported <= 1.219:
			i = 3
		case lUnsupported <= 1.524:
			i = 4
		default:
			i = 5
		}
		return temaBafflesOther[j][i], nil
	}
	return 0, fmt.Errorf("unknown TEMA service class %q: valid classes are R, C and B", service)
}

// DBaffleHoles returns the TEMA baffle hole diameter for a tube outer
// diameter and unsupported tube length, both in meters. Holes are drilled
// 1/32 in over for large or short tubes and 1/64 in over otherwise.
func DBaffleHoles(do, lUnsupported float64) float64 {
	if do > 0.0318 || lUnsupported <= 0.914 {
		return do + 0.0008
	}
	return do + 0.0004
}

// TEMA maximum unsupported tube span by tube outer diameter in inches, for
// steel/alloy and for aluminium/copper alloy tubes, in meters.
var (
	lUnsupportedDo = []float64{0.25, 0.375, 0.5, 0.628, 0.75, 0.875, 1., 1.25,
		1.5, 2., 2.5, 3.}
	lUnsupportedSteel = []float64{0.66, 0.889, 1.118, 1.321, 1.524, 1.753,
		1.88, 2.235, 2.54, 3.175, 3.175, 3.175}
	lUnsupportedAluminium = []float64{0.559, 0.762, 0.965, 1.143, 1.321,
		1.524, 1.626, 1.93, 2.21, 2.794, 2.794, 2.794}
)

// LUnsupportedMax returns the TEMA maximum unsupported tube span in meters
// for a tube outer diameter in meters, for material "CS" (carbon steel and
// alloys) or "aluminium" (including copper alloys). Diameters between
// tabulated sizes take the smaller size's span; diameters beyond the table
// clamp to its ends.
func LUnsupportedMax(do float64, material string) (float64, error) {
	doInch := do / inch
	i := len(lUnsupportedDo) - 1
	for j, tabulated := range lUnsupportedDo {
		if tabulated == doInch {
			i = j
			break
		}
		if tabulated > doInch {
			i = j - 1
			break
		}
	}
	if i < 0 {
		i = 0
	}
	switch material {
	case "CS":
		return lUnsupportedSteel[i], nil
	case "aluminium":
		return lUnsupportedAluminium[i], nil
	}
	return 0, fmt.Errorf("unknown tube material %q: valid materials are \"CS\" and \"aluminium\"", material)
}

// TEMA nomenclature.
var (
	// TEMAHeads names the TEMA front end stationary head types.
	TEMAHeads = map[string]string{
		"A": "Removable Channel and Cover",
		"B": "Bonnet (Integral Cover)",
		"C": "Integral With Tubesheet Removable Cover",
		"N": "Channel Integral With Tubesheet and Removable Cover",
		"D": "Special High-Pressure Closures",
	}
	// TEMAShells names the TEMA shell types.
	TEMAShells = map[string]string{
		"E": "One-Pass Shell",
		"F": "Two-Pass Shell with Longitudinal Baffle",
		"G": "Split Flow",
		"H": "Double Split Flow",
		"J": "Divided Flow",
		"K": "Kettle-Type Reboiler",
		"X": "Cross Flow",
	}
	// TEMARears names the TEMA rear end head types.
	TEMARears = map[string]string{
		"L": "Fixed Tube Sheet; Like \"A\" Stationary Head",
		"M": "Fixed Tube Sheet; Like \"B\" Stationary Head",
		"N": "Fixed Tube Sheet; Like \"C\" Stationary Head",
		"P": "Outside Packed Floating Head",
		"S": "Floating Head with Backing Device",
		"T": "Pull-Through Floating Head",
		"U": "U-Tube Bundle",
		"W": "Externally Sealed Floating Tubesheet",
	}
	// TEMAServices names the TEMA service classes.
	TEMAServices = map[string]string{
		"B": "Chemical",
		"R": "Refinery",
		"C": "General",
	}
	// BaffleTypes lists the baffle constructions in common use.
	BaffleTypes = []string{"segmental", "double segmental", "triple segmental",
		"disk and doughnut", "no tubes in window", "orifice", "rod"}
)
