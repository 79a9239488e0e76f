package convection

import (
	"fmt"
	"math"
)

// NuVerticalPlateChurchill returns the free convection Nusselt number of a
// vertical plate from the Churchill-Chu expression, valid in both laminar and
// turbulent regimes.
func NuVerticalPlateChurchill(pr, gr float64) float64 {
	ra := pr * gr
	term := 0.825 + 0.387*math.Pow(ra, 1/6.)*math.Pow(1.0+math.Pow(pr/0.492, -0.5625), -8.0/27.0)
	return term * term
}

// MethodFreePlateChurchill is the single method NuFreeVerticalPlate accepts.
const MethodFreePlateChurchill = "Churchill"

// NuFreeVerticalPlateMethods lists the free convection vertical plate
// methods.
var NuFreeVerticalPlateMethods = []string{MethodFreePlateChurchill}

// NuFreeVerticalPlate returns the free convection Nusselt number of a
// vertical plate by the named method, defaulting to Churchill.
func NuFreeVerticalPlate(method string, pr, gr float64) (float64, error) {
	if method == "" || method == MethodFreePlateChurchill {
		return NuVerticalPlateChurchill(pr, gr), nil
	}
	return 0, fmt.Errorf("unknown free vertical plate method %q: valid methods are %v", method, NuFreeVerticalPlateMethods)
}

// NuHorizontalPlateFreeMcAdams returns the free convection Nusselt number of
// a horizontal plate after McAdams. buoyancy is true when the plate's heat
// flow aids the buoyant flow (hot side up or cold side down).
func NuHorizontalPlateFreeMcAdams(pr, gr float64, buoyancy bool) float64 {
	ra := pr * gr
	if buoyancy {
		if ra <= 1e7 {
			return 0.54 * math.Pow(ra, 0.25)
		}
		return 0.15 * math.Cbrt(ra)
	}
	if ra <= 1e10 {
		return 0.27 * math.Pow(ra, 0.25)
	}
	return 0.15 * math.Cbrt(ra)
}

// NuHorizontalPlateFreeVDI returns the free convection Nusselt number of a
// horizontal plate per the VDI Heat Atlas.
func NuHorizontalPlateFreeVDI(pr, gr float64, buoyancy bool) float64 {
	ra := pr * gr
	if buoyancy {
		f2 := math.Pow(1.0+math.Pow(0.322/pr, 0.55), 20.0/11.0)
		if ra*f2 < 7e4 {
			return 0.766 * math.Pow(ra*f2, 0.2)
		}
		return 0.15 * math.Cbrt(ra*f2)
	}
	f1 := math.Pow(1.0+math.Pow(0.492/pr, 9.0/16.0), -16.0/9.0)
	return 0.6 * math.Pow(ra*f1, 0.2)
}

// NuHorizontalPlateFreeRohsenow returns the free convection Nusselt number of
// a horizontal plate from the blended laminar/turbulent model in Rohsenow's
// handbook.
func NuHorizontalPlateFreeRohsenow(pr, gr float64, buoyancy bool) float64 {
	ra := pr * gr
	if buoyancy {
		ctU := 0.14 * ((1.0 + 0.01707*pr) / (1.0 + 0.01*pr))
		ctV := 0.13 * math.Pow(pr, 0.22) / math.Pow(1.0+0.61*math.Pow(pr, 0.81), 0.42)
		t1 := 1.0 // heated to non-heated area ratio
		t2 := 0.0 // vertical extent term, zero for a flat plate
		cl := 0.0972 - (0.0157+0.462*ctV)*t1 + (0.615*ctV-0.0548-6e-6*pr)*t2
		nuT := 0.835 * cl * math.Pow(ra, 0.25)
		nuL := 1.4 / math.Log(1.0+1.4/nuT)
		nuTurb := ctU * math.Cbrt(ra)
		const m = 10.0
		return math.Pow(math.Pow(nuL, m)+math.Pow(nuTurb, m), 1.0/m)
	}
	nuT := 0.527 * math.Pow(ra, 0.2) / math.Pow(1.0+math.Pow(1.9/pr, 0.9), 2.0/9.0)
	return 2.5 / math.Log(1.0+2.5/nuT)
}

// Method names accepted by NuFreeHorizontalPlate.
const (
	MethodFreePlateVDI      = "VDI"
	MethodFreePlateMcAdams  = "McAdams"
	MethodFreePlateRohsenow = "Rohsenow"
)

// NuFreeHorizontalPlateMethods lists the free convection horizontal plate
// methods in order of preference.
var NuFreeHorizontalPlateMethods = []string{
	MethodFreePlateVDI, MethodFreePlateMcAdams, MethodFreePlateRohsenow,
}

// NuFreeHorizontalPlate returns the free convection Nusselt number of a
// horizontal plate by the named method, defaulting to the VDI expression.
func NuFreeHorizontalPlate(method string, pr, gr float64, buoyancy bool) (float64, error) {
	if method == "" {
		method = MethodFreePlateVDI
	}
	switch method {
	case MethodFreePlateVDI:
		return NuHorizontalPlateFreeVDI(pr, gr, buoyancy), nil
	case MethodFreePlateMcAdams:
		return NuHorizontalPlateFreeMcAdams(pr, gr, buoyancy), nil
	case MethodFreePlateRohsenow:
		return NuHorizontalPlateFreeRohsenow(pr, gr, buoyancy), nil
	}
	return 0, fmt.Errorf("unknown free horizontal plate method %q: valid methods are %v", method, NuFreeHorizontalPlateMethods)
}

// NuSphereChurchill returns the free convection Nusselt number of a sphere
// after Churchill, valid to Ra 1e13.
func NuSphereChurchill(pr, gr float64) float64 {
	ra := pr * gr
	return 2 + 0.589*math.Pow(ra, 0.25)/math.Pow(1+math.Pow(0.469/pr, 9/16.), 4/9.)*
		math.Pow(1+7.44e-8*ra/math.Pow(1+math.Pow(0.469/pr, 9/16.), 16/9.), 1/12.)
}

// The vertical cylinder fits below switch on a turbulence transition Rayleigh
// number; the Morgan-reviewed constants follow his 1975 compilation.

// NuVerticalCylinderGriffithsDavisMorgan returns the free convection Nusselt
// number of a vertical cylinder from the Griffiths-Davis data as fitted by
// Morgan.
func NuVerticalCylinderGriffithsDavisMorgan(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 1e9 {
		return 0.0782 * math.Pow(ra, 0.357)
	}
	return 0.67 * math.Pow(ra, 0.25)
}

// NuVerticalCylinderJakobLinkeMorgan returns the free convection Nusselt
// number of a vertical cylinder from the Jakob-Linke data as fitted by
// Morgan.
func NuVerticalCylinderJakobLinkeMorgan(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 1e8 {
		return 0.129 * math.Cbrt(ra)
	}
	return 0.555 * math.Pow(ra, 0.25)
}

// NuVerticalCylinderCarneMorgan returns the free convection Nusselt number of
// a vertical cylinder from the Carne data as fitted by Morgan.
func NuVerticalCylinderCarneMorgan(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 2e8 {
		return 0.152 * math.Pow(ra, 0.38)
	}
	return 1.07 * math.Pow(ra, 0.28)
}

// NuVerticalCylinderEigensonMorgan returns the free convection Nusselt number
// of a vertical cylinder from the Eigenson data as fitted by Morgan, with a
// transitional band between Ra 1e9 and 1.69e10.
func NuVerticalCylinderEigensonMorgan(pr, gr float64) float64 {
	ra := pr * gr
	switch {
	case ra > 1.69e10:
		return 0.148*math.Cbrt(ra) - 127.6
	case ra > 1e9:
		return 51.5 + 0.0000726*math.Pow(ra, 0.63)
	default:
		return 0.48 * math.Pow(ra, 0.25)
	}
}

// NuVerticalCylinderTouloukianMorgan returns the free convection Nusselt
// number of a vertical cylinder from the Touloukian data as fitted by Morgan.
func NuVerticalCylinderTouloukianMorgan(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 4e10 {
		return 0.0674 * math.Cbrt(gr*math.Pow(pr, 1.29))
	}
	return 0.726 * math.Pow(ra, 0.25)
}

// NuVerticalCylinderMcAdamsWeissSaunders returns the free convection Nusselt
// number of a vertical cylinder from the McAdams-Weiss-Saunders fits.
func NuVerticalCylinderMcAdamsWeissSaunders(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 1e9 {
		return 0.13 * math.Cbrt(ra)
	}
	return 0.59 * math.Pow(ra, 0.25)
}

// NuVerticalCylinderKreithEckert returns the free convection Nusselt number
// of a vertical cylinder from the Kreith-Eckert fits.
func NuVerticalCylinderKreithEckert(pr, gr float64) float64 {
	ra := pr * gr
	if ra > 1e9 {
		return 0.021 * math.Pow(ra, 0.4)
	}
	return 0.555 * math.Pow(ra, 0.25)
}

// NuVerticalCylinderHanesianKalishMorgan returns the free convection Nusselt
// number of a vertical cylinder from the Hanesian-Kalish data as fitted by
// Morgan.
func NuVerticalCylinderHanesianKalishMorgan(pr, gr float64) float64 {
	return 0.48 * math.Pow(pr*gr, 0.23)
}

// NuVerticalCylinderAlArabiKhamis returns the free convection Nusselt number
// of a vertical cylinder of height l and diameter d after Al-Arabi and
// Khamis.
func NuVerticalCylinderAlArabiKhamis(pr, gr, l, d float64) float64 {
	grD := gr / (l * l * l) * (d * d * d)
	ra := pr * gr
	if ra > 2.6e9 {
		return 0.47 * math.Cbrt(ra) * math.Pow(grD, -1/12.)
	}
	return 2.9 * math.Pow(ra, 0.25) * math.Pow(grD, -1/12.)
}

// NuVerticalCylinderPopielChurchill returns the free convection Nusselt
// number of a vertical cylinder of height l and diameter d after Popiel and
// Churchill, correcting the Churchill flat plate result for curvature.
func NuVerticalCylinderPopielChurchill(pr, gr, l, d float64) float64 {
	b := 0.0571322 + 0.20305*math.Pow(pr, -0.43)
	c := 0.9165 - 0.0043*math.Sqrt(pr) + 0.01333*math.Log(pr) + 0.0004809/pr
	nuFP := NuVerticalPlateChurchill(pr, gr)
	return nuFP * (1 + b*math.Pow(math.Sqrt(32)*math.Pow(gr, -0.25)*l/d, c))
}

// Method names accepted by NuVerticalCylinder.
const (
	MethodVCChurchillPlate      = "Churchill Vertical Plate"
	MethodVCGriffithsDavis      = "Griffiths, Davis, & Morgan"
	MethodVCJakobLinke          = "Jakob, Linke, & Morgan"
	MethodVCCarne               = "Carne & Morgan"
	MethodVCEigenson            = "Eigenson & Morgan"
	MethodVCTouloukian          = "Touloukian & Morgan"
	MethodVCMcAdamsWeissSaunder = "McAdams, Weiss & Saunders"
	MethodVCKreithEckert        = "Kreith & Eckert"
	MethodVCHanesianKalish      = "Hanesian, Kalish & Morgan"
	MethodVCAlArabiKhamis       = "Al-Arabi & Khamis"
	MethodVCPopielChurchill     = "Popiel & Churchill"
)

// NuVerticalCylinderMethods lists the free convection vertical cylinder
// methods. The geometry-aware methods (Popiel & Churchill, Al-Arabi & Khamis)
// need l and d and are preferred when those are known.
var NuVerticalCylinderMethods = []string{
	MethodVCPopielChurchill,
	MethodVCChurchillPlate,
	MethodVCGriffithsDavis,
	MethodVCJakobLinke,
	MethodVCCarne,
	MethodVCEigenson,
	MethodVCTouloukian,
	MethodVCMcAdamsWeissSaunder,
	MethodVCKreithEckert,
	MethodVCHanesianKalish,
	MethodVCAlArabiKhamis,
}

// NuVerticalCylinder returns the free convection Nusselt number of a vertical
// cylinder by the named method. When method is empty, Popiel & Churchill is
// selected if the height l and diameter d are given, and McAdams, Weiss &
// Saunders otherwise.
func NuVerticalCylinder(method string, pr, gr, l, d float64) (float64, error) {
	if method == "" {
		if l != 0 && d != 0 {
			method = MethodVCPopielChurchill
		} else {
			method = MethodVCMcAdamsWeissSaunder
		}
	}
	switch method {
	case MethodVCChurchillPlate:
		return NuVerticalPlateChurchill(pr, gr), nil
	case MethodVCGriffithsDavis:
		return NuVerticalCylinderGriffithsDavisMorgan(pr, gr), nil
	case MethodVCJakobLinke:
		return NuVerticalCylinderJakobLinkeMorgan(pr, gr), nil
	case MethodVCCarne:
		return NuVerticalCylinderCarneMorgan(pr, gr), nil
	case MethodVCEigenson:
		return NuVerticalCylinderEigensonMorgan(pr, gr), nil
	case MethodVCTouloukian:
		return NuVerticalCylinderTouloukianMorgan(pr, gr), nil
	case MethodVCMcAdamsWeissSaunder:
		return NuVerticalCylinderMcAdamsWeissSaunders(pr, gr), nil
	case MethodVCKreithEckert:
		return NuVerticalCylinderKreithEckert(pr, gr), nil
	case MethodVCHanesianKalish:
		return NuVerticalCylinderHanesianKalishMorgan(pr, gr), nil
	case MethodVCAlArabiKhamis:
		if l == 0 || d == 0 {
			return 0, fmt.Errorf("vertical cylinder method %q requires the height and diameter", method)
		}
		return NuVerticalCylinderAlArabiKhamis(pr, gr, l, d), nil
	case MethodVCPopielChurchill:
		if l == 0 || d == 0 {
			return 0, fmt.Errorf("vertical cylinder method %q requires the height and diameter", method)
		}
		return NuVerticalCylinderPopielChurchill(pr, gr, l, d), nil
	}
	return 0, fmt.Errorf("unknown vertical cylinder method %q: valid methods are %v", method, NuVerticalCylinderMethods)
}

// NuHorizontalCylinderChurchillChu returns the free convection Nusselt number
// of a horizontal cylinder from the Churchill-Chu expression.
func NuHorizontalCylinderChurchillChu(pr, gr float64) float64 {
	ra := pr * gr
	term := 0.6 + 0.387*math.Pow(ra, 1/6.)/math.Pow(1.+math.Pow(0.559/pr, 9/16.), 8/27.)
	return term * term
}

// NuHorizontalCylinderKuehnGoldstein returns the free convection Nusselt
// number of a horizontal cylinder from the Kuehn-Goldstein conduction-layer
// model.
func NuHorizontalCylinderKuehnGoldstein(pr, gr float64) float64 {
	ra := pr * gr
	return 2. / math.Log(1+2./math.Pow(
		math.Pow(0.518*math.Pow(ra, 0.25)*math.Pow(1.+math.Pow(0.559/pr, 0.6), -5/12.), 15)+
			math.Pow(0.1*math.Cbrt(ra), 15), 1/15.))
}

// NuHorizontalCylinderMorgan returns the free convection Nusselt number of a
// horizontal cylinder from Morgan's power-law constants per Rayleigh decade.
func NuHorizontalCylinderMorgan(pr, gr float64) float64 {
	ra := pr * gr
	var c, n float64
	switch {
	case ra < 1e-2:
		c, n = 0.675, 0.058
	case ra < 1e2:
		c, n = 1.02, 0.148
	case ra < 1e4:
		c, n = 0.850, 0.188
	case ra < 1e7:
		c, n = 0.480, 0.250
	default:
		c, n = 0.125, 0.333
	}
	return c * math.Pow(ra, n)
}

// Method names accepted by NuHorizontalCylinder.
const (
	MethodHCMorgan         = "Morgan"
	MethodHCChurchillChu   = "Churchill-Chu"
	MethodHCKuehnGoldstein = "Kuehn & Goldstein"
)

// NuHorizontalCylinderMethods lists the free convection horizontal cylinder
// methods in order of preference.
var NuHorizontalCylinderMethods = []string{
	MethodHCMorgan, MethodHCChurchillChu, MethodHCKuehnGoldstein,
}

// NuHorizontalCylinder returns the free convection Nusselt number of a
// horizontal cylinder by the named method, defaulting to Morgan.
func NuHorizontalCylinder(method string, pr, gr float64) (float64, error) {
	if method == "" {
		method = MethodHCMorgan
	}
	switch method {
	case MethodHCChurchillChu:
		return NuHorizontalCylinderChurchillChu(pr, gr), nil
	case MethodHCKuehnGoldstein:
		return NuHorizontalCylinderKuehnGoldstein(pr, gr), nil
	case MethodHCMorgan:
		return NuHorizontalCylinderMorgan(pr, gr), nil
	}
	return 0, fmt.Errorf("unknown horizontal cylinder method %q: valid methods are %v", method, NuHorizontalCylinderMethods)
}

// NuCoilXinEbadian returns the free convection Nusselt number of a helical
// coil, horizontal or vertical, after Xin and Ebadian.
func NuCoilXinEbadian(pr, gr float64, horizontal bool) float64 {
	ra := pr * gr
	if horizontal {
		return 0.318 * math.Pow(ra, 0.293)
	}
	return 0.290 * math.Pow(ra, 0.293)
}
