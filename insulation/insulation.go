package insulation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"ht/conduction"
)

// similarity scores how closely a query matches a table name, in [0, 1].
// The base score is the normalized Levenshtein similarity of the lowercased
// strings; a query contained verbatim in the name scores at least 0.6 plus
// its share of the name's length, so exact fragments beat loose edits.
func similarity(query, name string) float64 {
	q := strings.ToLower(query)
	c := strings.ToLower(name)
	if q == c {
		return 1
	}
	longer := utf8.RuneCountInString(q)
	if n := utf8.RuneCountInString(c); n > longer {
		longer = n
	}
	sim := 1 - float64(levenshtein.ComputeDistance(q, c))/float64(longer)
	if strings.Contains(c, q) {
		if sub := 0.6 + 0.4*float64(utf8.RuneCountInString(q))/float64(utf8.RuneCountInString(c)); sub > sim {
			sim = sub
		}
	}
	return sim
}

func nearest(name string, filter func(string) bool) string {
	best := ""
	bestScore := -1.0
	for _, candidate := range sortedNames {
		if filter != nil && !filter(candidate) {
			continue
		}
		if score := similarity(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best
}

// NearestMaterial returns the table name closest to the given search term,
// by fuzzy match over all three bundled tables. Some material is always
// returned, however poor the match.
func NearestMaterial(name string) string {
	return nearest(name, nil)
}

// NearestCompleteMaterial is NearestMaterial restricted to materials with
// all three of density, heat capacity and thermal conductivity available.
func NearestCompleteMaterial(name string) string {
	return nearest(name, complete)
}

// resolve maps an exact table key to itself and anything else to its
// nearest fuzzy match.
func resolve(id string) string {
	if _, ok := sources[id]; ok {
		return id
	}
	return NearestMaterial(id)
}

// KMaterial returns the thermal conductivity of a material, [W/m/K]. The id
// may be an exact table key or a search term to match fuzzily. Only the
// refractory table is temperature dependent; t is ignored for the others,
// and t = 0 selects the lowest tabulated refractory temperature.
func KMaterial(id string, t float64) (float64, error) {
	id = resolve(id)
	switch sources[id] {
	case SourceRefractory:
		return RefractoryVDIK(id, t)
	case SourceASHRAE:
		return ASHRAEK(id)
	default:
		return tables.Building[id].K, nil
	}
}

// RhoMaterial returns the density of a material, [kg/m^3]. The id may be an
// exact table key or a search term to match fuzzily. Some ASHRAE products
// list no density; those return an error.
func RhoMaterial(id string) (float64, error) {
	id = resolve(id)
	switch sources[id] {
	case SourceRefractory:
		return tables.Refractories[id].Rho, nil
	case SourceBuilding:
		return tables.Building[id].Rho, nil
	default:
		entry := tables.ASHRAE[id]
		if entry.Rho == nil {
			return 0, fmt.Errorf("density is not available for material %q", id)
		}
		return *entry.Rho, nil
	}
}

// CpMaterial returns the heat capacity of a material, [J/kg/K]. The id may
// be an exact table key or a search term to match fuzzily. Only the
// refractory table is temperature dependent; t is ignored for the others.
// Some ASHRAE products list no heat capacity; those return an error.
func CpMaterial(id string, t float64) (float64, error) {
	id = resolve(id)
	switch sources[id] {
	case SourceRefractory:
		return RefractoryVDICp(id, t)
	case SourceBuilding:
		return tables.Building[id].Cp, nil
	default:
		entry := tables.ASHRAE[id]
		if entry.Cp == nil {
			return 0, fmt.Errorf("heat capacity is not available for material %q", id)
		}
		return *entry.Cp, nil
	}
}

// ASHRAEK returns the thermal conductivity of an ASHRAE table product,
// [W/m/K]. Products tabulated as a thermal resistance over a reference
// thickness are converted. The id must be an exact ASHRAE table key.
func ASHRAEK(id string) (float64, error) {
	entry, ok := tables.ASHRAE[id]
	if !ok {
		return 0, fmt.Errorf("unknown ASHRAE material %q", id)
	}
	if entry.K != nil {
		return *entry.K, nil
	}
	// R in m^2*K/W over thickness t in mm.
	return conduction.RToK(*entry.R, *entry.T/1000., 1), nil
}

// RefractoryVDIK returns the thermal conductivity of a VDI refractory at
// temperature t, [W/m/K], by linear interpolation between the tabulated
// temperatures. t outside 673.15 K to 1473.15 K clamps to the nearest
// limit; t = 0 selects the lowest tabulated temperature.
func RefractoryVDIK(id string, t float64) (float64, error) {
	curves, ok := refractory[id]
	if !ok {
		return 0, fmt.Errorf("unknown refractory material %q", id)
	}
	if t == 0 {
		return tables.Refractories[id].K[0], nil
	}
	return curves.k.Predict(clampRefractoryT(t)), nil
}

// RefractoryVDICp returns the heat capacity of a VDI refractory at
// temperature t, [J/kg/K], by linear interpolation between the tabulated
// temperatures. t outside 673.15 K to 1473.15 K clamps to the nearest
// limit; t = 0 selects the lowest tabulated temperature.
func RefractoryVDICp(id string, t float64) (float64, error) {
	curves, ok := refractory[id]
	if !ok {
		return 0, fmt.Errorf("unknown refractory material %q", id)
	}
	if t == 0 {
		return tables.Refractories[id].Cp[0], nil
	}
	return curves.cp.Predict(clampRefractoryT(t)), nil
}

func clampRefractoryT(t float64) float64 {
	if t < refractoryTs[0] {
		return refractoryTs[0]
	}
	if t > refractoryTs[len(refractoryTs)-1] {
		return refractoryTs[len(refractoryTs)-1]
	}
	return t
}
