package insulation

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gopkg.in/yaml.v2"
)

//go:embed materials.yaml
var materialsYAML []byte

// Source identifies which reference table a material belongs to.
type Source string

// The three bundled reference tables.
const (
	SourceBuilding   Source = "DIN EN 12524"
	SourceASHRAE     Source = "ASHRAE"
	SourceRefractory Source = "VDI refractories"
)

// refractoryTs are the temperatures the VDI refractory properties are
// tabulated at, [K].
var refractoryTs = []float64{673.15, 873.15, 1073.15, 1273.15, 1473.15}

type buildingEntry struct {
	Rho float64 `yaml:"rho"`
	K   float64 `yaml:"k"`
	Cp  float64 `yaml:"cp"`
}

// ashraeEntry rows list either a conductivity directly or a thermal
// resistance R over a reference thickness t (mm); density and heat capacity
// are not available for every product.
type ashraeEntry struct {
	Rho *float64 `yaml:"rho"`
	Cp  *float64 `yaml:"cp"`
	K   *float64 `yaml:"k"`
	R   *float64 `yaml:"r"`
	T   *float64 `yaml:"t"`
}

type refractoryEntry struct {
	Rho float64   `yaml:"rho"`
	K   []float64 `yaml:"k"`
	Cp  []float64 `yaml:"cp"`
}

type materialTables struct {
	Building     map[string]buildingEntry   `yaml:"building"`
	ASHRAE       map[string]ashraeEntry     `yaml:"ashrae"`
	Refractories map[string]refractoryEntry `yaml:"refractories"`
}

// refractoryCurves holds the piecewise-linear predictors fitted over the
// five tabulated temperatures of one refractory.
type refractoryCurves struct {
	k  interp.PiecewiseLinear
	cp interp.PiecewiseLinear
}

var (
	tables      materialTables
	refractory  map[string]refractoryCurves
	sources     map[string]Source
	sortedNames []string
)

func init() {
	if err := loadTables(slog.Default()); err != nil {
		panic(fmt.Sprintf("insulation: embedded material tables are invalid: %v", err))
	}
}

// loadTables decodes the embedded YAML document, fits the refractory
// temperature curves and builds the name index.
func loadTables(logger *slog.Logger) error {
	if err := yaml.Unmarshal(materialsYAML, &tables); err != nil {
		return fmt.Errorf("decode material tables: %w", err)
	}

	refractory = make(map[string]refractoryCurves, len(tables.Refractories))
	for name, entry := range tables.Refractories {
		if len(entry.K) != len(refractoryTs) || len(entry.Cp) != len(refractoryTs) {
			return fmt.Errorf("refractory %q: want %d tabulated temperatures, have k=%d cp=%d",
				name, len(refractoryTs), len(entry.K), len(entry.Cp))
		}
		var curves refractoryCurves
		if err := curves.k.Fit(refractoryTs, entry.K); err != nil {
			return fmt.Errorf("refractory %q conductivity fit: %w", name, err)
		}
		if err := curves.cp.Fit(refractoryTs, entry.Cp); err != nil {
			return fmt.Errorf("refractory %q heat capacity fit: %w", name, err)
		}
		refractory[name] = curves
	}

	sources = make(map[string]Source, len(tables.Building)+len(tables.ASHRAE)+len(tables.Refractories))
	for name := range tables.Refractories {
		sources[name] = SourceRefractory
	}
	for name := range tables.ASHRAE {
		sources[name] = SourceASHRAE
	}
	for name := range tables.Building {
		sources[name] = SourceBuilding
	}
	sortedNames = make([]string, 0, len(sources))
	for name := range sources {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	logger.Debug("insulation material tables loaded",
		slog.Int("building", len(tables.Building)),
		slog.Int("ashrae", len(tables.ASHRAE)),
		slog.Int("refractories", len(tables.Refractories)))
	return nil
}

// Materials returns the names of every material in the bundled tables,
// sorted. The returned slice must not be modified.
func Materials() []string {
	return sortedNames
}

// MaterialSource reports which reference table a material name belongs to.
func MaterialSource(id string) (Source, error) {
	src, ok := sources[id]
	if !ok {
		return "", fmt.Errorf("unknown material %q", id)
	}
	return src, nil
}

// complete reports whether all three of density, heat capacity and thermal
// conductivity are available for the material. Building and refractory
// entries always are; ASHRAE rows may lack density or heat capacity.
func complete(id string) bool {
	switch sources[id] {
	case SourceBuilding, SourceRefractory:
		return true
	case SourceASHRAE:
		entry := tables.ASHRAE[id]
		return entry.Rho != nil && entry.Cp != nil
	}
	return false
}
