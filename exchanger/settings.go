package exchanger

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Settings are the numeric solver tunables of the package: the resolution
// of the NTU-from-P maximum scan and the iteration budget and tolerance of
// the root finders. The defaults suit every published configuration; they
// exist for callers trading accuracy against speed in bulk rating runs.
type Settings struct {
	ScanPoints    int     `yaml:"scan_points" envconfig:"SCAN_POINTS"`
	MaxIterations int     `yaml:"max_iterations" envconfig:"MAX_ITERATIONS"`
	Tolerance     float64 `yaml:"tolerance" envconfig:"TOLERANCE"`
}

// DefaultSettings returns the solver tunables used unless overridden.
func DefaultSettings() Settings {
	return Settings{
		ScanPoints:    600,
		MaxIterations: 100,
		Tolerance:     1e-13,
	}
}

// Validate checks the tunables are usable.
func (s Settings) Validate() error {
	if s.ScanPoints < 16 {
		return fmt.Errorf("solver settings: at least 16 scan points are required, got %d", s.ScanPoints)
	}
	if s.MaxIterations < 1 {
		return fmt.Errorf("solver settings: at least 1 iteration is required, got %d", s.MaxIterations)
	}
	if s.Tolerance <= 0 {
		return fmt.Errorf("solver settings: tolerance must be positive, got %g", s.Tolerance)
	}
	return nil
}

// LoadSettings resolves the solver tunables once at startup: the defaults,
// overlaid by an optional YAML file when path is nonempty, overlaid by
// HT-prefixed environment variables (HT_SCAN_POINTS, HT_MAX_ITERATIONS,
// HT_TOLERANCE).
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read solver settings: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse solver settings %s: %w", path, err)
		}
	}
	if err := envconfig.Process("HT", &s); err != nil {
		return s, fmt.Errorf("solver settings from environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// solverSettings is what the numeric inversions read. It is fixed at
// startup through Configure or NewRater and not synchronized afterwards.
var solverSettings = DefaultSettings()

// Configure installs solver tunables package-wide. Call once at startup,
// before any concurrent use.
func Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	solverSettings = s
	return nil
}
