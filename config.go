package evergreen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls population sizes, silhouette dimensions, and motion rates.
// The values shape geometry density and size only; any positive values work.
//
// Example YAML:
//
//	foliage: 1800
//	ornaments: 80
//	lights: 150
//	presents: 8
//	stockings: 6
//	wishCapacity: 100
//	scatterRadius: 15
//	treeHeight: 7
//	treeRadius: 2.5
//	responsiveness: 2.5
//	rotationSpeed: 0.3
//	seed: 42
type Config struct {
	Foliage   int `yaml:"foliage"`
	Ornaments int `yaml:"ornaments"`
	Lights    int `yaml:"lights"`
	Presents  int `yaml:"presents"`
	Stockings int `yaml:"stockings"`
	// WishCapacity is the size of the wish slot pool and the hard cap on
	// visible wish tokens.
	WishCapacity int `yaml:"wishCapacity"`

	ScatterRadius float64 `yaml:"scatterRadius"`
	TreeHeight    float64 `yaml:"treeHeight"`
	TreeRadius    float64 `yaml:"treeRadius"`

	// Responsiveness is the exponential smoothing constant for assembly progress.
	Responsiveness float64 `yaml:"responsiveness"`
	// RotationSpeed is the assembled spin rate in radians per second.
	RotationSpeed float64 `yaml:"rotationSpeed"`
	// ScatteredSpinFactor scales RotationSpeed while scattered.
	ScatteredSpinFactor float64 `yaml:"scatteredSpinFactor"`
	// RestEpsilon is how close progress must be to its target before the
	// engine reports the assembly as settled.
	RestEpsilon float64 `yaml:"restEpsilon"`

	// LightsOn is the initial lights state.
	LightsOn bool `yaml:"lightsOn"`
	// Seed feeds every random draw made at construction.
	Seed uint64 `yaml:"seed"`
	// Debug prints per-frame evaluation stats to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the stock tree.
func DefaultConfig() Config {
	return Config{
		Foliage:             1800,
		Ornaments:           80,
		Lights:              150,
		Presents:            8,
		Stockings:           6,
		WishCapacity:        100,
		ScatterRadius:       15,
		TreeHeight:          7,
		TreeRadius:          2.5,
		Responsiveness:      2.5,
		RotationSpeed:       0.3,
		ScatteredSpinFactor: 0.2,
		RestEpsilon:         1e-3,
		LightsOn:            true,
		Seed:                1,
	}
}

// Shape returns the silhouette dimensions for the layout generators.
func (c Config) Shape() Shape {
	return Shape{ScatterRadius: c.ScatterRadius, Height: c.TreeHeight, Radius: c.TreeRadius}
}

// Population returns the configured element count for category.
func (c Config) Population(cat Category) int {
	switch cat {
	case CategoryFoliage:
		return c.Foliage
	case CategoryOrnament:
		return c.Ornaments
	case CategoryLight:
		return c.Lights
	case CategoryPresent:
		return c.Presents
	case CategoryStocking:
		return c.Stockings
	case CategoryWishToken:
		return c.WishCapacity
	}
	return 0
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	for _, cat := range Categories() {
		if n := c.Population(cat); n < 0 {
			errs = append(errs, fmt.Errorf("%s population must be >= 0, got %d", cat, n))
		}
	}
	if c.WishCapacity == 0 {
		errs = append(errs, errors.New("wishCapacity must be > 0"))
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"scatterRadius", c.ScatterRadius},
		{"treeHeight", c.TreeHeight},
		{"treeRadius", c.TreeRadius},
		{"responsiveness", c.Responsiveness},
		{"restEpsilon", c.RestEpsilon},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", p.name, p.v))
		}
	}
	if c.RotationSpeed < 0 || c.ScatteredSpinFactor < 0 {
		errs = append(errs, errors.New("rotation speeds must be >= 0"))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("evergreen: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("evergreen: invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("evergreen: failed to read config: %w", err)
	}
	return ParseConfig(data)
}
