package lowpoly

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Config holds every option of the generator. The field names of the
// serialized form are compatible with the config.json files of earlier releases.
type Config struct {
	Width        int         `json:"width" yaml:"width"`
	Height       int         `json:"height" yaml:"height"`
	EdgeLength   float64     `json:"edge_len" yaml:"edge_len"`
	Colors       []string    `json:"colors" yaml:"colors"`
	RandomColors bool        `json:"random_colors" yaml:"random_colors"`
	VertexJitter float64     `json:"random_vertex" yaml:"random_vertex"`       // percent of the edge length
	ColorJitter  int         `json:"max_color_offset" yaml:"max_color_offset"` // channel units
	Uniform      bool        `json:"uniform_rgb_offset" yaml:"uniform_rgb_offset"`
	Orientation  Orientation `json:"vertical" yaml:"vertical"`
	Steepness    float64     `json:"steepness,omitempty" yaml:"steepness,omitempty"`
	Light        []float64   `json:"light,omitempty" yaml:"light,omitempty"`
	Seed         int64       `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:        1920,
		Height:       1080,
		EdgeLength:   50,
		Colors:       []string{"#000000", "#ffffff"},
		RandomColors: true,
		VertexJitter: 35,
		ColorJitter:  20,
		Uniform:      true,
		Orientation:  Horizontal,
	}
}

// Validate checks the configuration for values the generator cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !finite(c.EdgeLength) || c.EdgeLength <= 0 {
		return fmt.Errorf("%w: edge length %v", ErrInvalidSize, c.EdgeLength)
	}
	if !finite(c.VertexJitter) || c.VertexJitter < 0 || c.VertexJitter > 100 {
		return fmt.Errorf("vertex jitter %v out of range [0, 100]", c.VertexJitter)
	}
	if c.ColorJitter < 0 {
		return fmt.Errorf("negative color offset %d", c.ColorJitter)
	}
	if !finite(c.Steepness) || c.Steepness < 0 {
		return fmt.Errorf("invalid steepness %v", c.Steepness)
	}
	if c.Light != nil && len(c.Light) != 3 {
		return fmt.Errorf("light direction needs 3 components, got %d", len(c.Light))
	}
	for _, v := range c.Light {
		if !finite(v) {
			return fmt.Errorf("invalid light direction %v", c.Light)
		}
	}
	if !c.RandomColors {
		if len(c.Colors) == 0 {
			return ErrNoStops
		}
		if _, err := ParseColors(c.Colors); err != nil {
			return err
		}
	}
	return nil
}

// ShadeMode returns the shading mode selected by the configuration.
func (c Config) ShadeMode() ShadeMode {
	if c.Uniform {
		return LightShading
	}
	return NoiseShading
}

// LightDirection returns the configured light direction or DefaultLight.
func (c Config) LightDirection() r3.Vec {
	if len(c.Light) != 3 {
		return DefaultLight
	}
	return r3.Vec{X: c.Light[0], Y: c.Light[1], Z: c.Light[2]}
}

// Ridge returns the maximum ridge height given to the vertices for the light shading.
func (c Config) Ridge() float64 {
	if c.Steepness > 0 {
		return c.Steepness
	}
	return c.EdgeLength
}

// Stops returns the gradient stops: two random endpoints if random colors
// are requested, the parsed color list otherwise.
func (c Config) Stops(rnd *rand.Rand) ([]Color, error) {
	if c.RandomColors {
		return []Color{RandomColor(rnd), RandomColor(rnd)}, nil
	}
	if len(c.Colors) == 0 {
		return nil, ErrNoStops
	}
	return ParseColors(c.Colors)
}

// LoadConfig reads a configuration file. Files with a .yaml or .yml
// extension are decoded as YAML, anything else as JSON. Missing fields
// keep their default value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault reads the configuration file at path. On any failure
// the built-in configuration is returned and the problem is logged as a warning.
func LoadConfigOrDefault(path string) Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		Logger().Warn("falling back to default configuration", "path", path, "error", err)
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes the configuration to path, so it can be reused by a later run.
func SaveConfig(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("unable to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to save config: %w", err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

var errOrientation = errors.New("orientation must be true, false or \"random\"")

// ParseOrientation parses the textual form of an orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "horizontal", "h", "":
		return Horizontal, nil
	case "true", "vertical", "v":
		return Vertical, nil
	case "random", "r":
		return RandomOrientation, nil
	}
	return Horizontal, fmt.Errorf("%w, got %q", errOrientation, s)
}

// MarshalJSON encodes the orientation as a boolean, or "random".
func (o Orientation) MarshalJSON() ([]byte, error) {
	switch o {
	case Vertical:
		return []byte("true"), nil
	case RandomOrientation:
		return []byte(`"random"`), nil
	}
	return []byte("false"), nil
}

// UnmarshalJSON accepts a boolean or one of the strings understood by ParseOrientation.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*o = Horizontal
		if b {
			*o = Vertical
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errOrientation
	}
	v, err := ParseOrientation(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalYAML encodes the orientation as a boolean, or "random".
func (o Orientation) MarshalYAML() (interface{}, error) {
	switch o {
	case Vertical:
		return true, nil
	case RandomOrientation:
		return "random", nil
	}
	return false, nil
}

// UnmarshalYAML accepts a boolean or one of the strings understood by ParseOrientation.
func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errOrientation
	}
	v, err := ParseOrientation(value.Value)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
