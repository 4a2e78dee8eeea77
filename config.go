package easel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-user configuration file.
const ConfigFileName = "easel.yaml"

// Config holds editor defaults that a host may override from an
// easel.yaml file. The zero value of any field means "use the default".
type Config struct {
	// HistoryDepth is the undo stack depth.
	HistoryDepth int `yaml:"history_depth,omitempty"`

	// FloodFillCap bounds a single flood fill in pixels.
	FloodFillCap int `yaml:"flood_fill_cap,omitempty"`

	// Background is the background color as a hex string ("#RRGGBB").
	Background string `yaml:"background,omitempty"`

	// ToolSize is the default brush/shape stroke width in pixels.
	ToolSize int `yaml:"tool_size,omitempty"`

	// Gutter is the scrollable margin around the canvas in view pixels.
	Gutter int `yaml:"gutter,omitempty"`

	// SprayRadius is the spray tool's deposit radius in pixels.
	SprayRadius int `yaml:"spray_radius,omitempty"`

	// SprayDensity is the number of dots deposited per spray tick.
	SprayDensity int `yaml:"spray_density,omitempty"`
}

// DefaultConfig returns the built-in editor defaults.
func DefaultConfig() Config {
	return Config{
		HistoryDepth: DefaultHistoryDepth,
		FloodFillCap: DefaultFloodFillCap,
		Background:   "#FFFFFF",
		ToolSize:     3,
		Gutter:       DefaultGutter,
		SprayRadius:  8,
		SprayDensity: 12,
	}
}

// LoadConfig reads easel.yaml from dir if present. A missing file is not
// an error: the defaults are returned unchanged.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	return cfg.withDefaults(), nil
}

// withDefaults fills zero-valued fields with the built-in defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HistoryDepth < 1 {
		c.HistoryDepth = def.HistoryDepth
	}
	if c.FloodFillCap < 1 {
		c.FloodFillCap = def.FloodFillCap
	}
	if c.Background == "" {
		c.Background = def.Background
	}
	if c.ToolSize < 1 {
		c.ToolSize = def.ToolSize
	}
	if c.Gutter <= 0 {
		c.Gutter = def.Gutter
	}
	if c.SprayRadius < 1 {
		c.SprayRadius = def.SprayRadius
	}
	if c.SprayDensity < 1 {
		c.SprayDensity = def.SprayDensity
	}
	return c
}

// backgroundColor parses the configured background hex color.
func (c Config) backgroundColor() RGBA {
	if c.Background == "" {
		return White
	}
	return Hex(c.Background)
}
