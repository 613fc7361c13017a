package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the batch-generation settings loaded from YAML. Missing keys
// keep their defaults, so a config file only needs to override what differs.
type Config struct {
	Grid struct {
		// NX and NY set the sampling resolution of the generated fields.
		NX int `yaml:"nx"`
		NY int `yaml:"ny"`

		// Pattern names the analytic field formula.
		Pattern string `yaml:"pattern"`
	} `yaml:"grid"`

	Mask struct {
		// Shape names the inclusion region for the CAE contour types.
		Shape string `yaml:"shape"`

		// MaxOffset bounds the random mask offset; Seed makes it reproducible.
		MaxOffset float64 `yaml:"maxOffset"`
		Seed      int64   `yaml:"seed"`
	} `yaml:"mask"`

	Output struct {
		// Dir receives the rendered images.
		Dir string `yaml:"dir"`

		// Levels is the contour line count drawn over the heat map.
		Levels int `yaml:"levels"`
	} `yaml:"output"`

	Batch struct {
		// Per-axis selectors: "all", "representative", or a comma list.
		Colormaps    string `yaml:"colormaps"`
		Positions    string `yaml:"positions"`
		Orientations string `yaml:"orientations"`
		ContourTypes string `yaml:"contourTypes"`
	} `yaml:"batch"`
}

// DefaultConfig returns the batch-generation defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Grid.NX = 100
	cfg.Grid.NY = 100
	cfg.Grid.Pattern = "stress"

	cfg.Mask.Shape = "circle"
	cfg.Mask.MaxOffset = 0
	cfg.Mask.Seed = 0

	cfg.Output.Dir = "output"
	cfg.Output.Levels = 10

	cfg.Batch.Colormaps = "representative"
	cfg.Batch.Positions = "all"
	cfg.Batch.Orientations = "all"
	cfg.Batch.ContourTypes = "all"

	return cfg
}

// LoadConfig loads configuration from a YAML file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
