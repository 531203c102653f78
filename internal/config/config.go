package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// DefaultPath is read when UNSHROUDED_CONFIG is unset.
const DefaultPath = "config/unshrouded.toml"

// EnvPath names the environment variable overriding DefaultPath.
const EnvPath = "UNSHROUDED_CONFIG"

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Data       DataConfig       `toml:"data"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Name      string `toml:"name"`
	Turns     int    `toml:"turns"`      // turns advanced by the headless driver
	MapWidth  int    `toml:"map_width"`  // columns
	MapHeight int    `toml:"map_height"` // rows
}

type DataConfig struct {
	UnitTemplates string `toml:"unit_templates"`
	Traits        string `toml:"traits"`
	ScriptsDir    string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Path returns the config path to load, honoring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var err error
	if c.Simulation.Turns < 0 {
		err = multierr.Append(err, fmt.Errorf("simulation.turns must be >= 0, got %d", c.Simulation.Turns))
	}
	if c.Simulation.MapWidth <= 0 || c.Simulation.MapWidth > maxMapSide {
		err = multierr.Append(err, fmt.Errorf("simulation.map_width must be in 1..%d, got %d", maxMapSide, c.Simulation.MapWidth))
	}
	if c.Simulation.MapHeight <= 0 || c.Simulation.MapHeight > maxMapSide {
		err = multierr.Append(err, fmt.Errorf("simulation.map_height must be in 1..%d, got %d", maxMapSide, c.Simulation.MapHeight))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return err
}

// maxMapSide keeps every cube axis of a generated map inside int16.
const maxMapSide = 1<<14 - 1

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Name:      "Unshrouded",
			Turns:     10,
			MapWidth:  32,
			MapHeight: 24,
		},
		Data: DataConfig{
			UnitTemplates: "data/yaml/unit_templates.yaml",
			Traits:        "data/yaml/traits.yaml",
			ScriptsDir:    "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
