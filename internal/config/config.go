// Package config loads the optional cardwar.hcl configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "cardwar.hcl"

// Config represents the complete configuration
type Config struct {
	Game     GameSettings     `hcl:"game,block"`
	UI       UISettings       `hcl:"ui,block"`
	Simulate SimulateSettings `hcl:"simulate,block"`
}

// GameSettings contains engine settings
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogFile  string `hcl:"log_file,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Color    *bool  `hcl:"color,optional"`
}

// SimulateSettings contains defaults for the simulate command
type SimulateSettings struct {
	Games    int    `hcl:"games,optional"`
	Workers  int    `hcl:"workers,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// file mirrors Config with optional blocks so any of them may be omitted
type file struct {
	Game     *GameSettings     `hcl:"game,block"`
	UI       *UISettings       `hcl:"ui,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// Strategies lists the valid simulate strategies
var Strategies = []string{"first", "random", "highest", "lowest"}

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		UI: UISettings{
			LogFile:  "cardwar.log",
			LogLevel: "info",
			Color:    &color,
		},
		Simulate: SimulateSettings{
			Games:    1000,
			Workers:  4,
			Strategy: "random",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.UI != nil {
		if raw.UI.LogFile != "" {
			cfg.UI.LogFile = raw.UI.LogFile
		}
		if raw.UI.LogLevel != "" {
			cfg.UI.LogLevel = raw.UI.LogLevel
		}
		if raw.UI.Color != nil {
			cfg.UI.Color = raw.UI.Color
		}
	}
	if raw.Simulate != nil {
		if raw.Simulate.Games != 0 {
			cfg.Simulate.Games = raw.Simulate.Games
		}
		if raw.Simulate.Workers != 0 {
			cfg.Simulate.Workers = raw.Simulate.Workers
		}
		if raw.Simulate.Strategy != "" {
			cfg.Simulate.Strategy = raw.Simulate.Strategy
		}
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("ui: invalid log_level %q", c.UI.LogLevel)
	}
	if c.Simulate.Games < 1 {
		return fmt.Errorf("simulate: games must be positive, got %d", c.Simulate.Games)
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("simulate: workers must be positive, got %d", c.Simulate.Workers)
	}

	valid := false
	for _, s := range Strategies {
		if s == c.Simulate.Strategy {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("simulate: invalid strategy %q", c.Simulate.Strategy)
	}

	return nil
}

// ColorEnabled reports whether coloured output is on
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// LogLevel returns the parsed UI log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
