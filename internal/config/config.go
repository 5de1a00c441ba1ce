package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revguard/cli/internal/rules"
)

// Config represents the revguard configuration. Everything is optional;
// missing fields keep their defaults.
type Config struct {
	// Output settings
	Output OutputConfig `yaml:"output"`

	// Code-smell thresholds
	Smells SmellConfig `yaml:"smells"`

	// User-defined rules appended to the embedded catalog. They are
	// validated with the same fail-fast loader as the built-in rules.
	ExtraRules []rules.RuleSpec `yaml:"extra_rules"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	// Default output format (text, json)
	Format string `yaml:"format"`

	// Whether to show detailed information by default
	Detailed bool `yaml:"detailed"`
}

// SmellConfig overrides the code-smell thresholds.
type SmellConfig struct {
	LongLine         int `yaml:"long_line"`
	DeepNesting      int `yaml:"deep_nesting"`
	ComplexCondition int `yaml:"complex_condition"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	defaults := rules.DefaultSmellThresholds()
	return &Config{
		Output: OutputConfig{Format: "text"},
		Smells: SmellConfig{
			LongLine:         defaults.LongLine,
			DeepNesting:      defaults.DeepNesting,
			ComplexCondition: defaults.ComplexCondition,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Thresholds converts the smell settings into engine thresholds.
func (c *Config) Thresholds() rules.SmellThresholds {
	return rules.SmellThresholds{
		LongLine:         c.Smells.LongLine,
		DeepNesting:      c.Smells.DeepNesting,
		ComplexCondition: c.Smells.ComplexCondition,
	}
}
