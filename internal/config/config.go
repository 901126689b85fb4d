// Package config handles tool configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the default config file name, looked up in the current
	// directory.
	ConfigFile = "vecverify.yml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "VECVERIFY_CONFIG"

	// DefaultInput is the embeddings file checked when none is configured.
	DefaultInput = "quickstart_embeddings.json"

	// DefaultDimensions is the expected embedding dimensionality.
	DefaultDimensions = 1024
)

// DefaultSampleTexts are the self-test inputs used when the config file does
// not provide its own.
var DefaultSampleTexts = []string{
	"The protagonist is a skilled warrior named John",
	"John met Alice in the tavern last week",
	"The kingdom has been at war for three years",
	"warrior",
	"character",
}

// Config represents tool configuration stored in vecverify.yml.
// Validation thresholds are product constants, not configuration.
type Config struct {
	Input       string   `yaml:"input,omitempty"`        // embeddings file for check
	Dimensions  int      `yaml:"dimensions,omitempty"`   // expected dimensionality
	SampleTexts []string `yaml:"sample_texts,omitempty"` // self-test inputs
}

// Path returns the config file location: $VECVERIFY_CONFIG if set, else
// ./vecverify.yml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return ConfigFile
}

// Load reads configuration from Path().
// A missing file yields the defaults, not an error.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Dimensions < 0 {
		return nil, fmt.Errorf("config: dimensions must be positive, got %d", cfg.Dimensions)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Dimensions == 0 {
		c.Dimensions = DefaultDimensions
	}
	if len(c.SampleTexts) == 0 {
		c.SampleTexts = append([]string(nil), DefaultSampleTexts...)
	}
}
