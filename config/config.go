// Package config holds the configuration of the injectkit CLI.
//
// Configuration is merged from three layers, later layers winning: a TOML
// config file, INJECTKIT_* environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tagPattern is the placeholder tag grammar: lowercase letters and digits.
var tagPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Config configures one injectkit run.
type Config struct {
	// Output is the path the rendered template is written to.
	// Empty means standard output.
	Output string `json:"output,omitempty" toml:"output" yaml:"output" jsonschema:"description=Path to write the rendered output to. Writes to stdout when empty."`

	// Watch re-renders the template whenever the input file or a vars file
	// changes.
	Watch bool `json:"watch,omitempty" toml:"watch" yaml:"watch" jsonschema:"description=Re-render whenever the input or a vars file changes."`

	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose,omitempty" toml:"verbose" yaml:"verbose" jsonschema:"description=Log each placeholder resolution to stderr."`

	// Vars maps custom placeholder tags to the files their values are read
	// from (.yaml, .yml, .toml, or .json).
	Vars map[string]string `json:"vars,omitempty" toml:"vars" yaml:"vars" jsonschema:"description=Custom placeholder tags mapped to the value files that back them."`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Vars: make(map[string]string),
	}
}

// LoadFile reads a TOML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if cfg.Vars == nil {
		cfg.Vars = make(map[string]string)
	}
	return cfg, nil
}

// LoadFromEnv populates config fields from environment variables.
// Variables use the INJECTKIT_ prefix and take precedence over file values.
//
// Supported variables:
//   - INJECTKIT_OUTPUT: output path
//   - INJECTKIT_WATCH: "true" or "1"
//   - INJECTKIT_VERBOSE: "true" or "1"
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("INJECTKIT_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("INJECTKIT_WATCH"); v == "true" || v == "1" {
		c.Watch = true
	}
	if v := os.Getenv("INJECTKIT_VERBOSE"); v == "true" || v == "1" {
		c.Verbose = true
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for tag, path := range c.Vars {
		if !tagPattern.MatchString(tag) {
			return fmt.Errorf("invalid vars tag %q: tags are lowercase letters and digits", tag)
		}
		if path == "" {
			return fmt.Errorf("vars tag %q has no file path", tag)
		}
	}
	return nil
}
