// Package vars provides a ready-made custom loader over a static map of
// values, optionally read from a YAML, TOML, or JSON file.
//
// It is the simplest way to exercise the custom-source contract: register a
// vars loader under a tag of your choice and reference it from the template.
//
//	values, _ := vars.FromFile("deploy.yaml")
//	in := inject.New("image: %app:image%")
//	in.RegisterLoader("app", values)
package vars

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/injectkit/loader"
)

// Loader serves values from an in-memory map.
type Loader struct {
	values map[string]string
}

// FromMap creates a Loader over the given values.
func FromMap(values map[string]string) *Loader {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Loader{values: copied}
}

// FromFile creates a Loader from a file of key/value pairs. The format is
// chosen by extension: .yaml/.yml, .toml, or .json. Non-string scalar values
// are stringified.
func FromFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vars file: %w", err)
	}

	raw := make(map[string]any)
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML vars file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML vars file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON vars file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported vars file extension %q (want .yaml, .yml, .toml, or .json)", ext)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = stringify(v)
	}
	return &Loader{values: values}, nil
}

// Load returns the value stored under key.
func (l *Loader) Load(_ context.Context, key string) (string, error) {
	value, ok := l.values[key]
	if !ok {
		return "", fmt.Errorf("variable %q: %w", key, loader.ErrNotFound)
	}
	return value, nil
}

// Len returns the number of values the loader holds.
func (l *Loader) Len() int {
	return len(l.values)
}

// stringify renders a scalar the way it appeared in the file. Nested
// structures are not supported as placeholder values and render via fmt.
func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
