// Package env provides the built-in loader for environment variables.
//
// Template usage:
//
//	Hello %env:USER%!
//
// The key is the name of the environment variable. An unset variable is a
// load failure, not an empty value.
package env

import (
	"context"
	"fmt"
	"os"

	"github.com/randalmurphal/injectkit/loader"
)

// TemplateKey is the placeholder tag that selects this loader.
const TemplateKey = "env"

func init() {
	loader.RegisterBuiltin(TemplateKey, func(_ context.Context) (loader.Loader, error) {
		return New(), nil
	})
}

// Loader loads values from environment variables.
type Loader struct {
	lookup func(key string) (string, bool)
}

// Option configures a Loader.
type Option func(*Loader)

// WithLookup substitutes the environment lookup function, so tests can run
// against a fake environment instead of the process one.
func WithLookup(lookup func(key string) (string, bool)) Option {
	return func(l *Loader) {
		l.lookup = lookup
	}
}

// New creates a Loader backed by the process environment.
func New(opts ...Option) *Loader {
	l := &Loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the value of the environment variable named by key.
func (l *Loader) Load(_ context.Context, key string) (string, error) {
	value, ok := l.lookup(key)
	if !ok {
		return "", fmt.Errorf("environment variable %q: %w", key, loader.ErrNotFound)
	}
	return value, nil
}
