// Package loader defines the Loader capability used to fetch placeholder
// values, the Source identity that names where a value comes from, and the
// per-session Registry that owns live loader instances.
//
// Built-in loaders live in their own packages (env, ec2metadata, ec2tag, ssm)
// and register a Factory in their init() function. Importing a builtin
// package is what makes its template tag recognized:
//
//	import _ "github.com/randalmurphal/injectkit/env"
//
// The loaders package blank-imports all of them for convenience.
package loader

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Loader loads a string value from a source by its key.
//
// For example, an implementation could read an environment variable, or
// query an external key value store like etcd. Because the value may be
// loaded over a network, Load takes a context for cancellation and
// deadlines.
type Loader interface {
	// Load returns the value stored under key. The key is the text between
	// the ':' and the closing '%' of a placeholder, verbatim.
	Load(ctx context.Context, key string) (string, error)
}

// Func adapts an ordinary function to the Loader interface.
type Func func(ctx context.Context, key string) (string, error)

// Load implements Loader.
func (f Func) Load(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}

// Factory constructs a built-in Loader. Construction may itself require
// I/O (for example discovering ambient credentials), so it takes a context
// and may fail.
type Factory func(ctx context.Context) (Loader, error)

// builtins maps template tags to the factories of built-in loaders.
var (
	builtinsMu sync.RWMutex
	builtins   = make(map[string]Factory)
)

// RegisterBuiltin adds a built-in loader factory for the given template tag.
// Builtin packages call this in their init() function. Panics if the tag is
// already registered.
//
// Example:
//
//	func init() {
//	    loader.RegisterBuiltin("env", func(ctx context.Context) (loader.Loader, error) {
//	        return New(), nil
//	    })
//	}
func RegisterBuiltin(tag string, factory Factory) {
	builtinsMu.Lock()
	defer builtinsMu.Unlock()

	if _, exists := builtins[tag]; exists {
		panic(fmt.Sprintf("builtin loader %q already registered", tag))
	}
	builtins[tag] = factory
}

// IsBuiltin reports whether tag names a registered built-in loader.
func IsBuiltin(tag string) bool {
	builtinsMu.RLock()
	defer builtinsMu.RUnlock()

	_, ok := builtins[tag]
	return ok
}

// Builtins returns the tags of all registered built-in loaders, sorted
// alphabetically for consistent ordering.
func Builtins() []string {
	builtinsMu.RLock()
	defer builtinsMu.RUnlock()

	tags := make([]string, 0, len(builtins))
	for tag := range builtins {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// builtinFactory returns the factory registered for tag, if any.
func builtinFactory(tag string) (Factory, bool) {
	builtinsMu.RLock()
	defer builtinsMu.RUnlock()

	factory, ok := builtins[tag]
	return factory, ok
}

// UnregisterBuiltin removes a built-in loader factory.
// This is primarily useful for testing.
func UnregisterBuiltin(tag string) {
	builtinsMu.Lock()
	defer builtinsMu.Unlock()

	delete(builtins, tag)
}
