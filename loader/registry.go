package loader

import (
	"context"
	"fmt"
)

// Registry owns the live loader instances of one resolution session. Built-in
// loaders are constructed lazily on first use and cached for the rest of the
// session, so a loader that batch-fetches on construction serves every later
// lookup from memory.
//
// A Registry is a single-writer resource: Resolve mutates it, and no internal
// locking is provided. Run at most one resolution session against a given
// Registry at a time.
type Registry struct {
	loaders map[Source]Loader
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[Source]Loader)}
}

// Register stores a caller-supplied loader for a source, overwriting any
// existing entry. Custom sources must be registered before resolution begins;
// registering a built-in source overrides its default construction.
func (r *Registry) Register(src Source, l Loader) {
	r.loaders[src] = l
}

// Resolve returns the loader for a source. A cached instance is returned if
// present. Otherwise, a built-in source has its default loader constructed
// and cached; a custom source with no registered loader is an error, wrapping
// ErrUnsupportedSource with the offending tag.
func (r *Registry) Resolve(ctx context.Context, src Source) (Loader, error) {
	if l, ok := r.loaders[src]; ok {
		return l, nil
	}

	factory, ok := builtinFactory(src.Tag())
	if !ok || !src.IsBuiltin() {
		return nil, fmt.Errorf("%w: %s (custom sources must be registered before parsing)",
			ErrUnsupportedSource, src.Tag())
	}

	l, err := factory(ctx)
	if err != nil {
		return nil, &Error{Source: src.Tag(), Op: "construct", Err: err}
	}

	r.loaders[src] = l
	return l, nil
}
