package inject

import (
	"context"
	"log/slog"
	"strings"

	"github.com/randalmurphal/injectkit/loader"
)

// Injector resolves the placeholders of one template. It owns the loader
// registry for the session, so loaders instantiated for one placeholder are
// reused by every later placeholder of the same source.
//
// An Injector is not safe for concurrent use; run one resolution at a time.
type Injector struct {
	template string
	registry *loader.Registry
	logger   *slog.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger attaches a logger for debug output. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Injector) {
		in.logger = logger
	}
}

// WithRegistry substitutes the loader registry used by the session.
// Useful for tests that pre-seed loaders without going through tags.
func WithRegistry(r *loader.Registry) Option {
	return func(in *Injector) {
		in.registry = r
	}
}

// New creates an Injector for the given template text.
func New(template string, opts ...Option) *Injector {
	in := &Injector{
		template: template,
		registry: loader.NewRegistry(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// RegisterLoader registers a loader under a template tag, making
// %tag:anything% placeholders resolve through it. Call it before Parse or
// Process. Registering a built-in tag overrides the default loader for
// that source.
func (in *Injector) RegisterLoader(tag string, l loader.Loader) {
	in.registry.Register(loader.FromTag(tag), l)
}

// Parse scans the template and loads a value for each distinct placeholder,
// in first-occurrence order, returning the map of placeholder literal text
// to resolved value.
//
// Loads are strictly sequential. The first failure — an unsupported source,
// a loader that fails to construct, or a load that fails — aborts the parse
// and is returned with no replacement map.
func (in *Injector) Parse(ctx context.Context) (map[string]string, error) {
	placeholders := Placeholders(in.template)
	replacements := make(map[string]string, len(placeholders))

	for _, ph := range placeholders {
		src := loader.FromTag(ph.Tag)

		l, err := in.registry.Resolve(ctx, src)
		if err != nil {
			return nil, err
		}

		value, err := l.Load(ctx, ph.Key)
		if err != nil {
			return nil, &loader.Error{Source: src.Tag(), Op: "load", Key: ph.Key, Err: err}
		}

		if in.logger != nil {
			in.logger.Debug("placeholder resolved",
				slog.String("source", src.String()),
				slog.String("key", ph.Key),
			)
		}

		replacements[ph.Text] = value
	}

	return replacements, nil
}

// Process parses the template and replaces every literal occurrence of each
// placeholder with its resolved value, returning the substituted text.
//
// Replacement is by exact literal substring, and resolved values are not
// re-scanned: a value that itself contains %tag:key%-shaped text is inserted
// verbatim. A template without placeholders is returned unchanged.
func (in *Injector) Process(ctx context.Context) (string, error) {
	replacements, err := in.Parse(ctx)
	if err != nil {
		return "", err
	}

	output := in.template
	for text, value := range replacements {
		output = strings.ReplaceAll(output, text, value)
	}
	return output, nil
}
