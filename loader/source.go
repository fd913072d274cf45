package loader

// Source identifies where a placeholder's value comes from: a built-in
// loader known by its template tag, or a custom source supplied by the
// caller. Source values are comparable and used as Registry keys.
type Source struct {
	tag     string
	builtin bool
}

// FromTag resolves a template tag to a Source. Tags registered by a builtin
// package resolve to a built-in identity; every other tag resolves to a
// custom identity. FromTag never fails — whether a custom tag has a loader
// behind it is decided at Resolve time.
func FromTag(tag string) Source {
	return Source{tag: tag, builtin: IsBuiltin(tag)}
}

// Custom returns the custom Source identity for tag, regardless of whether
// a builtin is registered under the same tag.
func Custom(tag string) Source {
	return Source{tag: tag}
}

// Tag returns the template tag of the source.
func (s Source) Tag() string { return s.tag }

// IsBuiltin reports whether the source is backed by a built-in loader.
func (s Source) IsBuiltin() bool { return s.builtin }

// String implements fmt.Stringer.
func (s Source) String() string {
	if s.builtin {
		return s.tag
	}
	return "custom:" + s.tag
}
