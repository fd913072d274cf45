package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for loader operations.
var (
	// ErrUnsupportedSource indicates a placeholder tag with no loader behind
	// it: not a built-in, and no custom loader registered for it.
	ErrUnsupportedSource = errors.New("unsupported value source")

	// ErrNotFound indicates the source has no value for the requested key.
	ErrNotFound = errors.New("value not found")
)

// Error wraps loader failures with the source, operation, and key involved,
// so a top-level caller can render a precise diagnostic.
type Error struct {
	Source string // Template tag of the source ("env", "awsssm", ...)
	Op     string // Operation that failed ("construct", "load")
	Key    string // Placeholder key, empty for construction failures
	Err    error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Source, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a missing-key failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
