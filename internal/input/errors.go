package input

import (
	"errors"
	"fmt"
)

// Fatal load error kinds. Match them with errors.Is.
var (
	ErrMissingFile         = errors.New("missing file")
	ErrEmptyFile           = errors.New("empty file")
	ErrMalformedDimensions = errors.New("malformed dimensions")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
)

// LoadError describes why a map file could not be loaded.
type LoadError struct {
	Kind    error  // One of the Err* kinds above
	Path    string // Source path, empty for in-memory input
	Message string
	Err     error // Underlying cause, may be nil
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Path, msg)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newLoadError(kind error, format string, args ...any) *LoadError {
	return &LoadError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
