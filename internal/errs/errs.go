// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested resume does not exist (or is private).
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates a malformed resume identifier.
	ErrInvalidID = errors.New("invalid id")

	// ErrExportSurface indicates the headless print surface could not be
	// created or driven. Recoverable by retrying the export.
	ErrExportSurface = errors.New("export surface unavailable")
)

// FieldError pinpoints a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level validation failures.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
