package enummap

import (
	"errors"
	"fmt"
)

// Sentinel errors for mapping failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidLabel indicates a label had no corresponding value in the mapping.
	ErrInvalidLabel = errors.New("label not found in mapping")

	// ErrInvalidValue indicates a value had no corresponding label in the mapping.
	ErrInvalidValue = errors.New("value not found in mapping")

	// ErrMalformedConstruction indicates the number of entries supplied at
	// construction did not match the declared entry count. No mapping is
	// built when this error is returned.
	ErrMalformedConstruction = errors.New("entry count does not match declared size")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidLabel represents label-to-value lookups that found no entry.
	KindInvalidLabel = "invalid_label"

	// KindInvalidValue represents value-to-label lookups that found no entry.
	KindInvalidValue = "invalid_value"

	// KindMalformedConstruction represents construction-time arity mismatches.
	KindMalformedConstruction = "malformed_construction"
)

// MapError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// failure.
//
// MapError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type MapError struct {
	// Op is the operation that failed (e.g., "Mapping.Value", "mapfile.Parse").
	Op string

	// Kind categorizes the error (e.g., KindInvalidLabel, KindInvalidValue).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include the offending label or value.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *MapError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enummap: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enummap: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enummap: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *MapError) Unwrap() error {
	return e.Err
}

// Is implements error matching for MapError, allowing comparison based on
// the underlying error or on another MapError's Op and Kind.
func (e *MapError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*MapError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context added.
func (e *MapError) WithContext(ctx map[string]any) *MapError {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// newInvalidLabelError creates a *MapError for a label that resolved to nothing.
func newInvalidLabelError(op, label string) *MapError {
	return &MapError{
		Op:      op,
		Kind:    KindInvalidLabel,
		Err:     ErrInvalidLabel,
		Context: map[string]any{"label": label},
	}
}

// newInvalidValueError creates a *MapError for a value that resolved to nothing.
func newInvalidValueError(op string, value any) *MapError {
	return &MapError{
		Op:      op,
		Kind:    KindInvalidValue,
		Err:     ErrInvalidValue,
		Context: map[string]any{"value": value},
	}
}

// newMalformedError creates a *MapError for a declared-size mismatch.
func newMalformedError(op string, declared, supplied int) *MapError {
	return &MapError{
		Op:      op,
		Kind:    KindMalformedConstruction,
		Err:     ErrMalformedConstruction,
		Context: map[string]any{"declared": declared, "supplied": supplied},
	}
}
