package types

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================
// Each kind is a sentinel so callers can use errors.Is regardless of which
// concrete error carries it.

var (
	// ErrPathNotFound means the raw data directory is missing or unlistable.
	ErrPathNotFound = errors.New("path not found")

	// ErrMalformedInput means a raw file or one of its fields is unusable.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNumericFormat means a field could not be coerced to a number.
	// It is a kind of ErrMalformedInput.
	ErrNumericFormat = fmt.Errorf("%w: numeric format", ErrMalformedInput)

	// ErrDeletion means a consumed raw file could not be purged.
	ErrDeletion = errors.New("deletion failed")
)

// PathError reports a directory that could not be listed.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path to raw data does not exist: '%s': %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() []error { return []error{ErrPathNotFound, e.Err} }

// FieldError reports a single field that failed coercion.
type FieldError struct {
	File  string
	Row   int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	loc := e.File
	if e.Row > 0 {
		loc = fmt.Sprintf("%s row %d", e.File, e.Row)
	}
	return fmt.Sprintf("%s: field '%s' value '%s': %v", loc, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// DeletionError reports a raw file that could not be removed during purge.
type DeletionError struct {
	File string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("failed to remove '%s': %v", e.File, e.Err)
}

func (e *DeletionError) Unwrap() []error { return []error{ErrDeletion, e.Err} }
