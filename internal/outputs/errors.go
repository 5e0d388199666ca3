package outputs

import (
	"errors"
	"fmt"
)

// IgnoreReadError is returned when .palmignore exists but cannot be read.
type IgnoreReadError struct {
	Path  string
	Cause error
}

func (e *IgnoreReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *IgnoreReadError) Unwrap() error { return e.Cause }

// ParseError is returned when an output CSV cannot be parsed.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Cause)
}
func (e *ParseError) Unwrap() error { return e.Cause }

// ErrColumnNotFound is returned when a header is missing from a CSV.
var ErrColumnNotFound = errors.New("column not found")
