package liability

import (
	"errors"
	"fmt"
)

// DecodeError is returned when a liability config cannot be parsed.
type DecodeError struct {
	Path  string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode liability config: %v", e.Cause)
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Cause)
}
func (e *DecodeError) Unwrap() error { return e.Cause }

// OverrideError reports a single key=value override that could not be applied.
type OverrideError struct {
	Key   string
	Value string
	Cause error
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("override %s=%q: %v", e.Key, e.Value, e.Cause)
}
func (e *OverrideError) Unwrap() error { return e.Cause }

// WriteError is returned when a new config version cannot be written.
type WriteError struct {
	Dir   string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write liability config in %s: %v", e.Dir, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }

// -- Sentinels --
var (
	ErrMalformedOverride = errors.New("override must be key=value")
	ErrUnknownKey        = errors.New("key not present in config")
	ErrTypeMismatch      = errors.New("value does not match existing type")
)
