package config

import (
	"errors"
	"fmt"
)

// ParseError is returned when the config file is not valid JSON or does not
// fit the Config shape.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", ConfigFile, e.Cause)
}
func (e *ParseError) Unwrap() error { return e.Cause }

// ValidationError wraps every validation failure found in one pass.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %v", e.Cause)
}
func (e *ValidationError) Unwrap() error { return e.Cause }

// -- Sentinels --
var (
	ErrMissingPath   = errors.New("required path not configured")
	ErrUnknownModule = errors.New("unknown module")
)
