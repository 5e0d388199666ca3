package launcher

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when a launch exceeds its timeout.
var ErrTimeout = errors.New("launch timeout")

// ErrNoExecutable is returned when a request names no program.
var ErrNoExecutable = errors.New("no executable given")

// CommandError represents launch failures (start, execution).
type CommandError struct {
	Cmd   string
	Cause error
	Stage string // "resolve", "start", "execution"
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}
func (e *CommandError) Unwrap() error { return e.Cause }

// ScriptError is returned when a helper script exits unsuccessfully.
type ScriptError struct {
	Script   string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("error running script %s: %v, stderr: %s", e.Script, e.Cause, e.Stderr)
}
func (e *ScriptError) Unwrap() error { return e.Cause }
