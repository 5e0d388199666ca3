package fsutil

import "fmt"

// ListDirError is returned when a directory listing fails.
type ListDirError struct {
	Dir   string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("list %s: %v", e.Dir, e.Cause)
}

func (e *ListDirError) Unwrap() error { return e.Cause }

// Write steps reported by WriteError.
const (
	OpCreateTemp = "create temp file"
	OpWrite      = "write"
	OpSync       = "sync"
	OpClose      = "close"
	OpChmod      = "chmod"
	OpRename     = "rename"
)

// WriteError is returned when WriteFileAtomic fails. Op names the step; the
// target is left untouched for every step.
type WriteError struct {
	Path  string
	Op    string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
