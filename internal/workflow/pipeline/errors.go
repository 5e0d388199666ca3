package pipeline

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/palm/internal/workflow"
)

// StageError wraps a failure with the pipeline step it happened in.
type StageError struct {
	Stage workflow.Stage
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}
func (e *StageError) Unwrap() error { return e.Cause }

// ErrNoDocument is returned when a request carries no config document.
var ErrNoDocument = errors.New("no config document")
