package pipeline

import (
	"context"
	"os"

	"github.com/Cyclone1070/palm/internal/launcher"
	"github.com/Cyclone1070/palm/internal/workflow"
)

// processRunner starts the pALM launcher and helper scripts.
type processRunner interface {
	// Start runs the launcher, emitting StdoutEvent, StderrEvent and one
	// CompletedEvent to events.
	Start(ctx context.Context, req launcher.Request, events chan<- workflow.Event) error

	// RunScript runs a helper script to completion.
	RunScript(ctx context.Context, req launcher.ScriptRequest) (*launcher.ScriptResult, error)
}

// configStore lists config folders and writes new config versions.
type configStore interface {
	ListNames(dir string) ([]string, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}
