package models

import (
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// State holds everything the run viewer renders.
type State struct {
	Title string
	Run   workflow.RunState

	Viewport viewport.Model
	Spinner  spinner.Model

	Width  int
	Height int
}

// Running reports whether the run is still in progress.
func (s State) Running() bool {
	return !s.Run.Done
}
