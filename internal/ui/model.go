// Package ui is the terminal viewer for pALM runs. It follows the workflow
// event stream: output lines in gray, error lines in red, then a ✔ or ✘.
package ui

import (
	"github.com/Cyclone1070/palm/internal/ui/models"
	"github.com/Cyclone1070/palm/internal/ui/views"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner shown while a run is in progress.
func DefaultSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(views.StatusRunningStyle))
}

// RunModel implements tea.Model
type RunModel struct {
	state models.State

	// Pipeline -> UI
	events <-chan workflow.Event
}

// NewRunModel creates a viewer fed from events.
func NewRunModel(title string, events <-chan workflow.Event, spinnerFactory SpinnerFactory) RunModel {
	if spinnerFactory == nil {
		spinnerFactory = DefaultSpinner
	}
	return RunModel{
		state: models.State{
			Title:    title,
			Viewport: viewport.New(80, 20),
			Spinner:  spinnerFactory(),
		},
		events: events,
	}
}

// State returns the accumulated run state.
func (m RunModel) State() workflow.RunState {
	return m.state.Run
}

// View renders the UI
func (m RunModel) View() string {
	return views.RenderRoot(m.state)
}
