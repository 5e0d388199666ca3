package views

import (
	"fmt"

	"github.com/Cyclone1070/palm/internal/ui/models"
	"github.com/Cyclone1070/palm/internal/workflow"
)

// RenderStatus renders the status line under the output pane.
func RenderStatus(s models.State) string {
	run := s.Run

	if s.Running() {
		label := "Running"
		if run.Stage != "" {
			label = fmt.Sprintf("Running %s", run.Stage)
		}
		if run.HadError {
			return StatusFailedStyle.Render(fmt.Sprintf("%s %s (errors reported)", s.Spinner.View(), label))
		}
		return StatusRunningStyle.Render(fmt.Sprintf("%s %s", s.Spinner.View(), label))
	}

	if run.Succeeded() {
		return StatusDoneStyle.Render("✔ " + workflow.StatusSuccess)
	}
	if run.HadError {
		msg := run.Status
		if msg == "" || msg == workflow.StatusSuccess {
			msg = "Failed"
		}
		return StatusFailedStyle.Render("✘ " + msg)
	}
	return StatusDefaultStyle.Render("Finished")
}
