package views

import (
	"strings"

	"github.com/Cyclone1070/palm/internal/workflow"
)

// FormatOutput renders stdout lines followed by error lines, wrapped to
// width when width is positive.
func FormatOutput(run workflow.RunState, width int) string {
	out := OutputLineStyle
	errs := ErrorLineStyle
	if width > 0 {
		out = out.Width(width)
		errs = errs.Width(width)
	}

	lines := make([]string, 0, len(run.Output)+len(run.Errors))
	for _, l := range run.Output {
		lines = append(lines, out.Render(l))
	}
	for _, l := range run.Errors {
		lines = append(lines, errs.Render(l))
	}
	return strings.Join(lines, "\n")
}

// RenderOutput renders the scrolling output pane.
func RenderOutput(view string) string {
	return OutputPaneStyle.Render(view)
}
