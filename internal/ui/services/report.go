package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/palm/internal/workflow"
)

// maxReportLines caps how many lines of each stream a report quotes.
const maxReportLines = 20

// ReportField is one row of a run report's summary table.
type ReportField struct {
	Name  string
	Value string
}

// RunReport builds the markdown summary printed after a run.
func RunReport(title string, run workflow.RunState, fields []ReportField) string {
	var sb strings.Builder

	result := "✔ Success"
	if !run.Succeeded() {
		result = "✘ Failed"
		if run.Status != "" && run.Status != workflow.StatusSuccess {
			result = "✘ " + run.Status
		}
	}

	fmt.Fprintf(&sb, "# %s\n\n**Result:** %s\n\n", title, result)

	if len(fields) > 0 {
		sb.WriteString("| | |\n|---|---|\n")
		for _, f := range fields {
			if f.Value == "" {
				continue
			}
			fmt.Fprintf(&sb, "| %s | `%s` |\n", f.Name, f.Value)
		}
		sb.WriteString("\n")
	}

	writeTail(&sb, "Output", run.Output)
	writeTail(&sb, "Errors", run.Errors)

	return sb.String()
}

func writeTail(sb *strings.Builder, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", heading)
	if n := len(lines) - maxReportLines; n > 0 {
		fmt.Fprintf(sb, "_%d earlier lines omitted_\n\n", n)
		lines = lines[n:]
	}
	sb.WriteString("```\n")
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")
}
