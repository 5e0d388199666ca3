package views

import (
	"strings"
	"testing"

	"github.com/Cyclone1070/palm/internal/outputs"
	"github.com/Cyclone1070/palm/internal/ui/models"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

func TestFormatOutput_OrdersStreams(t *testing.T) {
	run := workflow.RunState{
		Output: []string{"first", "second"},
		Errors: []string{"bad"},
	}

	out := FormatOutput(run, 0)

	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	bad := strings.Index(out, "bad")
	assert.True(t, first >= 0 && first < second && second < bad, "unexpected order: %q", out)
}

func TestFormatOutput_Empty(t *testing.T) {
	assert.Empty(t, FormatOutput(workflow.RunState{}, 40))
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name     string
		run      workflow.RunState
		contains string
	}{
		{
			name:     "running with stage",
			run:      workflow.RunState{Stage: workflow.StageLaunch},
			contains: "Running launch",
		},
		{
			name:     "running with errors",
			run:      workflow.RunState{HadError: true},
			contains: "errors reported",
		},
		{
			name:     "success",
			run:      workflow.RunState{Status: workflow.StatusSuccess, Done: true},
			contains: "✔ Success",
		},
		{
			name:     "error status",
			run:      workflow.RunState{Status: "Error: exit status 2", HadError: true, Done: true},
			contains: "✘ Error: exit status 2",
		},
		{
			name:     "stderr with clean exit",
			run:      workflow.RunState{Status: workflow.StatusSuccess, HadError: true, Done: true},
			contains: "✘ Failed",
		},
		{
			name:     "finished without completion",
			run:      workflow.RunState{Done: true},
			contains: "Finished",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.State{Run: tt.run, Spinner: spinner.New()}
			assert.Contains(t, RenderStatus(s), tt.contains)
		})
	}
}

func TestRenderTable(t *testing.T) {
	file := outputs.CSVFile{
		Name: "Parsed_Scenario_1.csv",
		Data: [][]string{
			{"Year", "Value"},
			{"2024", "1.5"},
			{"2025", "2.5"},
			{"2026", "3.5"},
		},
	}

	out := RenderTable(file, 2)

	assert.Contains(t, out, "Parsed_Scenario_1.csv")
	assert.Contains(t, out, "Year")
	assert.Contains(t, out, "2025")
	assert.NotContains(t, out, "2026")
	assert.Contains(t, out, "1 more rows")
}

func TestRenderTable_AllRows(t *testing.T) {
	file := outputs.CSVFile{
		Name: "a.csv",
		Data: [][]string{{"h"}, {"x"}, {"y"}},
	}

	out := RenderTable(file, 0)

	assert.Contains(t, out, "y")
	assert.NotContains(t, out, "more rows")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Contains(t, RenderTable(outputs.CSVFile{Name: "a.csv"}, 5), "a.csv: empty")
}
