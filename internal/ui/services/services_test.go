package services

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/stretchr/testify/assert"
)

type mockRenderer struct {
	out   string
	err   error
	width int
}

func (m *mockRenderer) Render(content string, width int) (string, error) {
	m.width = width
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func TestRenderMarkdown(t *testing.T) {
	r := &mockRenderer{out: "rendered"}
	assert.Equal(t, "rendered", RenderMarkdown("# hi", 60, r))
	assert.Equal(t, 60, r.width)
}

func TestRenderMarkdown_DefaultWidth(t *testing.T) {
	r := &mockRenderer{out: "rendered"}
	RenderMarkdown("# hi", 0, r)
	assert.Equal(t, 80, r.width)
}

func TestRenderMarkdown_FallsBack(t *testing.T) {
	assert.Equal(t, "# hi", RenderMarkdown("# hi", 80, &mockRenderer{err: errors.New("bad style")}))
	assert.Equal(t, "# hi", RenderMarkdown("# hi", 80, nil))
}

func TestGlamourRenderer_NoTTY(t *testing.T) {
	out, err := NewGlamourRenderer("notty").Render("# Title\n\nbody text", 80)
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

func TestRunReport_Success(t *testing.T) {
	run := workflow.RunState{Status: workflow.StatusSuccess, Output: []string{"done"}, Done: true}

	report := RunReport("valuation run", run, []ReportField{
		{Name: "Config", Value: "liability_config_2.json"},
		{Name: "Output", Value: ""},
	})

	assert.Contains(t, report, "# valuation run")
	assert.Contains(t, report, "✔ Success")
	assert.Contains(t, report, "`liability_config_2.json`")
	assert.NotContains(t, report, "| Output |")
	assert.Contains(t, report, "## Output")
	assert.NotContains(t, report, "## Errors")
}

func TestRunReport_Failure(t *testing.T) {
	run := workflow.RunState{Status: "Error: exit status 1", HadError: true, Errors: []string{"trace"}}

	report := RunReport("risk run", run, nil)

	assert.Contains(t, report, "✘ Error: exit status 1")
	assert.Contains(t, report, "## Errors")
	assert.Contains(t, report, "trace")
}

func TestRunReport_TailsLongOutput(t *testing.T) {
	var lines []string
	for i := 0; i < maxReportLines+5; i++ {
		lines = append(lines, "line")
	}
	lines[len(lines)-1] = "last line"

	report := RunReport("r", workflow.RunState{Status: workflow.StatusSuccess, Output: lines}, nil)

	assert.Contains(t, report, "_5 earlier lines omitted_")
	assert.Contains(t, report, "last line")
}
