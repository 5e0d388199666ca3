package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/Cyclone1070/palm/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
)

// Watch shows the run viewer until events delivers a DoneEvent, the
// channel closes, or the user quits. It returns the accumulated state.
func Watch(ctx context.Context, title string, events <-chan workflow.Event, in io.Reader, out io.Writer) (workflow.RunState, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(NewRunModel(title, events, nil), opts...).Run()
	if err != nil {
		return workflow.RunState{}, fmt.Errorf("run viewer: %w", err)
	}
	return final.(RunModel).State(), nil
}
