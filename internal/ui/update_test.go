package ui

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockSpinnerFactory() spinner.Model {
	return spinner.New()
}

func createTestModel(events chan workflow.Event) RunModel {
	return NewRunModel("valuation", events, mockSpinnerFactory)
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInit_ReturnsCommands(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))
	assert.NotNil(t, model.Init())
}

func TestUpdate_StdoutEvent_AppendsAndListens(t *testing.T) {
	events := make(chan workflow.Event, 1)
	model := createTestModel(events)

	newModel, cmd := model.Update(eventMsg{event: workflow.StdoutEvent{Line: "step 1"}})
	m := newModel.(RunModel)

	assert.Equal(t, []string{"step 1"}, m.State().Output)
	assert.False(t, m.State().Done)
	require.NotNil(t, cmd)

	// The returned command reads the next event from the channel.
	events <- workflow.StderrEvent{Line: "boom"}
	msg := cmd()
	assert.Equal(t, eventMsg{event: workflow.StderrEvent{Line: "boom"}}, msg)
}

func TestUpdate_StderrEvent_MarksError(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(eventMsg{event: workflow.StderrEvent{Line: "warning"}})
	m := newModel.(RunModel)

	assert.True(t, m.State().HadError)
	assert.Equal(t, []string{"warning"}, m.State().Errors)
}

func TestUpdate_DoneEvent_Quits(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(eventMsg{event: workflow.CompletedEvent{Status: workflow.StatusSuccess}})
	newModel, cmd := newModel.(RunModel).Update(eventMsg{event: workflow.DoneEvent{}})
	state := newModel.(RunModel).State()

	assert.True(t, state.Done)
	assert.True(t, state.Succeeded())
	assert.True(t, isQuit(t, cmd))
}

func TestUpdate_FailedEvent_RecordsError(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(eventMsg{event: workflow.FailedEvent{Err: errors.New("write config: denied")}})
	m := newModel.(RunModel)

	assert.True(t, m.State().HadError)
	assert.Contains(t, m.State().Errors, "write config: denied")
}

func TestUpdate_EventsClosed_Quits(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, cmd := model.Update(eventsClosedMsg{})
	m := newModel.(RunModel)

	assert.True(t, m.State().Done)
	assert.True(t, isQuit(t, cmd))
}

func TestListenForEvents_ClosedChannel(t *testing.T) {
	events := make(chan workflow.Event)
	close(events)

	assert.Equal(t, eventsClosedMsg{}, listenForEvents(events)())
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(key.String(), func(t *testing.T) {
			model := createTestModel(make(chan workflow.Event))
			_, cmd := model.Update(key)
			assert.True(t, isQuit(t, cmd))
		})
	}
}

func TestUpdate_WindowSize_ResizesViewport(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := newModel.(RunModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 40, m.state.Height)
	assert.Equal(t, 96, m.state.Viewport.Width)
	assert.Equal(t, 35, m.state.Viewport.Height)
}

func TestUpdate_WindowSize_Tiny(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 2, Height: 1})
	m := newModel.(RunModel)

	assert.Equal(t, 10, m.state.Viewport.Width)
	assert.Equal(t, 3, m.state.Viewport.Height)
}

func TestUpdate_SpinnerStopsWhenDone(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))
	model.state.Run.Done = true

	_, cmd := model.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestView_ShowsTitleAndOutput(t *testing.T) {
	model := createTestModel(make(chan workflow.Event))

	newModel, _ := model.Update(eventMsg{event: workflow.StdoutEvent{Line: "hello from palm"}})
	view := newModel.(RunModel).View()

	assert.Contains(t, view, "valuation")
	assert.Contains(t, view, "hello from palm")
}
