package ui

import (
	"github.com/Cyclone1070/palm/internal/ui/views"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Internal messages
type eventMsg struct {
	event workflow.Event
}
type eventsClosedMsg struct{}

// Init initializes the model
func (m RunModel) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		listenForEvents(m.events),
	)
}

// Update handles messages
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = max(msg.Width-4, 10)  // Reserve space for the border
		m.state.Viewport.Height = max(msg.Height-5, 3) // Reserve space for title and status
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case eventMsg:
		m.state.Run.Apply(msg.event)
		m.updateViewport()
		if m.state.Run.Done {
			return m, tea.Quit
		}
		return m, listenForEvents(m.events)

	case eventsClosedMsg:
		m.state.Run.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// updateViewport updates the viewport content
func (m *RunModel) updateViewport() {
	m.state.Viewport.SetContent(views.FormatOutput(m.state.Run, m.state.Viewport.Width))
	m.state.Viewport.GotoBottom()
}

// Helper command for listening to the event channel
func listenForEvents(ch <-chan workflow.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}
