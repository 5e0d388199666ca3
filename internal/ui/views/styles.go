package views

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// Output lines are gray, error lines red.
	OutputLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	ErrorLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	StatusRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	StatusDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	StatusFailedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	StatusDefaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	OutputPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)
