package views

import (
	"github.com/Cyclone1070/palm/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	sections := []string{
		TitleStyle.Render(s.Title),
		RenderOutput(s.Viewport.View()),
		RenderStatus(s),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
