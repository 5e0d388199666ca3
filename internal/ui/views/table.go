package views

import (
	"fmt"

	"github.com/Cyclone1070/palm/internal/outputs"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders file as a bordered table. The first row is the
// header; at most maxRows data rows are shown, all of them when maxRows is
// not positive.
func RenderTable(file outputs.CSVFile, maxRows int) string {
	if len(file.Data) == 0 {
		return StatusDefaultStyle.Render(fmt.Sprintf("%s: empty", file.Name))
	}

	header := file.Data[0]
	rows := file.Data[1:]
	hidden := 0
	if maxRows > 0 && len(rows) > maxRows {
		hidden = len(rows) - maxRows
		rows = rows[:maxRows]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	out := TitleStyle.Render(file.Name) + "\n" + t.String()
	if hidden > 0 {
		out += "\n" + StatusDefaultStyle.Render(fmt.Sprintf("… %d more rows", hidden))
	}
	return out
}
