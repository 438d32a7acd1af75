package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	BorderColor  = lipgloss.Color("240")                                 // Subtle warm grey border
	HlRowStyle   = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	CheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")) // Soft green
	NegateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("174")) // Soft red
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	UnStyle      = lipgloss.NewStyle()
)

// RowStyler returns the style for a row given the cursor position
func RowStyler(cursor int) func(row int) lipgloss.Style {
	return func(row int) lipgloss.Style {
		if row == cursor {
			return HlRowStyle
		}
		return UnStyle
	}
}

// Dialog frames content in a rounded, padded box
func Dialog(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2).
		Width(width).
		Render(content)
}

// Table renders rows under headers with a rule below the header only
func Table(headers []string, rows [][]string) string {
	tbl := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.Border{
			Top:         "─", // Horizontal parts of separator
			Middle:      "─", // Between columns in separator
			MiddleLeft:  "─", // Left edge of separator
			MiddleRight: "─", // Right edge of separator
		}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.PaddingRight(2)
			}
			return UnStyle.PaddingRight(2)
		})
	return tbl.Render()
}
