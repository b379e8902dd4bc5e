package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/grovetools/seshconnect/tui/theme"
)

// NewStyledTable creates a borderless lipgloss table with a bold header row.
func NewStyledTable() *ltable.Table {
	t := theme.DefaultTheme
	header := t.Bold.Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return header
			}
			return cell
		})
}

// SimpleTable renders headers and rows as a table string.
func SimpleTable(headers []string, rows [][]string) string {
	return NewStyledTable().Headers(headers...).Rows(rows...).Render()
}
