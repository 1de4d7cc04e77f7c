package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeanpaul/phonebook/internal/records"
)

// Headers are the column titles of a record table.
var Headers = []string{"No.", "Last name", "First name", "Patronymic", "Organization", "Work phone", "Personal phone"}

// tableRow lays out a record in Headers order.
func tableRow(r records.Record) []string {
	return append([]string{strconv.Itoa(r.Position)}, r.Values()...)
}

// RenderTable draws records as a bordered grid. It returns "" for no records.
func RenderTable(recs []records.Record) string {
	if len(recs) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, tableRow(r))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(true).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 0:
				return TablePositionStyle
			default:
				return TableCellStyle
			}
		})
	return t.Render()
}
