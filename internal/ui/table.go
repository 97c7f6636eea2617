package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// StopRow is one line of the stop table printed by `logogen strips`.
type StopRow struct {
	Strip     int
	Stop      int
	Offset    float64
	Color     string
	Removable bool
}

// stopColumns are the columns of the stop table.
var stopColumns = []table.Column{
	{Title: "STRIP", Width: 6},
	{Title: "STOP", Width: 5},
	{Title: "OFFSET", Width: 8},
	{Title: "COLOR", Width: 12},
	{Title: "", Width: 2},
}

// NewStopTable builds a non-focused Bubbles table of stops.
func NewStopTable(rows []StopRow) table.Model {
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		kind := SymbolAnchor
		if r.Removable {
			kind = SymbolStop
		}
		tableRows[i] = table.Row{
			strconv.Itoa(r.Strip),
			strconv.Itoa(r.Stop),
			strconv.FormatFloat(r.Offset, 'f', 3, 64),
			r.Color,
			kind,
		}
	}

	t := table.New(
		table.WithColumns(stopColumns),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is selectable in CLI output; keep the cursor row unstyled.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderStopTable renders rows for plain CLI output. Empty input renders "".
func RenderStopTable(rows []StopRow) string {
	if len(rows) == 0 {
		return ""
	}
	return NewStopTable(rows).View()
}
