package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/logogen/internal/strip"
	"github.com/rileyhilliard/logogen/internal/ui"
	"github.com/rileyhilliard/logogen/internal/util"
)

const (
	defaultBarWidth = 32
	minBarWidth     = 8
	maxBarWidth     = 64
)

// renderEditor renders the complete editor view.
func (m Model) renderEditor() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for k, s := range m.state.Strips() {
		b.WriteString(m.renderStrip(k, s))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}

	if m.status != "" {
		style := StatusOKStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		b.WriteString(" " + style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("logogen edit")

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + util.CountOf(strip.Count, "strip", "strips") +
			" | " + util.CountOf(int(m.version), "edit", "edits"))

	return HeaderStyle.Render(title + stats)
}

// renderStrip renders one strip box: name and gradient bar, then the stops.
func (m Model) renderStrip(k int, s strip.Strip) string {
	selected := k == m.strip

	name := StripNameStyle.Render(fmt.Sprintf("strip %d", k))
	count := LabelStyle.Render(" " + util.CountOf(s.Len(), "stop", "stops"))
	bar := ui.GradientBar(s, m.barWidth())

	stops := make([]string, 0, s.Len())
	for i, color := range s {
		stops = append(stops, m.renderStop(s, i, color, selected && i == m.stop))
	}

	content := name + count + "\n" + bar + "\n" + strings.Join(stops, "  ")

	style := StripStyle
	if selected {
		style = StripSelectedStyle
	}
	return style.Render(content)
}

// renderStop renders a stop chip with its marker and offset.
func (m Model) renderStop(s strip.Strip, i int, color string, selected bool) string {
	marker := ui.SymbolAnchor
	if s.Interior(i) {
		marker = ui.SymbolStop
	}

	offset := OffsetStyle.Render(fmt.Sprintf("@%.2f", s.Offset(i)))

	if selected {
		return StopSelectedStyle.Render(ui.SymbolCursor+marker) + " " + ui.Chip(color) + " " + offset
	}
	return StopMarkerStyle.Render(" "+marker) + " " + ui.Chip(color) + " " + offset
}

// renderInput renders the color input line.
func (m Model) renderInput() string {
	label := InputLabelStyle.Render(fmt.Sprintf("strip %d stop %d color: ", m.strip, m.stop))
	return " " + label + m.input.View()
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.ShortHelpView(keys.ShortHelp()))
}

// barWidth sizes the gradient bar to the terminal.
func (m Model) barWidth() int {
	if m.width == 0 {
		return defaultBarWidth
	}
	w := m.width - 8 // border + padding + margin
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}
