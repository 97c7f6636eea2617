package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a stop color for terminal display. Only #RGB and
// #RRGGBB are understood; anything else is reported as not ok.
func ParseColor(s string) (colorful.Color, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// SampleStops returns the color at position t in [0,1] along evenly spaced
// stops, blending in RGB the way an SVG linear gradient does by default.
func SampleStops(stops []string, t float64) (colorful.Color, bool) {
	switch len(stops) {
	case 0:
		return colorful.Color{}, false
	case 1:
		return ParseColor(stops[0])
	}

	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}

	a, okA := ParseColor(stops[i])
	b, okB := ParseColor(stops[i+1])
	if !okA || !okB {
		return colorful.Color{}, false
	}
	return a.BlendRgb(b, pos-float64(i)).Clamped(), true
}

// GradientBar renders width cells sampled across the stops. Cells whose
// color can't be parsed are drawn as a muted "?".
func GradientBar(stops []string, width int) string {
	if width <= 0 {
		return ""
	}

	unknown := lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolUnknown)

	var b strings.Builder
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		c, ok := SampleStops(stops, t)
		if !ok {
			b.WriteString(unknown)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(SymbolBlock))
	}
	return b.String()
}

// Chip renders a two-cell color block followed by the color text.
func Chip(color string) string {
	c, ok := ParseColor(color)
	if !ok {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(SymbolUnknown+SymbolUnknown) + " " + color
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(SymbolBlock + SymbolBlock)
	return block + " " + color
}
