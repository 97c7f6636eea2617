package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication, as ANSI codes for broad terminal support.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Brand colors, taken from the default logo palette.
const (
	ColorBrandPink   lipgloss.Color = "#FB405A"
	ColorBrandPlum   lipgloss.Color = "#7A2259"
	ColorBackdrop    lipgloss.Color = "#2A2A2A"
	ColorStopDefault lipgloss.Color = "#FFFFFF"
)

// Color modes accepted by --no-color and the output.color config key.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// SetColorMode switches the global lipgloss profile. "auto" leaves terminal
// detection to lipgloss; unknown values are treated as auto.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case ColorModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// DisableColors switches to monochrome output.
func DisableColors() {
	SetColorMode(ColorModeNever)
}
