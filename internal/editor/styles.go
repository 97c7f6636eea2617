package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/logogen/internal/ui"
)

// Editor color palette, built around the default logo colors.
const (
	ColorDarkBg    = lipgloss.Color("#1A1A1A")
	ColorSurfaceBg = ui.ColorBackdrop
	ColorBorder    = lipgloss.Color("#4A3A44")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#C8B4BE")
	ColorTextMuted     = lipgloss.Color("#7D6A74")

	ColorAccent    = ui.ColorBrandPink
	ColorAccentDim = ui.ColorBrandPlum

	ColorOK    = lipgloss.Color("#39FF14")
	ColorError = lipgloss.Color("#FF0055")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	StripStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	StripSelectedStyle = StripStyle.
				BorderForeground(ColorAccent)

	StripNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	OffsetStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StopMarkerStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StopSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim).
			Bold(true)
)
