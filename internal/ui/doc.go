// Package ui provides terminal styling shared by logogen's commands and the
// terminal editor.
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Edit applied
//	ColorError     (red)    - Edit rejected
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//
// Brand colors come from the default logo palette and are true-color hex.
// Use SetColorMode (driven by --no-color and output.color) to force a profile.
//
// # Swatches
//
// Stop colors are previewed with go-colorful: ParseColor understands hex
// colors, SampleStops blends between evenly spaced stops, GradientBar draws
// a row of block characters and Chip draws a single stop:
//
//	fmt.Println(ui.GradientBar([]string{"#FB405A", "#7A2259"}, 24))
//	fmt.Println(ui.Chip("#FB405A"))
//
// Colors the terminal can't show (named colors, typos) are drawn as "?".
//
// # Stop Table
//
// RenderStopTable prints strips as a Bubbles table for `logogen strips`.
package ui
