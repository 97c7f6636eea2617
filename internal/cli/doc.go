// Package cli implements the logogen command-line interface.
//
// Each Cobra command parses its flags and hands off to a plain function
// (renderCommand, stripsCommand, Init, ...) that takes its inputs as
// arguments, so the logic can be tested without going through Cobra.
//
// # Command Structure
//
//	logogen render [--op OP]...   - Write the logo as SVG
//	logogen strips [--op OP]...   - Show stops, offsets and gradients
//	logogen edit                  - Terminal editor
//	logogen serve                 - Web editor with live preview
//	logogen init                  - Create .logogen.yaml
//	logogen config show|set       - Inspect or change the config
//	logogen version               - Version information
//
// # Flag Handling
//
// Global flags (--config, --verbose, --quiet, --no-color) are defined on
// the root command and available to all subcommands. --op is repeatable and
// applied in order; see strip.ParseOp for the syntax.
//
// Errors from any command are printed once by Execute in the structured
// "✗ message / cause / suggestion" form, and the process exits 1.
package cli
