// Package editor implements the full-screen terminal editor for logo strips.
//
// The editor is a Bubble Tea model bound to a strip.Store:
//
//   - Model: cursor position, the color input, help and status line
//   - Update: turns keystrokes into store edits and reacts to store changes
//   - View: renders each strip as a gradient bar over a row of stop chips
//
// Edits go through the store, so a web editor sharing the same store sees
// them, and edits made elsewhere show up here on the next change message.
//
// # Keyboard Shortcuts
//
//	↑/k, ↓/j        - Select strip
//	←/h, →/l        - Select stop
//	+, a            - Add a stop before the last one
//	x, Delete       - Remove the selected interior stop
//	Enter, e        - Edit the selected stop's color (Enter commits, Esc cancels)
//	?               - Toggle help overlay
//	q, Ctrl+C       - Quit
package editor
