package ui

// Unicode symbols for status indicators and strip drawing.
const (
	SymbolSuccess = "✓" // Edit applied
	SymbolFail    = "✗" // Edit rejected
	SymbolStop    = "●" // A color stop
	SymbolAnchor  = "◆" // First or last stop (not removable)
	SymbolCursor  = "▸" // Selected strip
	SymbolUnknown = "?" // Color the terminal can't show
	SymbolBlock   = "█" // Swatch cell
)
