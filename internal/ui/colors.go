package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.
//
//	RED     -> ANSI 1
//	GREEN   -> ANSI 2
//	YELLOW  -> ANSI 3
//	MAGENTA -> ANSI 5
//	WHITE   -> ANSI 7
//	GRAY    -> ANSI 8 (bright black)

// Semantic colors for status indication
const (
	ColorSuccess  lipgloss.Color = "2" // Green
	ColorError    lipgloss.Color = "1" // Red
	ColorWarning  lipgloss.Color = "3" // Yellow
	ColorCritical lipgloss.Color = "5" // Magenta
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// DisableColors switches all lipgloss rendering to plain text.
// Used for --no-color and NO_COLOR.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
