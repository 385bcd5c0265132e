// ABOUTME: Defines color palette, symbols, and NO_COLOR initialization
// ABOUTME: Centralizes all UI styling constants for consistent appearance
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic color definitions
var (
	ColorSuccess = lipgloss.Color("#4ade80") // Green
	ColorError   = lipgloss.Color("#f87171") // Red
	ColorWarning = lipgloss.Color("#facc15") // Yellow
	ColorInfo    = lipgloss.Color("#38bdf8") // Blue
	ColorMuted   = lipgloss.Color("#9ca3af") // Gray
	ColorAccent  = lipgloss.Color("#57a143") // Neovim green
)

// Symbol definitions
var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolBullet  = "•"
)

func init() {
	initColorProfile()
}

func initColorProfile() {
	// Respect NO_COLOR standard (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
