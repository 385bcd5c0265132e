// ABOUTME: Package documentation for the ui package
// ABOUTME: Describes the purpose and usage patterns for terminal styling

// Package ui provides consistent terminal styling and output formatting
// for nvup CLI commands using lipgloss.
//
// Usage:
//   - Use Print* functions for standalone messages: ui.PrintSuccess("Switched!")
//   - Use inline helpers for composing output: fmt.Println(ui.Bold("Profile:"), ui.Muted(name))
//   - Respects NO_COLOR environment variable for accessibility
package ui
