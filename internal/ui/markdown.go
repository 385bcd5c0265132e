// ABOUTME: Shared markdown rendering using glamour
// ABOUTME: Provides terminal-friendly markdown output with auto-styling
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
)

// RenderMarkdown renders markdown content for terminal display.
// When stdout is not a terminal the content is returned unchanged,
// so piped output stays plain. Falls back to the raw content on
// rendering errors.
func RenderMarkdown(content string) string {
	if !IsTerminal(os.Stdout) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
