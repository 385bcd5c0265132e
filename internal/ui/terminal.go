// ABOUTME: Terminal detection helper shared by rendering code
// ABOUTME: Distinguishes interactive sessions from pipes and CI output
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the writer is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
