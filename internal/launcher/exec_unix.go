// ABOUTME: Production Execer that replaces the process image via execve
// ABOUTME: The editor inherits stdio and the terminal; nvup's own logic ends here

//go:build unix

package launcher

import (
	"fmt"
	"os/exec"
	"syscall"
)

// ExecReplacer performs real process replacement.
type ExecReplacer struct{}

// Exec resolves bin on PATH and replaces the current process with it.
func (ExecReplacer) Exec(bin string, argv, env []string) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("finding editor %s: %w", bin, err)
	}
	if err := syscall.Exec(path, argv, env); err != nil {
		return fmt.Errorf("launching %s: %w", bin, err)
	}
	// Unreachable: Exec does not return on success.
	return nil
}
