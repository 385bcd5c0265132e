// ABOUTME: Stub Execer for platforms without execve-style process replacement

//go:build !unix

package launcher

import "errors"

// ExecReplacer performs real process replacement on unix platforms. Here it
// only reports that the capability is unavailable.
type ExecReplacer struct{}

func (ExecReplacer) Exec(bin string, argv, env []string) error {
	return errors.New("process replacement is not supported on this platform")
}
