// ABOUTME: Shell completion helpers for commands taking a profile name
// ABOUTME: Suggests stored profile names for use, fork, rm, and with
package commands

import (
	"os"
	"strings"

	"github.com/nvup/nvup/internal/config"
	"github.com/spf13/cobra"
)

// profileNameCompletion suggests stored profile names. The init gate is
// skipped during completion, so paths are resolved here directly; any
// failure just means no suggestions.
func profileNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return storedProfileNames(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func storedProfileNames(prefix string) []string {
	p, err := config.Resolve(nvupHome, nvimDir)
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(p.ProfilesDir())
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if prefix != "" && !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}
