// ABOUTME: With command launching the editor against a profile without switching
// ABOUTME: Replaces the nvup process; activation and last_use stay untouched
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/launcher"
	"github.com/spf13/cobra"
)

var withCmd = &cobra.Command{
	Use:   "with <name> [-- <editor args>...]",
	Short: "Run the editor on a profile without switching to it",
	Long: `Start the editor against the named profile by overriding its config
path through the environment. The active symlink and the last-use
record are not touched, so the current setup stays in place.

On success nvup's process is replaced by the editor and nothing
further runs. Arguments after -- are forwarded to the editor verbatim.`,
	Example: `  # Open a file in the writing profile
  nvup with writing -- ~/notes/draft.md

  # Start the scratch profile without plugins
  nvup with scratch -- --clean`,
	Args:              withArgs,
	ValidArgsFunction: profileNameCompletion,
	RunE:              runWith,
}

func init() {
	rootCmd.AddCommand(withCmd)
}

// withArgs requires exactly the profile name before --; editor arguments
// come after it.
func withArgs(cmd *cobra.Command, args []string) error {
	at := cmd.ArgsLenAtDash()
	named := len(args)
	if at >= 0 {
		named = at
	}
	if named != 1 {
		return fmt.Errorf("expected exactly one profile name, got %d (editor options go after --)", named)
	}
	return nil
}

func runWith(cmd *cobra.Command, args []string) error {
	name := args[0]

	l := launcher.New(paths, store, settings.Editor, execer)
	return l.Launch(name, passThroughArgs(cmd, args))
}
