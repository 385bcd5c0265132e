// ABOUTME: Use command activating a stored profile
// ABOUTME: Swaps the config symlink and records the name in last_use
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Activate a profile",
	Long: `Point the Neovim config directory at the named profile.

Whatever currently occupies the config path (symlink, directory, or
file) is replaced by a symlink into the store. Activating the already
active profile is a no-op that ends in the same state.`,
	Example: `  # Switch to the writing profile
  nvup use writing

  # Switch back
  nvup use main`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: profileNameCompletion,
	RunE:              runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	err := journal.Record("use", name, "", func() error {
		return activation.Activate(name)
	})
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Now using profile %s", ui.Bold(name)))
	return nil
}
