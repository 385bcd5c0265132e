// ABOUTME: Rm command deleting a stored profile
// ABOUTME: Removal is recursive and irreversible; the active symlink is left alone
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a profile",
	Long: `Recursively delete the named profile from the store. There is no
trash and no undo.

Removing the active profile leaves the config symlink dangling; 'nvup
doctor' reports that, and 'nvup use' on another profile repairs it.`,
	Example: `  nvup rm scratch`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: profileNameCompletion,
	RunE:              runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	name := args[0]

	err := journal.Record("rm", name, "", func() error {
		return store.Remove(name)
	})
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Removed profile %s", ui.Bold(name)))
	return nil
}
