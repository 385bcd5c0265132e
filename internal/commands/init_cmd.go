// ABOUTME: Init command performing explicit one-time store setup
// ABOUTME: Migrates a pre-existing Neovim config into the store as profile main
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/profile"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the profile store",
	Long: `Create the nvup data directory and prepare the profile store.

A Neovim configuration already present at the config path is moved into
the store as profile 'main'. The move is a rename on the same
filesystem; nothing is copied or deleted. Activate it again afterwards
with 'nvup use main'.

Running init on an initialized store is a no-op.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ini := profile.NewInitializer(paths)
	before := ini.State()

	err := journal.Record("init", "", "", func() error {
		return ini.EnsureInitialized()
	})
	if err != nil {
		return err
	}

	switch before {
	case profile.StateInitialized:
		ui.PrintInfo("Store already initialized")
	case profile.StateAwaitingExplicitInit:
		ui.PrintSuccess(fmt.Sprintf("Moved existing config to profile %s", ui.Bold(profile.LegacyProfileName)))
		ui.PrintMuted(fmt.Sprintf("  %s activate it with: nvup use %s", ui.SymbolArrow, profile.LegacyProfileName))
	default:
		ui.PrintSuccess(fmt.Sprintf("Initialized empty store at %s", paths.Home))
	}
	return nil
}
