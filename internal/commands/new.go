// ABOUTME: New command creating an empty profile skeleton
// ABOUTME: The skeleton is a directory holding a single empty init.lua
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/profile"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var newUse bool

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty profile",
	Long: `Create a profile containing a single empty ` + profile.InitFileName + `.

Neovim started on it behaves as if unconfigured, which makes an empty
profile the cleanest way to reproduce problems without plugins.`,
	Example: `  # A from-scratch config to experiment in
  nvup new scratch

  # Create and switch in one step
  nvup new scratch --use`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVar(&newUse, "use", false, "Activate the new profile after creating it")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	err := journal.Record("new", name, "", func() error {
		return store.CreateEmpty(name)
	})
	if err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Created empty profile %s", ui.Bold(name)))

	if newUse {
		return activateNew(name)
	}
	return nil
}
