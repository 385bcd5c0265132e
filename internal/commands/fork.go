// ABOUTME: Fork command copying a config tree into a new profile
// ABOUTME: Defaults to the live config dir; --from copies a stored profile instead
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/profile"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	forkFrom string
	forkUse  bool
)

var forkCmd = &cobra.Command{
	Use:   "fork <name>",
	Short: "Copy the current config into a new profile",
	Long: `Create a new profile as a recursive copy of the currently active
config tree, or of the profile named with --from.

Symlinks inside the source are dereferenced, so the new profile stands
alone even when the source linked into plugin caches or dotfile repos.
An interrupted copy leaves a partial profile; remove it with 'nvup rm'
and fork again.`,
	Example: `  # Snapshot the active config before an experiment
  nvup fork backup

  # Copy a stored profile and switch to the copy
  nvup fork --from main experiment --use`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: profileNameCompletion,
	RunE:              runFork,
}

func init() {
	rootCmd.AddCommand(forkCmd)

	forkCmd.Flags().StringVar(&forkFrom, "from", "", "Copy the named stored profile instead of the active config")
	forkCmd.Flags().BoolVar(&forkUse, "use", false, "Activate the new profile after creating it")

	forkCmd.RegisterFlagCompletionFunc("from", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return storedProfileNames(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func runFork(cmd *cobra.Command, args []string) error {
	name := args[0]

	source := paths.NvimDir
	if forkFrom != "" {
		if !store.Exists(forkFrom) {
			return fmt.Errorf("profile %q: %w", forkFrom, profile.ErrNotFound)
		}
		source = store.Dir(forkFrom)
	}

	err := journal.Record("fork", name, source, func() error {
		return store.CreateCopy(name, source)
	})
	if err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Forked %s into profile %s", source, ui.Bold(name)))

	if forkUse {
		return activateNew(name)
	}
	return nil
}

// activateNew activates a profile just created by fork or new.
func activateNew(name string) error {
	err := journal.Record("use", name, "", func() error {
		return activation.Activate(name)
	})
	if err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Now using profile %s", ui.Bold(name)))
	return nil
}
