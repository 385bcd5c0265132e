// ABOUTME: Root command and CLI initialization for nvup
// ABOUTME: Sets up cobra command structure, global flags, and the init gate
package commands

import (
	"fmt"

	"github.com/nvup/nvup/internal/config"
	"github.com/nvup/nvup/internal/events"
	"github.com/nvup/nvup/internal/launcher"
	"github.com/nvup/nvup/internal/profile"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	nvupHome  string
	nvimDir   string
	noJournal bool
)

// Runtime state shared by all commands, resolved once per invocation by the
// root PersistentPreRunE.
var (
	paths      *config.Paths
	settings   *config.Settings
	store      *profile.Store
	activation *profile.Activation
	journal    *events.Journal

	// execer is swapped for a recorder in tests; `with` would otherwise
	// replace the test process.
	execer launcher.Execer = launcher.ExecReplacer{}
)

var rootCmd = &cobra.Command{
	Use:   "nvup",
	Short: "Manage Neovim configuration profiles",
	Long: `nvup is a CLI tool for switching between Neovim configurations.

It keeps complete config trees as named profiles under ~/.nvup/profiles
and points the Neovim config directory at one of them via a symlink:
  - Switch between isolated configurations (use)
  - Clone the current config into a new profile (fork)
  - Try a profile without switching (with)`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Help and completion never touch the store
		if skipsSetup(cmd) {
			return nil
		}

		if err := setupRuntime(); err != nil {
			return err
		}

		// init runs before the gate; everything else requires an
		// initialized store. A legacy config directory blocks the
		// auto-heal path, so explain what init will do.
		if cmd.Name() == "init" {
			return nil
		}
		ok, err := profile.NewInitializer(paths).IsInitialized()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprint(cmd.ErrOrStderr(), ui.RenderMarkdown(notInitializedGuide()))
			return profile.ErrNotInitialized
		}
		return nil
	},
}

func skipsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// setupRuntime resolves paths and settings and wires the store, activation
// manager, and journal. Nothing here touches the store contents.
func setupRuntime() error {
	p, err := config.Resolve(nvupHome, nvimDir)
	if err != nil {
		return err
	}

	s, err := config.LoadSettings(p.SettingsPath())
	if err != nil {
		return err
	}

	writer, err := events.NewJSONLWriter(p.EventsLogPath())
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}

	paths = p
	settings = s
	store = profile.NewStore(p)
	activation = profile.NewActivation(p, store)
	journal = events.NewJournal(writer, !noJournal && !s.Journal.Disabled)
	return nil
}

func notInitializedGuide() string {
	return fmt.Sprintf(`# nvup needs a one-time setup

An existing Neovim configuration was found at:

    %s

Running setup moves it into the profile store as the profile **main**.
The move is a rename on the same filesystem; nothing is copied or
deleted, and the marker file makes setup a one-time step.

Run:

    nvup init
    nvup use main

to migrate and keep using your current configuration.
`, paths.NvimDir)
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	// Set up custom help template with lipgloss styling
	ui.SetupHelpTemplate(rootCmd)

	// Global flags - flag wins over NVUP_HOME / NVUP_NVIM_DIR, env over default
	rootCmd.PersistentFlags().StringVar(&nvupHome, "nvup-home", "", "nvup data directory (default ~/.nvup, env NVUP_HOME)")
	rootCmd.PersistentFlags().StringVar(&nvimDir, "nvim-dir", "", "Neovim config directory to manage (default ~/.config/nvim, env NVUP_NVIM_DIR)")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "Skip recording this operation in the journal")
}
