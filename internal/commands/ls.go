// ABOUTME: Ls command listing stored profiles via the system ls
// ABOUTME: Forwards options after -- verbatim so any ls display flag works
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [-- <ls options>...]",
	Short: "List stored profiles",
	Long: `List the profiles directory using the system ls.

Options after -- are passed to ls verbatim, so any display option it
supports works here.`,
	Example: `  # Plain listing
  nvup ls

  # Long format, newest first
  nvup ls -- -lt`,
	Args: noArgsBeforeDash,
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	return store.List(passThroughArgs(cmd, args), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// passThroughArgs returns the arguments after --, and nothing otherwise:
// tokens before the separator belong to nvup, not to the wrapped command.
func passThroughArgs(cmd *cobra.Command, args []string) []string {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		return nil
	}
	return args[at:]
}

// noArgsBeforeDash accepts any arguments after -- but none before it.
func noArgsBeforeDash(cmd *cobra.Command, args []string) error {
	at := cmd.ArgsLenAtDash()
	if at > 0 || (at < 0 && len(args) > 0) {
		return fmt.Errorf("unexpected argument %q (pass-through options go after --)", args[0])
	}
	return nil
}
