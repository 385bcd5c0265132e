// ABOUTME: Status command printing the most recently activated profile
// ABOUTME: Reports the raw last-use record without re-validating it
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the most recently activated profile",
	Long: `Print the last-use record: the name of the profile most recently
activated with 'use', 'new --use', or 'fork --use'.

The record is informational. It may name a profile that was removed
since, and a launch via 'with' does not update it. For a consistency
check against the actual symlink, use 'nvup doctor'.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	record, err := activation.CurrentRecord()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "last use: %s\n", record)
	return nil
}
