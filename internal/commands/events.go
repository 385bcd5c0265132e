// ABOUTME: Events command showing the recent operation journal
// ABOUTME: Displays what nvup did to which profile, newest first
package commands

import (
	"fmt"
	"time"

	"github.com/nvup/nvup/internal/events"
	"github.com/nvup/nvup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	eventsOp      string
	eventsProfile string
	eventsSince   string
	eventsLimit   int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the operation journal",
	Long: `Display recorded profile operations with optional filtering.

Every mutating command (init, use, fork, new, rm) appends one record to
the journal unless --no-journal or the journal.disabled setting turned
recording off.`,
	Example: `  # Recent operations
  nvup events

  # Activations of the writing profile in the last day
  nvup events --op use --profile writing --since 24h`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsOp, "op", "", "Filter by operation name")
	eventsCmd.Flags().StringVar(&eventsProfile, "profile", "", "Filter by profile name")
	eventsCmd.Flags().StringVar(&eventsSince, "since", "", "Show operations since duration (e.g. 30m, 24h)")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "Maximum number of operations to show")
}

func runEvents(cmd *cobra.Command, args []string) error {
	var sinceTime time.Time
	if eventsSince != "" {
		duration, err := time.ParseDuration(eventsSince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = time.Now().Add(-duration)
	}

	ops, err := journal.Query(events.Filters{
		Op:      eventsOp,
		Profile: eventsProfile,
		Since:   sinceTime,
		Limit:   eventsLimit,
	})
	if err != nil {
		return fmt.Errorf("querying journal: %w", err)
	}

	if len(ops) == 0 {
		if !journal.IsEnabled() {
			ui.PrintInfo("Journaling is disabled; nothing was recorded.")
		} else {
			ui.PrintInfo("No operations recorded yet.")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, op := range ops {
		status := ui.Success(ui.SymbolSuccess)
		if op.Error != "" {
			status = ui.Error(ui.SymbolError)
		}

		line := fmt.Sprintf("%s  %s  %s", status, op.Timestamp.Local().Format("2006-01-02 15:04:05"), op.Op)
		if op.Profile != "" {
			line += " " + ui.Bold(op.Profile)
		}
		if op.Source != "" {
			line += ui.Muted(" from " + op.Source)
		}
		fmt.Fprintln(out, line)

		if op.Error != "" {
			fmt.Fprintln(out, ui.Indent(ui.Error(op.Error), 1))
		}
	}
	return nil
}
