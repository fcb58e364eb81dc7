package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show this week's workouts",
		Long: `Show which of the four workouts are done this week and which one is next.
A new week starts every Monday at midnight.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return wire.TrackerAdapter().Status(ctx)
		},
	}
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [workout]",
		Short: "Mark a workout done",
		Long: `Mark a workout done for this week. Workouts earlier in the rotation
(Upper A, Lower A, Upper B, Lower B) are marked done as well.

Examples:
  splitlog complete upperA
  splitlog complete lower-b`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			return wire.TrackerAdapter().Complete(ctx, s)
		},
	}
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Manage the current week",
}

var weekResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear this week's completed workouts",
	Long:  "Clear this week's completed workouts. History is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		return wire.TrackerAdapter().ResetWeek(ctx)
	},
}

// WeekCmd returns the week command
func WeekCmd() *cobra.Command {
	weekCmd.AddCommand(weekResetCmd)
	return weekCmd
}
