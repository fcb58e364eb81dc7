package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/wire"
)

// StreakCmd returns the streak command
func StreakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show consecutive complete weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return wire.TrackerAdapter().Streak(ctx)
		},
	}
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month of workouts",
	Long: `Show a month grid with workout days highlighted, the number of workouts
that month and the current streak.

Examples:
  splitlog calendar
  splitlog calendar --month 2024-05`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		monthArg, _ := cmd.Flags().GetString("month")

		year, month, err := parseMonth(monthArg, time.Now())
		if err != nil {
			return err
		}
		return wire.TrackerAdapter().Calendar(ctx, year, month)
	},
}

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	calendarCmd.Flags().StringP("month", "m", "", "Month to show as YYYY-MM (default: this month)")
	return calendarCmd
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		limit, _ := cmd.Flags().GetInt("limit")
		return wire.TrackerAdapter().History(ctx, limit)
	},
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 for all)")
	return historyCmd
}
