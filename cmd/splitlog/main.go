package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/cli"
	"github.com/example/splitlog/internal/version"
	"github.com/example/splitlog/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "splitlog",
		Short:   "splitlog - weekly tracker for a four-day upper/lower split",
		Version: version.String(),
		Long: `splitlog tracks a four-workout rotation (Upper A, Lower A, Upper B, Lower B).
It keeps the exercises of each day, this week's completed workouts, a
workout history, the streak of complete weeks and a monthly calendar.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[cli.SkipInitAnnotation] == "true" {
				return nil
			}
			return wire.Init()
		},
	}

	// Weekly tracking
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.WeekCmd())
	rootCmd.AddCommand(cli.StreakCmd())
	rootCmd.AddCommand(cli.CalendarCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Exercises and data
	rootCmd.AddCommand(cli.ExerciseCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ProgramCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
