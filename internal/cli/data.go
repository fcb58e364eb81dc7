package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/app"
	"github.com/example/splitlog/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export exercises, completion and history as JSON",
		Long: `Write all data to a JSON file. The default file name is
workout-data-YYYY-MM-DD.json in the current directory; use "-" for stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			path := app.ExportFileName(time.Now())
			if len(args) == 1 {
				path = args[0]
			}
			return wire.WorkoutAdapter().Export(ctx, path)
		},
	}
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace data from an export file",
		Long: `Replace data from a file written by 'splitlog export'. A file holding only
the four workout days (upperA, upperB, lowerA, lowerB) replaces the
exercises and keeps completion and history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return wire.WorkoutAdapter().Import(ctx, args[0])
		},
	}
}

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage training programs",
}

var programLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Replace workout days from a YAML program",
	Long: `Replace the exercise lists of the days defined in a YAML program.
Days not mentioned in the file are left alone.

Example file:
  days:
    upperA:
      - name: Bench press
        sets: "4"
        reps: "6-8"
    lowerA:
      - name: Squat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		return wire.WorkoutAdapter().LoadProgram(ctx, args[0])
	},
}

// ProgramCmd returns the program command
func ProgramCmd() *cobra.Command {
	programCmd.AddCommand(programLoadCmd)
	return programCmd
}
