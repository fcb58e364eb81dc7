package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/core/exercise"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/wire"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercises of each workout day",
	Long: `Add, edit, reorder and delete exercises. Positions are the numbers shown
by 'splitlog exercise list'.

Editing an exercise copies every field except the name to exercises with
the same name on the paired day (Upper A with Upper B, Lower A with Lower B).`,
}

var exerciseListCmd = &cobra.Command{
	Use:   "list [workout]",
	Short: "List the exercises of a workout day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		return wire.WorkoutAdapter().List(ctx, s, verbose)
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add [workout] [name]",
	Short: "Add an exercise to the end of a workout day",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		name := strings.Join(args[1:], " ")

		return wire.WorkoutAdapter().Add(ctx, s, name)
	},
}

// editFlags maps flag names to the exercise field they set.
var editFlags = []struct {
	name  string
	usage string
	field func(*models.Exercise) *string
}{
	{"name", "Exercise name", func(e *models.Exercise) *string { return &e.Name }},
	{"tips", "Tips (supports *red*, *blue*, *yellow* markers)", func(e *models.Exercise) *string { return &e.Tips }},
	{"target-muscle", "Target muscle", func(e *models.Exercise) *string { return &e.TargetMuscle }},
	{"machine-position", "Machine position", func(e *models.Exercise) *string { return &e.MachinePosition }},
	{"starting-side", "Starting side", func(e *models.Exercise) *string { return &e.StartingSide }},
	{"sets", "Sets", func(e *models.Exercise) *string { return &e.Sets }},
	{"reps", "Reps", func(e *models.Exercise) *string { return &e.Reps }},
	{"rest", "Rest between sets", func(e *models.Exercise) *string { return &e.Rest }},
	{"weight", "Current weight", func(e *models.Exercise) *string { return &e.CurrentWeight }},
	{"current-reps", "Current reps", func(e *models.Exercise) *string { return &e.CurrentReps }},
	{"increase-by", "Increase weight by", func(e *models.Exercise) *string { return &e.IncreaseWeightBy }},
	{"failure", fmt.Sprintf("Go to failure (%q, %q or %q)", models.FailureNo, models.FailureYes, models.FailureDropSet), func(e *models.Exercise) *string { return &e.GoToFailure }},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit [workout] [position]",
	Short: "Edit an exercise",
	Long: `Edit an exercise. Only the flags you pass are changed.

Examples:
  splitlog exercise edit upperA 1 --sets 4 --reps 8-10
  splitlog exercise edit lowerB 2 --tips "*red*knees out*red*"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		pos, err := parsePosition(args[1])
		if err != nil {
			return err
		}

		changed := map[string]string{}
		for _, f := range editFlags {
			if cmd.Flags().Changed(f.name) {
				changed[f.name], _ = cmd.Flags().GetString(f.name)
			}
		}
		if len(changed) == 0 {
			return fmt.Errorf("nothing to change. Pass at least one field flag (see --help)")
		}

		return wire.WorkoutAdapter().Edit(ctx, s, pos, func(e *models.Exercise) {
			for _, f := range editFlags {
				if v, ok := changed[f.name]; ok {
					*f.field(e) = v
				}
			}
		})
	},
}

var exerciseQuickCmd = &cobra.Command{
	Use:   "quick [workout] [position] [weight] [reps]",
	Short: "Set current weight and reps",
	Long: `Set the current weight and reps of an exercise. Exercises with the same
name on the paired day are updated too.

Example:
  splitlog exercise quick upperA 1 80kg 6`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		pos, err := parsePosition(args[1])
		if err != nil {
			return err
		}

		return wire.WorkoutAdapter().Quick(ctx, s, pos, args[2], args[3])
	},
}

func moveCmd(use, short string, dir exercise.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [workout] [position]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			return wire.WorkoutAdapter().Move(ctx, s, pos, dir)
		},
	}
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete [workout] [position]",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		pos, err := parsePosition(args[1])
		if err != nil {
			return err
		}

		return wire.WorkoutAdapter().Delete(ctx, s, pos)
	},
}

// ExerciseCmd returns the exercise command
func ExerciseCmd() *cobra.Command {
	// Add flags
	exerciseListCmd.Flags().BoolP("verbose", "v", false, "Show every field")
	for _, f := range editFlags {
		exerciseEditCmd.Flags().String(f.name, "", f.usage)
	}

	// Add subcommands
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(exerciseQuickCmd)
	exerciseCmd.AddCommand(moveCmd("up", "Move an exercise one position up", exercise.Up))
	exerciseCmd.AddCommand(moveCmd("down", "Move an exercise one position down", exercise.Down))
	exerciseCmd.AddCommand(exerciseDeleteCmd)

	return exerciseCmd
}
