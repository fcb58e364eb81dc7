package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/example/splitlog/internal/core/exercise"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/primary"
)

// WorkoutAdapter translates CLI operations to WorkoutService calls.
// Positions on the command line are 1-based.
type WorkoutAdapter struct {
	service primary.WorkoutService
	out     io.Writer
}

// NewWorkoutAdapter creates a new WorkoutAdapter with the given service.
func NewWorkoutAdapter(service primary.WorkoutService, out io.Writer) *WorkoutAdapter {
	return &WorkoutAdapter{
		service: service,
		out:     out,
	}
}

// List prints one day's exercises. verbose adds every non-empty field.
func (a *WorkoutAdapter) List(ctx context.Context, s slot.WorkoutSlot, verbose bool) error {
	list, err := a.service.ListExercises(ctx, s)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s\n", color.New(color.Bold).Sprint(s.Label()))
	fmt.Fprintln(a.out, "────────────────────────────────")
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No exercises yet")
		return nil
	}

	for i, e := range list {
		fmt.Fprintf(a.out, "%2d. %s%s\n", i+1, e.Name, summary(e))
		if verbose {
			printDetails(a.out, e)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

func summary(e models.Exercise) string {
	var parts []string
	switch {
	case e.Sets != "" && e.Reps != "":
		parts = append(parts, e.Sets+" x "+e.Reps)
	case e.Sets != "":
		parts = append(parts, e.Sets+" sets")
	case e.Reps != "":
		parts = append(parts, e.Reps+" reps")
	}
	if e.CurrentWeight != "" {
		w := "@ " + e.CurrentWeight
		if e.CurrentReps != "" {
			w += " for " + e.CurrentReps
		}
		parts = append(parts, w)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + color.New(color.FgHiBlack).Sprint(strings.Join(parts, "  "))
}

func printDetails(out io.Writer, e models.Exercise) {
	fields := []struct {
		label string
		value string
	}{
		{"Target muscle", e.TargetMuscle},
		{"Machine position", e.MachinePosition},
		{"Starting side", e.StartingSide},
		{"Sets", e.Sets},
		{"Reps", e.Reps},
		{"Rest", e.Rest},
		{"Current weight", e.CurrentWeight},
		{"Current reps", e.CurrentReps},
		{"Increase weight by", e.IncreaseWeightBy},
		{"Go to failure", e.GoToFailure},
		{"Tips", e.Tips},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(out, "      %-19s %s\n", f.label+":", RenderMarkup(f.value))
	}
}

// Add appends an exercise.
func (a *WorkoutAdapter) Add(ctx context.Context, s slot.WorkoutSlot, name string) error {
	resp, err := a.service.AddExercise(ctx, primary.AddExerciseRequest{Slot: s, Name: name})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Added %s to %s (#%d)\n", resp.Exercise.Name, s.Label(), resp.Index+1)
	return nil
}

// Edit applies changes to the exercise at pos and saves it.
func (a *WorkoutAdapter) Edit(ctx context.Context, s slot.WorkoutSlot, pos int, apply func(*models.Exercise)) error {
	list, err := a.service.ListExercises(ctx, s)
	if err != nil {
		return err
	}
	idx := pos - 1
	if err := exercise.CanAddress(exercise.PositionContext{Slot: s, Index: idx, Count: len(list)}).Error(); err != nil {
		return err
	}

	updated := list[idx]
	apply(&updated)

	resp, err := a.service.UpdateExercise(ctx, primary.UpdateExerciseRequest{Slot: s, Index: idx, Exercise: updated})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Updated %s #%d: %s\n", s.Label(), pos, resp.Exercise.Name)
	return nil
}

// Quick sets current weight and reps.
func (a *WorkoutAdapter) Quick(ctx context.Context, s slot.WorkoutSlot, pos int, weight, reps string) error {
	resp, err := a.service.QuickUpdate(ctx, primary.QuickUpdateRequest{Slot: s, Index: pos - 1, Weight: weight, Reps: reps})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ %s: %s for %s\n", resp.Exercise.Name, resp.Exercise.CurrentWeight, resp.Exercise.CurrentReps)
	return nil
}

// Move moves an exercise one position.
func (a *WorkoutAdapter) Move(ctx context.Context, s slot.WorkoutSlot, pos int, dir exercise.Direction) error {
	resp, err := a.service.MoveExercise(ctx, primary.MoveExerciseRequest{Slot: s, Index: pos - 1, Direction: dir})
	if err != nil {
		return err
	}
	if resp.Index == pos-1 {
		fmt.Fprintf(a.out, "%s is already at #%d\n", resp.Exercise.Name, pos)
		return nil
	}
	fmt.Fprintf(a.out, "✓ Moved %s to #%d\n", resp.Exercise.Name, resp.Index+1)
	return nil
}

// Delete removes an exercise.
func (a *WorkoutAdapter) Delete(ctx context.Context, s slot.WorkoutSlot, pos int) error {
	resp, err := a.service.DeleteExercise(ctx, s, pos-1)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted %s from %s\n", resp.Exercise.Name, s.Label())
	return nil
}

// Export writes the bundle to path, or to the adapter output when path is "-".
func (a *WorkoutAdapter) Export(ctx context.Context, path string) error {
	raw, err := a.service.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if path == "-" {
		_, err := fmt.Fprintln(a.out, string(raw))
		return err
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Exported to %s\n", path)
	return nil
}

// Import reads a bundle or legacy document from path.
func (a *WorkoutAdapter) Import(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	resp, err := a.service.Import(ctx, raw)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Imported %s (%s, %s)\n", path, resp.Format, plural(resp.Exercises, "exercise"))
	if resp.Format != "legacy" {
		fmt.Fprintf(a.out, "  history entries: %d\n", resp.History)
	}
	return nil
}

// LoadProgram replaces day lists from a YAML program.
func (a *WorkoutAdapter) LoadProgram(ctx context.Context, path string) error {
	resp, err := a.service.LoadProgram(ctx, path)
	if err != nil {
		return err
	}
	labels := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		labels[i] = s.Label()
	}
	fmt.Fprintf(a.out, "✓ Loaded %s into %s\n", plural(resp.Exercises, "exercise"), strings.Join(labels, ", "))
	return nil
}
