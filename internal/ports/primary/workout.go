// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces the CLI drives.
package primary

import (
	"context"

	"github.com/example/splitlog/internal/core/exercise"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
)

// WorkoutService defines the primary port for exercise and data operations.
type WorkoutService interface {
	// ListExercises returns the exercises of one day.
	ListExercises(ctx context.Context, s slot.WorkoutSlot) ([]models.Exercise, error)

	// AddExercise appends a new exercise to a day.
	AddExercise(ctx context.Context, req AddExerciseRequest) (*ExerciseResponse, error)

	// UpdateExercise replaces an exercise and syncs the paired day.
	UpdateExercise(ctx context.Context, req UpdateExerciseRequest) (*ExerciseResponse, error)

	// QuickUpdate sets current weight and reps.
	QuickUpdate(ctx context.Context, req QuickUpdateRequest) (*ExerciseResponse, error)

	// MoveExercise moves an exercise one position up or down.
	MoveExercise(ctx context.Context, req MoveExerciseRequest) (*ExerciseResponse, error)

	// DeleteExercise removes an exercise.
	DeleteExercise(ctx context.Context, s slot.WorkoutSlot, index int) (*ExerciseResponse, error)

	// Export returns the full bundle as indented JSON.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces data from a bundle or a legacy four-day document.
	Import(ctx context.Context, raw []byte) (*ImportResponse, error)

	// LoadProgram replaces day lists from a YAML program file.
	LoadProgram(ctx context.Context, path string) (*ImportResponse, error)
}

// AddExerciseRequest contains parameters for adding an exercise.
type AddExerciseRequest struct {
	Slot slot.WorkoutSlot
	Name string
}

// UpdateExerciseRequest contains parameters for a full edit.
type UpdateExerciseRequest struct {
	Slot     slot.WorkoutSlot
	Index    int
	Exercise models.Exercise
}

// QuickUpdateRequest contains parameters for a weight/reps update.
type QuickUpdateRequest struct {
	Slot   slot.WorkoutSlot
	Index  int
	Weight string
	Reps   string
}

// MoveExerciseRequest contains parameters for reordering.
type MoveExerciseRequest struct {
	Slot      slot.WorkoutSlot
	Index     int
	Direction exercise.Direction
}

// ExerciseResponse contains the affected exercise and its position.
type ExerciseResponse struct {
	Slot     slot.WorkoutSlot
	Index    int
	Exercise models.Exercise
}

// ImportResponse summarises an import.
type ImportResponse struct {
	Format    string // "bundle", "legacy" or "program"
	Exercises int
	History   int
	Slots     []slot.WorkoutSlot
}
