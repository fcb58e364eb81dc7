// Package exercise contains the pure business logic for editing the
// exercise lists of the four workout days.
// Guards are pure functions that evaluate preconditions without side effects.
package exercise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/splitlog/internal/core/slot"
)

var (
	// ErrEmptyName is returned when an exercise name is blank.
	ErrEmptyName = errors.New("exercise name cannot be empty")
	// ErrExerciseNotFound is returned for an index outside the day's list.
	ErrExerciseNotFound = errors.New("exercise not found")
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	err     error
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.err != nil {
		return fmt.Errorf("%w: %s", r.err, r.Reason)
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSaveExercise evaluates whether an exercise with this name can be stored.
// Rules:
// - Name must not be blank
func CanSaveExercise(name string) GuardResult {
	if strings.TrimSpace(name) == "" {
		return GuardResult{Allowed: false, Reason: "please enter an exercise name", err: ErrEmptyName}
	}
	return GuardResult{Allowed: true}
}

// PositionContext provides context for guards that address an existing exercise.
type PositionContext struct {
	Slot  slot.WorkoutSlot
	Index int
	Count int // exercises currently in the day
}

// CanAddress evaluates whether Index points at an existing exercise.
// Rules:
// - Slot must be valid
// - 0 <= Index < Count
func CanAddress(ctx PositionContext) GuardResult {
	if !ctx.Slot.Valid() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown workout day %q", ctx.Slot),
			err:     slot.ErrUnknownSlot,
		}
	}
	if ctx.Index < 0 || ctx.Index >= ctx.Count {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s has no exercise #%d (%d exercises)", ctx.Slot, ctx.Index+1, ctx.Count),
			err:     ErrExerciseNotFound,
		}
	}
	return GuardResult{Allowed: true}
}
