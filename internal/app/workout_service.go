package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/splitlog/internal/core/bundle"
	"github.com/example/splitlog/internal/core/exercise"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/primary"
	"github.com/example/splitlog/internal/ports/secondary"
)

// FormatProgram is reported by LoadProgram.
const FormatProgram = "program"

// WorkoutServiceImpl implements the WorkoutService interface.
type WorkoutServiceImpl struct {
	session
	programs secondary.ProgramLoader
}

// NewWorkoutService creates a new WorkoutService with injected dependencies.
// now may be nil, in which case time.Now is used.
func NewWorkoutService(state *State, repo secondary.StateRepository, programs secondary.ProgramLoader, cache *ViewCache, now func() time.Time) *WorkoutServiceImpl {
	return &WorkoutServiceImpl{
		session:  newSession(state, repo, cache, now),
		programs: programs,
	}
}

// ExportFileName is the default name of an export written on day now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("workout-data-%s.json", now.Format(time.DateOnly))
}

// ListExercises returns a copy of one day's exercises.
func (s *WorkoutServiceImpl) ListExercises(ctx context.Context, ws slot.WorkoutSlot) ([]models.Exercise, error) {
	if !ws.Valid() {
		return nil, fmt.Errorf("%w: %q", slot.ErrUnknownSlot, ws)
	}
	list := s.state.Workouts.Exercises(ws)
	out := make([]models.Exercise, len(list))
	copy(out, list)
	return out, nil
}

// AddExercise appends a new exercise with default fields.
func (s *WorkoutServiceImpl) AddExercise(ctx context.Context, req primary.AddExerciseRequest) (*primary.ExerciseResponse, error) {
	prev := s.state.Bundle()
	idx, err := exercise.Add(&s.state.Workouts, req.Slot, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
		return nil, fmt.Errorf("failed to add exercise: %w", err)
	}

	log.WithFields(log.Fields{"slot": req.Slot, "index": idx}).Debug("exercise added")
	return s.response(req.Slot, idx), nil
}

// UpdateExercise replaces all fields and syncs same-named exercises on the
// paired day.
func (s *WorkoutServiceImpl) UpdateExercise(ctx context.Context, req primary.UpdateExerciseRequest) (*primary.ExerciseResponse, error) {
	prev := s.state.Bundle()
	if err := exercise.Update(&s.state.Workouts, req.Slot, req.Index, req.Exercise); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}
	return s.response(req.Slot, req.Index), nil
}

// QuickUpdate sets current weight and reps.
func (s *WorkoutServiceImpl) QuickUpdate(ctx context.Context, req primary.QuickUpdateRequest) (*primary.ExerciseResponse, error) {
	prev := s.state.Bundle()
	if err := exercise.QuickUpdate(&s.state.Workouts, req.Slot, req.Index, req.Weight, req.Reps); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}
	return s.response(req.Slot, req.Index), nil
}

// MoveExercise moves an exercise one position. Moving past either end is a no-op.
func (s *WorkoutServiceImpl) MoveExercise(ctx context.Context, req primary.MoveExerciseRequest) (*primary.ExerciseResponse, error) {
	prev := s.state.Bundle()
	idx, err := exercise.Move(&s.state.Workouts, req.Slot, req.Index, req.Direction)
	if err != nil {
		return nil, err
	}
	if idx != req.Index {
		if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
			return nil, fmt.Errorf("failed to move exercise: %w", err)
		}
	}
	return s.response(req.Slot, idx), nil
}

// DeleteExercise removes an exercise and returns what was removed.
func (s *WorkoutServiceImpl) DeleteExercise(ctx context.Context, ws slot.WorkoutSlot, index int) (*primary.ExerciseResponse, error) {
	prev := s.state.Bundle()
	removed, err := exercise.Delete(&s.state.Workouts, ws, index)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
		return nil, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return &primary.ExerciseResponse{Slot: ws, Index: index, Exercise: removed}, nil
}

// Export returns the full state as an indented JSON bundle.
func (s *WorkoutServiceImpl) Export(ctx context.Context) ([]byte, error) {
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return nil, err
	}
	return bundle.EncodeBundle(s.state.Bundle())
}

// Import replaces state from a bundle, or only the exercise lists from a
// legacy four-day document. Nothing changes unless the whole document is valid.
func (s *WorkoutServiceImpl) Import(ctx context.Context, raw []byte) (*primary.ImportResponse, error) {
	imp, err := bundle.DecodeImport(raw)
	if err != nil {
		return nil, err
	}

	prev := s.state.Bundle()
	keys := []string{models.KeyWorkoutData}
	switch imp.Format {
	case bundle.FormatBundle:
		s.state.replace(&imp.Bundle)
		s.state.Completion.EnsureCurrentWeek(s.now())
		keys = nil
	default:
		s.state.Workouts = imp.Bundle.WorkoutData.Clone()
	}

	if err := s.commit(ctx, prev, keys...); err != nil {
		return nil, fmt.Errorf("failed to import: %w", err)
	}

	log.WithFields(log.Fields{
		"format":    imp.Format,
		"exercises": s.state.Workouts.Total(),
	}).Info("data imported")

	return &primary.ImportResponse{
		Format:    imp.Format,
		Exercises: s.state.Workouts.Total(),
		History:   s.state.History.Len(),
		Slots:     slot.All(),
	}, nil
}

// LoadProgram replaces the exercise lists of every day the program defines.
func (s *WorkoutServiceImpl) LoadProgram(ctx context.Context, path string) (*primary.ImportResponse, error) {
	if s.programs == nil {
		return nil, fmt.Errorf("no program loader configured")
	}
	days, err := s.programs.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	prev := s.state.Bundle()
	resp := &primary.ImportResponse{Format: FormatProgram, History: s.state.History.Len()}
	for _, ws := range slot.All() {
		list, ok := days[ws]
		if !ok {
			continue
		}
		day := make([]models.Exercise, len(list))
		copy(day, list)
		*s.state.Workouts.Day(ws) = day
		resp.Exercises += len(day)
		resp.Slots = append(resp.Slots, ws)
	}

	if err := s.commit(ctx, prev, models.KeyWorkoutData); err != nil {
		return nil, fmt.Errorf("failed to load program: %w", err)
	}

	log.WithFields(log.Fields{"path": path, "slots": resp.Slots}).Info("program loaded")
	return resp, nil
}

func (s *WorkoutServiceImpl) response(ws slot.WorkoutSlot, index int) *primary.ExerciseResponse {
	return &primary.ExerciseResponse{
		Slot:     ws,
		Index:    index,
		Exercise: s.state.Workouts.Exercises(ws)[index],
	}
}

// Ensure WorkoutServiceImpl implements the interface
var _ primary.WorkoutService = (*WorkoutServiceImpl)(nil)
