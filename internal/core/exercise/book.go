package exercise

import (
	"strings"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
)

// Direction selects which neighbour Move swaps with.
type Direction int

const (
	Up Direction = iota
	Down
)

func locate(data *models.WorkoutData, s slot.WorkoutSlot, index int) (*[]models.Exercise, error) {
	day := data.Day(s)
	count := 0
	if day != nil {
		count = len(*day)
	}
	if err := CanAddress(PositionContext{Slot: s, Index: index, Count: count}).Error(); err != nil {
		return nil, err
	}
	return day, nil
}

// Add appends a new default exercise to s and returns its index.
func Add(data *models.WorkoutData, s slot.WorkoutSlot, name string) (int, error) {
	if err := CanSaveExercise(name).Error(); err != nil {
		return -1, err
	}
	day := data.Day(s)
	if day == nil {
		return -1, CanAddress(PositionContext{Slot: s}).Error()
	}
	*day = append(*day, models.NewExercise(strings.TrimSpace(name)))
	return len(*day) - 1, nil
}

// Update replaces the exercise at index with trimmed fields and copies every
// field except the name to same-named exercises of the paired day.
func Update(data *models.WorkoutData, s slot.WorkoutSlot, index int, fields models.Exercise) error {
	day, err := locate(data, s, index)
	if err != nil {
		return err
	}
	fields = trimmed(fields)
	if err := CanSaveExercise(fields.Name).Error(); err != nil {
		return err
	}
	(*day)[index] = fields
	SyncPaired(data, s, fields)
	return nil
}

// QuickUpdate sets only the current weight and reps, syncing both to the paired day.
func QuickUpdate(data *models.WorkoutData, s slot.WorkoutSlot, index int, weight, reps string) error {
	day, err := locate(data, s, index)
	if err != nil {
		return err
	}
	ex := &(*day)[index]
	ex.CurrentWeight = strings.TrimSpace(weight)
	ex.CurrentReps = strings.TrimSpace(reps)

	if paired := data.Day(s.Paired()); paired != nil {
		for i := range *paired {
			if (*paired)[i].Name == ex.Name {
				(*paired)[i].CurrentWeight = ex.CurrentWeight
				(*paired)[i].CurrentReps = ex.CurrentReps
			}
		}
	}
	return nil
}

// SyncPaired copies all fields but the name from src to every exercise
// with the same name in the paired day. Returns how many were updated.
func SyncPaired(data *models.WorkoutData, s slot.WorkoutSlot, src models.Exercise) int {
	paired := data.Day(s.Paired())
	if paired == nil {
		return 0
	}
	n := 0
	for i := range *paired {
		if (*paired)[i].Name != src.Name {
			continue
		}
		copied := src
		copied.Name = (*paired)[i].Name
		(*paired)[i] = copied
		n++
	}
	return n
}

// Move swaps the exercise at index with its neighbour. Moving the first
// exercise up or the last one down is a no-op. Returns the new index.
func Move(data *models.WorkoutData, s slot.WorkoutSlot, index int, dir Direction) (int, error) {
	day, err := locate(data, s, index)
	if err != nil {
		return index, err
	}
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if target < 0 || target >= len(*day) {
		return index, nil
	}
	(*day)[index], (*day)[target] = (*day)[target], (*day)[index]
	return target, nil
}

// Delete removes the exercise at index and returns it.
func Delete(data *models.WorkoutData, s slot.WorkoutSlot, index int) (models.Exercise, error) {
	day, err := locate(data, s, index)
	if err != nil {
		return models.Exercise{}, err
	}
	removed := (*day)[index]
	*day = append((*day)[:index], (*day)[index+1:]...)
	return removed, nil
}

func trimmed(e models.Exercise) models.Exercise {
	return models.Exercise{
		Name:             strings.TrimSpace(e.Name),
		Tips:             strings.TrimSpace(e.Tips),
		TargetMuscle:     strings.TrimSpace(e.TargetMuscle),
		MachinePosition:  strings.TrimSpace(e.MachinePosition),
		StartingSide:     strings.TrimSpace(e.StartingSide),
		Sets:             strings.TrimSpace(e.Sets),
		Reps:             strings.TrimSpace(e.Reps),
		Rest:             strings.TrimSpace(e.Rest),
		CurrentWeight:    strings.TrimSpace(e.CurrentWeight),
		CurrentReps:      strings.TrimSpace(e.CurrentReps),
		IncreaseWeightBy: strings.TrimSpace(e.IncreaseWeightBy),
		GoToFailure:      strings.TrimSpace(e.GoToFailure),
	}
}
