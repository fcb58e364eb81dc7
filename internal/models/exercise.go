// Package models contains the persisted domain types for splitlog.
// The JSON names are the storage format and must not change.
package models

import (
	"github.com/example/splitlog/internal/core/slot"
)

// Go-to-failure options offered when editing an exercise.
const (
	FailureNo      = "No"
	FailureYes     = "Yes"
	FailureDropSet = "Yes, also DROP SET!"
)

// Exercise is one card in a workout day. Every field is free text.
type Exercise struct {
	Name             string `json:"name" yaml:"name"`
	Tips             string `json:"tips" yaml:"tips"`
	TargetMuscle     string `json:"targetMuscle" yaml:"target_muscle"`
	MachinePosition  string `json:"machinePosition" yaml:"machine_position"`
	StartingSide     string `json:"startingSide" yaml:"starting_side"`
	Sets             string `json:"sets" yaml:"sets"`
	Reps             string `json:"reps" yaml:"reps"`
	Rest             string `json:"rest" yaml:"rest"`
	CurrentWeight    string `json:"currentWeight" yaml:"current_weight"`
	CurrentReps      string `json:"currentReps" yaml:"current_reps"`
	IncreaseWeightBy string `json:"increaseWeightBy" yaml:"increase_weight_by"`
	GoToFailure      string `json:"goToFailure" yaml:"go_to_failure"`
}

// NewExercise returns an exercise with blank fields and no failure set.
func NewExercise(name string) Exercise {
	return Exercise{Name: name, GoToFailure: FailureNo}
}

// WorkoutData holds the ordered exercises of each workout day.
type WorkoutData struct {
	UpperA []Exercise `json:"upperA"`
	UpperB []Exercise `json:"upperB"`
	LowerA []Exercise `json:"lowerA"`
	LowerB []Exercise `json:"lowerB"`
}

// NewWorkoutData returns four empty (non-nil) day lists so they encode as [].
func NewWorkoutData() WorkoutData {
	return WorkoutData{
		UpperA: []Exercise{},
		UpperB: []Exercise{},
		LowerA: []Exercise{},
		LowerB: []Exercise{},
	}
}

// Day returns a pointer to the exercise list of s, or nil for an unknown slot.
func (d *WorkoutData) Day(s slot.WorkoutSlot) *[]Exercise {
	switch s {
	case slot.UpperA:
		return &d.UpperA
	case slot.UpperB:
		return &d.UpperB
	case slot.LowerA:
		return &d.LowerA
	case slot.LowerB:
		return &d.LowerB
	}
	return nil
}

// Exercises returns the exercises of s (nil for an unknown slot).
func (d WorkoutData) Exercises(s slot.WorkoutSlot) []Exercise {
	if day := d.Day(s); day != nil {
		return *day
	}
	return nil
}

// Normalize replaces nil day lists with empty ones.
func (d *WorkoutData) Normalize() {
	for _, s := range slot.All() {
		day := d.Day(s)
		if *day == nil {
			*day = []Exercise{}
		}
	}
}

// Clone returns a deep copy.
func (d WorkoutData) Clone() WorkoutData {
	out := NewWorkoutData()
	for _, s := range slot.All() {
		src := d.Exercises(s)
		dst := make([]Exercise, len(src))
		copy(dst, src)
		*out.Day(s) = dst
	}
	return out
}

// Total returns the number of exercises across all days.
func (d WorkoutData) Total() int {
	n := 0
	for _, s := range slot.All() {
		n += len(d.Exercises(s))
	}
	return n
}
