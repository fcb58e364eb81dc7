package exercise

import (
	"errors"
	"testing"

	"github.com/example/splitlog/internal/core/slot"
)

func TestCanSaveExercise(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAllowed bool
	}{
		{"plain name", "Bench press", true},
		{"padded name", "  Row  ", true},
		{"empty", "", false},
		{"whitespace only", " \t ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveExercise(tt.input)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !errors.Is(result.Error(), ErrEmptyName) {
				t.Errorf("expected ErrEmptyName, got %v", result.Error())
			}
		})
	}
}

func TestCanAddress(t *testing.T) {
	tests := []struct {
		name    string
		ctx     PositionContext
		wantErr error
	}{
		{"first of three", PositionContext{Slot: slot.UpperA, Index: 0, Count: 3}, nil},
		{"last of three", PositionContext{Slot: slot.LowerB, Index: 2, Count: 3}, nil},
		{"past the end", PositionContext{Slot: slot.UpperA, Index: 3, Count: 3}, ErrExerciseNotFound},
		{"negative", PositionContext{Slot: slot.UpperA, Index: -1, Count: 3}, ErrExerciseNotFound},
		{"empty day", PositionContext{Slot: slot.LowerA, Index: 0, Count: 0}, ErrExerciseNotFound},
		{"unknown slot", PositionContext{Slot: "legs", Index: 0, Count: 1}, slot.ErrUnknownSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAddress(tt.ctx).Error()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGuardResult_ErrorIncludesReason(t *testing.T) {
	err := CanAddress(PositionContext{Slot: slot.UpperB, Index: 4, Count: 2}).Error()
	if err == nil || err.Error() != "exercise not found: upperB has no exercise #5 (2 exercises)" {
		t.Errorf("unexpected message: %v", err)
	}
}
