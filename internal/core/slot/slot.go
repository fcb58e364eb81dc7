// Package slot defines the four fixed workout days and their rotation.
// This is part of the Functional Core - no I/O, only pure functions.
package slot

import (
	"errors"
	"fmt"
)

// WorkoutSlot identifies one of the four rotating workout days.
// The string values are also the persisted JSON keys.
type WorkoutSlot string

const (
	UpperA WorkoutSlot = "upperA"
	UpperB WorkoutSlot = "upperB"
	LowerA WorkoutSlot = "lowerA"
	LowerB WorkoutSlot = "lowerB"
)

// ErrUnknownSlot is returned when a name does not match any workout slot.
var ErrUnknownSlot = errors.New("unknown workout slot")

// Order is the fixed progression through a training week.
var Order = [4]WorkoutSlot{UpperA, LowerA, UpperB, LowerB}

// All returns the slots in progression order.
func All() []WorkoutSlot {
	return Order[:]
}

// Parse converts a name to a WorkoutSlot. Matching is case-sensitive.
func Parse(name string) (WorkoutSlot, error) {
	for _, s := range Order {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of upperA, lowerA, upperB, lowerB)", ErrUnknownSlot, name)
}

// Valid reports whether s is one of the four slots.
func (s WorkoutSlot) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in Order, or -1.
func (s WorkoutSlot) Index() int {
	for i, o := range Order {
		if o == s {
			return i
		}
	}
	return -1
}

// Paired returns the slot that shares exercises with s
// (upperA<->upperB, lowerA<->lowerB).
func (s WorkoutSlot) Paired() WorkoutSlot {
	switch s {
	case UpperA:
		return UpperB
	case UpperB:
		return UpperA
	case LowerA:
		return LowerB
	case LowerB:
		return LowerA
	}
	return ""
}

// Label returns a human readable name, e.g. "Upper A".
func (s WorkoutSlot) Label() string {
	switch s {
	case UpperA:
		return "Upper A"
	case UpperB:
		return "Upper B"
	case LowerA:
		return "Lower A"
	case LowerB:
		return "Lower B"
	}
	return string(s)
}

func (s WorkoutSlot) String() string {
	return string(s)
}
