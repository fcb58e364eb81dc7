// Package completion tracks which workout slots have been done in the
// current Monday-start week.
// This is part of the Functional Core - no I/O, callers pass the current time.
package completion

import (
	"time"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/week"
)

// Tracker holds the per-week completion state for the four slots.
// A slot is Incomplete until completed; it stays completed until the week rolls over.
type Tracker struct {
	weekStart time.Time
	completed map[slot.WorkoutSlot]time.Time
}

// NewTracker returns a tracker with no week started. EnsureCurrentWeek
// must be called before it is read.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[slot.WorkoutSlot]time.Time)}
}

// Restore rebuilds a tracker from persisted state. A zero weekStart means
// no week has been tracked yet. Nil timestamps are incomplete slots.
func Restore(weekStart time.Time, completed map[slot.WorkoutSlot]*time.Time) *Tracker {
	t := NewTracker()
	t.weekStart = weekStart
	for s, ts := range completed {
		if ts != nil && s.Valid() {
			t.completed[s] = *ts
		}
	}
	return t
}

// WeekStart returns the Monday the current state belongs to.
func (t *Tracker) WeekStart() time.Time {
	return t.weekStart
}

// EnsureCurrentWeek resets every slot when the stored week start is not
// now's Monday (or none is stored). A week start in the future is reset
// too, so WeekStart never runs ahead of the clock. Returns true on rollover.
func (t *Tracker) EnsureCurrentWeek(now time.Time) bool {
	monday := week.MondayOf(now)
	if !t.weekStart.IsZero() && t.weekStart.Equal(monday) {
		return false
	}
	t.reset(monday)
	return true
}

// ResetWeek clears all slots and starts the week containing now.
func (t *Tracker) ResetWeek(now time.Time) {
	t.reset(week.MondayOf(now))
}

func (t *Tracker) reset(monday time.Time) {
	t.weekStart = monday
	t.completed = make(map[slot.WorkoutSlot]time.Time)
}

// CompleteThrough marks s and every slot before it in slot.Order as
// completed at now. Slots already completed keep their timestamp.
// Starting mid-rotation is treated as having done the earlier days.
// Returns the slots that changed state, in order.
func (t *Tracker) CompleteThrough(s slot.WorkoutSlot, now time.Time) []slot.WorkoutSlot {
	idx := s.Index()
	if idx < 0 {
		return nil
	}

	var changed []slot.WorkoutSlot
	for _, o := range slot.Order[:idx+1] {
		if _, done := t.completed[o]; done {
			continue
		}
		t.completed[o] = now
		changed = append(changed, o)
	}
	return changed
}

// IsCompleted reports whether s is done this week.
func (t *Tracker) IsCompleted(s slot.WorkoutSlot) bool {
	_, ok := t.completed[s]
	return ok
}

// CompletedAt returns the completion time for s, or nil.
func (t *Tracker) CompletedAt(s slot.WorkoutSlot) *time.Time {
	ts, ok := t.completed[s]
	if !ok {
		return nil
	}
	return &ts
}

// IsWeekComplete reports whether all four slots are done.
func (t *Tracker) IsWeekComplete() bool {
	for _, s := range slot.Order {
		if !t.IsCompleted(s) {
			return false
		}
	}
	return true
}

// NextIncomplete returns the first slot in order that is not done.
// When the whole week is done it wraps around to the first slot.
func (t *Tracker) NextIncomplete() slot.WorkoutSlot {
	for _, s := range slot.Order {
		if !t.IsCompleted(s) {
			return s
		}
	}
	return slot.Order[0]
}

// Snapshot returns the completion time per slot (nil when incomplete).
func (t *Tracker) Snapshot() map[slot.WorkoutSlot]*time.Time {
	out := make(map[slot.WorkoutSlot]*time.Time, len(slot.Order))
	for _, s := range slot.Order {
		out[s] = t.CompletedAt(s)
	}
	return out
}
