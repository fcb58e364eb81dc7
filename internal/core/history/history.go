// Package history holds the append-only log of completed workouts.
// It is the source of truth for streak and calendar computations.
package history

import (
	"time"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/week"
)

// Entry records one completed workout.
type Entry struct {
	Timestamp time.Time
	Workout   slot.WorkoutSlot
}

// Log is a newest-first sequence of entries.
// Entries are never mutated, deduplicated or capped.
type Log struct {
	entries []Entry
}

// NewLog wraps entries that are already ordered newest first.
func NewLog(entries []Entry) *Log {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Log{entries: cp}
}

// Record inserts a new entry at the front of the log.
func (l *Log) Record(s slot.WorkoutSlot, now time.Time) Entry {
	e := Entry{Timestamp: now, Workout: s}
	l.entries = append([]Entry{e}, l.entries...)
	return e
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	cp := make([]Entry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Empty reports whether nothing has been recorded.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}

// EntriesInWeek returns the distinct slots with an entry in
// [weekStart, weekStart+7d).
func (l *Log) EntriesInWeek(weekStart time.Time) map[slot.WorkoutSlot]bool {
	seen := make(map[slot.WorkoutSlot]bool)
	for _, e := range l.entries {
		if week.Contains(weekStart, e.Timestamp) {
			seen[e.Workout] = true
		}
	}
	return seen
}

// EntriesOnDay reports whether any entry falls on the given calendar day in loc.
func (l *Log) EntriesOnDay(year int, month time.Month, day int, loc *time.Location) bool {
	for _, e := range l.entries {
		y, m, d := e.Timestamp.In(loc).Date()
		if y == year && m == month && d == day {
			return true
		}
	}
	return false
}

// Latest returns up to n entries, newest first. n <= 0 returns all.
func (l *Log) Latest(n int) []Entry {
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	cp := make([]Entry, n)
	copy(cp, l.entries[:n])
	return cp
}
