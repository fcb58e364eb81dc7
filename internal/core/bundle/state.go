package bundle

import (
	"time"

	"github.com/example/splitlog/internal/core/completion"
	"github.com/example/splitlog/internal/core/history"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/models"
)

// Tracker rebuilds a completion tracker from its persisted form.
func Tracker(cd models.CompletionData) *completion.Tracker {
	return completion.Restore(cd.WeekStart, map[slot.WorkoutSlot]*time.Time{
		slot.UpperA: cd.UpperA,
		slot.LowerA: cd.LowerA,
		slot.UpperB: cd.UpperB,
		slot.LowerB: cd.LowerB,
	})
}

// CompletionData converts a tracker to its persisted form.
func CompletionData(t *completion.Tracker) models.CompletionData {
	return models.CompletionData{
		UpperA:    t.CompletedAt(slot.UpperA),
		LowerA:    t.CompletedAt(slot.LowerA),
		UpperB:    t.CompletedAt(slot.UpperB),
		LowerB:    t.CompletedAt(slot.LowerB),
		WeekStart: t.WeekStart(),
	}
}

// Log rebuilds the history log. Records must already be validated.
func Log(records []models.HistoryRecord) *history.Log {
	entries := make([]history.Entry, len(records))
	for i, r := range records {
		entries[i] = history.Entry{Timestamp: r.Date, Workout: slot.WorkoutSlot(r.Workout)}
	}
	return history.NewLog(entries)
}

// Records converts the history log to its persisted form, newest first.
func Records(l *history.Log) []models.HistoryRecord {
	entries := l.Entries()
	out := make([]models.HistoryRecord, len(entries))
	for i, e := range entries {
		out[i] = models.HistoryRecord{Date: e.Timestamp, Workout: string(e.Workout)}
	}
	return out
}
