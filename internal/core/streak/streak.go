// Package streak derives weekly streaks, monthly counts and the month
// calendar from the workout history. Nothing here is persisted.
package streak

import (
	"time"

	"github.com/example/splitlog/internal/core/history"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/week"
)

// MaxWeeks caps how far back CurrentStreak scans.
const MaxWeeks = 52

// CurrentStreak counts consecutive fully completed weeks before the current one.
//
// The week containing now is never counted, even when already complete.
// The most recent closed week may be incomplete without breaking the streak;
// any older incomplete week ends it. At most MaxWeeks weeks are scanned.
func CurrentStreak(h *history.Log, now time.Time) int {
	if h == nil || h.Empty() {
		return 0
	}

	streak := 0
	ws := week.Previous(week.MondayOf(now))
	for i := 0; i < MaxWeeks; i++ {
		if weekComplete(h, ws) {
			streak++
		} else if i > 0 {
			break
		}
		ws = week.Previous(ws)
	}
	return streak
}

func weekComplete(h *history.Log, weekStart time.Time) bool {
	done := h.EntriesInWeek(weekStart)
	for _, s := range slot.Order {
		if !done[s] {
			return false
		}
	}
	return true
}

// MonthWorkoutCount counts every entry whose timestamp falls in the given
// month in loc. Multiple entries per day or slot all count.
func MonthWorkoutCount(h *history.Log, year int, month time.Month, loc *time.Location) int {
	if h == nil {
		return 0
	}
	count := 0
	for _, e := range h.Entries() {
		y, m, _ := e.Timestamp.In(loc).Date()
		if y == year && m == month {
			count++
		}
	}
	return count
}
