package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/splitlog/internal/core/slot"
)

func TestRecord_NewestFirst(t *testing.T) {
	log := NewLog(nil)
	first := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	log.Record(slot.UpperA, first)
	log.Record(slot.LowerA, second)

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, slot.LowerA, entries[0].Workout)
	assert.Equal(t, second, entries[0].Timestamp)
	assert.Equal(t, slot.UpperA, entries[1].Workout)
}

func TestRecord_NoDedup(t *testing.T) {
	log := NewLog(nil)
	now := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	log.Record(slot.UpperA, now)
	log.Record(slot.UpperA, now)

	assert.Equal(t, 2, log.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	log := NewLog([]Entry{{Timestamp: time.Now(), Workout: slot.UpperA}})
	entries := log.Entries()
	entries[0].Workout = slot.LowerB

	assert.Equal(t, slot.UpperA, log.Entries()[0].Workout)
}

func TestEntriesInWeek_HalfOpen(t *testing.T) {
	weekStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	log := NewLog([]Entry{
		{Timestamp: weekStart.AddDate(0, 0, 7), Workout: slot.LowerB},  // next week
		{Timestamp: weekStart.AddDate(0, 0, 3), Workout: slot.UpperB},  // thursday
		{Timestamp: weekStart, Workout: slot.UpperA},                    // monday 00:00
		{Timestamp: weekStart.Add(-time.Second), Workout: slot.LowerA}, // previous sunday
	})

	got := log.EntriesInWeek(weekStart)

	assert.Equal(t, map[slot.WorkoutSlot]bool{slot.UpperA: true, slot.UpperB: true}, got)
}

func TestEntriesInWeek_Empty(t *testing.T) {
	log := NewLog(nil)
	assert.Empty(t, log.EntriesInWeek(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)))
	assert.True(t, log.Empty())
}

func TestEntriesOnDay_UsesLocation(t *testing.T) {
	// 23:30 UTC on 6 May is already 7 May in UTC+2.
	loc := time.FixedZone("plus2", 2*60*60)
	log := NewLog([]Entry{
		{Timestamp: time.Date(2024, 5, 6, 23, 30, 0, 0, time.UTC), Workout: slot.UpperA},
	})

	assert.True(t, log.EntriesOnDay(2024, time.May, 6, time.UTC))
	assert.False(t, log.EntriesOnDay(2024, time.May, 7, time.UTC))
	assert.True(t, log.EntriesOnDay(2024, time.May, 7, loc))
	assert.False(t, log.EntriesOnDay(2024, time.May, 6, loc))
}

func TestLatest(t *testing.T) {
	base := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	log := NewLog(nil)
	for i, s := range slot.All() {
		log.Record(s, base.Add(time.Duration(i)*time.Hour))
	}

	latest := log.Latest(2)
	require.Len(t, latest, 2)
	assert.Equal(t, slot.LowerB, latest[0].Workout)
	assert.Equal(t, slot.UpperB, latest[1].Workout)

	assert.Len(t, log.Latest(0), 4)
	assert.Len(t, log.Latest(10), 4)
}
