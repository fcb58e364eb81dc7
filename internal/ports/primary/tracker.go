package primary

import (
	"context"
	"time"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/streak"
)

// TrackerService defines the primary port for weekly completion, streak and calendar.
type TrackerService interface {
	// Status returns the completion state of the current week.
	Status(ctx context.Context) (*WeekStatus, error)

	// Complete marks a workout (and the ones before it in the rotation) done.
	Complete(ctx context.Context, s slot.WorkoutSlot) (*CompleteResponse, error)

	// ResetWeek clears this week's completion state.
	ResetWeek(ctx context.Context) (*WeekStatus, error)

	// Streak returns the number of consecutive complete weeks.
	Streak(ctx context.Context) (int, error)

	// MonthCount returns how many workouts were logged in a month.
	MonthCount(ctx context.Context, year int, month time.Month) (int, error)

	// Calendar returns the 42-cell grid for a month.
	Calendar(ctx context.Context, year int, month time.Month) (*CalendarResponse, error)

	// History returns up to limit entries, newest first (limit <= 0 for all).
	History(ctx context.Context, limit int) ([]*HistoryItem, error)
}

// SlotStatus is the completion state of one workout in the current week.
type SlotStatus struct {
	Slot        slot.WorkoutSlot
	Completed   bool
	CompletedAt *time.Time
}

// WeekStatus describes the current tracking week.
type WeekStatus struct {
	WeekStart    time.Time
	Slots        []SlotStatus // in rotation order
	Next         slot.WorkoutSlot
	WeekComplete bool
}

// CompleteResponse contains the result of completing a workout.
type CompleteResponse struct {
	Recorded      slot.WorkoutSlot
	NewlyComplete []slot.WorkoutSlot
	Status        *WeekStatus
}

// CalendarResponse contains a month grid plus its summary numbers.
type CalendarResponse struct {
	View       streak.CalendarMonthView
	MonthCount int
	Streak     int
}

// HistoryItem is one completed workout at the port boundary.
type HistoryItem struct {
	Date    time.Time
	Workout slot.WorkoutSlot
}
