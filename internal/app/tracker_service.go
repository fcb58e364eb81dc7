package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/streak"
	"github.com/example/splitlog/internal/core/week"
	"github.com/example/splitlog/internal/models"
	"github.com/example/splitlog/internal/ports/primary"
	"github.com/example/splitlog/internal/ports/secondary"
)

// TrackerServiceImpl implements the TrackerService interface.
type TrackerServiceImpl struct {
	session
}

// NewTrackerService creates a new TrackerService with injected dependencies.
// now may be nil, in which case time.Now is used.
func NewTrackerService(state *State, repo secondary.StateRepository, cache *ViewCache, now func() time.Time) *TrackerServiceImpl {
	return &TrackerServiceImpl{session: newSession(state, repo, cache, now)}
}

// Status returns the completion state of the current week.
func (s *TrackerServiceImpl) Status(ctx context.Context) (*primary.WeekStatus, error) {
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return nil, err
	}
	return s.weekStatus(), nil
}

// Complete marks s and every earlier slot in the rotation as done and logs
// one history entry for s.
func (s *TrackerServiceImpl) Complete(ctx context.Context, ws slot.WorkoutSlot) (*primary.CompleteResponse, error) {
	if !ws.Valid() {
		return nil, fmt.Errorf("%w: %q", slot.ErrUnknownSlot, ws)
	}
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return nil, err
	}

	prev := s.state.Bundle()
	now := s.now()
	newly := s.state.Completion.CompleteThrough(ws, now)
	s.state.History.Record(ws, now)

	if err := s.commit(ctx, prev, models.KeyCompletionData, models.KeyWorkoutHistory); err != nil {
		return nil, fmt.Errorf("failed to record workout: %w", err)
	}

	log.WithFields(log.Fields{
		"workout":        ws,
		"newly_complete": len(newly),
	}).Info("workout completed")

	return &primary.CompleteResponse{
		Recorded:      ws,
		NewlyComplete: newly,
		Status:        s.weekStatus(),
	}, nil
}

// ResetWeek clears this week's completion state. History is untouched.
func (s *TrackerServiceImpl) ResetWeek(ctx context.Context) (*primary.WeekStatus, error) {
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return nil, err
	}

	prev := s.state.Bundle()
	s.state.Completion.ResetWeek(s.now())
	if err := s.commit(ctx, prev, models.KeyCompletionData); err != nil {
		return nil, fmt.Errorf("failed to reset week: %w", err)
	}

	log.Info("week reset")
	return s.weekStatus(), nil
}

// Streak returns the number of consecutive complete weeks before this one.
func (s *TrackerServiceImpl) Streak(ctx context.Context) (int, error) {
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return 0, err
	}
	return s.streak(), nil
}

func (s *TrackerServiceImpl) streak() int {
	now := s.now()
	key := "streak::" + week.MondayOf(now).Format(time.DateOnly)

	var n int
	if s.cache.Get(key, &n) {
		return n
	}
	n = streak.CurrentStreak(s.state.History, now)
	s.cache.Set(key, n)
	return n
}

// MonthCount returns how many workouts were logged in a month.
func (s *TrackerServiceImpl) MonthCount(ctx context.Context, year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("invalid month %d", month)
	}
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return 0, err
	}
	return s.monthCount(year, month), nil
}

func (s *TrackerServiceImpl) monthCount(year int, month time.Month) int {
	key := fmt.Sprintf("month::%04d-%02d", year, month)

	var n int
	if s.cache.Get(key, &n) {
		return n
	}
	n = streak.MonthWorkoutCount(s.state.History, year, month, s.now().Location())
	s.cache.Set(key, n)
	return n
}

// Calendar returns the 42-cell grid for a month with its summary numbers.
func (s *TrackerServiceImpl) Calendar(ctx context.Context, year int, month time.Month) (*primary.CalendarResponse, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if err := s.ensureCurrentWeek(ctx); err != nil {
		return nil, err
	}

	today := s.now()
	key := fmt.Sprintf("calendar::%04d-%02d::%s", year, month, today.Format(time.DateOnly))

	var resp primary.CalendarResponse
	if s.cache.Get(key, &resp) {
		return &resp, nil
	}

	resp = primary.CalendarResponse{
		View:       streak.BuildCalendarGrid(year, month, s.state.History, today),
		MonthCount: s.monthCount(year, month),
		Streak:     s.streak(),
	}
	s.cache.Set(key, resp)
	return &resp, nil
}

// History returns up to limit entries, newest first (limit <= 0 for all).
func (s *TrackerServiceImpl) History(ctx context.Context, limit int) ([]*primary.HistoryItem, error) {
	entries := s.state.History.Latest(limit)
	items := make([]*primary.HistoryItem, len(entries))
	for i, e := range entries {
		items[i] = &primary.HistoryItem{Date: e.Timestamp, Workout: e.Workout}
	}
	return items, nil
}

func (s *TrackerServiceImpl) weekStatus() *primary.WeekStatus {
	c := s.state.Completion
	status := &primary.WeekStatus{
		WeekStart:    c.WeekStart(),
		Slots:        make([]primary.SlotStatus, 0, len(slot.Order)),
		Next:         c.NextIncomplete(),
		WeekComplete: c.IsWeekComplete(),
	}
	for _, ws := range slot.All() {
		status.Slots = append(status.Slots, primary.SlotStatus{
			Slot:        ws,
			Completed:   c.IsCompleted(ws),
			CompletedAt: c.CompletedAt(ws),
		})
	}
	return status
}

// Ensure TrackerServiceImpl implements the interface
var _ primary.TrackerService = (*TrackerServiceImpl)(nil)
