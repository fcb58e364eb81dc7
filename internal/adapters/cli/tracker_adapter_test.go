package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/example/splitlog/internal/core/history"
	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/core/streak"
	"github.com/example/splitlog/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockTrackerService implements primary.TrackerService for testing
type mockTrackerService struct {
	statusFn   func(ctx context.Context) (*primary.WeekStatus, error)
	completeFn func(ctx context.Context, s slot.WorkoutSlot) (*primary.CompleteResponse, error)
	calendarFn func(ctx context.Context, year int, month time.Month) (*primary.CalendarResponse, error)
	historyFn  func(ctx context.Context, limit int) ([]*primary.HistoryItem, error)
	streak     int

	lastLimit int
}

var _ primary.TrackerService = (*mockTrackerService)(nil)

var monday = time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

func weekStatus(done ...slot.WorkoutSlot) *primary.WeekStatus {
	at := monday.Add(18 * time.Hour)
	st := &primary.WeekStatus{WeekStart: monday, Next: slot.UpperA}
	completed := map[slot.WorkoutSlot]bool{}
	for _, d := range done {
		completed[d] = true
	}
	nextSet := false
	for _, s := range slot.All() {
		ss := primary.SlotStatus{Slot: s}
		if completed[s] {
			ss.Completed = true
			ss.CompletedAt = &at
		} else if !nextSet {
			st.Next = s
			nextSet = true
		}
		st.Slots = append(st.Slots, ss)
	}
	st.WeekComplete = len(done) == 4
	return st
}

func (m *mockTrackerService) Status(ctx context.Context) (*primary.WeekStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return weekStatus(), nil
}

func (m *mockTrackerService) Complete(ctx context.Context, s slot.WorkoutSlot) (*primary.CompleteResponse, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, s)
	}
	return &primary.CompleteResponse{Recorded: s, NewlyComplete: []slot.WorkoutSlot{s}, Status: weekStatus(s)}, nil
}

func (m *mockTrackerService) ResetWeek(ctx context.Context) (*primary.WeekStatus, error) {
	return weekStatus(), nil
}

func (m *mockTrackerService) Streak(ctx context.Context) (int, error) {
	return m.streak, nil
}

func (m *mockTrackerService) MonthCount(ctx context.Context, year int, month time.Month) (int, error) {
	return 0, nil
}

func (m *mockTrackerService) Calendar(ctx context.Context, year int, month time.Month) (*primary.CalendarResponse, error) {
	if m.calendarFn != nil {
		return m.calendarFn(ctx, year, month)
	}
	return nil, errors.New("not configured")
}

func (m *mockTrackerService) History(ctx context.Context, limit int) ([]*primary.HistoryItem, error) {
	m.lastLimit = limit
	if m.historyFn != nil {
		return m.historyFn(ctx, limit)
	}
	return nil, nil
}

func newTestTrackerAdapter() (*TrackerAdapter, *mockTrackerService, *bytes.Buffer) {
	svc := &mockTrackerService{}
	out := &bytes.Buffer{}
	return NewTrackerAdapter(svc, out), svc, out
}

func TestTrackerAdapter_Status(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.statusFn = func(ctx context.Context) (*primary.WeekStatus, error) {
		return weekStatus(slot.UpperA, slot.LowerA), nil
	}

	if err := adapter.Status(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Week of Mon 6 May 2024", "✓ Upper A", "○ Upper B", "Next: Upper B"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestTrackerAdapter_StatusWeekComplete(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.statusFn = func(ctx context.Context) (*primary.WeekStatus, error) {
		return weekStatus(slot.All()...), nil
	}

	_ = adapter.Status(context.Background())

	if !strings.Contains(out.String(), "Week complete!") {
		t.Errorf("expected week complete message, got:\n%s", out.String())
	}
}

func TestTrackerAdapter_CompleteShowsImpliedSlots(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.completeFn = func(ctx context.Context, s slot.WorkoutSlot) (*primary.CompleteResponse, error) {
		return &primary.CompleteResponse{
			Recorded:      s,
			NewlyComplete: []slot.WorkoutSlot{slot.UpperA, slot.LowerA, slot.UpperB},
			Status:        weekStatus(slot.UpperA, slot.LowerA, slot.UpperB),
		}, nil
	}

	if err := adapter.Complete(context.Background(), slot.UpperB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "✓ Completed Upper B") {
		t.Errorf("expected completion line, got:\n%s", output)
	}
	if !strings.Contains(output, "also marked done: Upper A, Lower A") {
		t.Errorf("expected implied slots, got:\n%s", output)
	}
}

func TestTrackerAdapter_CompleteError(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.completeFn = func(ctx context.Context, s slot.WorkoutSlot) (*primary.CompleteResponse, error) {
		return nil, slot.ErrUnknownSlot
	}

	err := adapter.Complete(context.Background(), "legs")

	if !errors.Is(err, slot.ErrUnknownSlot) {
		t.Errorf("expected ErrUnknownSlot, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestTrackerAdapter_Streak(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.streak = 1

	_ = adapter.Streak(context.Background())

	if !strings.Contains(out.String(), "Streak: 1 week\n") {
		t.Errorf("expected singular week, got %q", out.String())
	}
}

func TestTrackerAdapter_Calendar(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	today := time.Date(2024, 5, 8, 18, 0, 0, 0, time.UTC)
	log := history.NewLog([]history.Entry{{Timestamp: today, Workout: slot.UpperA}})
	svc.calendarFn = func(ctx context.Context, year int, month time.Month) (*primary.CalendarResponse, error) {
		return &primary.CalendarResponse{
			View:       streak.BuildCalendarGrid(year, month, log, today),
			MonthCount: 1,
			Streak:     3,
		}, nil
	}

	if err := adapter.Calendar(context.Background(), 2024, time.May); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"May 2024", " Su  Mo  Tu  We  Th  Fr  Sa", "[ 8]", "Workouts this month: 1", "Streak: 3 weeks"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	// header, weekday row and six weeks
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 8 {
		t.Errorf("expected at least 8 lines, got %d", len(lines))
	}
}

func TestTrackerAdapter_History(t *testing.T) {
	adapter, svc, out := newTestTrackerAdapter()
	svc.historyFn = func(ctx context.Context, limit int) ([]*primary.HistoryItem, error) {
		return []*primary.HistoryItem{
			{Date: time.Date(2024, 5, 8, 18, 0, 0, 0, time.UTC), Workout: slot.LowerA},
			{Date: time.Date(2024, 5, 6, 7, 30, 0, 0, time.UTC), Workout: slot.UpperA},
		}, nil
	}

	if err := adapter.History(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.lastLimit != 10 {
		t.Errorf("expected limit 10, got %d", svc.lastLimit)
	}
	output := out.String()
	if !strings.Contains(output, "Wed 8 May 18:00") || !strings.Contains(output, "Lower A") {
		t.Errorf("unexpected history output:\n%s", output)
	}
	if strings.Index(output, "Lower A") > strings.Index(output, "Upper A") {
		t.Error("expected newest entry first")
	}
}

func TestTrackerAdapter_HistoryEmpty(t *testing.T) {
	adapter, _, out := newTestTrackerAdapter()

	_ = adapter.History(context.Background(), 0)

	if !strings.Contains(out.String(), "No workouts logged yet") {
		t.Errorf("expected empty message, got %q", out.String())
	}
}

func TestRenderMarkup(t *testing.T) {
	got := RenderMarkup("keep *red*elbows*red* tucked")
	if got != "keep elbows tucked" {
		t.Errorf("expected markers stripped without colour, got %q", got)
	}
}
