package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/splitlog/internal/core/slot"
	"github.com/example/splitlog/internal/ports/primary"
)

// TrackerAdapter translates CLI operations to TrackerService calls.
type TrackerAdapter struct {
	service primary.TrackerService
	out     io.Writer
}

// NewTrackerAdapter creates a new TrackerAdapter with the given service.
func NewTrackerAdapter(service primary.TrackerService, out io.Writer) *TrackerAdapter {
	return &TrackerAdapter{
		service: service,
		out:     out,
	}
}

// Status prints this week's progress.
func (a *TrackerAdapter) Status(ctx context.Context) error {
	status, err := a.service.Status(ctx)
	if err != nil {
		return err
	}
	a.printStatus(status)
	return nil
}

func (a *TrackerAdapter) printStatus(status *primary.WeekStatus) {
	fmt.Fprintf(a.out, "\nWeek of %s\n", formatDay(status.WeekStart))
	fmt.Fprintln(a.out, "────────────────────────────────")
	for _, s := range status.Slots {
		if s.Completed {
			fmt.Fprintf(a.out, "%s %-8s %s\n", okMark(), s.Slot.Label(), formatStamp(*s.CompletedAt))
		} else {
			fmt.Fprintf(a.out, "%s %s\n", openMark(), s.Slot.Label())
		}
	}
	fmt.Fprintln(a.out)
	if status.WeekComplete {
		fmt.Fprintln(a.out, color.New(color.FgGreen, color.Bold).Sprint("Week complete!"))
	} else {
		fmt.Fprintf(a.out, "Next: %s\n", color.New(color.FgCyan).Sprint(status.Next.Label()))
	}
}

// Complete records a workout.
func (a *TrackerAdapter) Complete(ctx context.Context, s slot.WorkoutSlot) error {
	resp, err := a.service.Complete(ctx, s)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Completed %s\n", resp.Recorded.Label())
	var implied []string
	for _, n := range resp.NewlyComplete {
		if n != resp.Recorded {
			implied = append(implied, n.Label())
		}
	}
	if len(implied) > 0 {
		fmt.Fprintf(a.out, "  also marked done: %s\n", strings.Join(implied, ", "))
	}
	a.printStatus(resp.Status)
	return nil
}

// ResetWeek clears this week's progress.
func (a *TrackerAdapter) ResetWeek(ctx context.Context) error {
	status, err := a.service.ResetWeek(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Week of %s reset\n", formatDay(status.WeekStart))
	return nil
}

// Streak prints the current streak.
func (a *TrackerAdapter) Streak(ctx context.Context) error {
	n, err := a.service.Streak(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Streak: %s\n", color.New(color.FgYellow, color.Bold).Sprint(plural(n, "week")))
	return nil
}

// Calendar prints the month grid followed by month count and streak.
func (a *TrackerAdapter) Calendar(ctx context.Context, year int, month time.Month) error {
	resp, err := a.service.Calendar(ctx, year, month)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	RenderCalendar(a.out, resp.View)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Workouts this month: %d\n", resp.MonthCount)
	fmt.Fprintf(a.out, "Streak: %s\n", plural(resp.Streak, "week"))
	return nil
}

// History prints logged workouts, newest first.
func (a *TrackerAdapter) History(ctx context.Context, limit int) error {
	items, err := a.service.History(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No workouts logged yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tWORKOUT")
	fmt.Fprintln(w, "----\t-------")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\n", formatStamp(it.Date), it.Workout.Label())
	}
	return w.Flush()
}
