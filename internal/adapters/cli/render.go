// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/splitlog/internal/core/markup"
	"github.com/example/splitlog/internal/core/streak"
)

func okMark() string   { return color.New(color.FgGreen).Sprint("✓") }
func openMark() string { return color.New(color.FgHiBlack).Sprint("○") }

var markupColors = map[markup.Color]*color.Color{
	markup.Red:    color.New(color.FgRed),
	markup.Blue:   color.New(color.FgBlue),
	markup.Yellow: color.New(color.FgYellow),
}

// RenderMarkup converts *red*..*red* style markers into terminal colours.
func RenderMarkup(text string) string {
	var b strings.Builder
	for _, span := range markup.Parse(text) {
		if c, ok := markupColors[span.Color]; ok {
			b.WriteString(c.Sprint(span.Text))
			continue
		}
		b.WriteString(span.Text)
	}
	return b.String()
}

// RenderCalendar writes a Sunday-first month grid. Days with a workout are
// green, today is bracketed, other months are dimmed.
func RenderCalendar(out io.Writer, view streak.CalendarMonthView) {
	title := fmt.Sprintf("%s %d", view.Month, view.Year)
	width := 7*4 - 1
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", pad), color.New(color.Bold).Sprint(title))
	fmt.Fprintln(out, " Su  Mo  Tu  We  Th  Fr  Sa")

	dim := color.New(color.FgHiBlack)
	workout := color.New(color.FgGreen, color.Bold)
	for _, row := range view.Weeks() {
		cells := make([]string, len(row))
		for i, d := range row {
			cell := fmt.Sprintf(" %2d ", d.Number)
			if d.IsToday {
				cell = fmt.Sprintf("[%2d]", d.Number)
			}
			switch {
			case !d.InMonth:
				cell = dim.Sprint(cell)
			case d.HasWorkout:
				cell = workout.Sprint(cell)
			}
			cells[i] = cell
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, ""), " "))
	}
}

func formatDay(t time.Time) string {
	return t.Format("Mon 2 Jan 2006")
}

func formatStamp(t time.Time) string {
	return t.Format("Mon 2 Jan 15:04")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
