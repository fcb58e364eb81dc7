package streak

import (
	"time"

	"github.com/example/splitlog/internal/core/history"
)

// GridCells is the fixed size of a month view: six weeks of seven days.
const GridCells = 42

// Day is one cell of the calendar grid.
type Day struct {
	Number     int
	InMonth    bool
	IsToday    bool
	HasWorkout bool
}

// CalendarMonthView is a Sunday-first month grid with out-of-month padding.
type CalendarMonthView struct {
	Year  int
	Month time.Month
	Cells [GridCells]Day
}

// Weeks returns the grid as six rows of seven days.
func (v CalendarMonthView) Weeks() [][]Day {
	rows := make([][]Day, 0, GridCells/7)
	for i := 0; i < GridCells; i += 7 {
		rows = append(rows, v.Cells[i:i+7])
	}
	return rows
}

// daysIn returns the number of days in month, using day 0 of the next month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// BuildCalendarGrid lays out year/month in today's location. IsToday is set only
// when today falls in that month; HasWorkout marks days with a history entry.
func BuildCalendarGrid(year int, month time.Month, h *history.Log, today time.Time) CalendarMonthView {
	loc := today.Location()
	if h == nil {
		h = history.NewLog(nil)
	}

	view := CalendarMonthView{Year: year, Month: month}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	startingDay := int(first.Weekday())
	prevDays := daysIn(year, month-1, loc)
	days := daysIn(year, month, loc)
	ty, tm, td := today.Date()

	i := 0
	for ; i < startingDay; i++ {
		view.Cells[i] = Day{Number: prevDays - startingDay + 1 + i}
	}
	for d := 1; d <= days; d++ {
		view.Cells[i] = Day{
			Number:     d,
			InMonth:    true,
			IsToday:    ty == first.Year() && tm == first.Month() && td == d,
			HasWorkout: h.EntriesOnDay(first.Year(), first.Month(), d, loc),
		}
		i++
	}
	for next := 1; i < GridCells; next++ {
		view.Cells[i] = Day{Number: next}
		i++
	}

	view.Year, view.Month = first.Year(), first.Month()
	return view
}
