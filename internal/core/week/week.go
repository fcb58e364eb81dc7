// Package week contains the Monday-start week arithmetic shared by the
// completion tracker and the streak calculator.
package week

import "time"

// Length is the span of one tracking week.
const Length = 7

// MondayOf returns midnight of the Monday that starts t's week, in t's location.
// Sunday belongs to the week that started six days earlier.
func MondayOf(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// End returns the exclusive end of the week starting at weekStart.
func End(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, Length)
}

// Previous returns the Monday one week before weekStart.
func Previous(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, -Length)
}

// Contains reports whether t falls in [weekStart, weekStart+7d).
func Contains(weekStart, t time.Time) bool {
	return !t.Before(weekStart) && t.Before(End(weekStart))
}
