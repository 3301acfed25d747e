// Package period provides calendar period math for the planner. Weeks are
// Monday-anchored throughout.
package period

import (
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
)

const (
	// LayoutDay is the wire format for day and week identifiers.
	LayoutDay = "2006-01-02"
	// LayoutMonth is the wire format for month identifiers.
	LayoutMonth = "2006-01"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday beginning the week containing t.
func StartOfWeek(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, ..., Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return StartOfDay(monday)
}

// StartOfMonth returns the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns January 1st of the year containing t.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func SameWeek(a, b time.Time) bool {
	return SameDay(StartOfWeek(a), StartOfWeek(b))
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// FormatDay renders t as yyyy-MM-dd.
func FormatDay(t time.Time) string {
	return t.Format(LayoutDay)
}

// ParseDay parses a yyyy-MM-dd identifier.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(LayoutDay, s)
}

// FormatMonth renders t as yyyy-MM.
func FormatMonth(t time.Time) string {
	return t.Format(LayoutMonth)
}

// ParseMonth parses a yyyy-MM identifier to the first of the month.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(LayoutMonth, s)
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// Step shifts t by delta units of the view's granularity. Month and year
// steps clamp the day-of-month to the target month's length so that a
// forward step followed by a backward step lands in the original month.
func Step(t time.Time, view event.ViewType, delta int) time.Time {
	switch view {
	case event.ViewYear:
		return stepMonths(t, 12*delta)
	case event.ViewMonth:
		return stepMonths(t, delta)
	case event.ViewWeek:
		return t.AddDate(0, 0, 7*delta)
	case event.ViewDay:
		return t.AddDate(0, 0, delta)
	default:
		return t
	}
}

func stepMonths(t time.Time, months int) time.Time {
	target := StartOfMonth(t).AddDate(0, months, 0)
	day := t.Day()
	if max := DaysIn(target); day > max {
		day = max
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
