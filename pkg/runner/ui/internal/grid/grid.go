// Package grid renders month grids for the calendar views. Weeks start on
// Monday to match backlog week buckets.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/DimaFrost/glass-cal/pkg/period"
)

// Day describes a single day rendered in the grid.
type Day struct {
	Day        int
	HasEvent   bool
	IsToday    bool
	IsSelected bool
}

// Options controls grid styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
	// ShowWeekNumbers prefixes every row with the ISO week number of its
	// Monday.
	ShowWeekNumbers bool
}

// Render produces a multi-line month grid for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := period.StartOfMonth(month)
	daysInMonth := period.DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		header := "Mo Tu We Th Fr Sa Su"
		if opts.ShowWeekNumbers {
			header = "     " + header
		}
		lines = append(lines, opts.HeaderStyle.Render(header))
	}

	// Monday-first column offset.
	startOffset := (int(first.Weekday()) + 6) % 7
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		if opts.ShowWeekNumbers {
			monday := first.AddDate(0, 0, row*7-startOffset)
			_, wk := monday.ISOWeek()
			cells = append(cells, opts.HeaderStyle.Render(fmt.Sprintf("%2d |", wk)))
		}
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEvent {
		style = opts.EventStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
