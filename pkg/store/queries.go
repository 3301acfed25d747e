package store

import (
	"sort"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
)

// EventsForDay returns events on the given calendar day: either assigned to
// it or carrying a start time that falls on it.
func (s *Store) EventsForDay(date time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		if e.AssignedDate != nil && !e.AssignedDate.IsZero() && e.AssignedDate.SameDay(date) {
			return true
		}
		if e.StartTime != nil && !e.StartTime.IsZero() && e.StartTime.SameDay(date) {
			return true
		}
		return false
	})
}

// BacklogEvents returns all unscheduled events at exactly the given level,
// regardless of period. This is the whole backlog for the year level, which
// has no narrower filter.
func (s *Store) BacklogEvents(level event.Level) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return !e.Scheduled() && e.BacklogLevel == level
	})
}

// MonthBacklogEventsOnly returns events native to the given month's backlog:
// month-level items anchored to that month, or legacy items created in it.
func (s *Store) MonthBacklogEventsOnly(month time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return s.matches(e, event.LevelMonth, month, false)
	})
}

// WeekBacklogEventsOnly returns events native to the given week's backlog:
// week-level items anchored to that Monday, or legacy items created in that
// week.
func (s *Store) WeekBacklogEventsOnly(weekStart time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return s.matches(e, event.LevelWeek, weekStart, false)
	})
}

// MonthBacklogEvents is the inheritance-aware variant: native month items
// plus year-level items whose year contains the month.
func (s *Store) MonthBacklogEvents(month time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return s.matches(e, event.LevelMonth, month, true)
	})
}

// WeekBacklogEvents is the inheritance-aware variant: native week items plus
// month and year items whose period contains the week.
func (s *Store) WeekBacklogEvents(weekStart time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return s.matches(e, event.LevelWeek, weekStart, true)
	})
}

// DayBacklogEvents is the inheritance-aware variant for a day: day items
// created on it plus week, month and year items whose period contains it.
func (s *Store) DayBacklogEvents(day time.Time) []*event.Event {
	return s.filter(func(e *event.Event) bool {
		return s.matches(e, event.LevelDay, day, true)
	})
}

// matches decides backlog membership for one event against a queried level
// and period. Both query families share it so the native and inheriting
// semantics cannot drift.
func (s *Store) matches(e *event.Event, queried event.Level, pd time.Time, includeInherited bool) bool {
	if e == nil || e.Scheduled() {
		return false
	}
	if !includeInherited && e.BacklogLevel != queried {
		return false
	}
	if includeInherited && !contains(e.BacklogLevel, queried) {
		return false
	}

	switch e.BacklogLevel {
	case event.LevelDay:
		return !e.Created.IsZero() && period.SameDay(e.Created.Time, pd)
	case event.LevelWeek:
		anchor, ok := weekAnchor(e)
		if !ok {
			return false
		}
		if queried == event.LevelWeek {
			// Exact bucket identity: anchor equals the queried Monday.
			return period.SameDay(anchor, pd)
		}
		return period.SameWeek(anchor, pd)
	case event.LevelMonth:
		anchor, ok := monthAnchor(e)
		if !ok {
			return false
		}
		return period.SameMonth(anchor, pd)
	case event.LevelYear:
		return !e.Created.IsZero() && period.SameYear(e.Created.Time, pd)
	default:
		return false
	}
}

// contains reports whether an item at level holds sway over the queried
// granularity: a level is visible at its own granularity and any finer one.
func contains(level, queried event.Level) bool {
	rank := func(l event.Level) int {
		switch l {
		case event.LevelYear:
			return 0
		case event.LevelMonth:
			return 1
		case event.LevelWeek:
			return 2
		case event.LevelDay:
			return 3
		default:
			return -1
		}
	}
	lr, qr := rank(level), rank(queried)
	if lr < 0 || qr < 0 {
		return false
	}
	return lr <= qr
}

// weekAnchor resolves the Monday identifying the event's week bucket. New
// events carry an explicit anchor; legacy events fall back to the week of
// their creation. This fallback is a migration shim and should only trigger
// for pre-anchor data.
func weekAnchor(e *event.Event) (time.Time, bool) {
	if e.WeekStart != nil && !e.WeekStart.IsZero() {
		return e.WeekStart.Time, true
	}
	if e.Created.IsZero() {
		return time.Time{}, false
	}
	return period.StartOfWeek(e.Created.Time), true
}

// monthAnchor resolves the first-of-month identifying the event's month
// bucket, with the same legacy fallback as weekAnchor.
func monthAnchor(e *event.Event) (time.Time, bool) {
	if e.MonthStart != nil && !e.MonthStart.IsZero() {
		return e.MonthStart.Time, true
	}
	if e.Created.IsZero() {
		return time.Time{}, false
	}
	return period.StartOfMonth(e.Created.Time), true
}

// filter copies matching events out of the current snapshot in stable order.
// A malformed record never aborts the pass; it is skipped.
func (s *Store) filter(keep func(*event.Event) bool) []*event.Event {
	s.mu.RLock()
	snapshot := s.events
	s.mu.RUnlock()

	out := make([]*event.Event, 0, len(snapshot))
	for _, e := range snapshot {
		if e == nil {
			continue
		}
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	sortEvents(out)
	return out
}

func sortEvents(events []*event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		left := events[i]
		right := events[j]
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}
