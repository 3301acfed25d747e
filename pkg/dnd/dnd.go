// Package dnd routes completed drag gestures to store actions. The
// destination id grammar is the contract between gesture capture and the
// store:
//
//	day-<yyyy-MM-dd>         assign to a calendar day
//	month-<yyyy-MM>          move to that month's backlog bucket
//	week-backlog-<yyyy-MM-dd> move to that week's backlog bucket
//	day-backlog-<anything>   move to the day backlog
//	<level>-backlog          move to the sidebar backlog for the level
package dnd

import (
	"errors"
	"strings"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

// ErrNoDestination marks a gesture that resolved to no drop target.
var ErrNoDestination = errors.New("dnd: no destination")

// Kind discriminates the destination variants.
type Kind int

const (
	KindAssignDay Kind = iota
	KindMonthBucket
	KindWeekBucket
	KindDayBacklog
	KindSidebar
)

// Destination is a parsed drop target.
type Destination struct {
	Kind      Kind
	Day       time.Time   // KindAssignDay
	Month     time.Time   // KindMonthBucket
	WeekStart time.Time   // KindWeekBucket
	Level     event.Level // KindSidebar
}

// DropResult describes a completed drag gesture.
type DropResult struct {
	DraggableID   string
	SourceID      string
	DestinationID string
}

// ParseDestination decodes a destination container id. Unknown ids and
// malformed periods return ErrNoDestination; a cancelled gesture is not an
// error worth surfacing.
func ParseDestination(id string) (Destination, error) {
	switch {
	case strings.HasPrefix(id, "week-backlog-"):
		ws, err := period.ParseDay(strings.TrimPrefix(id, "week-backlog-"))
		if err != nil {
			return Destination{}, ErrNoDestination
		}
		return Destination{Kind: KindWeekBucket, WeekStart: ws}, nil
	case strings.HasPrefix(id, "day-backlog-"):
		return Destination{Kind: KindDayBacklog}, nil
	case strings.HasSuffix(id, "-backlog"):
		level, err := event.ParseLevel(strings.TrimSuffix(id, "-backlog"))
		if err != nil || level == event.LevelNone {
			return Destination{}, ErrNoDestination
		}
		return Destination{Kind: KindSidebar, Level: level}, nil
	case strings.HasPrefix(id, "day-"):
		day, err := period.ParseDay(strings.TrimPrefix(id, "day-"))
		if err != nil {
			return Destination{}, ErrNoDestination
		}
		return Destination{Kind: KindAssignDay, Day: day}, nil
	case strings.HasPrefix(id, "month-"):
		month, err := period.ParseMonth(strings.TrimPrefix(id, "month-"))
		if err != nil {
			return Destination{}, ErrNoDestination
		}
		return Destination{Kind: KindMonthBucket, Month: month}, nil
	default:
		return Destination{}, ErrNoDestination
	}
}

// Router translates drop results into store mutations.
type Router struct {
	Store *store.Store
}

// Drop routes one completed gesture. It reports whether a mutation was
// performed: cancelled gestures, unknown events and re-drops onto the
// current bucket are all no-ops.
func (r Router) Drop(res DropResult) bool {
	if r.Store == nil {
		return false
	}
	dest, err := ParseDestination(res.DestinationID)
	if err != nil {
		return false
	}
	e := r.Store.Find(res.DraggableID)
	if e == nil {
		return false
	}
	if alreadyThere(e, dest) {
		return false
	}

	switch dest.Kind {
	case KindAssignDay:
		r.Store.AssignEventToDay(e.ID, dest.Day)
	case KindMonthBucket:
		month := dest.Month
		r.Store.MoveEventToBacklogLevel(e.ID, event.LevelMonth, nil, &month)
	case KindWeekBucket:
		ws := dest.WeekStart
		r.Store.MoveEventToBacklogLevel(e.ID, event.LevelWeek, &ws, nil)
	case KindDayBacklog:
		r.Store.MoveEventToBacklogLevel(e.ID, event.LevelDay, nil, nil)
	case KindSidebar:
		if dest.Level == event.LevelMonth {
			// The sidebar carries no period of its own; anchor to the
			// currently selected date to keep the bucket identity.
			selected := r.Store.SelectedDate()
			if e.InBacklog() && e.BacklogLevel == event.LevelMonth &&
				e.MonthStart != nil && e.MonthStart.SameMonth(selected) {
				return false
			}
			r.Store.MoveEventToBacklogLevel(e.ID, event.LevelMonth, nil, &selected)
		} else {
			r.Store.MoveEventToBacklog(e.ID, dest.Level)
		}
	}
	return true
}

// alreadyThere reports whether the event's current placement matches the
// requested destination exactly: same assignment state, same level, same
// period anchor. Matching drops are skipped to avoid updatedAt churn.
func alreadyThere(e *event.Event, dest Destination) bool {
	switch dest.Kind {
	case KindAssignDay:
		return e.Scheduled() && e.AssignedDate.SameDay(dest.Day)
	case KindMonthBucket:
		return e.InBacklog() && e.BacklogLevel == event.LevelMonth &&
			e.MonthStart != nil && e.MonthStart.SameMonth(dest.Month)
	case KindWeekBucket:
		return e.InBacklog() && e.BacklogLevel == event.LevelWeek &&
			e.WeekStart != nil && e.WeekStart.SameDay(dest.WeekStart)
	case KindDayBacklog:
		return e.InBacklog() && e.BacklogLevel == event.LevelDay
	case KindSidebar:
		if dest.Level == event.LevelMonth {
			// Month needs the selected date for bucket identity; checked in
			// Drop where the store is at hand.
			return false
		}
		return e.InBacklog() && e.BacklogLevel == dest.Level
	default:
		return false
	}
}
