package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

type Get struct {
	ShowID bool
	Level  event.Level
	Date   time.Time
	// Rollup switches to the inheritance-aware queries, showing coarser
	// items whose period contains the requested one.
	Rollup bool

	Store *store.Store
}

// Do renders the backlog for the requested level and date, or the events on
// the day itself for the day level.
func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	day := n.Date
	if day.IsZero() {
		day = n.Store.SelectedDate()
	}

	fmt.Println("")
	switch n.Level {
	case event.LevelYear:
		event.PrettyPrint(fmt.Sprintf("year backlog %d", day.Year()), n.ShowID,
			n.Store.BacklogEvents(event.LevelYear)...)
	case event.LevelMonth:
		month := period.StartOfMonth(day)
		all := n.Store.MonthBacklogEventsOnly(month)
		if n.Rollup {
			all = n.Store.MonthBacklogEvents(month)
		}
		event.PrettyPrint("month backlog "+period.FormatMonth(month), n.ShowID, all...)
	case event.LevelWeek:
		ws := period.StartOfWeek(day)
		all := n.Store.WeekBacklogEventsOnly(ws)
		if n.Rollup {
			all = n.Store.WeekBacklogEvents(ws)
		}
		event.PrettyPrint("week of "+period.FormatDay(ws), n.ShowID, all...)
	case event.LevelDay:
		event.PrettyPrint(period.FormatDay(day), n.ShowID, n.Store.EventsForDay(day)...)
		if n.Rollup {
			event.PrettyPrint("day backlog", n.ShowID, n.Store.DayBacklogEvents(day)...)
		}
	case event.LevelTimed:
		event.PrettyPrint("timed backlog", n.ShowID, n.Store.BacklogEvents(event.LevelTimed)...)
	default:
		return fmt.Errorf("unknown level %q", n.Level)
	}
	return nil
}
