package add

import (
	"context"
	"errors"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

type Add struct {
	Title       string
	Description string
	Level       event.Level
	On          *time.Time

	Store *store.Store
}

// Do creates the event in the backlog bucket for Level, anchored to the
// selected date (On, or the store's selected date when absent), then prints
// the resulting bucket.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if n.Title == "" {
		return errors.New("a title is required")
	}

	selected := n.Store.SelectedDate()
	if n.On != nil {
		selected = *n.On
		n.Store.SetSelectedDate(selected)
	}

	data := event.New(n.Title, n.Level)
	data.Description = n.Description
	e := n.Store.AddEvent(*data, selected)

	switch n.Level {
	case event.LevelMonth:
		event.PrettyPrint("month backlog", false, n.Store.MonthBacklogEventsOnly(period.StartOfMonth(selected))...)
	case event.LevelWeek:
		event.PrettyPrint("week backlog", false, n.Store.WeekBacklogEventsOnly(period.StartOfWeek(selected))...)
	default:
		event.PrettyPrint(n.Level.String()+" backlog", false, n.Store.BacklogEvents(e.BacklogLevel)...)
	}
	return nil
}
