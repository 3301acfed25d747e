package assign

import (
	"context"
	"errors"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

type Assign struct {
	ID   string
	Date time.Time

	Store *store.Store
}

// Do schedules the event to the given day and prints that day.
func (n *Assign) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not assign, no store")
	}
	if n.Store.Find(n.ID) == nil {
		return errors.New("no event with id " + n.ID)
	}

	n.Store.AssignEventToDay(n.ID, n.Date)
	event.PrettyPrint(period.FormatDay(n.Date), false, n.Store.EventsForDay(n.Date)...)
	return nil
}
