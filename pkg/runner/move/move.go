package move

import (
	"context"
	"errors"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

type Move struct {
	ID    string
	Level event.Level
	// On anchors week and month moves; when nil the store's selected date
	// is used for levels that need an anchor.
	On *time.Time

	Store *store.Store
}

// Do moves the event to the requested backlog level, anchoring week and
// month buckets to the anchor date.
func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move, no store")
	}
	if n.Store.Find(n.ID) == nil {
		return errors.New("no event with id " + n.ID)
	}

	anchor := n.Store.SelectedDate()
	if n.On != nil {
		anchor = *n.On
	}

	switch n.Level {
	case event.LevelWeek:
		ws := period.StartOfWeek(anchor)
		n.Store.MoveEventToBacklogLevel(n.ID, n.Level, &ws, nil)
	case event.LevelMonth:
		ms := period.StartOfMonth(anchor)
		n.Store.MoveEventToBacklogLevel(n.ID, n.Level, nil, &ms)
	default:
		n.Store.MoveEventToBacklog(n.ID, n.Level)
	}

	event.PrettyPrint(n.Level.String()+" backlog", false, n.Store.BacklogEvents(n.Level)...)
	return nil
}
