package add

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore() *store.Store {
	seq := 0
	return store.New(
		store.WithClock(func() time.Time { return date(2024, time.June, 5) }),
		store.WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("ev-%03d", seq)
		}),
	)
}

func TestAddAnchorsToSelectedDate(t *testing.T) {
	s := newTestStore()
	on := date(2024, time.March, 15)
	a := Add{Title: "write report", Level: event.LevelMonth, On: &on, Store: s}

	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := s.MonthBacklogEventsOnly(date(2024, time.March, 1))
	if len(all) != 1 {
		t.Fatalf("expected 1 event in March, got %d", len(all))
	}
	if all[0].MonthStart == nil || !all[0].MonthStart.Equal(date(2024, time.March, 1)) {
		t.Fatalf("month anchor = %v", all[0].MonthStart)
	}
	if got := s.SelectedDate(); !got.Equal(on) {
		t.Fatalf("selected date should follow --on, got %v", got)
	}
}

func TestAddRequiresTitle(t *testing.T) {
	s := newTestStore()
	a := Add{Level: event.LevelDay, Store: s}
	if err := a.Do(context.Background()); err == nil {
		t.Fatal("expected an error for a missing title")
	}
}

func TestAddRequiresStore(t *testing.T) {
	a := Add{Title: "x", Level: event.LevelDay}
	if err := a.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a store")
	}
}
