package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DimaFrost/glass-cal/pkg/event"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newTestStore returns a store with a settable clock and sequential ids.
func newTestStore(start time.Time) (*Store, *time.Time) {
	now := start
	seq := 0
	s := New(
		WithClock(func() time.Time { return now }),
		WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("ev-%03d", seq)
		}),
	)
	return s, &now
}

func containsID(events []*event.Event, id string) bool {
	for _, e := range events {
		if e != nil && e.ID == id {
			return true
		}
	}
	return false
}

func TestAddEventStampsAndAnchors(t *testing.T) {
	s, _ := newTestStore(date(2024, time.March, 20))

	selected := date(2024, time.March, 15)
	e := s.AddEvent(*event.New("write report", event.LevelMonth), selected)

	if e.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if e.BacklogSource != event.LevelMonth {
		t.Fatalf("backlog source = %q", e.BacklogSource)
	}
	if e.MonthStart == nil || !e.MonthStart.Equal(date(2024, time.March, 1)) {
		t.Fatalf("month anchor = %v, want 2024-03-01", e.MonthStart)
	}
	if e.WeekStart != nil {
		t.Fatalf("week anchor should be unset, got %v", e.WeekStart)
	}
	if !e.Created.Equal(e.Updated.Time) {
		t.Fatal("createdAt and updatedAt should match at creation")
	}
}

func TestAddEventWeekAnchorFromSelectedDate(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	// Wednesday; the anchor must be the Monday of that week, derived from
	// the selected date rather than the creation instant.
	e := s.AddEvent(*event.New("sprint prep", event.LevelWeek), date(2024, time.March, 6))

	if e.WeekStart == nil || !e.WeekStart.Equal(date(2024, time.March, 4)) {
		t.Fatalf("week anchor = %v, want 2024-03-04", e.WeekStart)
	}
	if e.MonthStart != nil {
		t.Fatal("month anchor should be unset for week items")
	}
}

func TestPlacementExclusivityAfterEveryAction(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	e := s.AddEvent(*event.New("errand", event.LevelYear), date(2024, time.June, 1))
	check := func(step string) {
		for _, got := range s.Events() {
			if !got.Placed() {
				t.Fatalf("%s: event %s lost placement exclusivity: assigned=%v level=%q",
					step, got.ID, got.AssignedDate, got.BacklogLevel)
			}
		}
	}
	check("add")

	s.AssignEventToDay(e.ID, date(2024, time.June, 10))
	check("assign")

	s.MoveEventToBacklog(e.ID, event.LevelDay)
	check("move to backlog")

	ws := date(2024, time.June, 3)
	s.MoveEventToBacklogLevel(e.ID, event.LevelWeek, &ws, nil)
	check("move to level")

	title := "renamed"
	s.UpdateEvent(e.ID, Update{Title: &title})
	check("update")
}

func TestAssignClearsBacklogPreservesSource(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	e := s.AddEvent(*event.New("review", event.LevelWeek), date(2024, time.June, 5))
	s.AssignEventToDay(e.ID, date(2024, time.June, 7))

	got := s.Find(e.ID)
	if got.BacklogLevel != event.LevelNone {
		t.Fatalf("backlog level should clear, got %q", got.BacklogLevel)
	}
	if got.BacklogSource != event.LevelWeek {
		t.Fatalf("backlog source should survive scheduling, got %q", got.BacklogSource)
	}
	if !got.Scheduled() {
		t.Fatal("event should be scheduled")
	}
	if containsID(s.BacklogEvents(event.LevelWeek), e.ID) {
		t.Fatal("scheduled event must leave every backlog query")
	}
}

func TestMonthAnchoringRoundTrip(t *testing.T) {
	s, _ := newTestStore(date(2024, time.March, 20))

	e := s.AddEvent(*event.New("plan launch", event.LevelMonth), date(2024, time.March, 15))

	if !containsID(s.MonthBacklogEventsOnly(date(2024, time.March, 1)), e.ID) {
		t.Fatal("event should be native to March")
	}
	if containsID(s.MonthBacklogEventsOnly(date(2024, time.April, 1)), e.ID) {
		t.Fatal("event must not appear in April")
	}
}

func TestWeekAnchoringRoundTrip(t *testing.T) {
	s, _ := newTestStore(date(2024, time.March, 20))

	e := s.AddEvent(*event.New("standups", event.LevelWeek), date(2024, time.March, 4))

	if !containsID(s.WeekBacklogEventsOnly(date(2024, time.March, 4)), e.ID) {
		t.Fatal("event should be native to the week of 2024-03-04")
	}
	if containsID(s.WeekBacklogEventsOnly(date(2024, time.March, 11)), e.ID) {
		t.Fatal("event must not appear in the adjacent week")
	}
}

func TestLegacyMonthFallback(t *testing.T) {
	s, now := newTestStore(date(2024, time.May, 10))

	e := s.AddEvent(*event.New("legacy", event.LevelMonth), date(2024, time.May, 10))
	// Simulate a record predating month anchors.
	s.MoveEventToBacklogLevel(e.ID, event.LevelMonth, nil, nil)
	_ = now

	if got := s.Find(e.ID); got.MonthStart != nil {
		t.Fatalf("precondition: month anchor should be absent, got %v", got.MonthStart)
	}
	if !containsID(s.MonthBacklogEventsOnly(date(2024, time.May, 1)), e.ID) {
		t.Fatal("legacy event should fall back to its creation month")
	}
	if containsID(s.MonthBacklogEventsOnly(date(2024, time.June, 1)), e.ID) {
		t.Fatal("legacy event must not leak into other months")
	}
}

func TestLegacyWeekFallback(t *testing.T) {
	// Created on Wednesday 2024-03-06; its week is anchored at Monday 03-04.
	s, _ := newTestStore(date(2024, time.March, 6))

	e := s.AddEvent(*event.New("legacy week", event.LevelWeek), date(2024, time.March, 6))
	s.MoveEventToBacklogLevel(e.ID, event.LevelWeek, nil, nil)

	if !containsID(s.WeekBacklogEventsOnly(date(2024, time.March, 4)), e.ID) {
		t.Fatal("legacy event should fall back to the week of its creation")
	}
	if containsID(s.WeekBacklogEventsOnly(date(2024, time.March, 11)), e.ID) {
		t.Fatal("legacy event must not leak into the next week")
	}
}

func TestYearToMonthScenario(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	a := s.AddEvent(*event.New("yearly goal", event.LevelYear), date(2024, time.June, 1))
	if !containsID(s.BacklogEvents(event.LevelYear), a.ID) {
		t.Fatal("event should start in the year backlog")
	}

	ms := date(2024, time.June, 1)
	s.MoveEventToBacklogLevel(a.ID, event.LevelMonth, nil, &ms)

	if containsID(s.BacklogEvents(event.LevelYear), a.ID) {
		t.Fatal("event should have left the year backlog")
	}
	got := s.MonthBacklogEventsOnly(date(2024, time.June, 1))
	if !containsID(got, a.ID) {
		t.Fatal("event should be native to June")
	}
	if moved := s.Find(a.ID); moved.BacklogSource != event.LevelMonth {
		t.Fatalf("backlog source should follow the move, got %q", moved.BacklogSource)
	}
}

func TestEventsForDay(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	assigned := s.AddEvent(*event.New("assigned", event.LevelDay), date(2024, time.June, 1))
	s.AssignEventToDay(assigned.ID, date(2024, time.June, 10))

	timed := *event.New("timed", event.LevelTimed)
	timed.StartTime = event.At(time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC))
	timedStored := s.AddEvent(timed, date(2024, time.June, 1))

	other := s.AddEvent(*event.New("elsewhere", event.LevelDay), date(2024, time.June, 1))
	s.AssignEventToDay(other.ID, date(2024, time.June, 11))

	got := s.EventsForDay(date(2024, time.June, 10))
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if !containsID(got, assigned.ID) || !containsID(got, timedStored.ID) {
		t.Fatalf("wrong events for day: %v", got)
	}
}

func TestMoveToBacklogKeepsStaleAnchors(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	e := s.AddEvent(*event.New("anchored", event.LevelMonth), date(2024, time.June, 5))
	s.MoveEventToBacklog(e.ID, event.LevelYear)

	got := s.Find(e.ID)
	if got.BacklogLevel != event.LevelYear || got.BacklogSource != event.LevelYear {
		t.Fatalf("level/source = %q/%q", got.BacklogLevel, got.BacklogSource)
	}
	// The stale month anchor stays on the record but must not make the
	// event answer month queries.
	if containsID(s.MonthBacklogEventsOnly(date(2024, time.June, 1)), e.ID) {
		t.Fatal("year-level event must not be native to a month")
	}
}

func TestInheritingRollups(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 5))

	year := s.AddEvent(*event.New("year goal", event.LevelYear), date(2024, time.June, 5))
	month := s.AddEvent(*event.New("month goal", event.LevelMonth), date(2024, time.June, 5))
	week := s.AddEvent(*event.New("week goal", event.LevelWeek), date(2024, time.June, 5))
	day := s.AddEvent(*event.New("day task", event.LevelDay), date(2024, time.June, 5))

	monthRoll := s.MonthBacklogEvents(date(2024, time.June, 1))
	if !containsID(monthRoll, year.ID) || !containsID(monthRoll, month.ID) {
		t.Fatal("month rollup should include native month and inherited year items")
	}
	if containsID(monthRoll, week.ID) || containsID(monthRoll, day.ID) {
		t.Fatal("month rollup must not include finer-grained items")
	}

	weekRoll := s.WeekBacklogEvents(date(2024, time.June, 3))
	for _, id := range []string{year.ID, month.ID, week.ID} {
		if !containsID(weekRoll, id) {
			t.Fatalf("week rollup missing %s", id)
		}
	}
	if containsID(weekRoll, day.ID) {
		t.Fatal("week rollup must not include day items")
	}

	dayRoll := s.DayBacklogEvents(date(2024, time.June, 5))
	for _, id := range []string{year.ID, month.ID, week.ID, day.ID} {
		if !containsID(dayRoll, id) {
			t.Fatalf("day rollup missing %s", id)
		}
	}

	// The native-only family suppresses inheritance.
	onlyMonth := s.MonthBacklogEventsOnly(date(2024, time.June, 1))
	if containsID(onlyMonth, year.ID) {
		t.Fatal("native month filter must exclude year items")
	}
}

func TestRollupRespectsPeriodBoundaries(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 5))

	month := s.AddEvent(*event.New("june goal", event.LevelMonth), date(2024, time.June, 5))

	// A week inside July must not inherit June's month items.
	if containsID(s.WeekBacklogEvents(date(2024, time.July, 1)), month.ID) {
		t.Fatal("july week must not inherit june month items")
	}
	// A week inside June does.
	if !containsID(s.WeekBacklogEvents(date(2024, time.June, 10)), month.ID) {
		t.Fatal("june week should inherit june month items")
	}
}

func TestUpdateEventMergesAndStamps(t *testing.T) {
	s, now := newTestStore(date(2024, time.June, 1))

	e := s.AddEvent(*event.New("draft", event.LevelDay), date(2024, time.June, 1))
	*now = date(2024, time.June, 2)

	title := "final"
	desc := "ready for review"
	s.UpdateEvent(e.ID, Update{Title: &title, Description: &desc})

	got := s.Find(e.ID)
	if got.Title != "final" || got.Description != "ready for review" {
		t.Fatalf("merge failed: %+v", got)
	}
	if !got.Updated.Equal(date(2024, time.June, 2)) {
		t.Fatalf("updatedAt not refreshed: %v", got.Updated)
	}
	if !got.Created.Equal(date(2024, time.June, 1)) {
		t.Fatalf("createdAt must be immutable: %v", got.Created)
	}
}

func TestMissingIDIsSilentNoOp(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))
	title := "ghost"

	s.UpdateEvent("nope", Update{Title: &title})
	s.DeleteEvent("nope")
	s.AssignEventToDay("nope", date(2024, time.June, 2))
	s.MoveEventToBacklog("nope", event.LevelDay)
	s.MoveEventToBacklogLevel("nope", event.LevelWeek, nil, nil)

	if got := len(s.Events()); got != 0 {
		t.Fatalf("expected empty store, got %d events", got)
	}
}

func TestDeleteEvent(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))
	e := s.AddEvent(*event.New("gone", event.LevelDay), date(2024, time.June, 1))
	s.DeleteEvent(e.ID)
	if s.Find(e.ID) != nil {
		t.Fatal("event should be deleted")
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	s.SetCurrentView(View{Type: event.ViewMonth, CurrentDate: date(2024, time.January, 31)})
	s.SetSelectedDate(date(2024, time.January, 31))

	s.NavigateNext()
	mid := s.SelectedDate()
	if mid.Month() != time.February {
		t.Fatalf("expected February, got %v", mid)
	}
	s.NavigatePrevious()
	back := s.SelectedDate()
	if back.Month() != time.January || back.Year() != 2024 {
		t.Fatalf("month navigation must round-trip, got %v", back)
	}
}

func TestNavigationGranularities(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))
	cases := []struct {
		view event.ViewType
		want time.Time
	}{
		{event.ViewYear, date(2025, time.June, 10)},
		{event.ViewMonth, date(2024, time.July, 10)},
		{event.ViewWeek, date(2024, time.June, 17)},
		{event.ViewDay, date(2024, time.June, 11)},
	}
	for _, tc := range cases {
		s.SetCurrentView(View{Type: tc.view, CurrentDate: date(2024, time.June, 10)})
		s.SetSelectedDate(date(2024, time.June, 10))
		s.NavigateNext()
		if got := s.SelectedDate(); !got.Equal(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.view, got, tc.want)
		}
	}
}

func TestQueriesSkipMalformedRecords(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))
	good := s.AddEvent(*event.New("fine", event.LevelMonth), date(2024, time.June, 1))

	// Inject records a defensive reader must tolerate: a nil slot and a
	// month item with neither anchor nor creation time.
	s.mu.Lock()
	broken := &event.Event{ID: "broken", BacklogLevel: event.LevelMonth}
	s.events = append(s.events, nil, broken)
	s.mu.Unlock()

	got := s.MonthBacklogEventsOnly(date(2024, time.June, 1))
	if !containsID(got, good.ID) {
		t.Fatal("good record should survive a bad neighbor")
	}
	if containsID(got, "broken") {
		t.Fatal("record without any resolvable anchor must be skipped")
	}
	if got := s.WeekBacklogEventsOnly(date(2024, time.June, 3)); containsID(got, "broken") {
		t.Fatal("broken record must not match week queries either")
	}
}

func TestQueriesReturnCopies(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))
	e := s.AddEvent(*event.New("shielded", event.LevelYear), date(2024, time.June, 1))

	got := s.BacklogEvents(event.LevelYear)
	got[0].Title = "tampered"

	if s.Find(e.ID).Title != "shielded" {
		t.Fatal("queries must hand out copies, not store internals")
	}
}

func TestStableOrdering(t *testing.T) {
	s, now := newTestStore(date(2024, time.June, 1))

	first := s.AddEvent(*event.New("first", event.LevelYear), date(2024, time.June, 1))
	*now = date(2024, time.June, 2)
	second := s.AddEvent(*event.New("second", event.LevelYear), date(2024, time.June, 2))

	got := s.BacklogEvents(event.LevelYear)
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected creation order, got %v", got)
	}
}

func TestWatchDeliversNotifications(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	e := s.AddEvent(*event.New("observed", event.LevelDay), date(2024, time.June, 1))

	select {
	case n := <-ch:
		if n.Op != OpAdd || n.ID != e.ID {
			t.Fatalf("unexpected notification: %+v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a notification")
	}

	cancel()
	// Channel closes once the context ends.
	for range ch {
	}
}

func TestDefaultViewAndSelectedDate(t *testing.T) {
	s, _ := newTestStore(date(2024, time.June, 5))
	if got := s.CurrentView().Type; got != event.ViewMonth {
		t.Fatalf("default view = %q", got)
	}
	if got := s.SelectedDate(); !got.Equal(date(2024, time.June, 5)) {
		t.Fatalf("selected date = %v", got)
	}
	if got := len(s.Events()); got != 0 {
		t.Fatalf("store should start empty, got %d", got)
	}
}
