// Package store owns the authoritative event collection and all query and
// mutation operations on it. UI layers are pure consumers: they render from
// queries and call actions in response to gestures.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
)

// View is the active zoom level and its anchor date.
type View struct {
	Type        event.ViewType
	CurrentDate time.Time
}

// Store is a single-writer in-memory event container. Mutations swap in a
// fresh collection slice so readers holding a snapshot never observe a
// partially updated event.
type Store struct {
	mu       sync.RWMutex
	events   []*event.Event
	view     View
	selected time.Time

	now   func() time.Time
	newID func() string
	cfg   Config

	subMu  sync.Mutex
	subs   map[int]chan Notification
	nextID int
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc replaces the id generator, for tests.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithConfig applies the configured default zoom level.
func WithConfig(cfg Config) Option {
	return func(s *Store) {
		if cfg == nil {
			return
		}
		s.cfg = cfg
		s.view.Type = cfg.DefaultView()
	}
}

// New creates an empty store with the month view selected and the selected
// date set to the current date.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
		subs:  make(map[int]chan Notification),
	}
	s.view = View{Type: event.ViewMonth}
	for _, opt := range opts {
		opt(s)
	}
	now := s.now()
	s.view.CurrentDate = now
	s.selected = now
	return s
}

// AddEvent creates an event from the partial data, placing it in the backlog
// bucket named by data.BacklogLevel. The selected date is an explicit
// parameter: month and week anchors are derived from it, not from the
// creation instant.
func (s *Store) AddEvent(data event.Event, selected time.Time) *event.Event {
	now := s.now()
	e := data.Clone()
	e.ID = s.newID()
	e.Created = event.Timestamp{Time: now}
	e.Updated = event.Timestamp{Time: now}
	e.BacklogSource = e.BacklogLevel
	e.MonthStart = nil
	e.WeekStart = nil
	switch e.BacklogLevel {
	case event.LevelMonth:
		e.MonthStart = event.At(period.StartOfMonth(selected))
	case event.LevelWeek:
		e.WeekStart = event.At(period.StartOfWeek(selected))
	}

	s.mu.Lock()
	next := make([]*event.Event, 0, len(s.events)+1)
	next = append(next, s.events...)
	next = append(next, e)
	s.events = next
	s.mu.Unlock()

	s.notify(OpAdd, e.ID)
	return e.Clone()
}

// Update carries optional field overwrites for UpdateEvent. Nil fields are
// left untouched.
type Update struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	IsAllDay    *bool
	Synced      *bool
	ExternalID  *string
}

// UpdateEvent merges the update into the matching event and refreshes its
// updated timestamp. Unknown ids are a silent no-op.
func (s *Store) UpdateEvent(id string, u Update) {
	s.mutate(id, OpUpdate, func(e *event.Event) {
		if u.Title != nil {
			e.Title = *u.Title
		}
		if u.Description != nil {
			e.Description = *u.Description
		}
		if u.StartTime != nil {
			e.StartTime = event.At(*u.StartTime)
		}
		if u.EndTime != nil {
			e.EndTime = event.At(*u.EndTime)
		}
		if u.IsAllDay != nil {
			e.IsAllDay = *u.IsAllDay
		}
		if u.Synced != nil {
			e.Synced = *u.Synced
		}
		if u.ExternalID != nil {
			e.ExternalID = *u.ExternalID
		}
	})
}

// DeleteEvent removes the matching event. Unknown ids are a silent no-op.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	found := false
	next := make([]*event.Event, 0, len(s.events))
	for _, e := range s.events {
		if e != nil && e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	s.events = next
	s.mu.Unlock()

	if found {
		s.notify(OpDelete, id)
	}
}

// AssignEventToDay schedules the event to the given day. The backlog level is
// cleared; the backlog source survives so consumers can still show where the
// event came from.
func (s *Store) AssignEventToDay(id string, date time.Time) {
	s.mutate(id, OpAssign, func(e *event.Event) {
		e.AssignedDate = event.At(date)
		e.BacklogLevel = event.LevelNone
	})
}

// MoveEventToBacklog moves the event to a backlog level without period
// anchoring. Existing anchors are left as-is; queries ignore anchors that do
// not match the current level.
func (s *Store) MoveEventToBacklog(id string, level event.Level) {
	s.mutate(id, OpMove, func(e *event.Event) {
		e.BacklogLevel = level
		e.BacklogSource = level
		e.AssignedDate = nil
	})
}

// MoveEventToBacklogLevel is the canonical move operation. The week anchor is
// kept only when moving to the week level, the month anchor only when moving
// to the month level; all other anchors are cleared.
func (s *Store) MoveEventToBacklogLevel(id string, level event.Level, weekStart, monthStart *time.Time) {
	s.mutate(id, OpMove, func(e *event.Event) {
		e.BacklogLevel = level
		e.BacklogSource = level
		e.AssignedDate = nil
		e.WeekStart = nil
		e.MonthStart = nil
		if level == event.LevelWeek && weekStart != nil {
			e.WeekStart = event.At(*weekStart)
		}
		if level == event.LevelMonth && monthStart != nil {
			e.MonthStart = event.At(*monthStart)
		}
	})
}

// SetCurrentView replaces the view state. Events are untouched.
func (s *Store) SetCurrentView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
	s.notify(OpView, "")
}

// SetSelectedDate replaces the selected date. Events are untouched.
func (s *Store) SetSelectedDate(d time.Time) {
	s.mu.Lock()
	s.selected = d
	s.mu.Unlock()
	s.notify(OpView, "")
}

// NavigatePrevious shifts the selected date back one unit of the current
// view's granularity.
func (s *Store) NavigatePrevious() {
	s.navigate(-1)
}

// NavigateNext shifts the selected date forward one unit of the current
// view's granularity.
func (s *Store) NavigateNext() {
	s.navigate(1)
}

func (s *Store) navigate(delta int) {
	s.mu.Lock()
	s.selected = period.Step(s.selected, s.view.Type, delta)
	s.mu.Unlock()
	s.notify(OpView, "")
}

// Config returns the configuration the store was built with, or nil.
func (s *Store) Config() Config {
	return s.cfg
}

// CurrentView returns the active view state.
func (s *Store) CurrentView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SelectedDate returns the navigation anchor date.
func (s *Store) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Find returns a copy of the event with the given id, or nil.
func (s *Store) Find(id string) *event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e != nil && e.ID == id {
			return e.Clone()
		}
	}
	return nil
}

// Events returns a copy of the whole collection in stable order.
func (s *Store) Events() []*event.Event {
	return s.filter(func(e *event.Event) bool { return true })
}

// mutate clones the matching event, applies fn, stamps the updated time and
// swaps in a new collection slice. Unknown ids are a silent no-op.
func (s *Store) mutate(id string, op Op, fn func(*event.Event)) {
	s.mu.Lock()
	idx := -1
	for i, e := range s.events {
		if e != nil && e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	e := s.events[idx].Clone()
	fn(e)
	e.Updated = event.Timestamp{Time: s.now()}
	next := make([]*event.Event, len(s.events))
	copy(next, s.events)
	next[idx] = e
	s.events = next
	s.mu.Unlock()

	s.notify(op, id)
}
