// Package event defines the calendar event entity and its enumerations.
package event

import (
	"fmt"
	"strings"
)

// Level identifies the backlog granularity an event can occupy.
type Level string

const (
	// LevelNone means the event has no backlog placement.
	LevelNone Level = ""
	// LevelYear is the coarsest backlog bucket.
	LevelYear Level = "year"
	// LevelMonth scopes an event to a specific month bucket.
	LevelMonth Level = "month"
	// LevelWeek scopes an event to a specific Monday-anchored week bucket.
	LevelWeek Level = "week"
	// LevelDay is the finest untimed backlog bucket.
	LevelDay Level = "day"
	// LevelTimed holds events that carry explicit start/end times.
	LevelTimed Level = "timed"
)

// AllLevels returns the list of supported backlog levels.
func AllLevels() []Level {
	return []Level{
		LevelYear,
		LevelMonth,
		LevelWeek,
		LevelDay,
		LevelTimed,
	}
}

// ParseLevel converts a string to a Level or returns an error for unknown values.
func ParseLevel(raw string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(raw)))
	if l == LevelNone {
		return LevelNone, nil
	}
	for _, candidate := range AllLevels() {
		if candidate == l {
			return candidate, nil
		}
	}
	return LevelNone, fmt.Errorf("event: unknown level %q", raw)
}

// MustLevel parses the input and panics on error. Intended for tests/config.
func MustLevel(raw string) Level {
	l, err := ParseLevel(raw)
	if err != nil {
		panic(err)
	}
	return l
}

// Valid reports whether the level is one of the supported buckets.
func (l Level) Valid() bool {
	for _, candidate := range AllLevels() {
		if candidate == l {
			return true
		}
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// ViewType identifies the active zoom level of the calendar.
type ViewType string

const (
	ViewYear  ViewType = "year"
	ViewMonth ViewType = "month"
	ViewWeek  ViewType = "week"
	ViewDay   ViewType = "day"
)

// AllViewTypes returns the zoom levels in coarse-to-fine order.
func AllViewTypes() []ViewType {
	return []ViewType{ViewYear, ViewMonth, ViewWeek, ViewDay}
}

// ParseViewType converts a string to a ViewType, defaulting empty input to month.
func ParseViewType(raw string) (ViewType, error) {
	v := ViewType(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return ViewMonth, nil
	}
	for _, candidate := range AllViewTypes() {
		if candidate == v {
			return candidate, nil
		}
	}
	return ViewMonth, fmt.Errorf("event: unknown view type %q", raw)
}

// Level maps the view to the backlog level native to it.
func (v ViewType) Level() Level {
	return Level(v)
}

func (v ViewType) String() string {
	return string(v)
}
