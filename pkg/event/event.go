package event

func New(title string, level Level) *Event {
	return &Event{
		Title:        title,
		BacklogLevel: level,
	}
}

// Event is the sole entity of the planner. An event is either scheduled to a
// concrete day (AssignedDate set) or sits in exactly one backlog bucket
// (BacklogLevel set), never both.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// AssignedDate, when set, schedules the event to a specific day and
	// removes it from every backlog.
	AssignedDate *Timestamp `json:"assignedDate,omitempty"`

	// BacklogLevel is the bucket currently holding an unscheduled event.
	BacklogLevel Level `json:"backlogLevel,omitempty"`
	// BacklogSource records the level the event most recently occupied.
	// It survives scheduling so consumers can show provenance.
	BacklogSource Level `json:"backlogSource,omitempty"`
	// WeekStart anchors week-level items to a Monday. Stale unless
	// BacklogLevel == week.
	WeekStart *Timestamp `json:"weekStart,omitempty"`
	// MonthStart anchors month-level items to the first of a month. Stale
	// unless BacklogLevel == month.
	MonthStart *Timestamp `json:"monthStart,omitempty"`

	StartTime *Timestamp `json:"startTime,omitempty"`
	EndTime   *Timestamp `json:"endTime,omitempty"`
	IsAllDay  bool       `json:"isAllDay,omitempty"`

	Synced     bool   `json:"isSynced,omitempty"`
	ExternalID string `json:"externalId,omitempty"`

	Created Timestamp `json:"createdAt"`
	Updated Timestamp `json:"updatedAt"`
}

// Scheduled reports whether the event is assigned to a concrete day.
func (e *Event) Scheduled() bool {
	return e != nil && e.AssignedDate != nil && !e.AssignedDate.IsZero()
}

// InBacklog reports whether the event sits in a backlog bucket.
func (e *Event) InBacklog() bool {
	return e != nil && !e.Scheduled() && e.BacklogLevel != LevelNone
}

// Placed reports whether the event has exactly one placement.
func (e *Event) Placed() bool {
	if e == nil {
		return false
	}
	scheduled := e.Scheduled()
	backlogged := e.BacklogLevel != LevelNone
	return scheduled != backlogged
}

// Clone returns a deep copy so stored events can be handed out without
// exposing the store's internal state to mutation.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	clone := *e
	clone.AssignedDate = cloneTimestamp(e.AssignedDate)
	clone.WeekStart = cloneTimestamp(e.WeekStart)
	clone.MonthStart = cloneTimestamp(e.MonthStart)
	clone.StartTime = cloneTimestamp(e.StartTime)
	clone.EndTime = cloneTimestamp(e.EndTime)
	return &clone
}

func cloneTimestamp(t *Timestamp) *Timestamp {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
