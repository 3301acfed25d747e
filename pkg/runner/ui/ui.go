// Package ui implements the interactive calendar. It is a pure consumer of
// the store: rendering reads queries, gestures call actions, and move-like
// gestures go through the drag router so the TUI and a pointer-driven UI
// share one mutation path.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DimaFrost/glass-cal/pkg/dnd"
	"github.com/DimaFrost/glass-cal/pkg/event"
	"github.com/DimaFrost/glass-cal/pkg/period"
	"github.com/DimaFrost/glass-cal/pkg/runner/ui/internal/grid"
	"github.com/DimaFrost/glass-cal/pkg/runner/ui/internal/theme"
	"github.com/DimaFrost/glass-cal/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeEdit
)

type notifMsg store.Notification

// Model contains the UI state.
type Model struct {
	store  *store.Store
	router dnd.Router
	ctx    context.Context
	notifs <-chan store.Notification

	mode   mode
	input  textinput.Model
	editID string

	sel         int
	status      string
	weekNumbers bool

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New creates a UI model backed by the store.
func New(ctx context.Context, s *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 256
	ti.Prompt = "> "

	// Subscribe once; Update re-arms the listener command after every
	// notification.
	notifs, _ := s.Watch(ctx)

	weekNumbers := false
	if cfg := s.Config(); cfg != nil {
		weekNumbers = cfg.WeekNumbers()
	}

	return Model{
		store:       s,
		router:      dnd.Router{Store: s},
		ctx:         ctx,
		notifs:      notifs,
		mode:        modeNormal,
		input:       ti,
		status:      helpLine,
		weekNumbers: weekNumbers,
		theme:       theme.Default(),
	}
}

const helpLine = "h/l navigate  1-4 zoom  j/k select  o add  e edit  x delete  a assign  m demote  t today  q quit"

// Init subscribes to store notifications.
func (m Model) Init() tea.Cmd {
	return m.subscribe()
}

func (m Model) subscribe() tea.Cmd {
	ch := m.notifs
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notifMsg(n)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case notifMsg:
		// Any mutation can change what is on screen; re-render and keep
		// listening.
		m.clampSelection()
		return m, m.subscribe()
	case tea.KeyMsg:
		switch m.mode {
		case modeInsert, modeEdit:
			return m.updateInput(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4":
		views := event.AllViewTypes()
		v := views[int(msg.String()[0]-'1')]
		m.store.SetCurrentView(store.View{Type: v, CurrentDate: m.store.SelectedDate()})
		m.sel = 0
	case "z":
		m.store.SetCurrentView(store.View{Type: nextView(m.store.CurrentView().Type), CurrentDate: m.store.SelectedDate()})
		m.sel = 0
	case "h", "left":
		m.store.NavigatePrevious()
	case "l", "right":
		m.store.NavigateNext()
	case "t":
		m.store.SetSelectedDate(time.Now())
	case "j", "down":
		m.sel++
		m.clampSelection()
	case "k", "up":
		m.sel--
		m.clampSelection()
	case "o":
		m.mode = modeInsert
		m.input.SetValue("")
		m.input.Focus()
		m.status = "add: type a title, enter to save, esc to cancel"
		return m, textinput.Blink
	case "e":
		if e := m.selectedEvent(); e != nil {
			m.mode = modeEdit
			m.editID = e.ID
			m.input.SetValue(e.Title)
			m.input.Focus()
			m.status = "edit: enter to save, esc to cancel"
			return m, textinput.Blink
		}
	case "x":
		if e := m.selectedEvent(); e != nil {
			m.store.DeleteEvent(e.ID)
			m.clampSelection()
		}
	case "a":
		if e := m.selectedEvent(); e != nil {
			day := period.FormatDay(m.store.SelectedDate())
			m.drop(e.ID, "day-"+day)
		}
	case "m":
		if e := m.selectedEvent(); e != nil {
			m.drop(e.ID, sidebarFor(nextLevel(e.BacklogLevel)))
		}
	case "?":
		m.status = helpLine
	}
	return m, nil
}

// drop funnels a gesture through the drag router, mirroring a pointer UI.
func (m *Model) drop(id, destination string) {
	if moved := m.router.Drop(dnd.DropResult{DraggableID: id, DestinationID: destination}); !moved {
		m.status = "nothing to do"
		return
	}
	m.status = helpLine
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.status = helpLine
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			// Empty titles never reach the store.
			m.mode = modeNormal
			m.input.Blur()
			m.status = helpLine
			return m, nil
		}
		if m.mode == modeEdit {
			m.store.UpdateEvent(m.editID, store.Update{Title: &title})
		} else {
			level := m.store.CurrentView().Type.Level()
			m.store.AddEvent(*event.New(title, level), m.store.SelectedDate())
		}
		m.mode = modeNormal
		m.input.Blur()
		m.status = helpLine
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	selected := m.store.SelectedDate()
	view := m.store.CurrentView()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("glass-cal"),
		"  ",
		m.theme.Subtitle.Render(fmt.Sprintf("%s view, %s", view.Type, period.FormatDay(selected))),
	)

	var body string
	switch view.Type {
	case event.ViewYear:
		body = m.yearView(selected)
	case event.ViewWeek:
		body = m.weekView(selected)
	case event.ViewDay:
		body = m.dayView(selected)
	default:
		body = m.monthView(selected)
	}

	panel := m.backlogPanel()

	footer := m.theme.Status.Render(m.status)
	if m.mode != modeNormal {
		footer = m.input.View()
	}

	return strings.Join([]string{
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", panel),
		"",
		footer,
	}, "\n")
}

func (m Model) monthView(selected time.Time) string {
	today := time.Now()
	days := make([]grid.Day, 0, period.DaysIn(selected))
	first := period.StartOfMonth(selected)
	for d := 1; d <= period.DaysIn(selected); d++ {
		day := first.AddDate(0, 0, d-1)
		days = append(days, grid.Day{
			Day:        d,
			HasEvent:   len(m.store.EventsForDay(day)) > 0,
			IsToday:    period.SameDay(day, today),
			IsSelected: period.SameDay(day, selected),
		})
	}
	return grid.Render(selected, days, grid.Options{
		HeaderStyle:     m.theme.Calendar.Header,
		EmptyStyle:      m.theme.Calendar.Empty,
		EventStyle:      m.theme.Calendar.HasEvent,
		TodayStyle:      m.theme.Calendar.Today,
		SelectedStyle:   m.theme.Calendar.Selected,
		ShowHeader:      true,
		ShowWeekNumbers: m.weekNumbers,
	})
}

func (m Model) yearView(selected time.Time) string {
	var lines []string
	year := period.StartOfYear(selected)
	for i := 0; i < 12; i++ {
		month := year.AddDate(0, i, 0)
		count := len(m.store.MonthBacklogEventsOnly(month))
		label := month.Format("Jan")
		style := m.theme.Calendar.Empty
		if count > 0 {
			style = m.theme.Calendar.HasEvent
			label = fmt.Sprintf("%s %d", label, count)
		}
		if period.SameMonth(month, selected) {
			style = style.Inherit(m.theme.Calendar.Selected)
		}
		lines = append(lines, style.Render(label))
	}
	rows := make([]string, 0, 4)
	for i := 0; i < 12; i += 3 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			pad(lines[i], 10), pad(lines[i+1], 10), pad(lines[i+2], 10)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) weekView(selected time.Time) string {
	ws := period.StartOfWeek(selected)
	var lines []string
	for i := 0; i < 7; i++ {
		day := ws.AddDate(0, 0, i)
		label := day.Format("Mon 02")
		style := m.theme.Calendar.Empty
		events := m.store.EventsForDay(day)
		if len(events) > 0 {
			style = m.theme.Calendar.HasEvent
		}
		if period.SameDay(day, selected) {
			style = style.Inherit(m.theme.Calendar.Selected)
		}
		line := style.Render(label)
		for _, e := range events {
			line += "  " + e.Title
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) dayView(selected time.Time) string {
	events := m.store.EventsForDay(selected)
	if len(events) == 0 {
		return m.theme.Calendar.Empty.Render("no events on " + period.FormatDay(selected))
	}
	var lines []string
	for _, e := range events {
		label := e.Title
		if e.StartTime != nil && !e.StartTime.IsZero() {
			label = e.StartTime.Local().Format("15:04") + " " + label
		}
		lines = append(lines, m.theme.Calendar.HasEvent.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) backlogPanel() string {
	events := m.backlog()
	title := m.store.CurrentView().Type.Level().String() + " backlog"
	lines := []string{m.theme.Backlog.Title.Render(title)}
	if len(events) == 0 {
		lines = append(lines, m.theme.Backlog.Item.Render("(empty)"))
	}
	for i, e := range events {
		style := m.theme.Backlog.Item
		if i == m.sel {
			style = m.theme.Backlog.SelectedItem
		}
		line := style.Render(e.Title)
		if e.BacklogSource != event.LevelNone && e.BacklogSource != e.BacklogLevel {
			line += " " + m.theme.Backlog.Provenance.Render("(from "+e.BacklogSource.String()+")")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// backlog returns the native backlog for the active zoom level. Rendering
// uses the native-only family so an item never shows up in two nested
// containers at once.
func (m Model) backlog() []*event.Event {
	selected := m.store.SelectedDate()
	switch m.store.CurrentView().Type {
	case event.ViewYear:
		return m.store.BacklogEvents(event.LevelYear)
	case event.ViewWeek:
		return m.store.WeekBacklogEventsOnly(period.StartOfWeek(selected))
	case event.ViewDay:
		return m.store.BacklogEvents(event.LevelDay)
	default:
		return m.store.MonthBacklogEventsOnly(period.StartOfMonth(selected))
	}
}

func (m Model) selectedEvent() *event.Event {
	events := m.backlog()
	if m.sel < 0 || m.sel >= len(events) {
		return nil
	}
	return events[m.sel]
}

func (m *Model) clampSelection() {
	n := len(m.backlog())
	if m.sel >= n {
		m.sel = n - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

func nextView(v event.ViewType) event.ViewType {
	views := event.AllViewTypes()
	for i, candidate := range views {
		if candidate == v {
			return views[(i+1)%len(views)]
		}
	}
	return event.ViewMonth
}

// nextLevel demotes one granularity step; day items go to timed.
func nextLevel(l event.Level) event.Level {
	switch l {
	case event.LevelYear:
		return event.LevelMonth
	case event.LevelMonth:
		return event.LevelWeek
	case event.LevelWeek:
		return event.LevelDay
	case event.LevelDay:
		return event.LevelTimed
	default:
		return event.LevelYear
	}
}

func sidebarFor(l event.Level) string {
	return l.String() + "-backlog"
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// UI is the runner invoked by the ui command.
type UI struct {
	Store *store.Store
}

// Do runs the interactive calendar until the user quits.
func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return fmt.Errorf("can not start ui, no store")
	}
	p := tea.NewProgram(New(ctx, n.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
