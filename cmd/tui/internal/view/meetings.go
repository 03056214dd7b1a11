package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jrwalden/clientdesk/internal/meeting"
)

const upcomingLimit = 10

type meetingsState int

const (
	meetingsStateBrowse meetingsState = iota
	meetingsStateSchedule
)

type MeetingsModel struct {
	CommonModel
	meetingService *meeting.Service

	state    meetingsState
	table    table.Model
	meetings []*meeting.Meeting
	form     *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formTitle    string
	formStart    string
	formDuration time.Duration
	formReminder meeting.ReminderLead
	formNotes    string
	formLink     string
}

func NewMeetingsModel(svc *meeting.Service) MeetingsModel {
	columns := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Start", Width: 17},
		{Title: "End", Width: 17},
		{Title: "Reminder", Width: 9},
		{Title: "Link", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MeetingsModel{
		meetingService: svc,
		table:          t,
	}
}

func (m MeetingsModel) Title() string { return "Meetings" }
func (m MeetingsModel) ShortHelp() string {
	if m.state == meetingsStateSchedule {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: schedule | x: cancel meeting | r: refresh"
}

func (m MeetingsModel) Init() tea.Cmd {
	return m.loadMeetingsCmd()
}

func (m MeetingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMeetingsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.meetings = msg.meetings
		m.refreshTable()
		return m, nil

	case meetingSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error scheduling: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Scheduled %s", msg.title)
		}
		m.state = meetingsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadMeetingsCmd()

	case meetingCancelledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error cancelling: %v", msg.err)
			return m, nil
		}
		m.status = "Meeting cancelled"
		return m, m.loadMeetingsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case meetingsStateBrowse:
		return m.updateBrowse(msg)
	case meetingsStateSchedule:
		return m.updateSchedule(msg)
	}

	return m, nil
}

func (m MeetingsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadMeetingsCmd()
		case "n":
			return m.enterScheduleMode()
		case "x":
			return m, m.cancelCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MeetingsModel) enterScheduleMode() (tea.Model, tea.Cmd) {
	m.formTitle = ""
	m.formStart = ""
	m.formDuration = time.Hour
	m.formReminder = meeting.DefaultReminder
	m.formNotes = ""
	m.formLink = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("start").
				Title("Start").
				Placeholder("YYYY-MM-DD HH:MM").
				Value(&m.formStart).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02 15:04", s); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD HH:MM")
					}
					return nil
				}),

			huh.NewSelect[time.Duration]().
				Key("duration").
				Title("Duration").
				Options(
					huh.NewOption("30 minutes", 30*time.Minute),
					huh.NewOption("1 hour", time.Hour),
					huh.NewOption("90 minutes", 90*time.Minute),
					huh.NewOption("2 hours", 2*time.Hour),
				).
				Value(&m.formDuration),

			huh.NewSelect[meeting.ReminderLead]().
				Key("reminder").
				Title("Reminder").
				Options(
					huh.NewOption("5 minutes before", meeting.Reminder5),
					huh.NewOption("15 minutes before", meeting.Reminder15),
					huh.NewOption("30 minutes before", meeting.Reminder30),
					huh.NewOption("1 hour before", meeting.Reminder60),
				).
				Value(&m.formReminder),

			huh.NewInput().
				Key("link").
				Title("Meet Link").
				Placeholder("https://meet.example.com/...").
				Value(&m.formLink),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = meetingsStateSchedule
	m.table.Blur()
	return m, m.form.Init()
}

func (m MeetingsModel) updateSchedule(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = meetingsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.scheduleCmd()
}

func (m MeetingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading meetings...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Upcoming meetings"),
		tableView,
	)

	if m.state == meetingsStateSchedule && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(fmt.Sprintf("Schedule Meeting\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *MeetingsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.meetings))
	for _, mt := range m.meetings {
		rows = append(rows, table.Row{
			mt.Title,
			FormatDateTime(mt.Start),
			FormatDateTime(mt.End),
			fmt.Sprintf("%dm", int(mt.Reminder)),
			mt.MeetLink,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadMeetingsMsg struct {
	meetings []*meeting.Meeting
	err      error
}

func (m MeetingsModel) loadMeetingsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		meetings, err := m.meetingService.Upcoming(ctx, time.Now(), upcomingLimit)
		return loadMeetingsMsg{meetings: meetings, err: err}
	}
}

type meetingSavedMsg struct {
	title string
	err   error
}

func (m MeetingsModel) scheduleCmd() tea.Cmd {
	start, err := time.Parse("2006-01-02 15:04", m.formStart)
	if err != nil {
		return func() tea.Msg { return meetingSavedMsg{err: err} }
	}

	params := meeting.SaveParams{
		Title:    m.formTitle,
		Start:    start,
		End:      start.Add(m.formDuration),
		Reminder: m.formReminder,
		Notes:    m.formNotes,
		MeetLink: m.formLink,
	}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		mt, err := m.meetingService.Create(ctx, params, start)
		if err != nil {
			return meetingSavedMsg{err: err}
		}

		return meetingSavedMsg{title: mt.Title}
	}
}

type meetingCancelledMsg struct {
	err error
}

func (m MeetingsModel) cancelCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.meetings) {
		return nil
	}

	id := m.meetings[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return meetingCancelledMsg{err: m.meetingService.Delete(ctx, id)}
	}
}
