package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReminderLead is the notification lead time in minutes. It is metadata
// carried on the meeting; nothing in this service fires reminders.
type ReminderLead int

const (
	Reminder5  ReminderLead = 5
	Reminder15 ReminderLead = 15
	Reminder30 ReminderLead = 30
	Reminder60 ReminderLead = 60

	DefaultReminder = Reminder15
)

func (r ReminderLead) Valid() bool {
	switch r {
	case Reminder5, Reminder15, Reminder30, Reminder60:
		return true
	}

	return false
}

// Meeting is a scheduled calendar entry. No recurrence, no timezone
// handling, no conflict detection.
type Meeting struct {
	ID       uuid.UUID
	Title    string
	Start    time.Time
	End      time.Time
	Reminder ReminderLead
	Notes    string
	MeetLink string
}

// CalendarEvent is the shape handed to a calendar rendering surface: the
// core fields plus everything else carried through unchanged as extended
// properties.
type CalendarEvent struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Start         time.Time      `json:"start"`
	End           time.Time      `json:"end"`
	ExtendedProps map[string]any `json:"extendedProps"`
}

// Event maps the meeting onto its calendar-surface representation.
func (m *Meeting) Event() CalendarEvent {
	return CalendarEvent{
		ID:    m.ID,
		Title: m.Title,
		Start: m.Start,
		End:   m.End,
		ExtendedProps: map[string]any{
			"reminder": int(m.Reminder),
			"notes":    m.Notes,
			"meetLink": m.MeetLink,
		},
	}
}

var (
	ErrNotFound        = errors.New("meeting not found")
	ErrTitleRequired   = errors.New("meeting title is required")
	ErrEndBeforeStart  = errors.New("meeting end is before its start")
	ErrInvalidReminder = errors.New("invalid reminder lead time")
)
