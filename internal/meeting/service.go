package meeting

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=meeting
type Repository interface {
	CreateMeeting(ctx context.Context, m *Meeting) error
	GetMeeting(ctx context.Context, id uuid.UUID) (*Meeting, error)
	ReplaceMeeting(ctx context.Context, m *Meeting) error
	ListMeetings(ctx context.Context) ([]*Meeting, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SaveParams struct {
	Title    string
	Start    time.Time
	End      time.Time
	Reminder ReminderLead
	Notes    string
	MeetLink string
}

// validate normalizes and checks the shared create/update rules. End on or
// before start is rejected here; zero-duration meetings are allowed.
func validate(params SaveParams, cellStart time.Time) (SaveParams, error) {
	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return params, ErrTitleRequired
	}

	// Start and end default to the clicked calendar cell.
	if params.Start.IsZero() {
		params.Start = cellStart
	}

	if params.End.IsZero() {
		params.End = params.Start
	}

	if params.End.Before(params.Start) {
		return params, ErrEndBeforeStart
	}

	if params.Reminder == 0 {
		params.Reminder = DefaultReminder
	}

	if !params.Reminder.Valid() {
		return params, ErrInvalidReminder
	}

	return params, nil
}

// Create schedules a new meeting. cellStart is the calendar cell the user
// clicked and backfills a missing start/end.
func (s *Service) Create(ctx context.Context, params SaveParams, cellStart time.Time) (*Meeting, error) {
	params, err := validate(params, cellStart)
	if err != nil {
		return nil, err
	}

	m := &Meeting{
		Title:    params.Title,
		Start:    params.Start,
		End:      params.End,
		Reminder: params.Reminder,
		Notes:    params.Notes,
		MeetLink: params.MeetLink,
	}
	if err := s.repo.CreateMeeting(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Update replaces the meeting wholesale. Unlike delete, updating a missing
// id reports ErrNotFound.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params SaveParams) (*Meeting, error) {
	params, err := validate(params, params.Start)
	if err != nil {
		return nil, err
	}

	m := &Meeting{
		ID:       id,
		Title:    params.Title,
		Start:    params.Start,
		End:      params.End,
		Reminder: params.Reminder,
		Notes:    params.Notes,
		MeetLink: params.MeetLink,
	}
	if err := s.repo.ReplaceMeeting(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Meeting, error) {
	return s.repo.GetMeeting(ctx, id)
}

// Delete removes by id and is idempotent: unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMeeting(ctx, id)
}

// Events returns every meeting as a calendar-surface event.
func (s *Service) Events(ctx context.Context) ([]CalendarEvent, error) {
	meetings, err := s.repo.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, len(meetings))
	for i, m := range meetings {
		events[i] = m.Event()
	}

	return events, nil
}

// Upcoming returns the next n meetings starting at or after now, ordered
// by start time.
func (s *Service) Upcoming(ctx context.Context, now time.Time, n int) ([]*Meeting, error) {
	meetings, err := s.repo.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var upcoming []*Meeting

	for _, m := range meetings {
		if !m.Start.Before(now) {
			upcoming = append(upcoming, m)
		}
	}

	if len(upcoming) > n {
		upcoming = upcoming[:n]
	}

	return upcoming, nil
}
