package meeting_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/meeting"
	"github.com/jrwalden/clientdesk/internal/meeting/store"
)

var (
	start = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)
)

func newService() *meeting.Service {
	return meeting.NewService(store.New())
}

func TestService_CreateAndReadBack(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	m, err := svc.Create(ctx, meeting.SaveParams{
		Title: "Kickoff call",
		Start: start,
		End:   end,
		Notes: "Agenda in the doc",
	}, time.Time{})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, meeting.DefaultReminder, m.Reminder)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kickoff call", got.Title)
	assert.True(t, got.Start.Equal(start))
	assert.True(t, got.End.Equal(end))
}

func TestService_Create_TitleRequired(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), meeting.SaveParams{Start: start, End: end}, time.Time{})
	assert.ErrorIs(t, err, meeting.ErrTitleRequired)

	_, err = svc.Create(context.Background(), meeting.SaveParams{Title: "   "}, start)
	assert.ErrorIs(t, err, meeting.ErrTitleRequired)
}

func TestService_Create_DefaultsToClickedCell(t *testing.T) {
	svc := newService()

	m, err := svc.Create(context.Background(), meeting.SaveParams{Title: "Quick sync"}, start)
	require.NoError(t, err)

	// A bare click produces a zero-duration meeting in that cell.
	assert.True(t, m.Start.Equal(start))
	assert.True(t, m.End.Equal(start))
}

func TestService_Create_EndBeforeStartRejected(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), meeting.SaveParams{
		Title: "Backwards",
		Start: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}, time.Time{})
	assert.ErrorIs(t, err, meeting.ErrEndBeforeStart)
}

func TestService_Create_InvalidReminder(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), meeting.SaveParams{
		Title:    "Odd reminder",
		Start:    start,
		End:      end,
		Reminder: meeting.ReminderLead(45),
	}, time.Time{})
	assert.ErrorIs(t, err, meeting.ErrInvalidReminder)
}

func TestService_Update_FullReplacement(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	m, err := svc.Create(ctx, meeting.SaveParams{
		Title: "Original", Start: start, End: end, Notes: "old notes", MeetLink: "https://meet/x",
	}, time.Time{})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, meeting.SaveParams{
		Title: "Renamed", Start: start, End: end,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	// Replacement, not patch: fields absent from the update are gone.
	assert.Empty(t, got.Notes)
	assert.Empty(t, got.MeetLink)
	assert.Equal(t, updated.Reminder, got.Reminder)
}

func TestService_Update_MissingID(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), uuid.New(), meeting.SaveParams{
		Title: "Ghost", Start: start, End: end,
	})
	assert.ErrorIs(t, err, meeting.ErrNotFound)
}

func TestService_Delete_IdempotentTwice(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	m, err := svc.Create(ctx, meeting.SaveParams{Title: "Doomed", Start: start, End: end}, time.Time{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, meeting.ErrNotFound)

	// Both repeat deletes are no-ops.
	assert.NoError(t, svc.Delete(ctx, m.ID))
	assert.NoError(t, svc.Delete(ctx, m.ID))
}

func TestService_Events_CarriesExtendedProps(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, meeting.SaveParams{
		Title:    "Design review",
		Start:    start,
		End:      end,
		Reminder: meeting.Reminder30,
		Notes:    "Bring mockups",
		MeetLink: "https://meet.example.com/abc",
	}, time.Time{})
	require.NoError(t, err)

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "Design review", ev.Title)
	assert.Equal(t, 30, ev.ExtendedProps["reminder"])
	assert.Equal(t, "Bring mockups", ev.ExtendedProps["notes"])
	assert.Equal(t, "https://meet.example.com/abc", ev.ExtendedProps["meetLink"])
}

func TestService_Upcoming(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	now := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)

	mk := func(title string, offset time.Duration) {
		s := now.Add(offset)
		_, err := svc.Create(ctx, meeting.SaveParams{Title: title, Start: s, End: s.Add(time.Hour)}, time.Time{})
		require.NoError(t, err)
	}

	mk("Past", -48*time.Hour)
	mk("Soon", 2*time.Hour)
	mk("Later", 24*time.Hour)
	mk("Much later", 72*time.Hour)

	got, err := svc.Upcoming(ctx, now, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Soon", got[0].Title)
	assert.Equal(t, "Later", got[1].Title)
}
