package store_test

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

func TestStore_ListSortedByStart(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	at := func(hour int) time.Time {
		return time.Date(2025, 3, 3, hour, 0, 0, 0, time.UTC)
	}

	for _, m := range []meeting.Meeting{
		{ID: uuid.New(), Title: "Afternoon", Start: at(15), End: at(16)},
		{ID: uuid.New(), Title: "Morning", Start: at(9), End: at(10)},
		{ID: uuid.New(), Title: "Midday", Start: at(12), End: at(13)},
	} {
		require.NoError(t, s.CreateMeeting(ctx, &m))
	}

	got, err := s.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Morning", got[0].Title)
	assert.Equal(t, "Midday", got[1].Title)
	assert.Equal(t, "Afternoon", got[2].Title)
}

func TestStore_GetMissing(t *testing.T) {
	s := store.New()

	_, err := s.GetMeeting(context.Background(), uuid.New())
	assert.ErrorIs(t, err, meeting.ErrNotFound)
}

func TestStore_ReplaceMissing(t *testing.T) {
	s := store.New()

	err := s.ReplaceMeeting(context.Background(), &meeting.Meeting{ID: uuid.New(), Title: "Ghost"})
	assert.ErrorIs(t, err, meeting.ErrNotFound)
}

func TestStore_Replace(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	m := meeting.Meeting{
		ID:    uuid.New(),
		Title: "Before",
		Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateMeeting(ctx, &m))

	m.Title = "After"
	require.NoError(t, s.ReplaceMeeting(ctx, &m))

	got, err := s.GetMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	m := meeting.Meeting{ID: uuid.New(), Title: "Doomed"}
	require.NoError(t, s.CreateMeeting(ctx, &m))

	require.NoError(t, s.DeleteMeeting(ctx, m.ID))
	require.NoError(t, s.DeleteMeeting(ctx, m.ID))

	_, err := s.GetMeeting(ctx, m.ID)
	assert.ErrorIs(t, err, meeting.ErrNotFound)
}
