package profile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrwalden/clientdesk/internal/profile"
)

type mockRepo struct {
	profiles map[uuid.UUID]profile.Profile
	prefs    map[profile.Channel]profile.NotificationPref
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		profiles: make(map[uuid.UUID]profile.Profile),
		prefs:    make(map[profile.Channel]profile.NotificationPref),
	}
}

func (m *mockRepo) GetProfile(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, profile.ErrNotFound
	}

	return &p, nil
}

func (m *mockRepo) UpsertProfile(_ context.Context, p *profile.Profile) error {
	m.profiles[p.UserID] = *p
	return nil
}

func (m *mockRepo) ListNotificationPrefs(_ context.Context, _ uuid.UUID) ([]profile.NotificationPref, error) {
	out := make([]profile.NotificationPref, 0, len(m.prefs))
	for _, pref := range m.prefs {
		out = append(out, pref)
	}

	return out, nil
}

func (m *mockRepo) UpsertNotificationPref(_ context.Context, pref profile.NotificationPref) error {
	m.prefs[pref.Channel] = pref
	return nil
}

func TestService_SaveAndGet(t *testing.T) {
	repo := newMockRepo()
	svc := profile.NewService(repo)
	ctx := context.Background()
	userID := uuid.New()

	saved, err := svc.Save(ctx, profile.Profile{
		UserID:   userID,
		Email:    "  jordan@example.com  ",
		FullName: "Jordan Freelance",
		Company:  "Jordan Studio",
	})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", saved.Email)
	assert.Equal(t, "UTC", saved.Timezone)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Freelance", got.FullName)
}

func TestService_Save_EmailRequired(t *testing.T) {
	svc := profile.NewService(newMockRepo())

	_, err := svc.Save(context.Background(), profile.Profile{UserID: uuid.New(), Email: "   "})
	assert.ErrorIs(t, err, profile.ErrEmailRequired)
}

func TestService_Save_KeepsTimezone(t *testing.T) {
	svc := profile.NewService(newMockRepo())

	saved, err := svc.Save(context.Background(), profile.Profile{
		UserID:   uuid.New(),
		Email:    "jordan@example.com",
		Timezone: "Europe/Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", saved.Timezone)
}

func TestService_Get_Missing(t *testing.T) {
	svc := profile.NewService(newMockRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestService_SaveNotificationPref(t *testing.T) {
	repo := newMockRepo()
	svc := profile.NewService(repo)
	ctx := context.Background()
	userID := uuid.New()

	pref, err := svc.SaveNotificationPref(ctx, profile.NotificationPref{
		UserID:  userID,
		Channel: profile.ChannelEmail,
		Enabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, profile.FrequencyInstant, pref.Frequency)

	// Upsert replaces, not duplicates.
	pref.Frequency = profile.FrequencyWeekly
	_, err = svc.SaveNotificationPref(ctx, pref)
	require.NoError(t, err)

	prefs, err := svc.NotificationPrefs(ctx, userID)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, profile.FrequencyWeekly, prefs[0].Frequency)
}

func TestService_SaveNotificationPref_Invalid(t *testing.T) {
	svc := profile.NewService(newMockRepo())
	ctx := context.Background()

	_, err := svc.SaveNotificationPref(ctx, profile.NotificationPref{Channel: "carrier-pigeon"})
	assert.ErrorIs(t, err, profile.ErrInvalidChannel)

	_, err = svc.SaveNotificationPref(ctx, profile.NotificationPref{
		Channel:   profile.ChannelPush,
		Frequency: "hourly",
	})
	assert.ErrorIs(t, err, profile.ErrInvalidFrequency)
}
