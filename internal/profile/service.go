package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error

	ListNotificationPrefs(ctx context.Context, userID uuid.UUID) ([]NotificationPref, error)
	UpsertNotificationPref(ctx context.Context, pref NotificationPref) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// Save upserts the user's profile. Timezone defaults to UTC when blank.
func (s *Service) Save(ctx context.Context, p Profile) (*Profile, error) {
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" {
		return nil, ErrEmailRequired
	}

	p.FullName = strings.TrimSpace(p.FullName)

	if strings.TrimSpace(p.Timezone) == "" {
		p.Timezone = "UTC"
	}

	if err := s.repo.UpsertProfile(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Service) NotificationPrefs(ctx context.Context, userID uuid.UUID) ([]NotificationPref, error) {
	return s.repo.ListNotificationPrefs(ctx, userID)
}

// SaveNotificationPref upserts one channel's setting. Frequency defaults
// to instant when unset.
func (s *Service) SaveNotificationPref(ctx context.Context, pref NotificationPref) (NotificationPref, error) {
	if !pref.Channel.Valid() {
		return NotificationPref{}, ErrInvalidChannel
	}

	if pref.Frequency == "" {
		pref.Frequency = FrequencyInstant
	}

	if !pref.Frequency.Valid() {
		return NotificationPref{}, ErrInvalidFrequency
	}

	if err := s.repo.UpsertNotificationPref(ctx, pref); err != nil {
		return NotificationPref{}, err
	}

	return pref, nil
}
