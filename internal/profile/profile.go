// Package profile persists the account profile and notification
// preferences. Unlike the session-scoped domains this one is backed by
// Postgres, keyed by the authenticated user id.
package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Channel names a notification delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelPush, ChannelSMS:
		return true
	}

	return false
}

// Frequency controls how often a channel delivers.
type Frequency string

const (
	FrequencyInstant Frequency = "instant"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyInstant, FrequencyDaily, FrequencyWeekly:
		return true
	}

	return false
}

// NotificationPref is one channel's setting for a user.
type NotificationPref struct {
	UserID    uuid.UUID `json:"userId"`
	Channel   Channel   `json:"channel"`
	Enabled   bool      `json:"enabled"`
	Frequency Frequency `json:"frequency"`
}

var (
	ErrNotFound         = errors.New("profile not found")
	ErrEmailRequired    = errors.New("profile email is required")
	ErrInvalidChannel   = errors.New("invalid notification channel")
	ErrInvalidFrequency = errors.New("invalid notification frequency")
)
