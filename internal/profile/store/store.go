package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT user_id, email, full_name, company, phone, timezone, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Email, &p.FullName, &p.Company, &p.Phone, &p.Timezone, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, email, full_name, company, phone, timezone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			company = EXCLUDED.company,
			phone = EXCLUDED.phone,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.UserID,
		p.Email,
		p.FullName,
		p.Company,
		p.Phone,
		p.Timezone,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	return nil
}

func (s *Store) ListNotificationPrefs(ctx context.Context, userID uuid.UUID) ([]profile.NotificationPref, error) {
	query := `
		SELECT user_id, channel, enabled, frequency
		FROM notification_settings
		WHERE user_id = $1
		ORDER BY channel ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notification prefs: %w", err)
	}
	defer rows.Close()

	var prefs []profile.NotificationPref

	for rows.Next() {
		var pref profile.NotificationPref

		var channel, frequency string

		if err := rows.Scan(&pref.UserID, &channel, &pref.Enabled, &frequency); err != nil {
			return nil, fmt.Errorf("scanning notification pref: %w", err)
		}

		pref.Channel = profile.Channel(channel)
		pref.Frequency = profile.Frequency(frequency)

		prefs = append(prefs, pref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification pref rows: %w", err)
	}

	return prefs, nil
}

func (s *Store) UpsertNotificationPref(ctx context.Context, pref profile.NotificationPref) error {
	query := `
		INSERT INTO notification_settings (user_id, channel, enabled, frequency)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, channel) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			frequency = EXCLUDED.frequency
	`

	_, err := s.db.ExecContext(ctx, query,
		pref.UserID,
		pref.Channel,
		pref.Enabled,
		pref.Frequency,
	)
	if err != nil {
		return fmt.Errorf("upserting notification pref: %w", err)
	}

	return nil
}
