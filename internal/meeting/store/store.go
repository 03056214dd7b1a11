// Package store provides the in-memory meeting repository. Listings come
// back ordered by start time, which is the order every calendar consumer
// wants.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/meeting"
)

type Store struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]meeting.Meeting
}

func New() *Store {
	return &Store{meetings: make(map[uuid.UUID]meeting.Meeting)}
}

func (s *Store) CreateMeeting(_ context.Context, m *meeting.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.New()
	s.meetings[m.ID] = *m

	return nil
}

func (s *Store) GetMeeting(_ context.Context, id uuid.UUID) (*meeting.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.meetings[id]
	if !ok {
		return nil, meeting.ErrNotFound
	}

	return &m, nil
}

func (s *Store) ReplaceMeeting(_ context.Context, m *meeting.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meetings[m.ID]; !ok {
		return meeting.ErrNotFound
	}

	s.meetings[m.ID] = *m

	return nil
}

func (s *Store) ListMeetings(_ context.Context) ([]*meeting.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*meeting.Meeting, 0, len(s.meetings))

	for id := range s.meetings {
		m := s.meetings[id]
		out = append(out, &m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	return out, nil
}

// DeleteMeeting removes by id; deleting an unknown id is a no-op.
func (s *Store) DeleteMeeting(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.meetings, id)

	return nil
}
