// Package store provides the in-memory client repository. CRM records live
// for the lifetime of the process; only the profile subsystem is backed by
// the database.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/client"
)

type Store struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]client.Client
	order   []uuid.UUID // newest first
}

func New() *Store {
	return &Store{clients: make(map[uuid.UUID]client.Client)}
}

func (s *Store) CreateClient(_ context.Context, c *client.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	s.clients[c.ID] = *c
	s.order = append([]uuid.UUID{c.ID}, s.order...)

	return nil
}

func (s *Store) GetClient(_ context.Context, id uuid.UUID) (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, client.ErrNotFound
	}

	return &c, nil
}

func (s *Store) UpdateClient(_ context.Context, c *client.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; !ok {
		return client.ErrNotFound
	}

	s.clients[c.ID] = *c

	return nil
}

func (s *Store) ListClients(_ context.Context, f client.ListFilter) ([]*client.Client, error) {
	s.mu.RLock()

	all := make([]*client.Client, 0, len(s.order))

	for _, id := range s.order {
		c := s.clients[id]
		all = append(all, &c)
	}

	s.mu.RUnlock()

	return client.Filter(all, f), nil
}

// DeleteClient removes the client by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteClient(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return nil
	}

	delete(s.clients, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
