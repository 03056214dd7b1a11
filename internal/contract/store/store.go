// Package store provides the in-memory contract repository.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/contract"
)

type Store struct {
	mu        sync.RWMutex
	contracts map[uuid.UUID]contract.Contract
	order     []uuid.UUID // newest first
}

func New() *Store {
	return &Store{contracts: make(map[uuid.UUID]contract.Contract)}
}

func (s *Store) CreateContract(_ context.Context, c *contract.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	s.contracts[c.ID] = *c
	s.order = append([]uuid.UUID{c.ID}, s.order...)

	return nil
}

func (s *Store) GetContract(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contracts[id]
	if !ok {
		return nil, contract.ErrNotFound
	}

	return &c, nil
}

func (s *Store) UpdateContract(_ context.Context, c *contract.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[c.ID]; !ok {
		return contract.ErrNotFound
	}

	s.contracts[c.ID] = *c

	return nil
}

func (s *Store) ListContracts(_ context.Context, f contract.ListFilter) ([]*contract.Contract, error) {
	s.mu.RLock()

	all := make([]*contract.Contract, 0, len(s.order))

	for _, id := range s.order {
		c := s.contracts[id]
		all = append(all, &c)
	}

	s.mu.RUnlock()

	return contract.Filter(all, f), nil
}

// DeleteContract removes by id; unknown ids are a no-op.
func (s *Store) DeleteContract(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[id]; !ok {
		return nil
	}

	delete(s.contracts, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
