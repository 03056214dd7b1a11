// Package store provides the in-memory invoice repository.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/invoice"
)

type Store struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]invoice.Invoice
	order    []uuid.UUID // newest first
}

func New() *Store {
	return &Store{invoices: make(map[uuid.UUID]invoice.Invoice)}
}

func (s *Store) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()

	s.invoices[inv.ID] = clone(inv)
	s.order = append([]uuid.UUID{inv.ID}, s.order...)

	return nil
}

func (s *Store) GetInvoice(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, invoice.ErrNotFound
	}

	out := clone(&inv)

	return &out, nil
}

func (s *Store) UpdateInvoice(_ context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[inv.ID]; !ok {
		return invoice.ErrNotFound
	}

	now := time.Now()
	inv.UpdatedAt = &now
	s.invoices[inv.ID] = clone(inv)

	return nil
}

func (s *Store) UpdateStatus(_ context.Context, id uuid.UUID, status invoice.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return invoice.ErrNotFound
	}

	now := time.Now()
	inv.Status = status
	inv.UpdatedAt = &now
	s.invoices[id] = inv

	return nil
}

func (s *Store) ListInvoices(_ context.Context, f invoice.ListFilter) ([]*invoice.Invoice, error) {
	s.mu.RLock()

	all := make([]*invoice.Invoice, 0, len(s.order))

	for _, id := range s.order {
		inv := s.invoices[id]
		out := clone(&inv)
		all = append(all, &out)
	}

	s.mu.RUnlock()

	return invoice.Filter(all, f, time.Now()), nil
}

// DeleteInvoice removes by id; unknown ids are a no-op.
func (s *Store) DeleteInvoice(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return nil
	}

	delete(s.invoices, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// clone copies the invoice including its line item slice so callers never
// share backing arrays with the store.
func clone(inv *invoice.Invoice) invoice.Invoice {
	out := *inv
	out.LineItems = append([]invoice.LineItem(nil), inv.LineItems...)

	return out
}
