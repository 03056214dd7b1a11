package client

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Email  string
	Status Status
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}

	if strings.TrimSpace(params.Email) == "" {
		return nil, ErrEmailRequired
	}

	status := params.Status
	if status == "" {
		status = StatusProspect
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	c := &Client{
		Name:         strings.TrimSpace(params.Name),
		Email:        strings.TrimSpace(params.Email),
		Status:       status,
		TotalRevenue: decimal.Zero,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}

// RecordInvoice bumps the client's invoice count and cumulative revenue
// when an invoice is issued against it.
func (s *Service) RecordInvoice(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	c, err := s.repo.GetClient(ctx, id)
	if err != nil {
		return err
	}

	c.TotalInvoices++
	c.TotalRevenue = c.TotalRevenue.Add(total)

	return s.repo.UpdateClient(ctx, c)
}
