package contract

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/filter"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	ListContracts(ctx context.Context, filter ListFilter) ([]*Contract, error)
	DeleteContract(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ClientID   uuid.UUID
	ClientName string
	Title      string
	Value      decimal.Decimal
	Status     Status
	SignedDate time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Contract, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := params.Status
	if status == "" {
		status = StatusDraft
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	c := &Contract{
		ClientID:   params.ClientID,
		ClientName: params.ClientName,
		Title:      strings.TrimSpace(params.Title),
		Value:      params.Value,
		Status:     status,
		SignedDate: params.SignedDate,
	}
	if err := s.repo.CreateContract(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return s.repo.GetContract(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Contract, error) {
	return s.repo.ListContracts(ctx, filter)
}

func (s *Service) Update(ctx context.Context, c *Contract) error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrTitleRequired
	}

	if !c.Status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateContract(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteContract(ctx, id)
}

// ListFilter narrows and orders a contract listing.
type ListFilter struct {
	Search    string // title or client name
	Status    string
	MinValue  *decimal.Decimal
	SortBy    string // "value", "signed_date"
	SortOrder filter.Direction
}

// Filter applies f to contracts, preserving input order for ties.
func Filter(contracts []*Contract, f ListFilter) []*Contract {
	out := make([]*Contract, 0, len(contracts))

	for _, c := range contracts {
		if !filter.AnyText(f.Search, c.Title, c.ClientName) {
			continue
		}

		if !filter.Enum(string(c.Status), f.Status) {
			continue
		}

		if !filter.MinDecimal(c.Value, f.MinValue) {
			continue
		}

		out = append(out, c)
	}

	if f.SortBy == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		var cmp int

		switch f.SortBy {
		case "value":
			cmp = out[i].Value.Cmp(out[j].Value)
		case "signed_date":
			cmp = out[i].SignedDate.Compare(out[j].SignedDate)
		}

		return f.SortOrder.Less(cmp)
	})

	return out
}
