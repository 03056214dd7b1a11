package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/client"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// ClientDirectory is the slice of the client service the invoice flow needs:
// resolving the billed client and rolling the issued total into its totals.
type ClientDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*client.Client, error)
	RecordInvoice(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
}

type Service struct {
	repo    Repository
	clients ClientDirectory
	prefix  string
	taxRate decimal.Decimal
}

// NewService builds an invoice service. prefix is the configured invoice
// number prefix, e.g. "INV"; taxRate is the percentage applied when a
// create does not carry its own rate.
func NewService(repo Repository, clients ClientDirectory, prefix string, taxRate decimal.Decimal) *Service {
	return &Service{repo: repo, clients: clients, prefix: prefix, taxRate: taxRate}
}

type LineItemParams struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

type CreateParams struct {
	ClientID  uuid.UUID
	Project   string
	TaxRate   *decimal.Decimal // nil means the configured default
	DueDate   time.Time
	Notes     string
	LineItems []LineItemParams
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if params.ClientID == uuid.Nil {
		return nil, ErrClientRequired
	}

	if len(params.LineItems) == 0 {
		return nil, ErrLineItemsRequired
	}

	billed, err := s.clients.Get(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("resolving client: %w", err)
	}

	items := make([]LineItem, len(params.LineItems))
	for i, p := range params.LineItems {
		items[i] = LineItem{Description: p.Description, Quantity: p.Quantity, Rate: p.Rate}
	}

	taxRate := s.taxRate
	if params.TaxRate != nil {
		taxRate = *params.TaxRate
	}

	now := time.Now()
	inv := &Invoice{
		Number:     NewNumber(s.prefix, now),
		ClientID:   billed.ID,
		ClientName: billed.Name,
		Project:    params.Project,
		LineItems:  items,
		TaxRate:    taxRate,
		Status:     StatusUnpaid,
		IssueDate:  now,
		DueDate:    params.DueDate,
		Notes:      params.Notes,
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if err := s.clients.RecordInvoice(ctx, billed.ID, inv.Total()); err != nil {
		return nil, fmt.Errorf("recording invoice on client: %w", err)
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// Update replaces the stored record wholesale; there are no partial-patch
// semantics.
func (s *Service) Update(ctx context.Context, inv *Invoice) error {
	if len(inv.LineItems) == 0 {
		return ErrLineItemsRequired
	}

	if !inv.Status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateInvoice(ctx, inv)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}
