package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/billing"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusUnpaid  Status = "Unpaid"
	StatusOverdue Status = "Overdue"
	StatusPartial Status = "Partial"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusOverdue, StatusPartial:
		return true
	}

	return false
}

// LineItem is a single billable entry. Amount is derived from quantity and
// rate on demand, never stored, so it cannot go stale when either changes.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

func (li LineItem) Amount() decimal.Decimal {
	return billing.LineItemAmount(li.Quantity, li.Rate)
}

// Invoice is a bill issued against a client. ClientID is the reference;
// ClientName is carried for display only.
type Invoice struct {
	ID         uuid.UUID
	Number     string
	ClientID   uuid.UUID
	ClientName string
	Project    string
	LineItems  []LineItem
	TaxRate    decimal.Decimal // percentage, e.g. 10 for 10%
	Status     Status
	IssueDate  time.Time
	DueDate    time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Subtotal sums the line item amounts.
func (inv *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range inv.LineItems {
		sum = sum.Add(li.Amount())
	}

	return sum
}

// Tax is the subtotal at the invoice's tax rate.
func (inv *Invoice) Tax() decimal.Decimal {
	return billing.Tax(inv.Subtotal(), inv.TaxRate)
}

// Total is subtotal plus tax.
func (inv *Invoice) Total() decimal.Decimal {
	subtotal := inv.Subtotal()
	return billing.Total(subtotal, billing.Tax(subtotal, inv.TaxRate))
}

// NewNumber derives an invoice number from the issue time: the prefix plus
// the last six digits of the unix milliseconds, zero padded.
func NewNumber(prefix string, issuedAt time.Time) string {
	return fmt.Sprintf("%s-%06d", prefix, issuedAt.UnixMilli()%1_000_000)
}

var (
	ErrNotFound          = errors.New("invoice not found")
	ErrClientRequired    = errors.New("invoice client is required")
	ErrLineItemsRequired = errors.New("invoice needs at least one line item")
	ErrInvalidStatus     = errors.New("invalid invoice status")
)
