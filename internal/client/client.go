package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the relationship state of a client.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusProspect Status = "Prospect"
	StatusOnHold   Status = "On Hold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusProspect, StatusOnHold:
		return true
	}

	return false
}

// Client represents a billing relationship. TotalInvoices and TotalRevenue
// are running roll-ups maintained as invoices are issued against the client.
type Client struct {
	ID            uuid.UUID
	Name          string
	Email         string
	TotalInvoices int
	TotalRevenue  decimal.Decimal
	Status        Status
	CreatedAt     time.Time
}

var (
	ErrNotFound      = errors.New("client not found")
	ErrNameRequired  = errors.New("client name is required")
	ErrEmailRequired = errors.New("client email is required")
	ErrInvalidStatus = errors.New("invalid client status")
)
