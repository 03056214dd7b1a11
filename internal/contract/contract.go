package contract

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a contract.
type Status string

const (
	StatusDraft   Status = "Draft"
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusExpired:
		return true
	}

	return false
}

// Contract is an agreement with a client. Value is a proper decimal, not a
// display string.
type Contract struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	Title      string
	Value      decimal.Decimal
	Status     Status
	SignedDate time.Time
	CreatedAt  time.Time
}

var (
	ErrNotFound      = errors.New("contract not found")
	ErrTitleRequired = errors.New("contract title is required")
	ErrInvalidStatus = errors.New("invalid contract status")
)
