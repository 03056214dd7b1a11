package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/invoice"
)

type lineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type invoiceResponse struct {
	ID         uuid.UUID          `json:"id"`
	Number     string             `json:"number"`
	ClientID   uuid.UUID          `json:"client_id"`
	ClientName string             `json:"client_name"`
	Project    string             `json:"project,omitempty"`
	Status     invoice.Status     `json:"status"`
	LineItems  []lineItemResponse `json:"line_items"`
	TaxRate    decimal.Decimal    `json:"tax_rate"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Total      decimal.Decimal    `json:"total"`
	IssueDate  time.Time          `json:"issue_date"`
	DueDate    time.Time          `json:"due_date"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	items := make([]lineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = lineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount(),
		}
	}

	return invoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Project:    inv.Project,
		Status:     inv.Status,
		LineItems:  items,
		TaxRate:    inv.TaxRate,
		Subtotal:   inv.Subtotal(),
		Tax:        inv.Tax(),
		Total:      inv.Total(),
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
