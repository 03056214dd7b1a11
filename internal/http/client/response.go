package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/client"
)

type clientResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Status        client.Status   `json:"status"`
	TotalInvoices int             `json:"total_invoices"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Status:        c.Status,
		TotalInvoices: c.TotalInvoices,
		TotalRevenue:  c.TotalRevenue,
		CreatedAt:     c.CreatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}
