package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/client"
	"github.com/jrwalden/clientdesk/internal/filter"
	"github.com/jrwalden/clientdesk/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Put("/{id}", h.update)
}

type lineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

type createInvoiceRequest struct {
	ClientID  uuid.UUID         `json:"client_id"`
	Project   string            `json:"project"`
	TaxRate   *decimal.Decimal  `json:"tax_rate,omitempty"`
	DueDate   time.Time         `json:"due_date"`
	Notes     string            `json:"notes"`
	LineItems []lineItemRequest `json:"line_items"`
}

func toLineItemParams(items []lineItemRequest) []invoice.LineItemParams {
	params := make([]invoice.LineItemParams, len(items))
	for i, li := range items {
		params[i] = invoice.LineItemParams{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
		}
	}

	return params
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		ClientID:  req.ClientID,
		Project:   req.Project,
		TaxRate:   req.TaxRate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
		LineItems: toLineItemParams(req.LineItems),
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, invoice.ErrClientRequired), errors.Is(err, invoice.ErrLineItemsRequired):
			status = http.StatusBadRequest
		case errors.Is(err, client.ErrNotFound):
			status = http.StatusUnprocessableEntity
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := invoice.ListFilter{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		Bucket:    filter.DateBucket(r.URL.Query().Get("date_range")),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: filter.Direction(r.URL.Query().Get("sort_order")),
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.ClientID = new(id)
		}
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			f.From = new(t)
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			f.To = new(t)
		}
	}

	if s := r.URL.Query().Get("min_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			f.MinAmount = new(d)
		}
	}

	if s := r.URL.Query().Get("max_amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			f.MaxAmount = new(d)
		}
	}

	invoices, err := h.svc.List(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(invoices)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateInvoiceRequest struct {
	Project   string            `json:"project"`
	TaxRate   decimal.Decimal   `json:"tax_rate"`
	Status    invoice.Status    `json:"status"`
	DueDate   time.Time         `json:"due_date"`
	Notes     string            `json:"notes"`
	LineItems []lineItemRequest `json:"line_items"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	inv.Project = req.Project
	inv.TaxRate = req.TaxRate
	inv.DueDate = req.DueDate
	inv.Notes = req.Notes

	if req.Status != "" {
		inv.Status = req.Status
	}

	items := make([]invoice.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = invoice.LineItem{Description: li.Description, Quantity: li.Quantity, Rate: li.Rate}
	}

	inv.LineItems = items

	if err := h.svc.Update(r.Context(), inv); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, invoice.ErrLineItemsRequired) || errors.Is(err, invoice.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status invoice.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, invoice.ErrInvalidStatus):
			status = http.StatusBadRequest
		case errors.Is(err, invoice.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
