package contract

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/contract"
	"github.com/jrwalden/clientdesk/internal/filter"
)

type Handler struct {
	svc *contract.Service
}

func NewHandler(svc *contract.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type contractRequest struct {
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_name"`
	Title      string          `json:"title"`
	Value      decimal.Decimal `json:"value"`
	Status     contract.Status `json:"status"`
	SignedDate time.Time       `json:"signed_date"`
}

type contractResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_name"`
	Title      string          `json:"title"`
	Value      decimal.Decimal `json:"value"`
	Status     contract.Status `json:"status"`
	SignedDate time.Time       `json:"signed_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toResponse(c *contract.Contract) contractResponse {
	return contractResponse{
		ID:         c.ID,
		ClientID:   c.ClientID,
		ClientName: c.ClientName,
		Title:      c.Title,
		Value:      c.Value,
		Status:     c.Status,
		SignedDate: c.SignedDate,
		CreatedAt:  c.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), contract.CreateParams{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Title:      req.Title,
		Value:      req.Value,
		Status:     req.Status,
		SignedDate: req.SignedDate,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, contract.ErrTitleRequired) || errors.Is(err, contract.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := contract.ListFilter{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: filter.Direction(r.URL.Query().Get("sort_order")),
	}

	if s := r.URL.Query().Get("min_value"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			f.MinValue = new(d)
		}
	}

	contracts, err := h.svc.List(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]contractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			http.Error(w, "contract not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	c.Title = req.Title
	c.Value = req.Value
	c.Status = req.Status
	c.SignedDate = req.SignedDate

	if err := h.svc.Update(r.Context(), c); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, contract.ErrTitleRequired) || errors.Is(err, contract.ErrInvalidStatus) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
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
