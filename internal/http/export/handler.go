package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/export"
	"github.com/jrwalden/clientdesk/internal/filter"
	"github.com/jrwalden/clientdesk/internal/invoice"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/invoices", h.download)
}

// download streams the filtered invoice listing as a CSV attachment.
// The filter query params mirror the invoice list endpoint.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))

	if _, err := h.svc.ExportCSV(r.Context(), f, w); err != nil {
		// Headers are already out; all that is left is logging.
		slog.Error("failed to export invoices", "error", err)
	}
}
