package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/filter"
	"github.com/jrwalden/clientdesk/internal/invoice"
	"github.com/jrwalden/clientdesk/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/revenue", h.revenue)
	r.Get("/invoices", h.invoiceSummary)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context(), time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(d); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

const defaultRevenueMonths = 6

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	months := defaultRevenueMonths
	if s := r.URL.Query().Get("months"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			months = v
		}
	}

	points, err := h.svc.Revenue(r.Context(), time.Now(), months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(points); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) invoiceSummary(w http.ResponseWriter, r *http.Request) {
	f := invoice.ListFilter{
		Status: r.URL.Query().Get("status"),
		Bucket: filter.DateBucket(r.URL.Query().Get("date_range")),
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.ClientID = new(id)
		}
	}

	stats, err := h.svc.InvoiceSummary(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(stats); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
