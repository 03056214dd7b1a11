package meeting

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/meeting"
)

type Handler struct {
	svc *meeting.Service
}

func NewHandler(svc *meeting.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.events)
	r.Get("/upcoming", h.upcoming)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type meetingRequest struct {
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Reminder  int       `json:"reminder"`
	Notes     string    `json:"notes"`
	MeetLink  string    `json:"meet_link"`
	CellStart time.Time `json:"cell_start"` // calendar cell clicked to open the form
}

type meetingResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Reminder int       `json:"reminder"`
	Notes    string    `json:"notes,omitempty"`
	MeetLink string    `json:"meet_link,omitempty"`
}

func toResponse(m *meeting.Meeting) meetingResponse {
	return meetingResponse{
		ID:       m.ID,
		Title:    m.Title,
		Start:    m.Start,
		End:      m.End,
		Reminder: int(m.Reminder),
		Notes:    m.Notes,
		MeetLink: m.MeetLink,
	}
}

func badRequest(err error) bool {
	return errors.Is(err, meeting.ErrTitleRequired) ||
		errors.Is(err, meeting.ErrEndBeforeStart) ||
		errors.Is(err, meeting.ErrInvalidReminder)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), meeting.SaveParams{
		Title:    req.Title,
		Start:    req.Start,
		End:      req.End,
		Reminder: meeting.ReminderLead(req.Reminder),
		Notes:    req.Notes,
		MeetLink: req.MeetLink,
	}, req.CellStart)
	if err != nil {
		status := http.StatusInternalServerError
		if badRequest(err) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// events serves the calendar's event feed.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Events(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(events); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	n := 5
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			n = v
		}
	}

	meetings, err := h.svc.Upcoming(r.Context(), time.Now(), n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]meetingResponse, len(meetings))
	for i, m := range meetings {
		resp[i] = toResponse(m)
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

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, meeting.ErrNotFound) {
			http.Error(w, "meeting not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Update(r.Context(), id, meeting.SaveParams{
		Title:    req.Title,
		Start:    req.Start,
		End:      req.End,
		Reminder: meeting.ReminderLead(req.Reminder),
		Notes:    req.Notes,
		MeetLink: req.MeetLink,
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case badRequest(err):
			status = http.StatusBadRequest
		case errors.Is(err, meeting.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(m)); err != nil {
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
