package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jrwalden/clientdesk/internal/auth"
	"github.com/jrwalden/clientdesk/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes assumes the auth middleware already ran; the profile always
// belongs to the authenticated user.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
	r.Get("/notifications", h.notifications)
	r.Put("/notifications", h.saveNotification)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	p, err := h.svc.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req saveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Save(r.Context(), profile.Profile{
		UserID:   user.ID,
		Email:    req.Email,
		FullName: req.FullName,
		Company:  req.Company,
		Phone:    req.Phone,
		Timezone: req.Timezone,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, profile.ErrEmailRequired) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	prefs, err := h.svc.NotificationPrefs(r.Context(), user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(prefs); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type saveNotificationRequest struct {
	Channel   profile.Channel   `json:"channel"`
	Enabled   bool              `json:"enabled"`
	Frequency profile.Frequency `json:"frequency"`
}

func (h *Handler) saveNotification(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req saveNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pref, err := h.svc.SaveNotificationPref(r.Context(), profile.NotificationPref{
		UserID:    user.ID,
		Channel:   req.Channel,
		Enabled:   req.Enabled,
		Frequency: req.Frequency,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, profile.ErrInvalidChannel) || errors.Is(err, profile.ErrInvalidFrequency) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(pref); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
