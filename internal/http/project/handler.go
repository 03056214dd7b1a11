package project

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/filter"
	"github.com/jrwalden/clientdesk/internal/project"
)

type Handler struct {
	svc *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	r.Post("/{id}/tasks", h.addTask)
	r.Put("/{id}/tasks/{taskID}", h.updateTask)
	r.Patch("/{id}/tasks/{taskID}/status", h.moveTask)
	r.Delete("/{id}/tasks/{taskID}", h.deleteTask)
}

type createProjectRequest struct {
	Name         string           `json:"name"`
	ClientID     uuid.UUID        `json:"client_id"`
	ClientName   string           `json:"client_name"`
	Status       project.Status   `json:"status"`
	Priority     project.Priority `json:"priority"`
	StartDate    time.Time        `json:"start_date"`
	Deadline     time.Time        `json:"deadline"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Deliverables []string         `json:"deliverables"`
	TeamMembers  []uuid.UUID      `json:"team_members"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateParams{
		Name:         req.Name,
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		Status:       req.Status,
		Priority:     req.Priority,
		StartDate:    req.StartDate,
		Deadline:     req.Deadline,
		Budget:       req.Budget,
		Deliverables: req.Deliverables,
		TeamMembers:  req.TeamMembers,
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, project.ErrNameRequired),
			errors.Is(err, project.ErrDeliverablesRequired),
			errors.Is(err, project.ErrInvalidStatus),
			errors.Is(err, project.ErrInvalidPriority):
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := project.ListFilter{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		Priority:  r.URL.Query().Get("priority"),
		Bucket:    filter.DateBucket(r.URL.Query().Get("deadline_range")),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: filter.Direction(r.URL.Query().Get("sort_order")),
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.ClientID = new(id)
		}
	}

	if s := r.URL.Query().Get("team_member"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			f.TeamMember = new(id)
		}
	}

	projects, err := h.svc.List(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(projects)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProjectRequest struct {
	Name         string           `json:"name"`
	Status       project.Status   `json:"status"`
	Priority     project.Priority `json:"priority"`
	Progress     int              `json:"progress"`
	StartDate    time.Time        `json:"start_date"`
	Deadline     time.Time        `json:"deadline"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Deliverables []string         `json:"deliverables"`
	TeamMembers  []uuid.UUID      `json:"team_members"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	p.Name = req.Name
	p.Status = req.Status
	p.Priority = req.Priority
	p.Progress = req.Progress
	p.StartDate = req.StartDate
	p.Deadline = req.Deadline
	p.Budget = req.Budget
	p.Deliverables = req.Deliverables
	p.TeamMembers = req.TeamMembers

	if err := h.svc.Update(r.Context(), p); err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, project.ErrNameRequired),
			errors.Is(err, project.ErrDeliverablesRequired),
			errors.Is(err, project.ErrInvalidStatus),
			errors.Is(err, project.ErrInvalidPriority),
			errors.Is(err, project.ErrInvalidProgress):
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
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

type taskRequest struct {
	Title          string             `json:"title"`
	AssigneeID     *uuid.UUID         `json:"assignee_id,omitempty"`
	Status         project.TaskStatus `json:"status"`
	Priority       project.Priority   `json:"priority"`
	DueDate        time.Time          `json:"due_date"`
	EstimatedHours decimal.Decimal    `json:"estimated_hours"`
	Tags           []string           `json:"tags"`
}

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.AddTask(r.Context(), projectID, project.TaskParams{
		Title:          req.Title,
		AssigneeID:     req.AssigneeID,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
	})
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, project.ErrTitleRequired),
			errors.Is(err, project.ErrInvalidTaskStatus),
			errors.Is(err, project.ErrInvalidPriority):
			status = http.StatusBadRequest
		case errors.Is(err, project.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toTaskResponse(*t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t := &project.Task{
		ID:             taskID,
		Title:          req.Title,
		ProjectID:      projectID,
		AssigneeID:     req.AssigneeID,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
	}

	if err := h.svc.UpdateTask(r.Context(), t); err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, project.ErrTitleRequired),
			errors.Is(err, project.ErrInvalidTaskStatus),
			errors.Is(err, project.ErrInvalidPriority):
			status = http.StatusBadRequest
		case errors.Is(err, project.ErrTaskNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTaskResponse(*t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moveTaskRequest struct {
	Status project.TaskStatus `json:"status"`
}

func (h *Handler) moveTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var req moveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.MoveTask(r.Context(), taskID, req.Status); err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, project.ErrInvalidTaskStatus):
			status = http.StatusBadRequest
		case errors.Is(err, project.ErrTaskNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), taskID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
