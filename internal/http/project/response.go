package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/project"
)

type taskResponse struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	ProjectID      uuid.UUID          `json:"project_id"`
	AssigneeID     *uuid.UUID         `json:"assignee_id,omitempty"`
	Status         project.TaskStatus `json:"status"`
	Priority       project.Priority   `json:"priority"`
	DueDate        time.Time          `json:"due_date"`
	EstimatedHours decimal.Decimal    `json:"estimated_hours"`
	Tags           []string           `json:"tags,omitempty"`
}

type projectResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	ClientID     uuid.UUID        `json:"client_id"`
	ClientName   string           `json:"client_name"`
	Status       project.Status   `json:"status"`
	Priority     project.Priority `json:"priority"`
	Progress     int              `json:"progress"`
	StartDate    time.Time        `json:"start_date"`
	Deadline     time.Time        `json:"deadline"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Deliverables []string         `json:"deliverables"`
	TeamMembers  []uuid.UUID      `json:"team_members,omitempty"`
	Tasks        []taskResponse   `json:"tasks"`
	CreatedAt    time.Time        `json:"created_at"`
}

func toTaskResponse(t project.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		Title:          t.Title,
		ProjectID:      t.ProjectID,
		AssigneeID:     t.AssigneeID,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		Tags:           t.Tags,
	}
}

func toResponse(p *project.Project) projectResponse {
	tasks := make([]taskResponse, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = toTaskResponse(t)
	}

	return projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		ClientID:     p.ClientID,
		ClientName:   p.ClientName,
		Status:       p.Status,
		Priority:     p.Priority,
		Progress:     p.Progress,
		StartDate:    p.StartDate,
		Deadline:     p.Deadline,
		Budget:       p.Budget,
		Deliverables: p.Deliverables,
		TeamMembers:  p.TeamMembers,
		Tasks:        tasks,
		CreatedAt:    p.CreatedAt,
	}
}

func toResponseList(projects []*project.Project) []projectResponse {
	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toResponse(p)
	}

	return resp
}
