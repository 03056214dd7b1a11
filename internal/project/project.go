package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusPlanning  Status = "Planning"
	StatusActive    Status = "Active"
	StatusOnHold    Status = "On Hold"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusOnHold, StatusCompleted:
		return true
	}

	return false
}

// Priority ranks projects and tasks.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}

// Project is a client engagement with deliverables and a task board.
type Project struct {
	ID           uuid.UUID
	Name         string
	ClientID     uuid.UUID
	ClientName   string
	Status       Status
	Priority     Priority
	Progress     int // 0-100
	StartDate    time.Time
	Deadline     time.Time
	Budget       *decimal.Decimal
	Deliverables []string
	TeamMembers  []uuid.UUID
	Tasks        []Task
	CreatedAt    time.Time
}

// HasTeamMember reports whether id is on the project team.
func (p *Project) HasTeamMember(id uuid.UUID) bool {
	for _, m := range p.TeamMembers {
		if m == id {
			return true
		}
	}

	return false
}

var (
	ErrNotFound             = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNameRequired         = errors.New("project name is required")
	ErrDeliverablesRequired = errors.New("project needs at least one deliverable")
	ErrInvalidStatus        = errors.New("invalid project status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrTitleRequired        = errors.New("task title is required")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
)
