package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	ListProjects(ctx context.Context, filter ListFilter) ([]*Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	AddTask(ctx context.Context, projectID uuid.UUID, t *Task) error
	UpdateTask(ctx context.Context, t *Task) error
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status TaskStatus) error
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	ClientID     uuid.UUID
	ClientName   string
	Status       Status
	Priority     Priority
	StartDate    time.Time
	Deadline     time.Time
	Budget       *decimal.Decimal
	Deliverables []string
	TeamMembers  []uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}

	if len(params.Deliverables) == 0 {
		return nil, ErrDeliverablesRequired
	}

	status := params.Status
	if status == "" {
		status = StatusPlanning
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	p := &Project{
		Name:         strings.TrimSpace(params.Name),
		ClientID:     params.ClientID,
		ClientName:   params.ClientName,
		Status:       status,
		Priority:     priority,
		StartDate:    params.StartDate,
		Deadline:     params.Deadline,
		Budget:       params.Budget,
		Deliverables: params.Deliverables,
		TeamMembers:  params.TeamMembers,
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Project, error) {
	return s.repo.ListProjects(ctx, filter)
}

// Update replaces the stored project wholesale, so it holds the same
// invariants as Create plus the progress bounds.
func (s *Service) Update(ctx context.Context, p *Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}

	if len(p.Deliverables) == 0 {
		return ErrDeliverablesRequired
	}

	if !p.Status.Valid() {
		return ErrInvalidStatus
	}

	if !p.Priority.Valid() {
		return ErrInvalidPriority
	}

	if p.Progress < 0 || p.Progress > 100 {
		return ErrInvalidProgress
	}

	return s.repo.UpdateProject(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}

type TaskParams struct {
	Title          string
	AssigneeID     *uuid.UUID
	Status         TaskStatus
	Priority       Priority
	DueDate        time.Time
	EstimatedHours decimal.Decimal
	Tags           []string
}

func (s *Service) AddTask(ctx context.Context, projectID uuid.UUID, params TaskParams) (*Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := params.Status
	if status == "" {
		status = TaskTodo
	}

	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	t := &Task{
		Title:          strings.TrimSpace(params.Title),
		ProjectID:      projectID,
		AssigneeID:     params.AssigneeID,
		Status:         status,
		Priority:       priority,
		DueDate:        params.DueDate,
		EstimatedHours: params.EstimatedHours,
		Tags:           params.Tags,
	}
	if err := s.repo.AddTask(ctx, projectID, t); err != nil {
		return nil, err
	}

	return t, nil
}

// MoveTask drops a task into another Kanban column. Every move is legal;
// the board has no workflow rules.
func (s *Service) MoveTask(ctx context.Context, taskID uuid.UUID, status TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidTaskStatus
	}

	return s.repo.UpdateTaskStatus(ctx, taskID, status)
}

func (s *Service) UpdateTask(ctx context.Context, t *Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}

	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}

	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}

	return s.repo.UpdateTask(ctx, t)
}

func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.repo.DeleteTask(ctx, taskID)
}
