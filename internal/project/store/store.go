// Package store provides the in-memory project repository, including the
// task board. Tasks are indexed by id across projects so board moves do not
// need the project id.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jrwalden/clientdesk/internal/project"
)

type Store struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]project.Project
	order    []uuid.UUID                   // newest first
	taskIdx  map[uuid.UUID]uuid.UUID       // task id -> project id
}

func New() *Store {
	return &Store{
		projects: make(map[uuid.UUID]project.Project),
		taskIdx:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *Store) CreateProject(_ context.Context, p *project.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	s.projects[p.ID] = clone(p)
	s.order = append([]uuid.UUID{p.ID}, s.order...)

	return nil
}

func (s *Store) GetProject(_ context.Context, id uuid.UUID) (*project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, project.ErrNotFound
	}

	out := clone(&p)

	return &out, nil
}

func (s *Store) UpdateProject(_ context.Context, p *project.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.projects[p.ID]
	if !ok {
		return project.ErrNotFound
	}

	// Tasks are managed through the task operations; a project update
	// replaces everything else.
	next := clone(p)
	next.Tasks = stored.Tasks
	s.projects[p.ID] = next

	return nil
}

func (s *Store) ListProjects(_ context.Context, f project.ListFilter) ([]*project.Project, error) {
	s.mu.RLock()

	all := make([]*project.Project, 0, len(s.order))

	for _, id := range s.order {
		p := s.projects[id]
		out := clone(&p)
		all = append(all, &out)
	}

	s.mu.RUnlock()

	return project.Filter(all, f, time.Now()), nil
}

func (s *Store) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil
	}

	for _, t := range p.Tasks {
		delete(s.taskIdx, t.ID)
	}

	delete(s.projects, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *Store) AddTask(_ context.Context, projectID uuid.UUID, t *project.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[projectID]
	if !ok {
		return project.ErrNotFound
	}

	t.ID = uuid.New()
	t.ProjectID = projectID

	p.Tasks = append(p.Tasks, *t)
	s.projects[projectID] = p
	s.taskIdx[t.ID] = projectID

	return nil
}

func (s *Store) UpdateTask(_ context.Context, t *project.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := s.taskIdx[t.ID]
	if !ok {
		return project.ErrTaskNotFound
	}

	p := s.projects[projectID]
	for i := range p.Tasks {
		if p.Tasks[i].ID == t.ID {
			t.ProjectID = projectID
			p.Tasks[i] = *t
			s.projects[projectID] = p

			return nil
		}
	}

	return project.ErrTaskNotFound
}

func (s *Store) UpdateTaskStatus(_ context.Context, taskID uuid.UUID, status project.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := s.taskIdx[taskID]
	if !ok {
		return project.ErrTaskNotFound
	}

	p := s.projects[projectID]
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Status = status
			s.projects[projectID] = p

			return nil
		}
	}

	return project.ErrTaskNotFound
}

func (s *Store) DeleteTask(_ context.Context, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := s.taskIdx[taskID]
	if !ok {
		return nil
	}

	p := s.projects[projectID]
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			break
		}
	}

	s.projects[projectID] = p
	delete(s.taskIdx, taskID)

	return nil
}

func clone(p *project.Project) project.Project {
	out := *p
	out.Deliverables = append([]string(nil), p.Deliverables...)
	out.TeamMembers = append([]uuid.UUID(nil), p.TeamMembers...)
	out.Tasks = append([]project.Task(nil), p.Tasks...)

	return out
}
