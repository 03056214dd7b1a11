package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskStatus is a Kanban column. The set is flat: any status can move to
// any other (drag and drop between columns), with no transition guard and
// no terminal state.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskCompleted:
		return true
	}

	return false
}

// Task is a card on a project's board.
type Task struct {
	ID             uuid.UUID
	Title          string
	ProjectID      uuid.UUID
	AssigneeID     *uuid.UUID
	Status         TaskStatus
	Priority       Priority
	DueDate        time.Time
	EstimatedHours decimal.Decimal
	Tags           []string
}

// TasksByStatus groups tasks into their Kanban columns, preserving order
// within each column.
func TasksByStatus(tasks []Task) map[TaskStatus][]Task {
	cols := make(map[TaskStatus][]Task)
	for _, t := range tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}

	return cols
}
