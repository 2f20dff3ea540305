package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority range; 0 is lowest.
const (
	PriorityMin = 0
	PriorityMax = 3
)

// Task is a work item within a project. A non-nil ParentID makes it a
// subtask; nesting stops there (a subtask cannot have subtasks).
type Task struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	ParentID  *uuid.UUID
	Title     string
	Room      string
	Status    Status
	Priority  int
	DueDate   *time.Time
	CreatedAt time.Time
}

type Update struct {
	Title    *string
	Room     *string
	Status   *Status
	Priority *int
	DueDate  *time.Time
	// ClearDueDate removes the due date; DueDate then must be nil.
	ClearDueDate bool
}

var (
	ErrNotFound        = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrParentNotFound  = errors.New("parent task not found in project")
	ErrNestedSubtask   = errors.New("subtasks cannot have subtasks")
)

// Repository is owner-scoped like every other port: ownership is checked
// through the task's project.
type Repository interface {
	Create(ctx context.Context, ownerID int64, t Task) error
	GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (Task, error)
	// ListByProject returns tasks parents-first (top-level ordered by
	// priority desc then creation, subtasks following in creation order).
	ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Task, error)
	// Delete removes the task and its subtasks in one transaction.
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}
