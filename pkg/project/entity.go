package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of a renovation project.
type Status string

const (
	StatusPlanning Status = "planning"
	StatusActive   Status = "active"
	StatusOnHold   Status = "on_hold"
	StatusDone     Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusOnHold, StatusDone:
		return true
	}
	return false
}

// Project is the root entity: tasks, budget items and boards hang off it.
type Project struct {
	ID          uuid.UUID
	OwnerID     int64
	Name        string
	Description string
	Status      Status
	CreatedAt   time.Time
}

// Update carries a partial update; nil fields are left untouched.
type Update struct {
	Name        *string
	Description *string
	Status      *Status
}

var ErrNotFound = errors.New("project not found")

// Repository is the persistence port. All reads and writes are scoped to the
// owner; a row belonging to someone else behaves as if it did not exist.
type Repository interface {
	Create(ctx context.Context, p Project) error
	GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (Project, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]Project, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Project, error)
	// Delete removes the project and everything under it (subtasks, tasks,
	// budget items, boards) in dependency order inside one transaction.
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}
