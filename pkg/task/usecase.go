package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateInput is the caller-supplied part of a new task.
type CreateInput struct {
	ProjectID uuid.UUID
	ParentID  *uuid.UUID
	Title     string
	Room      string
	Priority  int
	DueDate   *time.Time
}

type UseCase interface {
	Create(ctx context.Context, ownerID int64, in CreateInput) (Task, error)
	ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Task, error)
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID int64, in CreateInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, ErrValidation("title is required")
	}
	if in.Priority < PriorityMin || in.Priority > PriorityMax {
		return Task{}, ErrValidation("priority out of range")
	}
	t := Task{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		ParentID:  in.ParentID,
		Title:     title,
		Room:      strings.TrimSpace(in.Room),
		Status:    StatusTodo,
		Priority:  in.Priority,
		DueDate:   in.DueDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ownerID, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Task, error) {
	return s.repo.ListByProject(ctx, ownerID, projectID)
}

func (s *service) Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Task, error) {
	if u.Title != nil {
		trimmed := strings.TrimSpace(*u.Title)
		if trimmed == "" {
			return Task{}, ErrValidation("title must not be empty")
		}
		u.Title = &trimmed
	}
	if u.Status != nil && !u.Status.Valid() {
		return Task{}, ErrValidation("unknown task status")
	}
	if u.Priority != nil && (*u.Priority < PriorityMin || *u.Priority > PriorityMax) {
		return Task{}, ErrValidation("priority out of range")
	}
	if u.ClearDueDate && u.DueDate != nil {
		return Task{}, ErrValidation("cannot set and clear due date at once")
	}
	return s.repo.Update(ctx, ownerID, id, u)
}

func (s *service) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
