package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates the project application logic.
type UseCase interface {
	Create(ctx context.Context, ownerID int64, name, description string) (Project, error)
	Get(ctx context.Context, ownerID int64, id uuid.UUID) (Project, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]Project, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Project, error)
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID int64, name, description string) (Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Project{}, ErrValidation("name is required")
	}
	p := Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Status:      StatusPlanning,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, ownerID int64, id uuid.UUID) (Project, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID int64, limit, offset int) ([]Project, error) {
	return s.repo.List(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Project, error) {
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		if trimmed == "" {
			return Project{}, ErrValidation("name must not be empty")
		}
		u.Name = &trimmed
	}
	if u.Status != nil && !u.Status.Valid() {
		return Project{}, ErrValidation("unknown project status")
	}
	return s.repo.Update(ctx, ownerID, id, u)
}

func (s *service) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
