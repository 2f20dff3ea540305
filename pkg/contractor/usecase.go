package contractor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateInput struct {
	Name  string
	Trade string
	Phone string
	Email string
	Notes string
}

type UseCase interface {
	Create(ctx context.Context, ownerID int64, in CreateInput) (Contractor, error)
	Get(ctx context.Context, ownerID int64, id uuid.UUID) (Contractor, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]Contractor, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Contractor, error)
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID int64, in CreateInput) (Contractor, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Contractor{}, ErrValidation("name is required")
	}
	c := Contractor{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Trade:     strings.TrimSpace(in.Trade),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Contractor{}, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, ownerID int64, id uuid.UUID) (Contractor, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID int64, limit, offset int) ([]Contractor, error) {
	return s.repo.List(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Contractor, error) {
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		if trimmed == "" {
			return Contractor{}, ErrValidation("name must not be empty")
		}
		u.Name = &trimmed
	}
	return s.repo.Update(ctx, ownerID, id, u)
}

func (s *service) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
