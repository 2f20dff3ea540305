package budget

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateInput struct {
	ProjectID    uuid.UUID
	Category     string
	Description  string
	PlannedCents int64
	ActualCents  int64
	ContractorID *uuid.UUID
}

type UseCase interface {
	Create(ctx context.Context, ownerID int64, in CreateInput) (Item, error)
	ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Item, error)
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
	Summary(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]CategoryTotal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID int64, in CreateInput) (Item, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return Item{}, ErrValidation("category is required")
	}
	if in.PlannedCents < 0 || in.ActualCents < 0 {
		return Item{}, ErrValidation("amounts must not be negative")
	}
	it := Item{
		ID:           uuid.New(),
		ProjectID:    in.ProjectID,
		Category:     category,
		Description:  in.Description,
		PlannedCents: in.PlannedCents,
		ActualCents:  in.ActualCents,
		ContractorID: in.ContractorID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ownerID, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *service) ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Item, error) {
	return s.repo.ListByProject(ctx, ownerID, projectID)
}

func (s *service) Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Item, error) {
	if u.Category != nil {
		trimmed := strings.TrimSpace(*u.Category)
		if trimmed == "" {
			return Item{}, ErrValidation("category must not be empty")
		}
		u.Category = &trimmed
	}
	if u.PlannedCents != nil && *u.PlannedCents < 0 {
		return Item{}, ErrValidation("planned amount must not be negative")
	}
	if u.ActualCents != nil && *u.ActualCents < 0 {
		return Item{}, ErrValidation("actual amount must not be negative")
	}
	if u.ClearContractor && u.ContractorID != nil {
		return Item{}, ErrValidation("cannot set and clear contractor at once")
	}
	return s.repo.Update(ctx, ownerID, id, u)
}

func (s *service) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *service) Summary(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]CategoryTotal, error) {
	return s.repo.Summary(ctx, ownerID, projectID)
}

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
