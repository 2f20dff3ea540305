package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is one budget line of a project. Amounts are integer cents; float
// money does not survive summation.
type Item struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Category     string
	Description  string
	PlannedCents int64
	ActualCents  int64
	ContractorID *uuid.UUID
	CreatedAt    time.Time
}

type Update struct {
	Category     *string
	Description  *string
	PlannedCents *int64
	ActualCents  *int64
	ContractorID *uuid.UUID
	// ClearContractor detaches the item from its contractor.
	ClearContractor bool
}

// CategoryTotal is one row of the per-project summary.
type CategoryTotal struct {
	Category     string
	PlannedCents int64
	ActualCents  int64
}

var (
	ErrNotFound           = errors.New("budget item not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrContractorNotFound = errors.New("contractor not found")
)

type Repository interface {
	Create(ctx context.Context, ownerID int64, it Item) error
	ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Item, error)
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
	// Summary aggregates planned/actual totals per category, ordered by category.
	Summary(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]CategoryTotal, error)
}
