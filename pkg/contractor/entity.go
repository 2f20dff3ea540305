package contractor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Contractor is an address-book entry owned by a user; budget items may
// reference one.
type Contractor struct {
	ID        uuid.UUID
	OwnerID   int64
	Name      string
	Trade     string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
}

type Update struct {
	Name  *string
	Trade *string
	Phone *string
	Email *string
	Notes *string
}

var ErrNotFound = errors.New("contractor not found")

type Repository interface {
	Create(ctx context.Context, c Contractor) error
	GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (Contractor, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]Contractor, error)
	Update(ctx context.Context, ownerID int64, id uuid.UUID, u Update) (Contractor, error)
	// Delete removes the contractor; budget items referencing it fall back
	// to no contractor (FK ON DELETE SET NULL).
	Delete(ctx context.Context, ownerID int64, id uuid.UUID) error
}
