package inspiration

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Board is a collection of saved references, optionally pinned to a project.
type Board struct {
	ID        uuid.UUID
	OwnerID   int64
	ProjectID *uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Item stores an external image URL with a note. No uploads: the backend
// never hosts the bytes.
type Item struct {
	ID        uuid.UUID
	BoardID   uuid.UUID
	ImageURL  string
	Note      string
	CreatedAt time.Time
}

var (
	ErrBoardNotFound   = errors.New("board not found")
	ErrItemNotFound    = errors.New("board item not found")
	ErrProjectNotFound = errors.New("project not found")
)

type Repository interface {
	CreateBoard(ctx context.Context, b Board) error
	ListBoards(ctx context.Context, ownerID int64, limit, offset int) ([]Board, error)
	// DeleteBoard removes a board; its items cascade at the storage level.
	DeleteBoard(ctx context.Context, ownerID int64, id uuid.UUID) error
	AddItem(ctx context.Context, ownerID int64, it Item) error
	ListItems(ctx context.Context, ownerID int64, boardID uuid.UUID) ([]Item, error)
	DeleteItem(ctx context.Context, ownerID int64, boardID, itemID uuid.UUID) error
}
