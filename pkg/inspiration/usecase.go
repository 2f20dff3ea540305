package inspiration

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

type UseCase interface {
	CreateBoard(ctx context.Context, ownerID int64, title string, projectID *uuid.UUID) (Board, error)
	ListBoards(ctx context.Context, ownerID int64, limit, offset int) ([]Board, error)
	DeleteBoard(ctx context.Context, ownerID int64, id uuid.UUID) error
	AddItem(ctx context.Context, ownerID int64, boardID uuid.UUID, imageURL, note string) (Item, error)
	ListItems(ctx context.Context, ownerID int64, boardID uuid.UUID) ([]Item, error)
	DeleteItem(ctx context.Context, ownerID int64, boardID, itemID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) CreateBoard(ctx context.Context, ownerID int64, title string, projectID *uuid.UUID) (Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Board{}, ErrValidation("title is required")
	}
	b := Board{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		ProjectID: projectID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateBoard(ctx, b); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (s *service) ListBoards(ctx context.Context, ownerID int64, limit, offset int) ([]Board, error) {
	return s.repo.ListBoards(ctx, ownerID, limit, offset)
}

func (s *service) DeleteBoard(ctx context.Context, ownerID int64, id uuid.UUID) error {
	return s.repo.DeleteBoard(ctx, ownerID, id)
}

func (s *service) AddItem(ctx context.Context, ownerID int64, boardID uuid.UUID, imageURL, note string) (Item, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return Item{}, ErrValidation("imageUrl is required")
	}
	if u, err := url.Parse(imageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Item{}, ErrValidation("imageUrl must be an http(s) URL")
	}
	it := Item{
		ID:        uuid.New(),
		BoardID:   boardID,
		ImageURL:  imageURL,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddItem(ctx, ownerID, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *service) ListItems(ctx context.Context, ownerID int64, boardID uuid.UUID) ([]Item, error) {
	return s.repo.ListItems(ctx, ownerID, boardID)
}

func (s *service) DeleteItem(ctx context.Context, ownerID int64, boardID, itemID uuid.UUID) error {
	return s.repo.DeleteItem(ctx, ownerID, boardID, itemID)
}

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
