package inspiration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	boards []Board
	items  []Item
}

func (r *fakeRepo) CreateBoard(_ context.Context, b Board) error {
	r.boards = append(r.boards, b)
	return nil
}

func (r *fakeRepo) ListBoards(_ context.Context, _ int64, _, _ int) ([]Board, error) {
	return r.boards, nil
}

func (r *fakeRepo) DeleteBoard(_ context.Context, _ int64, _ uuid.UUID) error { return nil }

func (r *fakeRepo) AddItem(_ context.Context, _ int64, it Item) error {
	r.items = append(r.items, it)
	return nil
}

func (r *fakeRepo) ListItems(_ context.Context, _ int64, _ uuid.UUID) ([]Item, error) {
	return r.items, nil
}

func (r *fakeRepo) DeleteItem(_ context.Context, _ int64, _, _ uuid.UUID) error { return nil }

func TestCreateBoard(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	projectID := uuid.New()
	b, err := svc.CreateBoard(context.Background(), 1, "  Moodboard  ", &projectID)
	require.NoError(t, err)
	assert.Equal(t, "Moodboard", b.Title)
	require.NotNil(t, b.ProjectID)
	assert.Equal(t, projectID, *b.ProjectID)

	// Unpinned boards are fine too.
	b, err = svc.CreateBoard(context.Background(), 1, "Loose ideas", nil)
	require.NoError(t, err)
	assert.Nil(t, b.ProjectID)
}

func TestCreateBoard_TitleRequired(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	_, err := svc.CreateBoard(context.Background(), 1, "   ", nil)
	var ve ErrValidation
	assert.ErrorAs(t, err, &ve)
}

func TestAddItem_URLValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	boardID := uuid.New()

	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{name: "https", url: "https://example.com/tile.jpg", ok: true},
		{name: "http", url: "http://example.com/tile.jpg", ok: true},
		{name: "padded", url: "  https://example.com/tile.jpg  ", ok: true},
		{name: "empty", url: ""},
		{name: "no scheme", url: "example.com/tile.jpg"},
		{name: "ftp", url: "ftp://example.com/tile.jpg"},
		{name: "data uri", url: "data:image/png;base64,AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := svc.AddItem(context.Background(), 1, boardID, tt.url, "note")
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, boardID, it.BoardID)
				return
			}
			var ve ErrValidation
			assert.ErrorAs(t, err, &ve)
		})
	}
}
