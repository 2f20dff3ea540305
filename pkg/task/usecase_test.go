package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created    []Task
	lastUpdate Update
}

func (r *fakeRepo) Create(_ context.Context, _ int64, t Task) error {
	r.created = append(r.created, t)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, _ int64, _ uuid.UUID) (Task, error) {
	return Task{}, ErrNotFound
}

func (r *fakeRepo) ListByProject(_ context.Context, _ int64, _ uuid.UUID) ([]Task, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, _ int64, _ uuid.UUID, u Update) (Task, error) {
	r.lastUpdate = u
	return Task{}, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ int64, _ uuid.UUID) error { return nil }

func TestCreate_Task(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), 1, CreateInput{
		ProjectID: uuid.New(),
		Title:     "  Tile the floor  ",
		Room:      " kitchen ",
		Priority:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tile the floor", created.Title)
	assert.Equal(t, "kitchen", created.Room)
	assert.Equal(t, StatusTodo, created.Status)
	assert.Nil(t, created.ParentID)
	require.Len(t, repo.created, 1)
}

func TestCreate_TaskValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	projectID := uuid.New()

	tests := []struct {
		name string
		in   CreateInput
	}{
		{name: "empty title", in: CreateInput{ProjectID: projectID, Title: "  "}},
		{name: "priority too high", in: CreateInput{ProjectID: projectID, Title: "x", Priority: 4}},
		{name: "priority negative", in: CreateInput{ProjectID: projectID, Title: "x", Priority: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.in)
			var ve ErrValidation
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdate_TaskValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	id := uuid.New()
	var ve ErrValidation

	empty := " "
	_, err := svc.Update(context.Background(), 1, id, Update{Title: &empty})
	assert.ErrorAs(t, err, &ve)

	bad := Status("blocked")
	_, err = svc.Update(context.Background(), 1, id, Update{Status: &bad})
	assert.ErrorAs(t, err, &ve)

	high := 5
	_, err = svc.Update(context.Background(), 1, id, Update{Priority: &high})
	assert.ErrorAs(t, err, &ve)

	due := time.Now().Add(24 * time.Hour)
	_, err = svc.Update(context.Background(), 1, id, Update{DueDate: &due, ClearDueDate: true})
	assert.ErrorAs(t, err, &ve)
}

func TestUpdate_ClearDueDateAlone(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 1, uuid.New(), Update{ClearDueDate: true})
	require.NoError(t, err)
	assert.True(t, repo.lastUpdate.ClearDueDate)
	assert.Nil(t, repo.lastUpdate.DueDate)
}
