package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created    []Item
	lastUpdate Update
	totals     []CategoryTotal
}

func (r *fakeRepo) Create(_ context.Context, _ int64, it Item) error {
	r.created = append(r.created, it)
	return nil
}

func (r *fakeRepo) ListByProject(_ context.Context, _ int64, _ uuid.UUID) ([]Item, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, _ int64, _ uuid.UUID, u Update) (Item, error) {
	r.lastUpdate = u
	return Item{}, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ int64, _ uuid.UUID) error { return nil }

func (r *fakeRepo) Summary(_ context.Context, _ int64, _ uuid.UUID) ([]CategoryTotal, error) {
	return r.totals, nil
}

func TestCreate_Item(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	it, err := svc.Create(context.Background(), 1, CreateInput{
		ProjectID:    uuid.New(),
		Category:     "  plumbing  ",
		PlannedCents: 250_00,
	})
	require.NoError(t, err)
	assert.Equal(t, "plumbing", it.Category)
	assert.Equal(t, int64(250_00), it.PlannedCents)
	assert.Zero(t, it.ActualCents)
	assert.Nil(t, it.ContractorID)
	require.Len(t, repo.created, 1)
}

func TestCreate_ItemValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	projectID := uuid.New()

	tests := []struct {
		name string
		in   CreateInput
	}{
		{name: "empty category", in: CreateInput{ProjectID: projectID, Category: " "}},
		{name: "negative planned", in: CreateInput{ProjectID: projectID, Category: "tiles", PlannedCents: -1}},
		{name: "negative actual", in: CreateInput{ProjectID: projectID, Category: "tiles", ActualCents: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.in)
			var ve ErrValidation
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdate_ItemValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	id := uuid.New()
	var ve ErrValidation

	empty := " "
	_, err := svc.Update(context.Background(), 1, id, Update{Category: &empty})
	assert.ErrorAs(t, err, &ve)

	neg := int64(-5)
	_, err = svc.Update(context.Background(), 1, id, Update{PlannedCents: &neg})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Update(context.Background(), 1, id, Update{ActualCents: &neg})
	assert.ErrorAs(t, err, &ve)

	contractor := uuid.New()
	_, err = svc.Update(context.Background(), 1, id, Update{ContractorID: &contractor, ClearContractor: true})
	assert.ErrorAs(t, err, &ve)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{totals: []CategoryTotal{
		{Category: "electrical", PlannedCents: 1200_00, ActualCents: 1350_50},
		{Category: "plumbing", PlannedCents: 800_00, ActualCents: 0},
	}}
	svc := NewService(repo)

	totals, err := svc.Summary(context.Background(), 1, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, repo.totals, totals)
}

func TestUpdate_ClearContractorAlone(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 1, uuid.New(), Update{ClearContractor: true})
	require.NoError(t, err)
	assert.True(t, repo.lastUpdate.ClearContractor)
	assert.Nil(t, repo.lastUpdate.ContractorID)
}
