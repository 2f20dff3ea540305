package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created    []Project
	lastUpdate Update
	updated    Project
}

func (r *fakeRepo) Create(_ context.Context, p Project) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, _ int64, _ uuid.UUID) (Project, error) {
	return Project{}, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context, _ int64, _, _ int) ([]Project, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, _ int64, _ uuid.UUID, u Update) (Project, error) {
	r.lastUpdate = u
	return r.updated, nil
}

func (r *fakeRepo) Delete(_ context.Context, _ int64, _ uuid.UUID) error { return nil }

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), 1, "  Kitchen remodel  ", "full gut")
	require.NoError(t, err)
	assert.Equal(t, "Kitchen remodel", p.Name)
	assert.Equal(t, StatusPlanning, p.Status)
	assert.Equal(t, int64(1), p.OwnerID)
	assert.NotEqual(t, uuid.Nil, p.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, p, repo.created[0])
}

func TestCreate_NameRequired(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})
	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), 1, name, "")
		var ve ErrValidation
		assert.ErrorAs(t, err, &ve, "name %q", name)
	}
}

func TestUpdate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{})

	empty := "  "
	_, err := svc.Update(context.Background(), 1, uuid.New(), Update{Name: &empty})
	var ve ErrValidation
	assert.ErrorAs(t, err, &ve)

	bad := Status("demolished")
	_, err = svc.Update(context.Background(), 1, uuid.New(), Update{Status: &bad})
	assert.ErrorAs(t, err, &ve)
}

func TestUpdate_TrimsName(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	name := "  Bathroom  "
	_, err := svc.Update(context.Background(), 1, uuid.New(), Update{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.Name)
	assert.Equal(t, "Bathroom", *repo.lastUpdate.Name)
}

func TestStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPlanning, StatusActive, StatusOnHold, StatusDone} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("cancelled").Valid())
}
