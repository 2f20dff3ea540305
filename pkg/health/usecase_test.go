package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReady_AllHealthy(t *testing.T) {
	t.Parallel()

	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "cache"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReady_FailureNamesChecker(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	svc := NewService(stubChecker{name: "postgres", err: boom})

	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "postgres")
}

func TestReady_NoCheckers(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewService().Ready(context.Background()))
}
