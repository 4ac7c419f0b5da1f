package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janseva/models"
	"janseva/repository"
	"janseva/service"
)

func newTestDirectory(t *testing.T) *service.WorkerService {
	t.Helper()
	return service.NewWorkerService(repository.NewMemoryWorkerRepository())
}

// TestRegisterWorker verifies a fresh registration creates an Active profile
// keyed by contact.
func TestRegisterWorker(t *testing.T) {
	directory := newTestDirectory(t)

	worker, created, err := directory.Register("Ravi Kumar", "ravi@crew.example")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ravi@crew.example", worker.WorkerID)
	assert.Equal(t, "Ravi Kumar", worker.Name)
	assert.Equal(t, models.WorkerActive, worker.Status)
	assert.False(t, worker.RegisteredAt.IsZero())
}

// TestRegisterWorkerIdempotent verifies re-registering the same contact is a
// silent no-op that returns the original profile.
func TestRegisterWorkerIdempotent(t *testing.T) {
	directory := newTestDirectory(t)

	first, created, err := directory.Register("Ravi Kumar", "ravi@crew.example")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := directory.Register("Someone Else", "ravi@crew.example")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.WorkerID, second.WorkerID)
	assert.Equal(t, "Ravi Kumar", second.Name, "existing profile must win")

	workers, err := directory.List()
	require.NoError(t, err)
	assert.Len(t, workers, 1, "duplicate registration must not add a profile")
}

// TestListWorkers verifies distinct contacts each get a profile.
func TestListWorkers(t *testing.T) {
	directory := newTestDirectory(t)

	_, _, err := directory.Register("Ravi Kumar", "ravi@crew.example")
	require.NoError(t, err)
	_, _, err = directory.Register("Meena Devi", "meena@crew.example")
	require.NoError(t, err)

	workers, err := directory.List()
	require.NoError(t, err)
	assert.Len(t, workers, 2)
}
