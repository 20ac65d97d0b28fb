package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solace-labs/solace-cli/internal/adapters/driven/storage/memory"
	"github.com/solace-labs/solace-cli/internal/core/domain"
)

func TestExerciseService_List(t *testing.T) {
	service := NewExerciseService(memory.NewExerciseStore())

	exercises, err := service.List(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, exercises)
	for _, ex := range exercises {
		assert.NotEmpty(t, ex.ID)
		assert.NotEmpty(t, ex.Title)
		assert.NotEmpty(t, ex.Steps)
	}
}

func TestExerciseService_Get(t *testing.T) {
	service := NewExerciseService(memory.NewExerciseStore())

	ex, err := service.Get(context.Background(), "box-breathing")

	require.NoError(t, err)
	assert.Equal(t, "Box Breathing", ex.Title)
	assert.Equal(t, "breathing", ex.Category)
}

func TestExerciseService_Get_NotFound(t *testing.T) {
	service := NewExerciseService(memory.NewExerciseStore())

	_, err := service.Get(context.Background(), "levitation")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExerciseService_Complete(t *testing.T) {
	store := memory.NewExerciseStore()
	service := NewExerciseService(store)
	ctx := context.Background()

	session, err := service.Complete(ctx, "gratitude-three", "felt calmer after")

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "gratitude-three", session.ExerciseID)
	assert.Equal(t, "felt calmer after", session.Notes)
	assert.False(t, session.CompletedAt.IsZero())

	count, err := store.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExerciseService_Complete_UnknownExercise(t *testing.T) {
	store := memory.NewExerciseStore()
	service := NewExerciseService(store)
	ctx := context.Background()

	_, err := service.Complete(ctx, "levitation", "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	count, err := store.CountSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExerciseService_Sessions_FilterByExercise(t *testing.T) {
	service := NewExerciseService(memory.NewExerciseStore())
	ctx := context.Background()

	_, err := service.Complete(ctx, "box-breathing", "")
	require.NoError(t, err)
	_, err = service.Complete(ctx, "body-scan", "")
	require.NoError(t, err)

	sessions, err := service.Sessions(ctx, "box-breathing")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "box-breathing", sessions[0].ExerciseID)

	all, err := service.Sessions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
