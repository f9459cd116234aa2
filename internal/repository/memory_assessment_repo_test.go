package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo, err := NewMemoryAssessmentRepo(10)
	require.NoError(t, err)
	assertRoundTrip(t, repo)
}

func TestMemoryRepoIsolation(t *testing.T) {
	repo, err := NewMemoryAssessmentRepo(10)
	require.NoError(t, err)
	ctx := context.Background()

	a := sampleAssessment()
	id, err := repo.Create(ctx, a)
	require.NoError(t, err)

	a.Recommendations[0].Title = "mutated"
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Agile Project Coordinator", got.Recommendations[0].Title)

	got.Answers["q1"] = "B"
	again, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Answers["q1"])
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo, err := NewMemoryAssessmentRepo(5)
	require.NoError(t, err)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ {
		id, err := repo.Create(ctx, sampleAssessment())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, ids[3], list[0].ID)
	assert.Equal(t, ids[0], list[3].ID)

	list, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMemoryRepoFullRefusesWithoutEvicting(t *testing.T) {
	repo, err := NewMemoryAssessmentRepo(2)
	require.NoError(t, err)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 2; i++ {
		id, err := repo.Create(ctx, sampleAssessment())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	_, err = repo.Create(ctx, sampleAssessment())
	require.ErrorIs(t, err, ErrStoreFull)
	assert.NotErrorIs(t, err, ErrNotFound)

	for _, id := range ids {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err, "stored records stay readable")
		assert.Equal(t, id, got.ID)
	}
}

func TestMemoryRepoCanceledContext(t *testing.T) {
	repo, err := NewMemoryAssessmentRepo(1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Create(ctx, sampleAssessment())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewMemoryRepoRejectsZeroCapacity(t *testing.T) {
	_, err := NewMemoryAssessmentRepo(0)
	assert.Error(t, err)
}
