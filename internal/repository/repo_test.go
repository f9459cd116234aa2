package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest/internal/model"
)

func sampleAssessment() *model.Assessment {
	return &model.Assessment{
		Answers: model.Answers{"q1": "A", "q2": "B", "q3": "C", "q4": "A", "q5": ""},
		Profile: model.Profile{
			WorkStyle:          model.ProfileEntry{Description: "Structured", Explanation: "likes schedules", Trait: model.TraitStructured},
			Environment:        model.ProfileEntry{Description: "Open", Explanation: "likes people", Trait: model.TraitCollaborative},
			InteractionLevel:   model.ProfileEntry{Description: "Leader", Explanation: "coordinates", Trait: model.TraitLeadership},
			TaskPreference:     model.ProfileEntry{Description: "Detailed", Explanation: "precise", Trait: model.TraitDetailed},
			AdditionalInsights: model.NoAdditionalInsights,
		},
		Recommendations: []model.Recommendation{
			{Title: "Agile Project Coordinator", Description: "Runs sprints", MatchScore: 80, KeyTraits: []string{"structured", "leadership"}, Considerations: []string{"Meetings"}},
			{Title: "QA Engineer", Description: "Tests things", MatchScore: 45, KeyTraits: []string{"structured", "detailed"}, URL: "https://example.com"},
		},
	}
}

// assertRoundTrip checks the contract every backend shares
func assertRoundTrip(t *testing.T, repo AssessmentRepo) {
	t.Helper()
	ctx := context.Background()

	in := sampleAssessment()
	want := sampleAssessment()

	id, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, in.ID)
	assert.Equal(t, time.UTC, in.CreatedAt.Location())
	assert.Zero(t, in.CreatedAt.Nanosecond()%int(time.Millisecond))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	want.ID = in.ID
	want.CreatedAt = in.CreatedAt
	assert.Equal(t, want.Answers, got.Answers)
	assert.Equal(t, want.Profile, got.Profile)
	assert.Equal(t, want.Recommendations, got.Recommendations)
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, "unknown-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ClampLimit(0))
	assert.Equal(t, DefaultListLimit, ClampLimit(-3))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, MaxListLimit, ClampLimit(1000))
}
