package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest/internal/model"
)

func TestDecodeResultsCanonical(t *testing.T) {
	body := `{
		"assessment_id": "a1",
		"created_at": "2026-01-02T03:04:05Z",
		"profile": {
			"work_style": {"description": "Structured", "explanation": "routine"},
			"environment": {"description": "Quiet", "explanation": ""},
			"interaction_level": {"description": "Alone", "explanation": ""},
			"task_preference": {"description": "Detail", "explanation": ""},
			"additional_insights": {"description": "Likes puzzles", "explanation": "from text"}
		},
		"recommendations": [{"title": "QA Engineer", "match_score": 75, "key_traits": ["work style"]}]
	}`

	res, err := decodeResults([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "a1", res.AssessmentID)
	assert.Equal(t, 2026, res.CreatedAt.Year())
	assert.Equal(t, model.ProfileEntry{Description: "Structured", Explanation: "routine"}, res.Profile.WorkStyle)
	assert.Equal(t, "Likes puzzles", res.Profile.AdditionalInsights.Description)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, 75, res.Recommendations[0].MatchScore)
	assert.Equal(t, []string{"work style"}, res.Recommendations[0].KeyTraits)
}

func TestDecodeResultsLegacy(t *testing.T) {
	body := `{
		"profile": {
			"work_style": "Flexible schedule",
			"environment_description": "Open office",
			"environment_explanation": "likes people"
		},
		"recommendations": [
			{"title": "A", "fit_score": 0.86, "strengths_match": ["teamwork"]},
			{"title": "B", "fit_score": 1.4},
			{"title": "C"}
		]
	}`

	res, err := decodeResults([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, model.ProfileEntry{Description: "Flexible schedule"}, res.Profile.WorkStyle)
	assert.Equal(t, model.ProfileEntry{Description: "Open office", Explanation: "likes people"}, res.Profile.Environment)
	assert.Equal(t, model.ProfileEntry{}, res.Profile.TaskPreference)
	assert.Equal(t, model.NoAdditionalInsights, res.Profile.AdditionalInsights)

	require.Len(t, res.Recommendations, 3)
	assert.Equal(t, 86, res.Recommendations[0].MatchScore)
	assert.Equal(t, []string{"teamwork"}, res.Recommendations[0].KeyTraits)
	assert.Equal(t, 100, res.Recommendations[1].MatchScore)
	assert.Equal(t, 0, res.Recommendations[2].MatchScore)
	assert.Equal(t, []string{}, res.Recommendations[2].KeyTraits)
}

func TestDecodeResultsRejectsGarbage(t *testing.T) {
	_, err := decodeResults([]byte(`not json`))
	assert.Error(t, err)

	_, err = decodeResults([]byte(`{"profile":{"work_style":42}}`))
	assert.Error(t, err)
}
