package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest/internal/catalog"
	"jobquest/internal/model"
)

func TestWeightsSumTo100(t *testing.T) {
	sum := 0
	for _, cw := range categoryWeights {
		sum += cw.weight
	}
	assert.Equal(t, 100, sum)
}

func TestMatchSortedAndBounded(t *testing.T) {
	for _, topN := range []int{1, 3, 5, 10} {
		m := NewMatcherService(catalog.Default(), topN)
		for _, q1 := range []string{"A", "B"} {
			for _, q3 := range []string{"A", "B", "C"} {
				for _, q4 := range []string{"A", "B", "C"} {
					p := FixedProfile(model.Answers{"q1": q1, "q2": "B", "q3": q3, "q4": q4})
					recs := m.Match(p)

					require.LessOrEqual(t, len(recs), topN)
					for i := 1; i < len(recs); i++ {
						assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
					}
					for _, r := range recs {
						assert.GreaterOrEqual(t, r.MatchScore, 0)
						assert.LessOrEqual(t, r.MatchScore, 100)
						assert.NotNil(t, r.KeyTraits)
					}
				}
			}
		}
	}
}

func TestMatchClampsTopN(t *testing.T) {
	jobs := catalog.Default()
	p := FixedProfile(model.Answers{"q1": "A", "q2": "A", "q3": "A", "q4": "A"})

	assert.Len(t, NewMatcherService(jobs, 0).Match(p), 1)
	assert.Len(t, NewMatcherService(jobs, 50).Match(p), len(jobs))
}

func TestMatchStructuredQuietProfile(t *testing.T) {
	p := FixedProfile(model.Answers{"q1": "A", "q2": "A", "q3": "A", "q4": "A"})
	recs := NewMatcherService(catalog.Default(), 5).Match(p)

	require.NotEmpty(t, recs)
	top := recs[0]
	assert.Equal(t, "Data Quality Analyst", top.Title, "ties keep catalog order")
	assert.Equal(t, 100, top.MatchScore)
	assert.Equal(t, []string{"structured", "quiet", "independent", "detailed"}, top.KeyTraits)
	assert.Empty(t, top.Considerations)
	assert.Contains(t, top.Description, "Matches your structured, quiet, independent, detailed preferences.")
}

func TestMatchNeutralProfile(t *testing.T) {
	recs := NewMatcherService(catalog.Default(), 3).Match(FixedProfile(nil))

	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Zero(t, r.MatchScore)
		assert.Empty(t, r.KeyTraits)
		assert.NotEmpty(t, r.Considerations)
	}
	assert.Equal(t, "Data Quality Analyst", recs[0].Title)
}

func TestMatchIsPure(t *testing.T) {
	m := NewMatcherService(catalog.Default(), 5)
	p := FixedProfile(model.Answers{"q1": "B", "q2": "B", "q3": "B", "q4": "B"})
	assert.Equal(t, m.Match(p), m.Match(p))
}
