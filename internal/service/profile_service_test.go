package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobquest/internal/model"
)

func TestBuildIsDeterministicForEveryCombination(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewProfileService(gen, time.Second, zap.NewNop(), nil)
	notUseful := model.Evaluation{Useful: false, Reasoning: "Response is empty"}

	for _, q1 := range []string{"A", "B"} {
		for _, q2 := range []string{"A", "B"} {
			for _, q3 := range []string{"A", "B", "C"} {
				for _, q4 := range []string{"A", "B", "C"} {
					answers := model.Answers{"q1": q1, "q2": q2, "q3": q3, "q4": q4, "q5": ""}

					first, err := json.Marshal(svc.Build(context.Background(), answers, notUseful))
					require.NoError(t, err)
					second, err := json.Marshal(svc.Build(context.Background(), answers, notUseful))
					require.NoError(t, err)

					assert.Equal(t, string(first), string(second), "%s%s%s%s", q1, q2, q3, q4)
				}
			}
		}
	}
	assert.Zero(t, gen.calls())
}

func TestBuildMapsAnswers(t *testing.T) {
	p := FixedProfile(model.Answers{"q1": "B", "q2": "A", "q3": "C", "q4": "B"})

	assert.Equal(t, model.TraitFlexible, p.WorkStyle.Trait)
	assert.Equal(t, model.TraitQuiet, p.Environment.Trait)
	assert.Equal(t, model.TraitLeadership, p.InteractionLevel.Trait)
	assert.Equal(t, model.TraitCreative, p.TaskPreference.Trait)
}

func TestBuildUnknownValuesAreNeutral(t *testing.T) {
	p := FixedProfile(model.Answers{"q1": "Z", "q3": ""})

	for _, c := range []model.Category{
		model.CategoryWorkStyle,
		model.CategoryEnvironment,
		model.CategoryInteractionLevel,
		model.CategoryTaskPreference,
	} {
		assert.Equal(t, neutralEntry, p.Entry(c), string(c))
	}
}

func TestBuildAllCategoriesPresent(t *testing.T) {
	svc := NewProfileService(&stubGenerator{}, time.Second, zap.NewNop(), nil)
	p := svc.Build(context.Background(), nil, model.Evaluation{})

	for _, c := range model.Categories {
		assert.NotEmpty(t, p.Entry(c).Description, string(c))
	}
}

func TestBuildInsights(t *testing.T) {
	answers := model.Answers{"q1": "A", "q2": "A", "q3": "A", "q4": "A", "q5": "I need a standing desk and written agendas"}

	t.Run("not useful skips call", func(t *testing.T) {
		gen := &stubGenerator{reply: `{"description": "x", "explanation": "y"}`}
		svc := NewProfileService(gen, time.Second, zap.NewNop(), nil)

		p := svc.Build(context.Background(), answers, model.Evaluation{Useful: false})

		assert.Equal(t, model.NoAdditionalInsights, p.AdditionalInsights)
		assert.Zero(t, gen.calls())
	})

	t.Run("useful calls once", func(t *testing.T) {
		gen := &stubGenerator{reply: `{"description": "Values written structure", "explanation": "Agendas help you prepare."}`}
		svc := NewProfileService(gen, time.Second, zap.NewNop(), nil)

		p := svc.Build(context.Background(), answers, model.Evaluation{Useful: true})

		assert.Equal(t, model.ProfileEntry{Description: "Values written structure", Explanation: "Agendas help you prepare."}, p.AdditionalInsights)
		require.Equal(t, 1, gen.calls())
		assert.Contains(t, gen.prompts[0], "standing desk")
		assert.Contains(t, gen.prompts[0], "work_style: Structured and predictable work schedule")
	})

	t.Run("failure uses default", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("rate limited")}
		svc := NewProfileService(gen, time.Second, zap.NewNop(), nil)

		p := svc.Build(context.Background(), answers, model.Evaluation{Useful: true})

		assert.Equal(t, model.NoAdditionalInsights, p.AdditionalInsights)
		assert.Equal(t, 1, gen.calls())
	})

	t.Run("empty description uses default", func(t *testing.T) {
		gen := &stubGenerator{reply: `{"description": "", "explanation": "y"}`}
		svc := NewProfileService(gen, time.Second, zap.NewNop(), nil)

		p := svc.Build(context.Background(), answers, model.Evaluation{Useful: true})

		assert.Equal(t, model.NoAdditionalInsights, p.AdditionalInsights)
	})
}
