package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobquest/internal/llm"
	"jobquest/internal/logger"
	"jobquest/internal/metrics"
	"jobquest/internal/model"
	"jobquest/internal/questions"
)

// neutralEntry is used for a missing or unrecognised fixed-choice answer
var neutralEntry = model.ProfileEntry{
	Description: "Flexible / no strong preference",
	Explanation: "No clear preference was indicated for this area.",
	Trait:       model.TraitNeutral,
}

// categoryQuestions maps each fixed-choice question to the category it drives
var categoryQuestions = []struct {
	questionID int
	category   model.Category
}{
	{1, model.CategoryWorkStyle},
	{2, model.CategoryEnvironment},
	{3, model.CategoryInteractionLevel},
	{4, model.CategoryTaskPreference},
}

// profileTable maps category -> answer value -> entry
var profileTable = map[model.Category]map[string]model.ProfileEntry{
	model.CategoryWorkStyle: {
		"A": {
			Description: "Structured and predictable work schedule",
			Explanation: "You thrive with a structured schedule and clear routines.",
			Trait:       model.TraitStructured,
		},
		"B": {
			Description: "Flexible schedule with autonomy over work hours",
			Explanation: "You prefer flexibility in when and how you get your work done.",
			Trait:       model.TraitFlexible,
		},
	},
	model.CategoryEnvironment: {
		"A": {
			Description: "Quiet, private workspace with minimal distractions",
			Explanation: "You do your best work in quiet and private spaces.",
			Trait:       model.TraitQuiet,
		},
		"B": {
			Description: "Collaborative, open workspace",
			Explanation: "You are comfortable in open spaces where collaboration happens naturally.",
			Trait:       model.TraitCollaborative,
		},
	},
	model.CategoryInteractionLevel: {
		"A": {
			Description: "Minimal social interaction with clear communication channels",
			Explanation: "You work best independently with focused time and limited interruptions.",
			Trait:       model.TraitIndependent,
		},
		"B": {
			Description: "Regular teamwork and collaboration",
			Explanation: "You are comfortable working with colleagues as part of a team.",
			Trait:       model.TraitTeamwork,
		},
		"C": {
			Description: "Leading or coordinating team efforts",
			Explanation: "You enjoy guiding others and coordinating group work.",
			Trait:       model.TraitLeadership,
		},
	},
	model.CategoryTaskPreference: {
		"A": {
			Description: "Detailed, systematic tasks with clear specifications",
			Explanation: "Your preference for detailed work suggests you excel where precision and thoroughness matter.",
			Trait:       model.TraitDetailed,
		},
		"B": {
			Description: "Creative and innovative projects",
			Explanation: "You enjoy tasks that let you explore new ideas and approaches.",
			Trait:       model.TraitCreative,
		},
		"C": {
			Description: "A mix of analytical and creative work",
			Explanation: "You enjoy work that engages both analytical and creative thinking.",
			Trait:       model.TraitBalanced,
		},
	},
}

// ProfileService derives a work-preference profile from answers
type ProfileService struct {
	gen     llm.Generator
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewProfileService creates a new profile service
func NewProfileService(gen llm.Generator, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *ProfileService {
	if gen == nil {
		gen = llm.Disabled()
	}
	return &ProfileService{
		gen:     gen,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

// Build maps the fixed-choice answers through the static table and adds
// LLM insights only when the free-text evaluation found it useful
func (s *ProfileService) Build(ctx context.Context, answers model.Answers, evaluation model.Evaluation) model.Profile {
	profile := FixedProfile(answers)
	profile.AdditionalInsights = model.NoAdditionalInsights

	if !evaluation.Useful {
		return profile
	}

	text := answers.Get(questions.FreeTextID)
	insight, err := s.generateInsight(ctx, text, profile)
	s.metrics.LLMCall(opInsight, outcome(err))
	if err != nil {
		s.logger.Warn("insight generation failed, using default",
			zap.Error(err),
			zap.String("text", logger.TruncateForLog(text, 120)),
		)
		s.metrics.Fallback(opInsight)
		return profile
	}

	profile.AdditionalInsights = insight
	return profile
}

// FixedProfile is the deterministic part of the profile. AdditionalInsights is left zero.
func FixedProfile(answers model.Answers) model.Profile {
	var p model.Profile
	for _, cq := range categoryQuestions {
		entry, ok := profileTable[cq.category][strings.ToUpper(answers.Get(cq.questionID))]
		if !ok {
			entry = neutralEntry
		}
		p.SetEntry(cq.category, entry)
	}
	return p
}

type insightReply struct {
	Description string `json:"description"`
	Explanation string `json:"explanation"`
}

func (s *ProfileService) generateInsight(ctx context.Context, text string, partial model.Profile) (model.ProfileEntry, error) {
	var reply insightReply
	if err := generateJSON(ctx, s.gen, s.timeout, buildInsightPrompt(text, partial), llm.InsightSchema, &reply); err != nil {
		return model.ProfileEntry{}, err
	}
	return model.ProfileEntry{
		Description: strings.TrimSpace(reply.Description),
		Explanation: strings.TrimSpace(reply.Explanation),
	}, nil
}

func buildInsightPrompt(text string, partial model.Profile) string {
	var sb strings.Builder
	for _, cq := range categoryQuestions {
		fmt.Fprintf(&sb, "- %s: %s\n", cq.category, partial.Entry(cq.category).Description)
	}

	return fmt.Sprintf(`A job seeker answered a work-preferences questionnaire. Their profile so far:
%s
Based on the user's additional information: "%s"

Provide a brief, personalized insight about their work preferences.
Return ONLY valid JSON:
{"description": "concise summary, max 10 words", "explanation": "how this information informs their work preferences, 1-2 sentences"}`, sb.String(), text)
}
