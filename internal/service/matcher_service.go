package service

import (
	"fmt"
	"sort"
	"strings"

	"jobquest/internal/catalog"
	"jobquest/internal/model"
)

// categoryWeights sum to 100
var categoryWeights = []struct {
	category model.Category
	weight   int
	label    string
}{
	{model.CategoryWorkStyle, 25, "work style"},
	{model.CategoryEnvironment, 25, "environment"},
	{model.CategoryInteractionLevel, 30, "interaction level"},
	{model.CategoryTaskPreference, 20, "task preference"},
}

// MatcherService ranks catalog jobs against a profile. Pure, no external calls.
type MatcherService struct {
	jobs []catalog.Job
	topN int
}

// NewMatcherService creates a matcher returning at most topN jobs, clamped to 1..len(jobs)
func NewMatcherService(jobs []catalog.Job, topN int) *MatcherService {
	if topN < 1 {
		topN = 1
	}
	if topN > len(jobs) {
		topN = len(jobs)
	}
	return &MatcherService{jobs: jobs, topN: topN}
}

// Match scores every job and returns the top N by descending score, ties in catalog order
func (s *MatcherService) Match(profile model.Profile) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(s.jobs))
	for _, job := range s.jobs {
		recs = append(recs, score(job, profile))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > s.topN {
		recs = recs[:s.topN]
	}
	return recs
}

func score(job catalog.Job, profile model.Profile) model.Recommendation {
	total := 0
	traits := []string{}
	var unmatched []string

	for _, cw := range categoryWeights {
		trait := profile.Entry(cw.category).Trait
		if trait != "" && job.Suits(cw.category, trait) {
			total += cw.weight
			traits = append(traits, string(trait))
			continue
		}
		unmatched = append(unmatched, cw.label)
	}

	var considerations []string
	considerations = append(considerations, job.Considerations...)
	for _, label := range unmatched {
		considerations = append(considerations, fmt.Sprintf("May not match your %s preference", label))
	}

	return model.Recommendation{
		Title:          job.Title,
		Description:    describe(job.Description, traits),
		MatchScore:     clampScore(total),
		KeyTraits:      traits,
		Environment:    job.Environment,
		Considerations: considerations,
		URL:            job.URL,
	}
}

func describe(base string, traits []string) string {
	if len(traits) == 0 {
		return base + " Limited overlap with your stated preferences."
	}
	return base + " Matches your " + strings.Join(traits, ", ") + " preferences."
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
