package client

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"jobquest/internal/model"
)

type wireResults struct {
	AssessmentID    string                     `json:"assessment_id"`
	CreatedAt       time.Time                  `json:"created_at"`
	Profile         map[string]json.RawMessage `json:"profile"`
	Recommendations []wireRecommendation       `json:"recommendations"`
}

// wireRecommendation accepts both the current and the legacy recommendation shape
type wireRecommendation struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MatchScore     *int     `json:"match_score"`
	FitScore       *float64 `json:"fit_score"` // legacy, 0..1
	KeyTraits      []string `json:"key_traits"`
	StrengthsMatch []string `json:"strengths_match"` // legacy alias of key_traits
	Environment    string   `json:"environment"`
	Considerations []string `json:"considerations"`
	URL            string   `json:"url"`
}

// decodeResults maps a results body onto the canonical shape
func decodeResults(data []byte) (*model.Results, error) {
	var w wireResults
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}

	out := &model.Results{
		AssessmentID:    w.AssessmentID,
		CreatedAt:       w.CreatedAt,
		Recommendations: make([]model.Recommendation, 0, len(w.Recommendations)),
	}

	for _, c := range model.Categories {
		entry, err := profileEntry(w.Profile, c)
		if err != nil {
			return nil, err
		}
		out.Profile.SetEntry(c, entry)
	}
	if out.Profile.AdditionalInsights.Description == "" {
		out.Profile.AdditionalInsights = model.NoAdditionalInsights
	}

	for _, r := range w.Recommendations {
		out.Recommendations = append(out.Recommendations, r.normalize())
	}
	return out, nil
}

func (r wireRecommendation) normalize() model.Recommendation {
	rec := model.Recommendation{
		Title:          r.Title,
		Description:    r.Description,
		KeyTraits:      r.KeyTraits,
		Environment:    r.Environment,
		Considerations: r.Considerations,
		URL:            r.URL,
	}

	switch {
	case r.MatchScore != nil:
		rec.MatchScore = *r.MatchScore
	case r.FitScore != nil:
		rec.MatchScore = int(math.Round(*r.FitScore * 100))
	}
	rec.MatchScore = max(0, min(100, rec.MatchScore))

	if len(rec.KeyTraits) == 0 {
		rec.KeyTraits = r.StrengthsMatch
	}
	if rec.KeyTraits == nil {
		rec.KeyTraits = []string{}
	}
	return rec
}

// profileEntry reads a category given as an object, a bare string,
// or flattened <category>_description / <category>_explanation keys
func profileEntry(profile map[string]json.RawMessage, c model.Category) (model.ProfileEntry, error) {
	key := string(c)
	if raw, ok := profile[key]; ok && string(raw) != "null" {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return model.ProfileEntry{Description: s}, nil
		}
		var e model.ProfileEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return model.ProfileEntry{}, fmt.Errorf("profile %s: %w", key, err)
		}
		return e, nil
	}

	var e model.ProfileEntry
	if raw, ok := profile[key+"_description"]; ok {
		_ = json.Unmarshal(raw, &e.Description)
	}
	if raw, ok := profile[key+"_explanation"]; ok {
		_ = json.Unmarshal(raw, &e.Explanation)
	}
	return e, nil
}
