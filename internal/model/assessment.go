package model

import "time"

// Recommendation is a scored job suggestion
type Recommendation struct {
	Title          string   `json:"title" bson:"title" dynamodbav:"title"`
	Description    string   `json:"description" bson:"description" dynamodbav:"description"`
	MatchScore     int      `json:"match_score" bson:"match_score" dynamodbav:"match_score"` // 0-100
	KeyTraits      []string `json:"key_traits" bson:"key_traits" dynamodbav:"key_traits"`
	Environment    string   `json:"environment,omitempty" bson:"environment,omitempty" dynamodbav:"environment,omitempty"`
	Considerations []string `json:"considerations,omitempty" bson:"considerations,omitempty" dynamodbav:"considerations,omitempty"`
	URL            string   `json:"url,omitempty" bson:"url,omitempty" dynamodbav:"url,omitempty"`
}

// Assessment is one submitted questionnaire with its derived results.
// Written once on submission and never mutated.
type Assessment struct {
	ID              string           `json:"id" bson:"_id" dynamodbav:"id"`
	Answers         Answers          `json:"answers" bson:"answers" dynamodbav:"answers"`
	Profile         Profile          `json:"profile" bson:"profile" dynamodbav:"profile"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations" dynamodbav:"recommendations"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at" dynamodbav:"created_at"`
}

// AssessmentSummary is the admin listing view of an assessment
type AssessmentSummary struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	TopRecommendation string    `json:"top_recommendation,omitempty"`
	TopScore          int       `json:"top_score,omitempty"`
}

// Summary builds the listing view
func (a *Assessment) Summary() AssessmentSummary {
	s := AssessmentSummary{ID: a.ID, CreatedAt: a.CreatedAt}
	if len(a.Recommendations) > 0 {
		s.TopRecommendation = a.Recommendations[0].Title
		s.TopScore = a.Recommendations[0].MatchScore
	}
	return s
}

// Results is the GET /results/{id} payload
type Results struct {
	AssessmentID    string           `json:"assessment_id"`
	CreatedAt       time.Time        `json:"created_at"`
	Profile         Profile          `json:"profile"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Results builds the public results view
func (a *Assessment) Results() *Results {
	return &Results{
		AssessmentID:    a.ID,
		CreatedAt:       a.CreatedAt,
		Profile:         a.Profile.Public(),
		Recommendations: a.Recommendations,
	}
}
