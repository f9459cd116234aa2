package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice" // Pick one option, always required
	QuestionTypeFreeResponse QuestionType = "free_response" // Free text, optional by default
)

// Option is a selectable answer for a single-choice question
type Option struct {
	Value string `json:"value"` // e.g., "A"
	Label string `json:"label"`
}

// Question is an immutable questionnaire entry. ID defines render order.
type Question struct {
	ID       int          `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options,omitempty"` // single_choice only
	Optional bool         `json:"optional"`
}

// Key returns the answer-set key for this question, e.g. "q1"
func (q Question) Key() string {
	return AnswerKey(q.ID)
}
