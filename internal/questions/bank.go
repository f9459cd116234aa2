package questions

import (
	"sort"

	"jobquest/internal/model"
)

// FreeTextID is the question whose answer goes through the evaluator
const FreeTextID = 5

var defaultQuestions = []model.Question{
	{
		ID:   1,
		Text: "How do you prefer to structure your workday?",
		Type: model.QuestionTypeSingleChoice,
		Options: []model.Option{
			{Value: "A", Label: "I thrive with a structured schedule"},
			{Value: "B", Label: "I prefer flexibility in my work hours"},
		},
	},
	{
		ID:   2,
		Text: "What type of workspace do you find most comfortable?",
		Type: model.QuestionTypeSingleChoice,
		Options: []model.Option{
			{Value: "A", Label: "Quiet and private spaces"},
			{Value: "B", Label: "Collaborative and open spaces"},
		},
	},
	{
		ID:   3,
		Text: "How comfortable are you with frequent interactions with colleagues?",
		Type: model.QuestionTypeSingleChoice,
		Options: []model.Option{
			{Value: "A", Label: "Prefer minimal interactions"},
			{Value: "B", Label: "Comfortable with regular teamwork"},
			{Value: "C", Label: "Enjoy leading or coordinating teams"},
		},
	},
	{
		ID:   4,
		Text: "Do you prefer tasks that are:",
		Type: model.QuestionTypeSingleChoice,
		Options: []model.Option{
			{Value: "A", Label: "Highly detailed and focused"},
			{Value: "B", Label: "Creative and innovative"},
			{Value: "C", Label: "A balance of both"},
		},
	},
	{
		ID:       FreeTextID,
		Text:     "Is there anything else we should know about you? (Optional)",
		Type:     model.QuestionTypeFreeResponse,
		Optional: true,
	},
}

// Bank is the static, ordered question list
type Bank struct {
	questions []model.Question
}

// NewBank returns the default questionnaire
func NewBank() *Bank {
	return NewBankFrom(defaultQuestions)
}

// NewBankFrom builds a bank from qs, ordered by id
func NewBankFrom(qs []model.Question) *Bank {
	out := make([]model.Question, len(qs))
	copy(out, qs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &Bank{questions: out}
}

// List returns the questions in render order. Callers get their own copy.
func (b *Bank) List() []model.Question {
	out := make([]model.Question, len(b.questions))
	for i, q := range b.questions {
		if q.Options != nil {
			q.Options = append([]model.Option(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}
