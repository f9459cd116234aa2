// Package ui holds the questionnaire navigation state and its reducer.
// Reduce is pure: it never performs I/O, callers dispatch the results of
// client calls back in as actions.
package ui

import (
	"strings"

	"jobquest/internal/model"
)

// Page is the currently displayed screen
type Page int

const (
	PageWelcome Page = iota
	PageQuestion
	PageSubmitting
	PageResults
	PageError
)

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "welcome"
	case PageQuestion:
		return "question"
	case PageSubmitting:
		return "submitting"
	case PageResults:
		return "results"
	case PageError:
		return "error"
	}
	return "unknown"
}

// State is the whole client-side session
type State struct {
	Page         Page
	Questions    []model.Question
	Current      int // index into Questions while on PageQuestion
	Answers      model.Answers
	AssessmentID string
	Results      *model.Results
	Err          string
}

// CurrentQuestion returns the question being asked, if any
func (s State) CurrentQuestion() (model.Question, bool) {
	if s.Page != PageQuestion || s.Current < 0 || s.Current >= len(s.Questions) {
		return model.Question{}, false
	}
	return s.Questions[s.Current], true
}

// Action is an event dispatched to Reduce
type Action interface{ action() }

// QuestionsLoaded starts the questionnaire
type QuestionsLoaded struct{ Questions []model.Question }

// Answered records an answer to the current question and advances
type Answered struct{ Value string }

// Back returns to the previous question
type Back struct{}

// Submitted records the assessment id returned by the API
type Submitted struct{ AssessmentID string }

// ResultsLoaded shows the results page
type ResultsLoaded struct{ Results *model.Results }

// Failed shows an error
type Failed struct{ Err error }

// Restart clears the session
type Restart struct{}

func (QuestionsLoaded) action() {}
func (Answered) action()        {}
func (Back) action()            {}
func (Submitted) action()       {}
func (ResultsLoaded) action()   {}
func (Failed) action()          {}
func (Restart) action()         {}

// Reduce returns the state that follows s after a. Actions that do not
// apply to the current page leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case QuestionsLoaded:
		if len(a.Questions) == 0 {
			return failed(s, "questionnaire is empty")
		}
		return State{
			Page:      PageQuestion,
			Questions: append([]model.Question(nil), a.Questions...),
			Answers:   model.Answers{},
		}

	case Answered:
		q, ok := s.CurrentQuestion()
		if !ok {
			return s
		}
		s.Answers = s.Answers.Clone()
		if v := strings.TrimSpace(a.Value); v != "" {
			s.Answers[q.Key()] = v
		} else {
			delete(s.Answers, q.Key())
		}
		if s.Current+1 < len(s.Questions) {
			s.Current++
			return s
		}
		s.Page = PageSubmitting
		return s

	case Back:
		if s.Page == PageQuestion && s.Current > 0 {
			s.Current--
		}
		return s

	case Submitted:
		if s.Page != PageSubmitting {
			return s
		}
		s.AssessmentID = a.AssessmentID
		return s

	case ResultsLoaded:
		if s.Page != PageSubmitting || a.Results == nil {
			return s
		}
		s.Page = PageResults
		s.Results = a.Results
		s.Err = ""
		return s

	case Failed:
		msg := "unknown error"
		if a.Err != nil {
			msg = a.Err.Error()
		}
		return failed(s, msg)

	case Restart:
		return State{}
	}
	return s
}

func failed(s State, msg string) State {
	s.Page = PageError
	s.Err = msg
	return s
}
