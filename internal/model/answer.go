package model

import (
	"strconv"
	"strings"
)

// Answers maps "q{id}" to the submitted value. Free-text entries may be empty.
type Answers map[string]string

// AnswerKey builds the answer-set key for a question id
func AnswerKey(id int) string {
	return "q" + strconv.Itoa(id)
}

// Get returns the trimmed answer for a question id
func (a Answers) Get(id int) string {
	return strings.TrimSpace(a[AnswerKey(id)])
}

// Clone returns a copy safe to hand to another owner
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
