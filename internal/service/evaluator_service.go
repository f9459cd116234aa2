package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"jobquest/internal/llm"
	"jobquest/internal/logger"
	"jobquest/internal/metrics"
	"jobquest/internal/model"
)

const (
	opEvaluate = "evaluate"
	opInsight  = "insight"

	// minUsefulLength is the shortest free text the heuristic accepts
	minUsefulLength = 10
)

// fillerWords never carry profile information on their own
var fillerWords = map[string]bool{
	"no": true, "none": true, "n/a": true, "na": true, "nothing": true, "nope": true,
	"idk": true, "nah": true, "not": true, "really": true, "thanks": true, "else": true,
	"ok": true, "okay": true, "yes": true, "fine": true, "all": true, "good": true,
	"i": true, "dont": true, "don't": true, "know": true, "-": true,
}

// EvaluatorService decides whether a free-text answer is worth an insight call
type EvaluatorService struct {
	gen     llm.Generator
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewEvaluatorService creates a new evaluator service
func NewEvaluatorService(gen llm.Generator, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *EvaluatorService {
	if gen == nil {
		gen = llm.Disabled()
	}
	return &EvaluatorService{
		gen:     gen,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

type evaluationReply struct {
	IsUseful  bool   `json:"is_useful"`
	Reasoning string `json:"reasoning"`
}

// Evaluate classifies freeText. It never fails: any provider problem yields the heuristic verdict.
func (s *EvaluatorService) Evaluate(ctx context.Context, freeText string) model.Evaluation {
	text := strings.TrimSpace(freeText)
	if text == "" {
		return model.Evaluation{Useful: false, Reasoning: "Response is empty"}
	}

	var reply evaluationReply
	err := generateJSON(ctx, s.gen, s.timeout, s.buildEvaluationPrompt(text), llm.EvaluationSchema, &reply)
	s.metrics.LLMCall(opEvaluate, outcome(err))
	if err != nil {
		s.logger.Warn("evaluator fell back to heuristic",
			zap.Error(err),
			zap.String("text", logger.TruncateForLog(text, 120)),
		)
		s.metrics.Fallback(opEvaluate)
		return heuristicEvaluation(text)
	}

	return model.Evaluation{Useful: reply.IsUseful, Reasoning: strings.TrimSpace(reply.Reasoning)}
}

func (s *EvaluatorService) buildEvaluationPrompt(text string) string {
	return fmt.Sprintf(`You are an expert at analyzing text to determine if it contains meaningful information about a person's work preferences, strengths, or job-related needs.

Does the following text contain information relevant to someone's work preferences or needs that could inform job recommendations?

"%s"

Return ONLY valid JSON:
{"is_useful": true or false, "reasoning": "brief explanation"}`, text)
}

// heuristicEvaluation accepts text that is long enough and not made only of filler
func heuristicEvaluation(text string) model.Evaluation {
	ev := model.Evaluation{Fallback: true}
	if utf8.RuneCountInString(text) < minUsefulLength {
		ev.Reasoning = "Response is too short to provide meaningful information"
		return ev
	}
	if fillerOnly(text) {
		ev.Reasoning = "Response contains no specific preferences"
		return ev
	}
	ev.Useful = true
	ev.Reasoning = "Response has enough detail to be considered"
	return ev
}

func fillerOnly(text string) bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.' || r == '!' || r == '?' || r == ';'
	})
	for _, w := range words {
		if !fillerWords[w] {
			return false
		}
	}
	return true
}

// generateJSON makes one bounded call and decodes the reply. No retries.
func generateJSON(ctx context.Context, gen llm.Generator, timeout time.Duration, prompt, schema string, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	raw, err := gen.GenerateContent(ctx, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	if err := llm.DecodeJSON(raw, schema, out); err != nil {
		return &invalidReplyError{err: err}
	}
	return nil
}

type invalidReplyError struct {
	err error
}

func (e *invalidReplyError) Error() string { return "invalid model reply: " + e.err.Error() }
func (e *invalidReplyError) Unwrap() error { return e.err }

func outcome(err error) string {
	var invalid *invalidReplyError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, llm.ErrDisabled):
		return metrics.OutcomeDisabled
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	case errors.As(err, &invalid):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
