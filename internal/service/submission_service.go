package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"jobquest/internal/metrics"
	"jobquest/internal/model"
	"jobquest/internal/questions"
	"jobquest/internal/repository"
)

// maxFreeTextLength caps free-response answers
const maxFreeTextLength = 2000

// SubmissionService runs the submit pipeline:
// validate -> evaluate -> build profile -> match -> persist -> notify
type SubmissionService struct {
	bank        *questions.Bank
	evaluator   *EvaluatorService
	profiles    *ProfileService
	matcher     *MatcherService
	repo        repository.AssessmentRepo
	broadcaster Broadcaster
	validate    *validator.Validate
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	bank *questions.Bank,
	evaluator *EvaluatorService,
	profiles *ProfileService,
	matcher *MatcherService,
	repo repository.AssessmentRepo,
	logger *zap.Logger,
	m *metrics.Metrics,
) *SubmissionService {
	return &SubmissionService{
		bank:      bank,
		evaluator: evaluator,
		profiles:  profiles,
		matcher:   matcher,
		repo:      repo,
		validate:  validator.New(),
		logger:    logger,
		metrics:   m,
	}
}

// SetBroadcaster sets the broadcaster for admin WebSocket events
func (s *SubmissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// normalize trims every value and upper-cases choice values
func (s *SubmissionService) normalize(answers model.Answers) model.Answers {
	out := make(model.Answers, len(answers))
	for k, v := range answers {
		out[k] = strings.TrimSpace(v)
	}
	for _, q := range s.bank.List() {
		if v, ok := out[q.Key()]; ok && q.Type == model.QuestionTypeSingleChoice {
			out[q.Key()] = strings.ToUpper(v)
		}
	}
	return out
}

// Validate checks every answer against the question bank
func (s *SubmissionService) Validate(answers model.Answers) error {
	var fields []FieldError
	known := make(map[string]bool)

	for _, q := range s.bank.List() {
		key := q.Key()
		known[key] = true
		value := strings.TrimSpace(answers[key])

		if err := s.validate.Var(value, answerTag(q)); err != nil {
			fields = append(fields, FieldError{Field: key, Message: answerMessage(err)})
		}
	}

	var unknown []string
	for key := range answers {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		fields = append(fields, FieldError{Field: key, Message: "unknown question"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func answerTag(q model.Question) string {
	if q.Type == model.QuestionTypeFreeResponse {
		tag := fmt.Sprintf("max=%d", maxFreeTextLength)
		if !q.Optional {
			tag = "required," + tag
		}
		return tag
	}

	values := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		values = append(values, o.Value)
	}
	tag := "oneof=" + strings.Join(values, " ")
	if q.Optional {
		return "omitempty," + tag
	}
	return "required," + tag
}

func answerMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	switch verrs[0].Tag() {
	case "required":
		return "answer is required"
	case "oneof":
		return "must be one of " + verrs[0].Param()
	case "max":
		return fmt.Sprintf("must be at most %d characters", maxFreeTextLength)
	}
	return fmt.Sprintf("failed %s check", verrs[0].Tag())
}

// Submit validates answers, derives the profile and recommendations, and stores the assessment
func (s *SubmissionService) Submit(ctx context.Context, answers model.Answers) (string, error) {
	normalized := s.normalize(answers)
	if err := s.Validate(normalized); err != nil {
		return "", err
	}

	evaluation := s.evaluator.Evaluate(ctx, normalized.Get(questions.FreeTextID))
	profile := s.profiles.Build(ctx, normalized, evaluation)
	recs := s.matcher.Match(profile)

	assessment := &model.Assessment{
		Answers:         normalized,
		Profile:         profile,
		Recommendations: recs,
	}

	id, err := s.repo.Create(ctx, assessment)
	if err != nil {
		s.metrics.StoreError("create")
		s.logger.Error("failed to store assessment", zap.Error(err))
		return "", &StoreUnavailableError{Op: "create", Err: err}
	}
	s.metrics.AssessmentCreated()

	s.logger.Info("assessment submitted",
		zap.String("assessment_id", id),
		zap.Bool("free_text_useful", evaluation.Useful),
		zap.Bool("evaluation_fallback", evaluation.Fallback),
	)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(EventAssessmentSubmitted, assessment.Summary())
	}

	return id, nil
}
