package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"jobquest/internal/cache"
	"jobquest/internal/metrics"
	"jobquest/internal/model"
	"jobquest/internal/repository"
)

// ResultsService serves stored assessments, reading through the result cache when one is configured
type ResultsService struct {
	repo    repository.AssessmentRepo
	cache   cache.ResultCache
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewResultsService creates a results service. resultCache may be nil.
func NewResultsService(repo repository.AssessmentRepo, resultCache cache.ResultCache, logger *zap.Logger, m *metrics.Metrics) *ResultsService {
	return &ResultsService{
		repo:    repo,
		cache:   resultCache,
		logger:  logger,
		metrics: m,
	}
}

// Get returns the assessment for id. Unknown ids yield repository.ErrNotFound.
func (s *ResultsService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("result cache read failed", zap.String("assessment_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.metrics.StoreError("get")
		s.logger.Error("failed to load assessment", zap.String("assessment_id", id), zap.Error(err))
		return nil, &StoreUnavailableError{Op: "get", Err: err}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, a); err != nil {
			s.logger.Warn("result cache write failed", zap.String("assessment_id", id), zap.Error(err))
		}
	}
	return a, nil
}

// List returns admin summaries, newest first
func (s *ResultsService) List(ctx context.Context, limit int) ([]model.AssessmentSummary, error) {
	list, err := s.repo.List(ctx, repository.ClampLimit(limit))
	if err != nil {
		s.metrics.StoreError("list")
		s.logger.Error("failed to list assessments", zap.Error(err))
		return nil, &StoreUnavailableError{Op: "list", Err: err}
	}

	out := make([]model.AssessmentSummary, 0, len(list))
	for _, a := range list {
		out = append(out, a.Summary())
	}
	return out, nil
}
