package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"jobquest/internal/catalog"
	"jobquest/internal/model"
	"jobquest/internal/questions"
	"jobquest/internal/repository"
)

// stubGenerator records prompts and replies with a fixed answer
type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
	block   bool
}

func (g *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.reply, g.err
}

func (g *stubGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// failingRepo simulates an unreachable store
type failingRepo struct {
	err error
}

func (r failingRepo) Create(context.Context, *model.Assessment) (string, error) { return "", r.err }
func (r failingRepo) GetByID(context.Context, string) (*model.Assessment, error) {
	return nil, r.err
}
func (r failingRepo) List(context.Context, int) ([]*model.Assessment, error) { return nil, r.err }

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
	last   interface{}
}

func (b *recordingBroadcaster) BroadcastToAdmins(msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
	b.last = payload
}

func newTestSubmission(gen *stubGenerator, repo repository.AssessmentRepo) *SubmissionService {
	log := zap.NewNop()
	return NewSubmissionService(
		questions.NewBank(),
		NewEvaluatorService(gen, time.Second, log, nil),
		NewProfileService(gen, time.Second, log, nil),
		NewMatcherService(catalog.Default(), 5),
		repo,
		log,
		nil,
	)
}
