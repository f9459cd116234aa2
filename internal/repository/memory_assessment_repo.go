package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"jobquest/internal/model"
)

// ErrStoreFull is returned by the memory store once it holds capacity records
var ErrStoreFull = errors.New("memory store is full")

// memoryAssessmentRepo keeps serialized records in a bounded LRU.
// Create refuses writes at capacity, so the LRU never evicts a stored record.
// Reads use Peek so the recency order stays the insertion order.
type memoryAssessmentRepo struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, []byte]
	capacity int
}

// NewMemoryAssessmentRepo creates an in-process repository holding at most capacity records
func NewMemoryAssessmentRepo(capacity int) (AssessmentRepo, error) {
	cache, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, fmt.Errorf("create memory store: %w", err)
	}
	return &memoryAssessmentRepo{cache: cache, capacity: capacity}, nil
}

func (r *memoryAssessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache.Len() >= r.capacity {
		return "", fmt.Errorf("create assessment: %w (capacity %d)", ErrStoreFull, r.capacity)
	}

	stamp(a)
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal assessment: %w", err)
	}
	r.cache.Add(a.ID, data)
	return a.ID, nil
}

func (r *memoryAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := r.cache.Peek(id)
	if !ok {
		return nil, ErrNotFound
	}
	return decodeAssessment(data)
}

func (r *memoryAssessmentRepo) List(ctx context.Context, limit int) ([]*model.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = ClampLimit(limit)
	keys := r.cache.Keys() // oldest first
	out := make([]*model.Assessment, 0, min(limit, len(keys)))
	for i := len(keys) - 1; i >= 0 && len(out) < limit; i-- {
		data, ok := r.cache.Peek(keys[i])
		if !ok {
			continue
		}
		a, err := decodeAssessment(data)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeAssessment(data []byte) (*model.Assessment, error) {
	var a model.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	return &a, nil
}
