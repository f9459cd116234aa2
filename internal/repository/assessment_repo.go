package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobquest/internal/model"
)

// ErrNotFound is returned when no assessment exists for an id
var ErrNotFound = errors.New("assessment not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// AssessmentRepo persists write-once assessment records
type AssessmentRepo interface {
	// Create assigns ID and CreatedAt, writes the record and returns the id
	Create(ctx context.Context, a *model.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	// List returns up to limit assessments, newest first
	List(ctx context.Context, limit int) ([]*model.Assessment, error)
}

// Migrator is implemented by backends that need tables or indexes created
type Migrator interface {
	Migrate(ctx context.Context) error
}

// stamp generates the id and timestamp before anything is written.
// Timestamps are truncated to milliseconds so every backend round-trips them.
func stamp(a *model.Assessment) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
}

// ClampLimit bounds an admin listing size
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
