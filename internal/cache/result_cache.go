package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"jobquest/internal/model"
)

// ResultCache is a read-through cache for stored assessments.
// Assessments are write-once so entries never need invalidation.
type ResultCache interface {
	Get(ctx context.Context, id string) (*model.Assessment, error)
	Set(ctx context.Context, a *model.Assessment) error
}

type resultCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewResultCache creates a Redis result cache with the given entry TTL
func NewResultCache(client redis.Cmdable, ttl time.Duration) ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func resultKey(id string) string {
	return "assessment:" + id
}

// Get returns nil, nil on a miss
func (c *resultCache) Get(ctx context.Context, id string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *resultCache) Set(ctx context.Context, a *model.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultKey(a.ID), data, c.ttl).Err()
}
