package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SubmissionCache implements ports.SubmissionCache. It remembers the result
// of an accepted application under its idempotency key.
type SubmissionCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewSubmissionCache creates a Redis-backed submission replay cache.
func NewSubmissionCache(client goredis.UniversalClient) *SubmissionCache {
	return &SubmissionCache{
		client: client,
		prefix: "submission:",
	}
}

// Get retrieves a stored result. Returns nil, nil if the key does not exist.
func (c *SubmissionCache) Get(ctx context.Context, idempotencyKey string) (*domain.ApplicationResult, error) {
	val, err := c.client.Get(ctx, c.prefix+idempotencyKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis submission get: %w", err)
	}

	var res domain.ApplicationResult
	if err := json.Unmarshal(val, &res); err != nil {
		return nil, fmt.Errorf("decoding cached submission: %w", err)
	}
	return &res, nil
}

// Set stores result with TTL.
func (c *SubmissionCache) Set(ctx context.Context, idempotencyKey string, result *domain.ApplicationResult, ttl time.Duration) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+idempotencyKey, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis submission set: %w", err)
	}
	return nil
}
