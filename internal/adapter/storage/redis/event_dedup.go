package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventDeduplicator implements ports.EventDeduplicator using Redis SET NX.
type EventDeduplicator struct {
	client goredis.UniversalClient
	prefix string
}

// NewEventDeduplicator creates a Redis-backed event id claim store.
func NewEventDeduplicator(client goredis.UniversalClient) *EventDeduplicator {
	return &EventDeduplicator{
		client: client,
		prefix: "event:",
	}
}

// Claim atomically marks eventID as seen.
// Returns true if this call claimed it, false if it was claimed before.
func (d *EventDeduplicator) Claim(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	result, err := d.client.SetArgs(ctx, d.prefix+eventID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis event claim: %w", err)
	}
	return result == "OK", nil
}
