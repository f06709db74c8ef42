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

// TokenCache implements ports.TokenCache. Entries expire with the token.
type TokenCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewTokenCache creates a Redis-backed access token cache.
func NewTokenCache(client goredis.UniversalClient) *TokenCache {
	return &TokenCache{
		client: client,
		prefix: "upstream_token:",
	}
}

// Get returns the cached token for clientID, or nil, nil if none is stored.
func (c *TokenCache) Get(ctx context.Context, clientID string) (*domain.AccessToken, error) {
	val, err := c.client.Get(ctx, c.prefix+clientID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis token get: %w", err)
	}

	var tok domain.AccessToken
	if err := json.Unmarshal(val, &tok); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}
	return &tok, nil
}

// Set stores token for ttl. A non-positive ttl is a no-op.
func (c *TokenCache) Set(ctx context.Context, clientID string, token *domain.AccessToken, ttl time.Duration) error {
	if token == nil || ttl <= 0 {
		return nil
	}
	val, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+clientID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis token set: %w", err)
	}
	return nil
}
