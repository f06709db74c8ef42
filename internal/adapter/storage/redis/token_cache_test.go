package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache_Miss(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewTokenCache(client)

	tok, err := cache.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestTokenCache_SetAndGet(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewTokenCache(client)
	ctx := context.Background()

	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, cache.Set(ctx, "client-1", &domain.AccessToken{Value: "tok", TokenType: "Bearer", ExpiresAt: expires}, time.Minute))

	tok, err := cache.Get(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, "tok", tok.Value)
	assert.True(t, expires.Equal(tok.ExpiresAt))
}

func TestTokenCache_ExpiresWithTTL(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewTokenCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "client-1", &domain.AccessToken{Value: "tok"}, time.Second))
	s.FastForward(2 * time.Second)

	tok, err := cache.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, tok)
}

func TestTokenCache_NonPositiveTTLIsNoop(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewTokenCache(client)

	require.NoError(t, cache.Set(context.Background(), "client-1", &domain.AccessToken{Value: "tok"}, 0))
	assert.False(t, s.Exists("upstream_token:client-1"))
}

func TestTokenCache_CorruptEntryIsMiss(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewTokenCache(client)
	require.NoError(t, s.Set("upstream_token:client-1", "not-json"))

	tok, err := cache.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Nil(t, tok)
}
