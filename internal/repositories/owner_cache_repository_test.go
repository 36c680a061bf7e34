package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoterelay/internal/models"
)

func TestMemoryOwnerCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryOwnerCache(time.Minute)
	cache.now = func() time.Time { return now }

	_, ok := cache.Get(ctx, "77")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "77", &models.SalesRep{OwnerID: "77", GivenName: "Sam", Email: "sam@tresco.example"}))

	rep, ok := cache.Get(ctx, "77")
	require.True(t, ok)
	assert.Equal(t, "Sam", rep.GivenName)

	// callers get a copy
	rep.GivenName = "changed"
	again, _ := cache.Get(ctx, "77")
	assert.Equal(t, "Sam", again.GivenName)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(ctx, "77")
	assert.False(t, ok)
}

func TestMemoryOwnerCache_NilRep(t *testing.T) {
	cache := NewMemoryOwnerCache(time.Minute)
	require.NoError(t, cache.Set(context.Background(), "1", nil))
	_, ok := cache.Get(context.Background(), "1")
	assert.False(t, ok)
}

func TestRedisOwnerCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// nothing listens on port 1; Get must miss instead of failing the lookup
	cache := NewRedisOwnerCache("127.0.0.1:1", "", 0, time.Minute)
	defer cache.Close()

	_, ok := cache.Get(ctx, "77")
	assert.False(t, ok)
	assert.Error(t, cache.Set(ctx, "77", &models.SalesRep{OwnerID: "77"}))
}
