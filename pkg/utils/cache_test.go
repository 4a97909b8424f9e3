package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache(0)
	defer cache.Close()

	clock := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	require.NoError(t, cache.Set(ctx, "genres", []string{"Action"}, time.Minute))

	value, err := cache.Get(ctx, "genres")
	require.NoError(t, err)
	assert.Equal(t, []string{"Action"}, value)

	clock = clock.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "genres")
	assert.ErrorIs(t, err, ErrExpired)

	_, err = cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestInMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache(0)
	defer cache.Close()

	require.NoError(t, cache.Set(ctx, "a", 1, time.Hour))
	require.NoError(t, cache.Set(ctx, "b", 2, time.Hour))

	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
