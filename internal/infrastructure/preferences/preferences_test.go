package preferences_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/marquee/internal/infrastructure/preferences"
	"github.com/narwhalmedia/marquee/pkg/config"
	"github.com/narwhalmedia/marquee/pkg/errors"
)

// exerciseStore checks the contract every store must honour.
func exerciseStore(t *testing.T, store preferences.Store) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "movieExplorerTheme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "movieExplorerTheme", "light"))
	value, found, err := store.Get(ctx, "movieExplorerTheme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)

	require.NoError(t, store.Set(ctx, "movieExplorerTheme", "dark"))
	value, _, err = store.Get(ctx, "movieExplorerTheme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, preferences.NewMemory())
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := preferences.OpenBolt(path)
	require.NoError(t, err)
	exerciseStore(t, store)
	require.NoError(t, store.Close())

	reopened, err := preferences.OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()
	value, found, err := reopened.Get(context.Background(), "movieExplorerTheme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestBoltStore_ClosedIsStorageUnavailable(t *testing.T) {
	store, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(context.Background(), "k")
	assert.True(t, errors.IsStorageUnavailable(err))
	assert.True(t, errors.IsStorageUnavailable(store.Set(context.Background(), "k", "v")))
}

func TestBoltStore_CancelledContext(t *testing.T) {
	store, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, errors.IsStorageUnavailable(store.Set(ctx, "k", "v")))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	store, err := preferences.NewRedis(context.Background(), preferences.RedisConfig{
		Addr:      addr,
		KeyPrefix: "marquee:test:" + uuid.NewString() + ":",
	})
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)
}

func TestRedisStore_SharedClientUsesPrefix(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis not available: %v", err)
	}

	prefix := "marquee:test:" + uuid.NewString() + ":"
	store := preferences.NewRedisFromClient(client, prefix)
	defer store.Close()
	defer client.Del(context.Background(), prefix+"movieExplorerTheme")

	exerciseStore(t, store)

	raw, err := client.Get(context.Background(), prefix+"movieExplorerTheme").Result()
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestOpen(t *testing.T) {
	store, err := preferences.Open(context.Background(), config.PreferencesConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &preferences.MemoryStore{}, store)

	store, err = preferences.Open(context.Background(), config.PreferencesConfig{
		Driver: "bolt",
		Path:   filepath.Join(t.TempDir(), "prefs.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &preferences.BoltStore{}, store)
	require.NoError(t, store.Close())

	_, err = preferences.Open(context.Background(), config.PreferencesConfig{Driver: "cookie"})
	assert.Error(t, err)
}
