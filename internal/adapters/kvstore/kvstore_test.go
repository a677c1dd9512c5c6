package kvstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/ports"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, ports.KeySetups)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, ports.KeySetups, []byte(`[{"id":"a"}]`)))
	got, err := store.Get(ctx, ports.KeySetups)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(got))

	require.NoError(t, store.Set(ctx, ports.KeySetups, []byte(`[]`)))
	got, err = store.Get(ctx, ports.KeySetups)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	_, err = store.Get(ctx, ports.KeyPlants)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:     config.StorageSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "hydro.db"),
		},
	}

	store, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	exerciseStore(t, store)
}

func TestSQLStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:     config.StorageSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "hydro.db"),
		},
	}

	store, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, ports.KeyPlants, []byte(`[{"id":"p1"}]`)))
	require.NoError(t, store.Close())

	store, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(ctx, ports.KeyPlants)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(got))
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "bolt"}})
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := NewRedisStore(ctx, config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.ErrorContains(t, err, "failed to connect to redis")
}
