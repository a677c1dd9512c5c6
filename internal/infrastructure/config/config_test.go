package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("GENAI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "hydrotrack.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.GenAI.APIKey)
	assert.Equal(t, time.Minute, cfg.Security.RateLimitWindow)
	assert.False(t, cfg.Backup.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BACKUP_S3_BUCKET", "garden-backups")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6380", cfg.Redis.GetAddr())
	assert.True(t, cfg.Backup.Enabled())
}

func TestValidateConfig(t *testing.T) {
	base := Config{
		Storage:  StorageConfig{Driver: StorageMemory},
		Server:   ServerConfig{Port: 8080},
		Security: SecurityConfig{RateLimitRequests: 10},
	}
	require.NoError(t, validateConfig(&base))

	bad := base
	bad.Storage.Driver = "leveldb"
	assert.ErrorContains(t, validateConfig(&bad), "unknown storage driver")

	bad = base
	bad.Storage = StorageConfig{Driver: StorageSQLite}
	assert.ErrorContains(t, validateConfig(&bad), "sqlite path")

	bad = base
	bad.Server.Port = 70000
	assert.Error(t, validateConfig(&bad))
}
