package kvstore

import (
	"context"
	"fmt"

	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/infrastructure/database"
	"github.com/hydrotrack/core/internal/ports"
)

// Open builds the configured backend. SQL backends are migrated up first.
func Open(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return NewMemoryStore(), nil
	case config.StorageRedis:
		return NewRedisStore(ctx, cfg.Redis)
	case config.StorageSQLite, config.StoragePostgres:
		db, err := database.New(cfg.Storage, cfg.Database)
		if err != nil {
			return nil, err
		}
		if _, err := db.Migrate("up"); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLStore(db), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
