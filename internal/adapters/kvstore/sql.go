package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hydrotrack/core/internal/infrastructure/database"
	"github.com/hydrotrack/core/internal/ports"
)

// SQLStore keeps values in the kv_entries table of a sqlite or postgres database
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a store over an opened and migrated database
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) conn() *sqlx.DB {
	return s.db.DB
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := s.conn().Rebind(`SELECT entry_value FROM kv_entries WHERE entry_key = ?`)

	var value string
	err := s.conn().GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query := s.conn().Rebind(`
		INSERT INTO kv_entries (entry_key, entry_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (entry_key) DO UPDATE
		SET entry_value = excluded.entry_value, updated_at = excluded.updated_at`)

	_, err := s.conn().ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
