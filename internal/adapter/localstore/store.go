package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// Store is the local persistent key-value store, backed by a single SQLite
// file with one state table. Each key holds one whole JSON document.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

// Open opens (and if needed creates) the state file at path.
func Open(path string, log logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get implements interfaces.KVStore. A stored value that is not valid JSON
// falls back to the caller's default instead of failing the load; the
// corrupt text stays in place until the next overwrite.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read state %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("state_unreadable", fmt.Sprintf("Stored value for %q is not valid JSON, using default", key), "", map[string]any{
			"key": key,
		})
		return false, nil
	}
	return true, nil
}

// Set implements interfaces.KVStore: serialize the whole value and
// overwrite unconditionally.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize state %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}

var _ interfaces.KVStore = (*Store)(nil)
