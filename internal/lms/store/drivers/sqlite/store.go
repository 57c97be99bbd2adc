package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/futurexhq/futurex/internal/lms/store"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store is the sqlite-backed key-value driver. One table, one row per key,
// values stored as the JSON the caller handed in.
type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single connection: the client is strictly sequential and this keeps
	// writes atomic without juggling WAL settings.
	db.SetMaxOpenConns(1)

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save upserts the JSON encoding of value under key.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %v", store.ErrStorageUnavailable, key, err)
	}

	const q = `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	if _, err := s.db.ExecContext(ctx, q, key, raw, time.Now().UTC()); err != nil {
		return mapWriteError(key, err)
	}
	return nil
}

// Load decodes the value stored under key into dest. A stale value that no
// longer decodes is reported the same way as an absent key.
func (s *Store) Load(ctx context.Context, key string, dest any) error {
	const q = `SELECT value FROM kv WHERE key = ?;`

	var raw []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %q", store.ErrNotFound, key)
	case err != nil:
		return fmt.Errorf("%w: read %q: %v", store.ErrStorageUnavailable, key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %q holds undecodable value", store.ErrNotFound, key)
	}
	return nil
}

// Remove deletes key. Absent keys are fine.
func (s *Store) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM kv WHERE key = ?;`

	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return mapWriteError(key, err)
	}
	return nil
}

// mapWriteError folds driver errors into the store taxonomy. A full medium
// is the one case callers are expected to tell apart.
func mapWriteError(key string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_FULL {
		return fmt.Errorf("%w: write %q: %v", store.ErrStorageFull, key, err)
	}
	return fmt.Errorf("%w: write %q: %v", store.ErrStorageUnavailable, key, err)
}
