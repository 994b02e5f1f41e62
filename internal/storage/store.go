// Package storage is a failure-tolerant key-value layer over SQLite.
// Reads that fail for any reason (missing key, I/O error, corrupt JSON)
// yield the caller-supplied default instead of an error, mirroring how
// the rest of the app treats persistent state as best-effort.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/parsa1021/tripguide/internal/db"
)

// Well-known keys.
const (
	KeyAppData       = "appData"
	KeyTheme         = "theme"
	KeySearchHistory = "searchHistory"
)

// Store persists JSON-serialized values by key.
type Store struct {
	db *db.DB
}

// NewStore creates a key-value store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// GetJSON loads the value stored under key into out. If the key is absent
// or the stored value cannot be read or parsed, out is left untouched and
// ok is false; no error is ever returned to the caller.
func (s *Store) GetJSON(ctx context.Context, key string, out interface{}) (ok bool) {
	if s == nil || s.db == nil {
		return false
	}
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE key = ?`, key,
	).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// GetString loads a plain string value, returning def when absent or unreadable.
func (s *Store) GetString(ctx context.Context, key, def string) string {
	var v string
	if !s.GetJSON(ctx, key, &v) {
		return def
	}
	return v
}

// PutJSON stores the JSON serialization of v under key, replacing any
// previous value.
func (s *Store) PutJSON(ctx context.Context, key string, v interface{}) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage not initialized")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv_entries(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

// PutString stores a plain string value under key.
func (s *Store) PutString(ctx context.Context, key, v string) error {
	return s.PutJSON(ctx, key, v)
}

// Delete removes the value stored under key, if any.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage not initialized")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	return err
}
