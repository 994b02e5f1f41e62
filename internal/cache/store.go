package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/parsa1021/tripguide/internal/db"
)

// Response is a cached (or freshly fetched) resource.
type Response struct {
	URL         string
	Status      int
	ContentType string
	Body        []byte
}

// Store persists cached responses, keyed by request URL within a version.
type Store struct {
	db *db.DB
}

// NewStore creates a cache store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Put stores a response under the given cache version, replacing any
// previous entry for the same URL.
func (s *Store) Put(ctx context.Context, version string, resp *Response) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries(version, url, status, content_type, body, created_at)
		 VALUES(?, ?, ?, ?, ?, ?)
		 ON CONFLICT(version, url) DO UPDATE SET
		   status = excluded.status, content_type = excluded.content_type,
		   body = excluded.body, created_at = excluded.created_at`,
		version, resp.URL, resp.Status, resp.ContentType, resp.Body, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("caching %s: %w", resp.URL, err)
	}
	return nil
}

// Match looks up a response by exact request URL within a version.
// Returns nil with no error when the URL is not cached.
func (s *Store) Match(ctx context.Context, version, url string) (*Response, error) {
	resp := &Response{URL: url}
	err := s.db.QueryRowContext(ctx,
		`SELECT status, content_type, body FROM cache_entries WHERE version = ? AND url = ?`,
		version, url,
	).Scan(&resp.Status, &resp.ContentType, &resp.Body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", url, err)
	}
	return resp, nil
}

// Versions returns the distinct cache versions currently present.
func (s *Store) Versions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT version FROM cache_entries ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("listing cache versions: %w", err)
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// PurgeExcept deletes every cached entry whose version differs from keep.
func (s *Store) PurgeExcept(ctx context.Context, keep string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE version != ?`, keep)
	if err != nil {
		return fmt.Errorf("purging stale caches: %w", err)
	}
	return nil
}

// Count returns the number of entries stored under the given version.
func (s *Store) Count(ctx context.Context, version string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cache_entries WHERE version = ?`, version,
	).Scan(&n)
	return n, err
}
