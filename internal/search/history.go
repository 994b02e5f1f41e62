package search

import (
	"context"
	"strings"

	"github.com/parsa1021/tripguide/internal/storage"
)

// HistoryLimit is the maximum number of remembered queries.
const HistoryLimit = 5

// History is the bounded most-recent-first list of submitted queries,
// persisted through the storage adapter.
type History struct {
	store *storage.Store
	limit int
}

// NewHistory creates a history backed by the given store.
func NewHistory(store *storage.Store) *History {
	return &History{store: store, limit: HistoryLimit}
}

// List returns the stored queries, most recent first.
func (h *History) List(ctx context.Context) []string {
	var entries []string
	h.store.GetJSON(ctx, storage.KeySearchHistory, &entries)
	return entries
}

// Push records an explicitly submitted query at the front of the list.
// Queries shorter than the minimum length are ignored. Re-pushing an
// existing entry moves it to the front without growing the list.
func (h *History) Push(ctx context.Context, query string) bool {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinQueryLen {
		return false
	}

	entries := h.List(ctx)
	out := []string{q}
	for _, e := range entries {
		if e == q {
			continue
		}
		out = append(out, e)
		if len(out) == h.limit {
			break
		}
	}

	if err := h.store.PutJSON(ctx, storage.KeySearchHistory, out); err != nil {
		// Storage failures are tolerated; the in-memory push still counts.
		return true
	}
	return true
}

// Suggest returns stored queries for display: all of them when the partial
// input is empty, otherwise those containing the partial input.
func (h *History) Suggest(ctx context.Context, partial string) []string {
	entries := h.List(ctx)
	p := strings.ToLower(strings.TrimSpace(partial))
	if p == "" {
		return entries
	}
	var out []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e), p) {
			out = append(out, e)
		}
	}
	return out
}

// Clear removes all stored queries.
func (h *History) Clear(ctx context.Context) error {
	return h.store.Delete(ctx, storage.KeySearchHistory)
}
