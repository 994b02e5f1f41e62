// Package cache implements the offline-first resource cache: a versioned
// response store with a cache-first request path. Resources are pre-cached on
// install, stale versions are purged on activate, and successful responses
// for an allow-listed set of resource types are stored opportunistically at
// request time.
package cache

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
)

// FetchFunc retrieves a resource from the upstream origin. Substituting it
// lets the worker be exercised without a real network stack.
type FetchFunc func(ctx context.Context, url string) (*Response, error)

// Worker is the offline cache layer governing resource requests.
type Worker struct {
	// Version names the live cache generation. Bumping it is the only
	// supported cache-invalidation mechanism.
	Version string
	// Precache lists resource paths fetched and stored during Install.
	Precache []string
	// Allow holds doublestar patterns; only matching URLs are stored at
	// request time (e.g. "**/*.js", "**/*.json").
	Allow []string
	// Fetch retrieves a resource when the cache has no match.
	Fetch FetchFunc

	store  *Store
	active atomic.Bool
}

// NewWorker creates a cache worker for the given version.
func NewWorker(version string, store *Store, fetch FetchFunc) *Worker {
	return &Worker{
		Version: version,
		Allow:   DefaultAllowPatterns(),
		Fetch:   fetch,
		store:   store,
	}
}

// DefaultAllowPatterns returns the runtime-cache allow-list: script, style,
// image and data resources.
func DefaultAllowPatterns() []string {
	return []string{"**/*.js", "**/*.css", "**/*.png", "**/*.json"}
}

// Install fetches every precache resource into the current cache version.
// Individual resource failures are logged as warnings and do not fail the
// install. onResource, if non-nil, is called after each precache attempt.
func (w *Worker) Install(ctx context.Context, onResource func(path string)) error {
	for _, path := range w.Precache {
		resp, err := w.Fetch(ctx, path)
		if err != nil {
			log.Printf("warning: precaching %s failed: %v", path, err)
		} else if err := w.store.Put(ctx, w.Version, resp); err != nil {
			log.Printf("warning: storing precached %s failed: %v", path, err)
		}
		if onResource != nil {
			onResource(path)
		}
	}
	return nil
}

// Activate purges every cache version except the current one and marks the
// worker active so it governs requests immediately. After Activate returns,
// at most one cache version is live.
func (w *Worker) Activate(ctx context.Context) error {
	if err := w.store.PurgeExcept(ctx, w.Version); err != nil {
		return fmt.Errorf("activating cache %s: %w", w.Version, err)
	}
	w.active.Store(true)
	return nil
}

// Active reports whether Activate has completed.
func (w *Worker) Active() bool { return w.active.Load() }

// Handle resolves a resource request with a cache-first policy. Only GET
// requests are intercepted; anything else goes straight to Fetch. A cache
// hit is returned without touching the network. On a miss, the upstream
// response is returned to the caller, and stored first when it is a 200
// whose URL matches the allow-list. Fetch errors propagate unchanged.
func (w *Worker) Handle(ctx context.Context, method, rawURL string) (*Response, error) {
	if method != http.MethodGet {
		return w.Fetch(ctx, rawURL)
	}

	cached, err := w.store.Match(ctx, w.Version, rawURL)
	if err != nil {
		log.Printf("warning: cache lookup for %s failed: %v", rawURL, err)
	}
	if cached != nil {
		return cached, nil
	}

	resp, err := w.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if resp.Status == http.StatusOK && w.Cacheable(rawURL) {
		if err := w.store.Put(ctx, w.Version, resp); err != nil {
			log.Printf("warning: runtime caching %s failed: %v", rawURL, err)
		}
	}
	return resp, nil
}

// Cacheable reports whether the URL matches the runtime-cache allow-list.
func (w *Worker) Cacheable(rawURL string) bool {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	path = strings.TrimPrefix(path, "/")
	for _, pattern := range w.Allow {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
