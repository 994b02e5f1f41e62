package cache

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
)

// HandlerFetch adapts an http.Handler into a FetchFunc, so the worker can
// treat the local static-file handler as its upstream origin.
func HandlerFetch(next http.Handler) FetchFunc {
	return func(ctx context.Context, rawURL string) (*Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		rec := &responseRecorder{status: http.StatusOK, header: make(http.Header)}
		next.ServeHTTP(rec, req)
		return &Response{
			URL:         rawURL,
			Status:      rec.status,
			ContentType: rec.header.Get("Content-Type"),
			Body:        rec.body.Bytes(),
		}, nil
	}
}

// Middleware serves GET requests through the worker's cache-first path.
// The worker's Fetch should be wired (via HandlerFetch) to the same handler
// chain this middleware wraps, so misses populate the cache from it. Non-GET
// requests and requests arriving before Activate pass through untouched.
func Middleware(w *Worker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || !w.Active() || w.Fetch == nil {
				next.ServeHTTP(rw, r)
				return
			}

			resp, err := w.Handle(r.Context(), r.Method, r.URL.Path)
			if err != nil {
				http.Error(rw, "upstream fetch failed", http.StatusBadGateway)
				return
			}

			if resp.ContentType != "" {
				rw.Header().Set("Content-Type", resp.ContentType)
			}
			rw.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
			rw.WriteHeader(resp.Status)
			rw.Write(resp.Body)
		})
	}
}

// responseRecorder captures a handler's response for caching.
type responseRecorder struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func (r *responseRecorder) Header() http.Header { return r.header }

func (r *responseRecorder) WriteHeader(status int) { r.status = status }

func (r *responseRecorder) Write(b []byte) (int, error) { return r.body.Write(b) }
