package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/parsa1021/tripguide/internal/cache"
	"github.com/parsa1021/tripguide/internal/guide"
	"github.com/parsa1021/tripguide/internal/render"
	"github.com/parsa1021/tripguide/internal/search"
	"github.com/parsa1021/tripguide/internal/storage"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated static site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the static guide site through the offline cache layer and
// exposes the search, history and theme APIs.
type Server struct {
	cfg        Config
	data       *guide.Data
	engine     *search.Engine
	history    *search.History
	accordion  *render.Accordion
	store      *storage.Store
	worker     *cache.Worker
	static     http.Handler
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, data *guide.Data, engine *search.Engine, history *search.History, store *storage.Store, worker *cache.Worker) *Server {
	s := &Server{
		cfg:       cfg,
		data:      data,
		engine:    engine,
		history:   history,
		accordion: render.NewAccordion(),
		store:     store,
		worker:    worker,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerAPIRoutes(r)
	r.Get("/ws/search", s.handleLiveSearch)

	// Static site, served cache-first through the offline worker. The
	// worker's upstream fetch must bypass the middleware (see Static),
	// otherwise a cache miss would re-enter it.
	s.static = s.staticHandler()
	handler := s.static
	if s.worker != nil {
		handler = cache.Middleware(s.worker)(handler)
	}
	r.Handle("/*", handler)

	return r
}

// staticHandler serves the generated site, with manifest headers set the
// way an installable offline page expects them.
func (s *Server) staticHandler() http.Handler {
	fs := http.FileServer(http.Dir(s.cfg.SiteDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/manifest.webmanifest" {
			w.Header().Set("Content-Type", "application/manifest+json")
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		fs.ServeHTTP(w, r)
	})
}

// Router returns the chi router (useful for tests).
func (s *Server) Router() chi.Router { return s.router }

// Static returns the bare static-site handler, without the cache
// middleware in front. The offline worker uses it as its upstream origin.
func (s *Server) Static() http.Handler { return s.static }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("tripguide server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
