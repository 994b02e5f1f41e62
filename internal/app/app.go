// Package app orchestrates startup: data acquisition with its fallback
// rules, site generation, offline cache lifecycle, search wiring, and the
// HTTP server. Application state is explicit rather than ambient.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/parsa1021/tripguide/internal/cache"
	"github.com/parsa1021/tripguide/internal/config"
	"github.com/parsa1021/tripguide/internal/db"
	"github.com/parsa1021/tripguide/internal/guide"
	"github.com/parsa1021/tripguide/internal/render"
	"github.com/parsa1021/tripguide/internal/search"
	"github.com/parsa1021/tripguide/internal/server"
	"github.com/parsa1021/tripguide/internal/site"
	"github.com/parsa1021/tripguide/internal/storage"
)

// State is the orchestrator lifecycle state.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// App owns the application state and wires the components together.
type App struct {
	cfg   *config.Config
	state State

	database *db.DB
	store    *storage.Store
	data     *guide.Data
	theme    config.Theme
	engine   *search.Engine
	history  *search.History
	worker   *cache.Worker
	server   *server.Server
}

// New creates an app in the loading state.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg, state: StateLoading}
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state }

// Data returns the loaded guide document (nil before Init succeeds).
func (a *App) Data() *guide.Data { return a.data }

// Theme returns the active theme.
func (a *App) Theme() config.Theme { return a.theme }

// Server returns the wired HTTP server (nil before Init succeeds).
func (a *App) Server() *server.Server { return a.server }

// Init performs every startup step short of listening: load data
// (network-first, storage fallback), generate the site, install and
// activate the offline cache, initialize theme and search. Failing to
// acquire data from either source is fatal and moves the app to the error
// state; later initialization failures are logged and the app stays ready.
func (a *App) Init(ctx context.Context, onPrecache func(path string)) error {
	var err error
	a.database, err = db.Open(a.cfg.DBPath)
	if err != nil {
		a.state = StateError
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = storage.NewStore(a.database)

	loader := guide.NewLoader(a.cfg.DataSource, a.store)
	data, fromCache, err := loader.Load(ctx)
	if err != nil {
		a.state = StateError
		return err
	}
	if fromCache {
		log.Printf("serving stored guide data (source %s unreachable)", a.cfg.DataSource)
	}
	a.data = data
	a.state = StateReady

	// Theme: stored value wins, config default otherwise.
	a.theme = config.Theme(a.store.GetString(ctx, storage.KeyTheme, string(a.cfg.DefaultTheme)))
	if a.theme != config.ThemeDark {
		a.theme = config.ThemeLight
	}

	// Generate the static site.
	gen := site.NewGenerator(a.data, a.cfg.SiteDir, a.cfg.Title)
	gen.Theme = string(a.theme)
	precache, err := gen.Generate()
	if err != nil {
		// Ready state holds; the API surface still works without the site.
		log.Printf("warning: generating site failed: %v", err)
	}

	// Offline cache: precache the generated assets, then purge stale
	// versions so exactly one cache generation is live.
	a.worker = cache.NewWorker(a.cfg.CacheVersion, cache.NewStore(a.database), nil)
	if len(a.cfg.RuntimeCache) > 0 {
		a.worker.Allow = a.cfg.RuntimeCache
	}
	a.worker.Precache = precache

	blocks := render.Render(a.data)
	a.engine = search.NewEngine(render.SearchItems(blocks))
	a.history = search.NewHistory(a.store)

	a.server = server.New(server.Config{
		Port:     a.cfg.Port,
		SiteDir:  a.cfg.SiteDir,
		AllowAll: a.cfg.AllowAllCORS,
	}, a.data, a.engine, a.history, a.store, a.worker)

	// The worker fetches from the server's own static handler, so install
	// happens after the server is wired.
	a.worker.Fetch = cache.HandlerFetch(a.server.Static())
	if err := a.worker.Install(ctx, onPrecache); err != nil {
		log.Printf("warning: cache install failed: %v", err)
	}
	if err := a.worker.Activate(ctx); err != nil {
		log.Printf("warning: cache activate failed: %v", err)
	}

	return nil
}

// Run initializes the app and serves until the listener stops.
func (a *App) Run(ctx context.Context, onPrecache func(path string)) error {
	if err := a.Init(ctx, onPrecache); err != nil {
		return err
	}
	return a.server.Start()
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a.database != nil {
		return a.database.Close()
	}
	return nil
}

// SiteIndexPath returns the path of the generated index page.
func (a *App) SiteIndexPath() string {
	return filepath.Join(a.cfg.SiteDir, "index.html")
}
