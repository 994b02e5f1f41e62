package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parsa1021/tripguide/internal/config"
	"github.com/parsa1021/tripguide/internal/guide"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	data := &guide.Data{
		Dates: guide.Dates{Meeting: "1/14", Departure: "1/15", Return: "1/24"},
		Itinerary: []guide.Day{
			{Day: 1, Title: "파리 도착", Date: "1/15", Route: "인천 → 파리",
				Items: []guide.DayItem{{Time: "18:30", Detail: "에펠탑 야경 감상"}}},
		},
		Checklists: []guide.Checklist{
			{Icon: "🧳", Category: "서류", Items: []string{"여권"}},
		},
	}
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	dataPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(dataPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.DataSource = dataPath
	cfg.SiteDir = filepath.Join(dir, "site")
	cfg.DBPath = filepath.Join(dir, "tripguide.db")
	return cfg
}

func TestInitReachesReady(t *testing.T) {
	a := New(testConfig(t))
	defer a.Close()

	if a.State() != StateLoading {
		t.Fatalf("initial state = %q, want loading", a.State())
	}

	var precached []string
	if err := a.Init(context.Background(), func(path string) {
		precached = append(precached, path)
	}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if a.State() != StateReady {
		t.Errorf("state = %q, want ready", a.State())
	}
	if a.Data() == nil || len(a.Data().Itinerary) != 1 {
		t.Error("loaded data should be available")
	}
	if a.Theme() != config.ThemeLight {
		t.Errorf("theme = %q, want light default", a.Theme())
	}
	if len(precached) == 0 {
		t.Error("precache callback should fire for generated assets")
	}

	// The generated site exists and is servable.
	if _, err := os.Stat(a.SiteIndexPath()); err != nil {
		t.Errorf("generated index missing: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	a.Server().Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "에펠탑") {
		t.Errorf("served index: %d %q", w.Code, w.Body.String())
	}
}

func TestInitServesOfflineAfterSourceDisappears(t *testing.T) {
	cfg := testConfig(t)

	// First run loads from the source and persists the document.
	a := New(cfg)
	if err := a.Init(context.Background(), nil); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	a.Close()

	// Second run with the source gone falls back to storage.
	if err := os.Remove(cfg.DataSource); err != nil {
		t.Fatal(err)
	}
	b := New(cfg)
	defer b.Close()
	if err := b.Init(context.Background(), nil); err != nil {
		t.Fatalf("fallback Init: %v", err)
	}
	if b.State() != StateReady {
		t.Errorf("state = %q, want ready from stored data", b.State())
	}
	if b.Data() == nil || b.Data().Itinerary[0].Title != "파리 도착" {
		t.Error("stored data should back the fallback run")
	}
}

func TestInitErrorWhenNoDataAnywhere(t *testing.T) {
	cfg := testConfig(t)
	if err := os.Remove(cfg.DataSource); err != nil {
		t.Fatal(err)
	}

	a := New(cfg)
	defer a.Close()
	if err := a.Init(context.Background(), nil); err == nil {
		t.Fatal("expected error with no source and empty storage")
	}
	if a.State() != StateError {
		t.Errorf("state = %q, want error", a.State())
	}
}

func TestInitHonorsStoredTheme(t *testing.T) {
	cfg := testConfig(t)

	a := New(cfg)
	if err := a.Init(context.Background(), nil); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Persist a theme change as the API would, then restart.
	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Server().Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("theme put: %d", w.Code)
	}
	a.Close()

	b := New(cfg)
	defer b.Close()
	if err := b.Init(context.Background(), nil); err != nil {
		t.Fatalf("restart Init: %v", err)
	}
	if b.Theme() != config.ThemeDark {
		t.Errorf("theme = %q, want stored dark", b.Theme())
	}

	raw, err := os.ReadFile(b.SiteIndexPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `data-theme="dark"`) {
		t.Error("regenerated site should start in the stored theme")
	}
}
