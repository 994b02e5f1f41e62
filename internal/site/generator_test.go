package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parsa1021/tripguide/internal/guide"
)

func minimalData() *guide.Data {
	return &guide.Data{
		Dates:    guide.Dates{Meeting: "1/14", Departure: "1/15", Return: "1/24"},
		Location: guide.Location{Meeting: "인천공항 제2터미널"},
		Itinerary: []guide.Day{
			{Day: 1, Title: "파리 도착", Date: "1/15", Route: "인천 → 파리",
				Items: []guide.DayItem{{Time: "18:30", Detail: "에펠탑 야경 감상"}}},
		},
		Checklists: []guide.Checklist{
			{Icon: "🧳", Category: "서류", Items: []string{"여권"}},
		},
	}
}

func TestGenerateWritesAssets(t *testing.T) {
	outDir := t.TempDir()

	gen := NewGenerator(minimalData(), outDir, "성지순례 가이드")
	assets, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, f := range []string{"index.html", "style.css", "script.js", "data.json", "manifest.webmanifest"} {
		if _, err := os.Stat(filepath.Join(outDir, f)); os.IsNotExist(err) {
			t.Errorf("expected asset %s does not exist", f)
		}
	}

	// The returned asset paths feed the offline precache list.
	wantPaths := map[string]bool{}
	for _, a := range assets {
		wantPaths[a] = true
	}
	for _, p := range []string{"/", "/index.html", "/style.css", "/script.js", "/data.json"} {
		if !wantPaths[p] {
			t.Errorf("precache list missing %s: %v", p, assets)
		}
	}
}

func TestGenerateMinimalDocument(t *testing.T) {
	outDir := t.TempDir()

	gen := NewGenerator(minimalData(), outDir, "guide")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)

	// Exactly one day card and one checklist entry.
	if got := strings.Count(html, `class="day-card"`); got != 1 {
		t.Errorf("day cards = %d, want 1", got)
	}
	if got := strings.Count(html, `class="checklist-entry"`); got != 1 {
		t.Errorf("checklist entries = %d, want 1", got)
	}

	// Both are searchable by substrings of their content.
	if !strings.Contains(html, `data-search=`) {
		t.Fatal("rendered blocks should carry data-search attributes")
	}
	if !strings.Contains(html, "에펠탑 야경 감상") {
		t.Error("day content missing from page")
	}
	if !strings.Contains(html, "여권") {
		t.Error("checklist content missing from page")
	}

	// Theme default and page scaffolding.
	if !strings.Contains(html, `data-theme="light"`) {
		t.Error("page should default to the light theme")
	}
	if !strings.Contains(html, `id="search-input"`) {
		t.Error("page should include the search input")
	}
	if !strings.Contains(html, "manifest.webmanifest") {
		t.Error("page should link the web manifest")
	}
}

func TestGenerateThemeOverride(t *testing.T) {
	outDir := t.TempDir()

	gen := NewGenerator(minimalData(), outDir, "guide")
	gen.Theme = "dark"
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	raw, _ := os.ReadFile(filepath.Join(outDir, "index.html"))
	if !strings.Contains(string(raw), `data-theme="dark"`) {
		t.Error("configured theme should reach the page")
	}
}

func TestGenerateIdempotent(t *testing.T) {
	outDir := t.TempDir()

	gen := NewGenerator(minimalData(), outDir, "guide")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	first, _ := os.ReadFile(filepath.Join(outDir, "index.html"))

	if _, err := gen.Generate(); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	second, _ := os.ReadFile(filepath.Join(outDir, "index.html"))

	if string(first) != string(second) {
		t.Error("regenerating from identical data must fully replace with identical output")
	}
}

func TestGenerateSkipsEmptySections(t *testing.T) {
	outDir := t.TempDir()

	data := minimalData()
	// No weather data: the weather section should not render at all.
	gen := NewGenerator(data, outDir, "guide")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	raw, _ := os.ReadFile(filepath.Join(outDir, "index.html"))
	if strings.Contains(string(raw), `id="section-weather"`) {
		t.Error("empty weather section should be omitted")
	}
}
