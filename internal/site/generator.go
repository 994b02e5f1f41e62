// Package site turns rendered guide blocks into a self-contained static
// site: one HTML page plus its style, script, manifest and data assets.
package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/parsa1021/tripguide/internal/guide"
	"github.com/parsa1021/tripguide/internal/render"
)

// Generator writes the static site for one guide document.
type Generator struct {
	Data      *guide.Data
	OutputDir string
	Title     string
	Theme     string // initial page theme, "light" or "dark"
}

// NewGenerator creates a generator for the given document.
func NewGenerator(data *guide.Data, outputDir, title string) *Generator {
	return &Generator{Data: data, OutputDir: outputDir, Title: title, Theme: "light"}
}

// sectionData groups blocks for the page template.
type sectionData struct {
	ID     string
	Label  string
	Blocks []render.Block
}

// pageData is passed to the page template.
type pageData struct {
	Title    string
	Theme    string
	Sections []sectionData
}

// sectionLabels maps section IDs to their page headings, in display order.
var sectionOrder = []struct{ ID, Label string }{
	{render.SectionSchedule, "일정 안내"},
	{render.SectionItinerary, "상세 일정"},
	{render.SectionChecklist, "준비물 체크리스트"},
	{render.SectionCost, "경비"},
	{render.SectionLuggage, "수하물"},
	{render.SectionWeather, "날씨"},
	{render.SectionContacts, "비상 연락처"},
}

// Generate writes the full site and returns the generated asset paths
// relative to the site root (used as the offline precache list).
func (g *Generator) Generate() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	blocks := render.Render(g.Data)
	bySection := make(map[string][]render.Block)
	for _, blk := range blocks {
		bySection[blk.Section] = append(bySection[blk.Section], blk)
	}

	var sections []sectionData
	for _, s := range sectionOrder {
		if len(bySection[s.ID]) == 0 {
			continue
		}
		sections = append(sections, sectionData{ID: s.ID, Label: s.Label, Blocks: bySection[s.ID]})
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return nil, err
	}
	theme := g.Theme
	if theme == "" {
		theme = "light"
	}
	if err := tmpl.Execute(f, pageData{Title: g.Title, Theme: theme, Sections: sections}); err != nil {
		f.Close()
		return nil, fmt.Errorf("rendering index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	dataJSON, err := json.MarshalIndent(g.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing data.json: %w", err)
	}

	assets := map[string][]byte{
		"style.css":            []byte(cssContent),
		"script.js":            []byte(jsContent),
		"data.json":            dataJSON,
		"manifest.webmanifest": []byte(manifestContent(g.Title)),
	}
	for name, content := range assets {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	return []string{"/", "/index.html", "/style.css", "/script.js", "/data.json", "/manifest.webmanifest"}, nil
}

// manifestContent builds the web app manifest for installable offline use.
func manifestContent(title string) string {
	m := map[string]interface{}{
		"name":             title,
		"short_name":       title,
		"start_url":        "/",
		"display":          "standalone",
		"background_color": "#ffffff",
		"theme_color":      "#228be6",
	}
	raw, _ := json.MarshalIndent(m, "", "  ")
	return string(raw)
}
