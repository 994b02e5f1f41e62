// Package search implements the guide's deterministic text search: synonym
// expansion, per-item and per-section visibility, accordion auto-expansion,
// debounced live queries, and a small bounded query history.
package search

import "strings"

// MinQueryLen is the minimum trimmed query length (in runes) for a search
// to run; anything shorter resets all visibility.
const MinQueryLen = 2

// Item is one searchable unit of rendered content. Text is the flattened,
// lower-cased searchable string the renderer produced for it. Category is
// set only for checklist items and names their accordion category.
type Item struct {
	ID       string
	Section  string
	Category string
	Text     string
}

// Result describes the visibility outcome of one query.
type Result struct {
	Query string   `json:"query"`
	Terms []string `json:"terms"`
	// Reset is true when the query fell below the minimum length; every
	// item and section is visible and the remaining fields are empty.
	Reset          bool     `json:"reset"`
	HiddenItems    []string `json:"hidden_items"`
	HiddenSections []string `json:"hidden_sections"`
	// ExpandCategories lists accordion categories force-opened because a
	// checklist item inside them matched.
	ExpandCategories []string `json:"expand_categories"`
	NoResults        bool     `json:"no_results"`
}

// Engine filters a fixed set of searchable items. Sections that carry no
// searchable items are never hidden, so the engine only ever reports
// sections it has items for.
type Engine struct {
	items []Item
}

// NewEngine creates an engine over the given items.
func NewEngine(items []Item) *Engine {
	return &Engine{items: items}
}

// Items returns the engine's searchable items.
func (e *Engine) Items() []Item { return e.items }

// Filter runs one query and returns the resulting visibility deterministically.
func (e *Engine) Filter(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLen {
		return Result{Query: q, Reset: true}
	}

	terms := Expand(q)
	res := Result{
		Query:            q,
		Terms:            terms,
		HiddenItems:      []string{},
		HiddenSections:   []string{},
		ExpandCategories: []string{},
	}

	sectionHasMatch := make(map[string]bool)
	sectionSeen := []string{}
	expandSeen := make(map[string]bool)
	matched := 0

	for _, item := range e.items {
		if !contains(sectionSeen, item.Section) {
			sectionSeen = append(sectionSeen, item.Section)
		}
		if matches(item.Text, terms) {
			matched++
			sectionHasMatch[item.Section] = true
			if item.Category != "" && !expandSeen[item.Category] {
				expandSeen[item.Category] = true
				res.ExpandCategories = append(res.ExpandCategories, item.Category)
			}
		} else {
			res.HiddenItems = append(res.HiddenItems, item.ID)
		}
	}

	for _, section := range sectionSeen {
		if !sectionHasMatch[section] {
			res.HiddenSections = append(res.HiddenSections, section)
		}
	}

	res.NoResults = matched == 0
	return res
}

// matches reports whether any expanded term is a substring of the text.
func matches(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
