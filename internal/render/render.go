// Package render maps guide data to HTML blocks. Every function here is a
// pure mapping: the same data always yields the same markup and the same
// flattened searchable text, so rendering is idempotent and testable away
// from any live page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/parsa1021/tripguide/internal/guide"
	"github.com/parsa1021/tripguide/internal/search"
)

// Section identifiers used across rendering and search.
const (
	SectionItinerary = "itinerary"
	SectionChecklist = "checklist"
	SectionSchedule  = "schedule"
	SectionCost      = "cost"
	SectionLuggage   = "luggage"
	SectionWeather   = "weather"
	SectionContacts  = "contacts"
)

// Block is one rendered unit: its markup plus the search metadata the
// engine filters on. Blocks with an empty SearchText are decorative and
// never hidden by search.
type Block struct {
	ID         string
	Section    string
	Category   string
	HTML       template.HTML
	SearchText string
}

// md renders markdown-capable fields (memos, notes).
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render maps the whole document to its ordered list of blocks.
func Render(data *guide.Data) []Block {
	var blocks []Block
	blocks = append(blocks, Schedule(data.Dates, data.Location))
	for _, day := range data.Itinerary {
		blocks = append(blocks, DayCard(day))
	}
	for _, cl := range data.Checklists {
		blocks = append(blocks, ChecklistEntry(cl))
	}
	if len(data.Costs) > 0 {
		blocks = append(blocks, CostTable(data.Costs))
	}
	if data.Luggage != (guide.Luggage{}) {
		blocks = append(blocks, LuggageInfo(data.Luggage))
	}
	for i, w := range data.Weather {
		blocks = append(blocks, WeatherCard(i, w))
	}
	if len(data.Contacts) > 0 || data.ContactNote != "" {
		blocks = append(blocks, ContactList(data.Contacts, data.ContactNote))
	}
	return blocks
}

// DayCard renders one itinerary day. The searchable text concatenates the
// title, route, date and every item detail, lower-cased.
func DayCard(day guide.Day) Block {
	var b strings.Builder
	id := fmt.Sprintf("day-%d", day.Day)

	searchParts := []string{day.Title, day.Route, day.Date}

	fmt.Fprintf(&b, `<div class="day-card" id="%s">`+"\n", id)
	fmt.Fprintf(&b, `<div class="day-header"><span class="day-number">Day %d</span><h3>%s</h3><span class="day-date">%s</span></div>`+"\n",
		day.Day, esc(day.Title), esc(day.Date))
	if day.Route != "" {
		fmt.Fprintf(&b, `<p class="day-route">%s</p>`+"\n", esc(day.Route))
	}
	b.WriteString(`<ul class="day-items">` + "\n")
	for _, item := range day.Items {
		fmt.Fprintf(&b, `<li><span class="item-time">%s</span><span class="item-detail">%s</span></li>`+"\n",
			esc(item.Time), esc(item.Detail))
		searchParts = append(searchParts, item.Detail)
	}
	b.WriteString("</ul>\n")
	if day.Memo != nil {
		fmt.Fprintf(&b, `<div class="day-memo memo-%s">%s</div>`+"\n", day.Memo.Type, markdown(day.Memo.Content))
	}
	b.WriteString("</div>")

	return Block{
		ID:         id,
		Section:    SectionItinerary,
		HTML:       template.HTML(b.String()),
		SearchText: flatten(searchParts),
	}
}

// ChecklistEntry renders one accordion category with its items. The entry
// starts closed; open/closed state lives in Accordion, not in the markup.
func ChecklistEntry(cl guide.Checklist) Block {
	var b strings.Builder
	id := "checklist-" + slug(cl.Category)

	fmt.Fprintf(&b, `<div class="checklist-entry" id="%s" data-category="%s">`+"\n", id, esc(cl.Category))
	fmt.Fprintf(&b, `<button class="checklist-toggle"><span class="checklist-icon">%s</span>%s</button>`+"\n",
		esc(cl.Icon), esc(cl.Category))
	b.WriteString(`<ul class="checklist-items">` + "\n")
	for _, item := range cl.Items {
		fmt.Fprintf(&b, `<li><label><input type="checkbox"> %s</label></li>`+"\n", esc(item))
	}
	b.WriteString("</ul>\n</div>")

	return Block{
		ID:         id,
		Section:    SectionChecklist,
		Category:   cl.Category,
		HTML:       template.HTML(b.String()),
		SearchText: flatten(append([]string{cl.Category}, cl.Items...)),
	}
}

// Schedule renders the trip dates and meeting point.
func Schedule(dates guide.Dates, loc guide.Location) Block {
	var b strings.Builder
	b.WriteString(`<div class="schedule-card" id="schedule-main">` + "\n")
	fmt.Fprintf(&b, `<dl><dt>모임</dt><dd>%s</dd><dt>출발</dt><dd>%s</dd><dt>귀국</dt><dd>%s</dd></dl>`+"\n",
		esc(dates.Meeting), esc(dates.Departure), esc(dates.Return))
	fmt.Fprintf(&b, `<p class="meeting-place">%s</p>`+"\n", esc(loc.Meeting))
	if loc.Notes != "" {
		fmt.Fprintf(&b, `<div class="meeting-notes">%s</div>`+"\n", markdown(loc.Notes))
	}
	b.WriteString("</div>")

	return Block{
		ID:         "schedule-main",
		Section:    SectionSchedule,
		HTML:       template.HTML(b.String()),
		SearchText: flatten([]string{dates.Meeting, dates.Departure, dates.Return, loc.Meeting, loc.Notes}),
	}
}

// CostTable renders the cost breakdown rows.
func CostTable(costs []guide.Cost) Block {
	var b strings.Builder
	var searchParts []string
	b.WriteString(`<table class="cost-table" id="cost-main"><tbody>` + "\n")
	for _, c := range costs {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`+"\n", esc(c.Item), esc(c.Amount), esc(c.Note))
		searchParts = append(searchParts, c.Item, c.Amount, c.Note)
	}
	b.WriteString("</tbody></table>")

	return Block{
		ID:         "cost-main",
		Section:    SectionCost,
		HTML:       template.HTML(b.String()),
		SearchText: flatten(searchParts),
	}
}

// LuggageInfo renders the baggage rules.
func LuggageInfo(l guide.Luggage) Block {
	var b strings.Builder
	b.WriteString(`<div class="luggage-card" id="luggage-main">` + "\n")
	fmt.Fprintf(&b, `<p>위탁 %s</p><p>기내 %s</p><p>%s</p>`+"\n", esc(l.MaxWeight), esc(l.CarryOn), esc(l.Safety))
	b.WriteString("</div>")

	return Block{
		ID:         "luggage-main",
		Section:    SectionLuggage,
		HTML:       template.HTML(b.String()),
		SearchText: flatten([]string{l.MaxWeight, l.CarryOn, l.Safety}),
	}
}

// WeatherCard renders one location forecast.
func WeatherCard(idx int, w guide.Weather) Block {
	var b strings.Builder
	id := fmt.Sprintf("weather-%d", idx)
	fmt.Fprintf(&b, `<div class="weather-card" id="%s"><span class="weather-icon">%s</span><h4>%s</h4><p class="weather-temp">%s</p><p>%s</p></div>`,
		id, esc(w.Icon), esc(w.Location), esc(w.Temp), esc(w.Notes))

	return Block{
		ID:         id,
		Section:    SectionWeather,
		HTML:       template.HTML(b.String()),
		SearchText: flatten([]string{w.Location, w.Temp, w.Notes}),
	}
}

// ContactList renders the emergency contacts.
func ContactList(contacts []guide.Contact, note string) Block {
	var b strings.Builder
	var searchParts []string
	b.WriteString(`<ul class="contact-list" id="contacts-main">` + "\n")
	for _, c := range contacts {
		fmt.Fprintf(&b, `<li><span class="contact-name">%s</span><a href="tel:%s">%s</a></li>`+"\n",
			esc(c.Name), esc(c.Phone), esc(c.Phone))
		searchParts = append(searchParts, c.Name, c.Phone)
	}
	b.WriteString("</ul>\n")
	if note != "" {
		fmt.Fprintf(&b, `<p class="contact-note">%s</p>`, esc(note))
		searchParts = append(searchParts, note)
	}

	return Block{
		ID:         "contacts-main",
		Section:    SectionContacts,
		HTML:       template.HTML(b.String()),
		SearchText: flatten(searchParts),
	}
}

// SearchItems flattens rendered blocks into the engine's searchable items,
// skipping decorative blocks with no searchable text.
func SearchItems(blocks []Block) []search.Item {
	var items []search.Item
	for _, blk := range blocks {
		if blk.SearchText == "" {
			continue
		}
		items = append(items, search.Item{
			ID:       blk.ID,
			Section:  blk.Section,
			Category: blk.Category,
			Text:     blk.SearchText,
		})
	}
	return items
}

// flatten joins the parts into the lower-cased searchable string.
func flatten(parts []string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// markdown converts a markdown-capable field to HTML, falling back to the
// escaped source text if conversion fails.
func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + esc(src) + "</p>")
	}
	return template.HTML(buf.String())
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// slug derives a stable element ID fragment from a category label.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '/' || r == '\t':
			b.WriteRune('-')
		case r == '"' || r == '\'' || r == '<' || r == '>' || r == '&':
			// drop characters unsafe in attribute values
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
