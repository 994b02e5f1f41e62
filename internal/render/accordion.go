package render

import "sync"

// Accordion tracks checklist category open/closed state. At most one
// category is open at a time: opening one closes all others.
type Accordion struct {
	mu   sync.Mutex
	open string
}

// NewAccordion creates an accordion with every category closed.
func NewAccordion() *Accordion {
	return &Accordion{}
}

// Open opens the given category, closing any other open one.
func (a *Accordion) Open(category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.open = category
}

// Close closes the given category if it is the open one.
func (a *Accordion) Close(category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.open == category {
		a.open = ""
	}
}

// Toggle opens the category if closed and closes it if open.
func (a *Accordion) Toggle(category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.open == category {
		a.open = ""
	} else {
		a.open = category
	}
}

// IsOpen reports whether the given category is the open one.
func (a *Accordion) IsOpen(category string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open == category
}

// OpenCategory returns the currently open category, or "" when all closed.
func (a *Accordion) OpenCategory() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}
