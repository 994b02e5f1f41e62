package render

import "testing"

func TestAccordionMutualExclusion(t *testing.T) {
	a := NewAccordion()

	a.Open("A")
	if !a.IsOpen("A") {
		t.Fatal("A should be open")
	}

	a.Open("B")
	if a.IsOpen("A") {
		t.Error("opening B must close A")
	}
	if !a.IsOpen("B") {
		t.Error("B should be open")
	}
	if a.OpenCategory() != "B" {
		t.Errorf("open category = %q, want B", a.OpenCategory())
	}
}

func TestAccordionToggle(t *testing.T) {
	a := NewAccordion()

	a.Toggle("A")
	if !a.IsOpen("A") {
		t.Error("toggle should open a closed category")
	}

	a.Toggle("A")
	if a.IsOpen("A") {
		t.Error("toggle should close an open category")
	}
	if a.OpenCategory() != "" {
		t.Error("all categories should be closed")
	}

	a.Toggle("A")
	a.Toggle("B")
	if a.IsOpen("A") || !a.IsOpen("B") {
		t.Error("toggling B while A is open must close A")
	}
}

func TestAccordionClose(t *testing.T) {
	a := NewAccordion()

	a.Open("A")
	a.Close("B") // closing a non-open category is a no-op
	if !a.IsOpen("A") {
		t.Error("closing B must not affect A")
	}

	a.Close("A")
	if a.IsOpen("A") {
		t.Error("A should be closed")
	}
}
