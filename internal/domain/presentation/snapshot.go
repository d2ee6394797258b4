package presentation

import "github.com/felixgeelhaar/lectern/internal/domain/deck"

// Snapshot is the rendering contract handed to views. It is a value; later
// navigation does not change a snapshot already taken.
type Snapshot struct {
	DeckTitle string
	Slide     deck.Slide
	Index     int
	Count     int
	Layout    deck.Layout
	// Progress is (Index+1)/Count.
	Progress float64
	// Indicators has one entry per slide, true for the active one.
	Indicators []bool
	Tab        int
	Tabs       []deck.CodeTab
}

// Position returns the 1-based slide number.
func (s Snapshot) Position() int { return s.Index + 1 }

// ActiveTab returns the selected code tab, if the slide has code.
func (s Snapshot) ActiveTab() (deck.CodeTab, bool) {
	if s.Tab < 0 || s.Tab >= len(s.Tabs) {
		return deck.CodeTab{}, false
	}
	return s.Tabs[s.Tab], true
}

// IsZero reports whether s was never filled in.
func (s Snapshot) IsZero() bool { return s.Count == 0 }

// SameView reports whether two snapshots show the same slide and tab.
func (s Snapshot) SameView(o Snapshot) bool {
	return s.Index == o.Index && s.Tab == o.Tab && s.Count == o.Count
}
