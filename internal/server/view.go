package server

import (
	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/export"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// StateView is the JSON form of a presentation snapshot.
type StateView struct {
	Index      int       `json:"index"`
	Position   int       `json:"position"`
	Count      int       `json:"count"`
	Layout     string    `json:"layout"`
	Progress   float64   `json:"progress"`
	Indicators []bool    `json:"indicators"`
	Tab        int       `json:"tab"`
	Slide      SlideView `json:"slide"`
}

// SlideView is the JSON form of the active slide, limited to what its
// layout shows.
type SlideView struct {
	Title    string    `json:"title"`
	Bullets  []string  `json:"bullets,omitempty"`
	Code     []TabView `json:"code,omitempty"`
	Diagram  string    `json:"diagram,omitempty"`
	Footnote string    `json:"footnote,omitempty"`
}

// TabView is one code tab. HTML holds highlighted markup when a
// highlighter knows the language; Source is always the raw text.
type TabView struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Source   string `json:"source"`
	HTML     string `json:"html,omitempty"`
}

// DeckView describes the whole deck.
type DeckView struct {
	Title  string         `json:"title"`
	Slides []export.Entry `json:"slides"`
}

// NewStateView converts a snapshot. Code is highlighted with h when it is
// not nil.
func NewStateView(s presentation.Snapshot, h ports.Highlighter) StateView {
	v := StateView{
		Index:      s.Index,
		Position:   s.Position(),
		Count:      s.Count,
		Layout:     s.Layout.String(),
		Progress:   s.Progress,
		Indicators: s.Indicators,
		Tab:        s.Tab,
		Slide: SlideView{
			Title:    s.Slide.Title,
			Footnote: s.Slide.Footnote,
		},
	}

	if s.Layout.ShowsBullets() {
		v.Slide.Bullets = s.Slide.Bullets
	}
	if s.Layout.ShowsCode() {
		for _, tab := range s.Tabs {
			v.Slide.Code = append(v.Slide.Code, TabView{
				Title:    export.PanelTitle(tab),
				Language: tab.Language,
				Source:   tab.Source,
				HTML:     highlightHTML(h, tab),
			})
		}
	}
	if s.Layout.ShowsDiagram() {
		v.Slide.Diagram = s.Slide.Diagram
	}
	return v
}

// NewDeckView converts a deck.
func NewDeckView(d *deck.Deck) DeckView {
	return DeckView{Title: d.Title(), Slides: export.Outline(d)}
}

// highlightHTML returns markup for tab, or "" when h is nil or passed the
// source through unchanged.
func highlightHTML(h ports.Highlighter, tab deck.CodeTab) string {
	if h == nil {
		return ""
	}
	out := h.Highlight(tab.Source, tab.Language)
	if out == tab.Source {
		return ""
	}
	return out
}
