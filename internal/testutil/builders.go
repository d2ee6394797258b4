package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
)

// DeckBuilder builds test decks.
type DeckBuilder struct {
	title  string
	slides []deck.Slide
}

// NewDeckBuilder creates a builder for a deck with the given title.
func NewDeckBuilder(title string) *DeckBuilder {
	return &DeckBuilder{title: title}
}

// WithSlide appends a slide as given.
func (b *DeckBuilder) WithSlide(s deck.Slide) *DeckBuilder {
	b.slides = append(b.slides, s)
	return b
}

// WithBullets appends a bullets-only slide.
func (b *DeckBuilder) WithBullets(title string, bullets ...string) *DeckBuilder {
	return b.WithSlide(deck.Slide{Title: title, Bullets: bullets})
}

// WithTabs appends a slide with bullets and a tabbed code panel.
func (b *DeckBuilder) WithTabs(title string, bullets []string, tabs ...deck.CodeTab) *DeckBuilder {
	return b.WithSlide(deck.Slide{Title: title, Bullets: bullets, Tabs: tabs})
}

// WithDiagram appends a diagram-only slide.
func (b *DeckBuilder) WithDiagram(title, diagram string) *DeckBuilder {
	return b.WithSlide(deck.Slide{Title: title, Diagram: diagram})
}

// WithFootnote sets the footnote of the last slide.
func (b *DeckBuilder) WithFootnote(footnote string) *DeckBuilder {
	if n := len(b.slides); n > 0 {
		b.slides[n-1].Footnote = footnote
	}
	return b
}

// Build returns the constructed deck.
func (b *DeckBuilder) Build(t testing.TB) *deck.Deck {
	t.Helper()
	d, err := deck.New(b.title, b.slides)
	require.NoError(t, err, "test deck must be valid")
	return d
}

// YAML returns the deck as a YAML deck file.
func (b *DeckBuilder) YAML(t testing.TB) string {
	t.Helper()
	data, err := deck.Marshal(b.Build(t), deck.EncodingYAML)
	require.NoError(t, err)
	return string(data)
}

// Tab is shorthand for a named code tab.
func Tab(filename, language, source string) deck.CodeTab {
	return deck.CodeTab{Filename: filename, Language: language, Source: source}
}

// TalkDeck is the three-slide deck most tests present: bullets with a
// footnote, bullets beside two Go tabs, and a diagram.
func TalkDeck() *DeckBuilder {
	return NewDeckBuilder("Talk").
		WithBullets("Intro", "hello", "world").
		WithFootnote("Use arrows").
		WithTabs("Code", []string{"why"},
			Tab("main.go", "go", "package main"),
			Tab("util.go", "go", "package util")).
		WithDiagram("Picture", "/diagrams/flow.svg")
}
