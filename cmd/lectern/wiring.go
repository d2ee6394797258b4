package main

import (
	"fmt"

	"github.com/felixgeelhaar/lectern/internal/adapters/command"
	"github.com/felixgeelhaar/lectern/internal/adapters/highlight"
	"github.com/felixgeelhaar/lectern/internal/adapters/printer"
	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/export"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// newHighlighter returns the configured terminal highlighter.
func newHighlighter() ports.Highlighter {
	if settings.Highlight.Disabled {
		return ports.PlainHighlighter{}
	}
	return highlight.NewChroma(settings.Highlight.Style, settings.Highlight.Formatter)
}

// newHTMLHighlighter returns the highlighter for browser pages, or nil when
// highlighting is disabled.
func newHTMLHighlighter() ports.Highlighter {
	if settings.Highlight.Disabled {
		return nil
	}
	return highlight.NewChromaHTML(settings.Highlight.Style)
}

// newCommandPrinter pipes the deck, rendered in the configured format, into
// the configured print command.
func newCommandPrinter(d *deck.Deck, logger ports.Logger) (*printer.CommandPrinter, error) {
	name, args, err := command.SplitCommandLine(settings.Print.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid print command: %w", err)
	}
	format, err := export.ParseFormat(settings.Print.Format)
	if err != nil {
		return nil, err
	}

	doc := func() ([]byte, error) { return export.Render(d, format) }
	return printer.NewCommandPrinter(command.NewRealRunner(), name, args, doc,
		printer.WithTimeout(settings.Print.TimeoutDuration()),
		printer.WithLogger(logger.With(ports.F("component", "printer"))),
	), nil
}
