// Package tui presents a deck in the terminal.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/ports"
	"github.com/felixgeelhaar/lectern/internal/tui/ui"
)

// PresentOptions configures the terminal presenter.
type PresentOptions struct {
	Highlighter   ports.Highlighter
	Printer       ports.Printer
	Clipboard     ports.Clipboard
	Tracker       *gesture.Tracker
	StartAt       int
	DragThreshold int
	PlainMarkdown bool
	AltScreen     bool
}

// NewPresentOptions creates default presenter options.
func NewPresentOptions() PresentOptions {
	return PresentOptions{
		DragThreshold: ui.DefaultDragThreshold,
		AltScreen:     true,
	}
}

// WithHighlighter sets the code highlighter.
func (o PresentOptions) WithHighlighter(h ports.Highlighter) PresentOptions {
	o.Highlighter = h
	return o
}

// WithPrinter sets what the print key triggers.
func (o PresentOptions) WithPrinter(p ports.Printer) PresentOptions {
	o.Printer = p
	return o
}

// WithClipboard enables copying code with y.
func (o PresentOptions) WithClipboard(c ports.Clipboard) PresentOptions {
	o.Clipboard = c
	return o
}

// WithTracker enables mouse swipes and clicks.
func (o PresentOptions) WithTracker(t *gesture.Tracker) PresentOptions {
	o.Tracker = t
	return o
}

// WithStartAt opens the deck on slide i (0-based).
func (o PresentOptions) WithStartAt(i int) PresentOptions {
	o.StartAt = i
	return o
}

// WithDragThreshold sets how many columns a mouse drag must travel to
// count as a swipe.
func (o PresentOptions) WithDragThreshold(cols int) PresentOptions {
	o.DragThreshold = cols
	return o
}

// WithPlainMarkdown draws bullets without glamour.
func (o PresentOptions) WithPlainMarkdown(plain bool) PresentOptions {
	o.PlainMarkdown = plain
	return o
}

// WithAltScreen toggles the alternate screen buffer.
func (o PresentOptions) WithAltScreen(alt bool) PresentOptions {
	o.AltScreen = alt
	return o
}

// PresentResult holds the outcome of a presentation.
type PresentResult struct {
	// LastIndex is the slide shown when the presenter quit.
	LastIndex int
}

// newController builds the controller the presenter drives.
func newController(d *deck.Deck, opts PresentOptions) *presentation.Controller {
	ctrl := presentation.NewController(d,
		presentation.WithSwipeThreshold(float64(opts.DragThreshold)),
		presentation.WithPrinter(opts.Printer),
	)
	ctrl.GoTo(opts.StartAt)
	return ctrl
}

// RunPresentation presents d until the user quits.
func RunPresentation(ctx context.Context, d *deck.Deck, opts PresentOptions) (*PresentResult, error) {
	model := newPresenterModel(newController(d, opts), opts)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Tracker != nil {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("presentation failed: %w", err)
	}

	m, ok := finalModel.(presenterModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	return &PresentResult{LastIndex: m.Index()}, nil
}
