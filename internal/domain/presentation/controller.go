// Package presentation owns the navigation state of a running deck: which
// slide is active, which code tab is selected, and how input maps onto
// navigation.
package presentation

import (
	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// DefaultSwipeThreshold is the horizontal travel a swipe must exceed.
const DefaultSwipeThreshold = 50.0

// Controller holds the presentation state of one deck. The deck is a ring:
// Next past the last slide wraps to the first and Previous wraps back.
// A Controller is not safe for concurrent use; hosts with several input
// sources go through a Hub.
type Controller struct {
	deck      *deck.Deck
	index     int
	tab       int
	threshold float64
	printer   ports.Printer
}

// Option configures a Controller.
type Option func(*Controller)

// WithSwipeThreshold sets the swipe threshold. Non-positive values keep the
// default.
func WithSwipeThreshold(threshold float64) Option {
	return func(c *Controller) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

// WithPrinter sets the print facility triggered by the print key.
func WithPrinter(p ports.Printer) Option {
	return func(c *Controller) {
		if p != nil {
			c.printer = p
		}
	}
}

// NewController creates a controller positioned on the first slide.
// d must come from deck.New, which guarantees at least one slide.
func NewController(d *deck.Deck, opts ...Option) *Controller {
	c := &Controller{
		deck:      d,
		threshold: DefaultSwipeThreshold,
		printer:   ports.NopPrinter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deck returns the deck being presented.
func (c *Controller) Deck() *deck.Deck { return c.deck }

// Index returns the active slide index.
func (c *Controller) Index() int { return c.index }

// Tab returns the active code tab index.
func (c *Controller) Tab() int { return c.tab }

// SwipeThreshold returns the configured swipe threshold.
func (c *Controller) SwipeThreshold() float64 { return c.threshold }

// Next advances one slide, wrapping to the first.
func (c *Controller) Next() {
	c.activate((c.index + 1) % c.deck.Len())
}

// Previous goes back one slide, wrapping to the last.
func (c *Controller) Previous() {
	n := c.deck.Len()
	c.activate((c.index - 1 + n) % n)
}

// GoTo activates slide i. Out of range targets are ignored and reported
// with false.
func (c *Controller) GoTo(i int) bool {
	if i < 0 || i >= c.deck.Len() {
		return false
	}
	c.activate(i)
	return true
}

// First activates the first slide.
func (c *Controller) First() { c.activate(0) }

// Last activates the last slide.
func (c *Controller) Last() { c.activate(c.deck.Len() - 1) }

// SelectTab selects code tab i of the active slide. It is a no-op
// returning false when i is not a tab of that slide.
func (c *Controller) SelectTab(i int) bool {
	if i < 0 || i >= len(c.active().CodePanel()) {
		return false
	}
	c.tab = i
	return true
}

// NextTab cycles forward through the active slide's code tabs.
func (c *Controller) NextTab() bool {
	n := len(c.active().CodePanel())
	if n < 2 {
		return false
	}
	c.tab = (c.tab + 1) % n
	return true
}

// PreviousTab cycles backward through the active slide's code tabs.
func (c *Controller) PreviousTab() bool {
	n := len(c.active().CodePanel())
	if n < 2 {
		return false
	}
	c.tab = (c.tab - 1 + n) % n
	return true
}

// HandleKey applies a key press and reports whether the key was used.
// The print keys trigger the printer and leave the state untouched.
func (c *Controller) HandleKey(k Key) bool {
	switch k {
	case KeyArrowRight, KeySpace:
		c.Next()
	case KeyArrowLeft:
		c.Previous()
	default:
		if !k.Prints() {
			return false
		}
		c.printer.Print()
	}
	return true
}

// HandleSwipe applies a horizontal swipe from startX to endX. A swipe to
// the left moves forward; travel at or under the threshold is scrolling
// and changes nothing.
func (c *Controller) HandleSwipe(startX, endX float64) bool {
	switch gesture.Classify(startX, endX, c.threshold) {
	case gesture.DirectionLeft:
		c.Next()
	case gesture.DirectionRight:
		c.Previous()
	default:
		return false
	}
	return true
}

// CurrentLayout returns the arrangement of the active slide.
func (c *Controller) CurrentLayout() deck.Layout {
	return deck.SelectLayout(c.active())
}

// Snapshot returns everything a view needs to draw the active slide.
func (c *Controller) Snapshot() Snapshot {
	n := c.deck.Len()
	slide := c.active()

	indicators := make([]bool, n)
	indicators[c.index] = true

	return Snapshot{
		DeckTitle:  c.deck.Title(),
		Slide:      slide,
		Index:      c.index,
		Count:      n,
		Layout:     deck.SelectLayout(slide),
		Progress:   float64(c.index+1) / float64(n),
		Indicators: indicators,
		Tab:        c.tab,
		Tabs:       slide.CodePanel(),
	}
}

func (c *Controller) active() deck.Slide {
	s, _ := c.deck.Slide(c.index)
	return s
}

// activate makes slide i current; the tab selection always restarts at 0.
func (c *Controller) activate(i int) {
	c.index = i
	c.tab = 0
}
