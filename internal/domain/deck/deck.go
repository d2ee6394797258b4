package deck

import (
	"fmt"
	"strings"
)

// Deck is the slide registry: a non-empty, ordered sequence of slides that
// never changes after construction.
type Deck struct {
	title  string
	slides []Slide
	index  map[string]int
}

// New validates slides and returns an immutable deck. Validation failures
// are returned together as an *ErrorList (or a single *Error).
func New(title string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, NewEmptyError()
	}

	errs := &ErrorList{}
	d := &Deck{
		title:  strings.TrimSpace(title),
		slides: make([]Slide, 0, len(slides)),
		index:  make(map[string]int, len(slides)),
	}

	for i, raw := range slides {
		s := raw.normalize()
		pos := position(i, s.Title)
		validateSlide(errs, pos, s)

		if s.Title != "" {
			if prev, dup := d.index[s.Title]; dup {
				errs.AddInvalid(pos,
					fmt.Sprintf("duplicate title %q (also slide %d)", s.Title, prev+1),
					"slide titles label the indicator strip and must be unique")
			} else {
				d.index[s.Title] = i
			}
		}
		d.slides = append(d.slides, s)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustNew is New for statically known decks; it panics on invalid input.
func MustNew(title string, slides []Slide) *Deck {
	d, err := New(title, slides)
	if err != nil {
		panic(err)
	}
	return d
}

func validateSlide(errs *ErrorList, pos string, s Slide) {
	if s.Title == "" {
		errs.AddInvalid(pos, "slide title is empty", "give every slide a title")
	}
	if !s.Layout.Valid() {
		errs.AddInvalid(pos,
			fmt.Sprintf("unknown layout %q", s.Layout),
			"use default, bullets-left-code-right or code-left-diagram-right")
	}
	if s.Code != nil && strings.TrimSpace(s.Code.Source) == "" {
		errs.AddInvalid(pos, "code block has no source", "remove the code block or add source")
	}
	for j, tab := range s.Tabs {
		if strings.TrimSpace(tab.Filename) == "" {
			errs.AddInvalid(pos, fmt.Sprintf("code tab %d has no filename", j+1), "tabs are labelled by filename")
		}
		if strings.TrimSpace(tab.Source) == "" {
			errs.AddInvalid(pos, fmt.Sprintf("code tab %d has no source", j+1), "remove the tab or add source")
		}
	}
}

func position(i int, title string) string {
	if title == "" {
		return fmt.Sprintf("slide %d", i+1)
	}
	return fmt.Sprintf("slide %d %q", i+1, title)
}

// Title returns the deck title, which may be empty.
func (d *Deck) Title() string {
	return d.title
}

// Len returns the number of slides; always at least one.
func (d *Deck) Len() int {
	return len(d.slides)
}

// Slide returns a copy of the slide at i.
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[i].clone(), true
}

// Slides returns a copy of every slide in presentation order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

// Index returns the position of the slide with the given title.
func (d *Deck) Index(title string) (int, bool) {
	i, ok := d.index[strings.TrimSpace(title)]
	return i, ok
}

// Layouts returns the selected layout of every slide.
func (d *Deck) Layouts() []Layout {
	out := make([]Layout, len(d.slides))
	for i, s := range d.slides {
		out[i] = SelectLayout(s)
	}
	return out
}
