// Package highlight colours code samples with chroma, as terminal escapes
// or as HTML for the browser presenter.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Chroma highlights source with a chroma lexer, style and formatter.
type Chroma struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewChroma creates a highlighter for the named style. Unknown styles fall
// back to chroma's default; formatter is a chroma formatter name such as
// "terminal256" (the default when empty).
func NewChroma(style, formatter string) *Chroma {
	if style == "" {
		style = DefaultStyle
	}
	if formatter == "" {
		formatter = "terminal256"
	}
	return &Chroma{
		style:     styles.Get(style),
		formatter: formatters.Get(formatter),
	}
}

// NewChromaHTML creates a highlighter that emits a <pre> fragment with
// inline styles, so pages need no stylesheet.
func NewChromaHTML(style string) *Chroma {
	if style == "" {
		style = DefaultStyle
	}
	return &Chroma{
		style:     styles.Get(style),
		formatter: html.New(html.WithClasses(false), html.TabWidth(4)),
	}
}

// Highlight returns formatted source, or source unchanged when the
// language is unknown or any stage fails.
func (c *Chroma) Highlight(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		return source
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := c.formatter.Format(&b, c.style, it); err != nil {
		return source
	}
	return b.String()
}

// Supports reports whether a lexer exists for language.
func Supports(language string) bool {
	return lexers.Get(language) != nil
}

var _ ports.Highlighter = (*Chroma)(nil)
