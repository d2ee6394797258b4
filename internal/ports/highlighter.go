package ports

// Highlighter renders source code for display. Implementations must return
// the source verbatim when the language is unknown or highlighting fails.
type Highlighter interface {
	Highlight(source, language string) string
}

// PlainHighlighter returns source unchanged.
type PlainHighlighter struct{}

// Highlight returns source.
func (PlainHighlighter) Highlight(source, _ string) string {
	return source
}

var _ Highlighter = PlainHighlighter{}
