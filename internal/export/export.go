// Package export renders a deck as a printable document: Markdown, plain
// text, or a JSON outline.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
)

// Format is an export format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatText, FormatJSON}
}

// ParseFormat reads a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want md, text or json)", s)
	}
}

// SingleCodeTitle labels a code panel that has no filename.
const SingleCodeTitle = "Code Example"

// LanguageLabel returns a display label for a language tag.
func LanguageLabel(lang string) string {
	switch strings.ToLower(lang) {
	case "":
		return ""
	case "json", "yaml", "toml", "sql", "html", "css":
		return strings.ToUpper(lang)
	default:
		// Casers keep state between calls; one per call.
		return cases.Title(language.English).String(lang)
	}
}

// PanelTitle returns the heading of a code tab.
func PanelTitle(tab deck.CodeTab) string {
	if tab.Filename != "" {
		return tab.Filename
	}
	return SingleCodeTitle
}

// Render writes d in format f.
func Render(d *deck.Deck, f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(Markdown(d)), nil
	case FormatText:
		return []byte(Text(d)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(Outline(d), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode outline: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// Markdown renders every slide as a section, in deck order. Each slide is
// rendered according to its selected layout, so content a layout drops is
// not printed either.
func Markdown(d *deck.Deck) string {
	var sb strings.Builder

	if d.Title() != "" {
		fmt.Fprintf(&sb, "# %s\n\n", d.Title())
	}

	for i, s := range d.Slides() {
		if i > 0 {
			sb.WriteString("---\n\n")
		}
		sb.WriteString(SlideMarkdown(s, i, d.Len()))
	}
	return sb.String()
}

// SlideMarkdown renders a single slide with its position.
func SlideMarkdown(s deck.Slide, index, count int) string {
	var sb strings.Builder
	layout := deck.SelectLayout(s)

	fmt.Fprintf(&sb, "## %s\n\n", s.Title)
	fmt.Fprintf(&sb, "_Slide %d of %d_\n\n", index+1, count)

	if layout.ShowsBullets() {
		sb.WriteString(BulletsMarkdown(s.Bullets))
		sb.WriteString("\n")
	}
	if layout.ShowsCode() {
		for _, tab := range s.CodePanel() {
			fmt.Fprintf(&sb, "**%s**\n\n", PanelTitle(tab))
			fmt.Fprintf(&sb, "```%s\n%s\n```\n\n", tab.Language, strings.TrimRight(tab.Source, "\n"))
		}
	}
	if layout.ShowsDiagram() {
		fmt.Fprintf(&sb, "![%s](%s)\n\n", s.Title, s.Diagram)
	}
	if s.Footnote != "" {
		fmt.Fprintf(&sb, "> %s\n\n", s.Footnote)
	}
	return sb.String()
}

// BulletsMarkdown renders bullets as a Markdown list.
func BulletsMarkdown(bullets []string) string {
	var sb strings.Builder
	for _, b := range bullets {
		fmt.Fprintf(&sb, "- %s\n", b)
	}
	return sb.String()
}

// Text renders the deck for plain-text printers.
func Text(d *deck.Deck) string {
	var sb strings.Builder
	rule := strings.Repeat("─", 64)

	sb.WriteString(strings.ToUpper(d.Title()))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("═", 64))
	sb.WriteString("\n")

	for i, s := range d.Slides() {
		layout := deck.SelectLayout(s)

		fmt.Fprintf(&sb, "\n[%d/%d] %s\n%s\n", i+1, d.Len(), s.Title, rule)
		if layout.ShowsBullets() {
			for _, b := range s.Bullets {
				fmt.Fprintf(&sb, "  • %s\n", b)
			}
		}
		if layout.ShowsCode() {
			for _, tab := range s.CodePanel() {
				fmt.Fprintf(&sb, "\n  %s (%s)\n", PanelTitle(tab), LanguageLabel(tab.Language))
				for _, line := range strings.Split(strings.TrimRight(tab.Source, "\n"), "\n") {
					fmt.Fprintf(&sb, "    %s\n", line)
				}
			}
		}
		if layout.ShowsDiagram() {
			fmt.Fprintf(&sb, "\n  Diagram: %s\n", s.Diagram)
		}
		if s.Footnote != "" {
			fmt.Fprintf(&sb, "\n  %s\n", s.Footnote)
		}
	}
	return sb.String()
}

// Entry summarises one slide.
type Entry struct {
	Index    int      `json:"index"`
	Title    string   `json:"title"`
	Layout   string   `json:"layout"`
	Bullets  int      `json:"bullets"`
	Tabs     []string `json:"tabs,omitempty"`
	Diagram  string   `json:"diagram,omitempty"`
	Footnote string   `json:"footnote,omitempty"`
}

// Outline summarises every slide of d.
func Outline(d *deck.Deck) []Entry {
	slides := d.Slides()
	out := make([]Entry, len(slides))
	for i, s := range slides {
		e := Entry{
			Index:    i,
			Title:    s.Title,
			Layout:   deck.SelectLayout(s).String(),
			Bullets:  len(s.Bullets),
			Diagram:  s.Diagram,
			Footnote: s.Footnote,
		}
		for _, tab := range s.CodePanel() {
			e.Tabs = append(e.Tabs, PanelTitle(tab))
		}
		out[i] = e
	}
	return out
}
