// Package deck provides the slide registry: validated, immutable slide
// records and the layout selection that decides how each one is arranged.
package deck

import "strings"

// DefaultLanguage is used for code that does not declare a language.
const DefaultLanguage = "python"

// LayoutHint is an explicit arrangement requested by a slide.
type LayoutHint string

const (
	// HintNone means the layout is inferred from the slide content.
	HintNone LayoutHint = ""
	// HintDefault also means the layout is inferred.
	HintDefault LayoutHint = "default"
	// HintBulletsLeftCodeRight places bullets left and the code panel right.
	HintBulletsLeftCodeRight LayoutHint = "bullets-left-code-right"
	// HintCodeLeftDiagramRight pairs the code panel with the diagram.
	HintCodeLeftDiagramRight LayoutHint = "code-left-diagram-right"
)

// Valid reports whether the hint is one of the known values.
func (h LayoutHint) Valid() bool {
	switch h {
	case HintNone, HintDefault, HintBulletsLeftCodeRight, HintCodeLeftDiagramRight:
		return true
	default:
		return false
	}
}

// CodeBlock is a single code sample.
type CodeBlock struct {
	Language string
	Source   string
}

// CodeTab is one named code sample of a tabbed code panel.
type CodeTab struct {
	Filename string
	Language string
	Source   string
}

// Slide is a single immutable slide record.
type Slide struct {
	Title    string
	Bullets  []string
	Code     *CodeBlock
	Tabs     []CodeTab
	Diagram  string
	Footnote string
	Layout   LayoutHint
}

// HasBullets reports whether the slide has a bullet block.
func (s Slide) HasBullets() bool {
	return len(s.Bullets) > 0
}

// HasCode reports whether the slide has a code sample or code tabs.
func (s Slide) HasCode() bool {
	return len(s.Tabs) > 0 || (s.Code != nil && s.Code.Source != "")
}

// HasDiagram reports whether the slide references a diagram.
func (s Slide) HasDiagram() bool {
	return strings.TrimSpace(s.Diagram) != ""
}

// CodePanel returns the code samples shown in the code panel. Tabs win over
// a single code block; a single block becomes one tab without a filename.
func (s Slide) CodePanel() []CodeTab {
	if len(s.Tabs) > 0 {
		out := make([]CodeTab, len(s.Tabs))
		copy(out, s.Tabs)
		return out
	}
	if s.Code != nil && s.Code.Source != "" {
		return []CodeTab{{Language: s.Code.Language, Source: s.Code.Source}}
	}
	return nil
}

// clone returns a deep copy so callers can never reach the registry's slices.
func (s Slide) clone() Slide {
	out := s
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	if s.Tabs != nil {
		out.Tabs = append([]CodeTab(nil), s.Tabs...)
	}
	if s.Code != nil {
		code := *s.Code
		out.Code = &code
	}
	return out
}

// normalize fills defaults that do not change meaning.
func (s Slide) normalize() Slide {
	s = s.clone()
	s.Title = strings.TrimSpace(s.Title)
	if s.Code != nil && s.Code.Language == "" {
		s.Code.Language = DefaultLanguage
	}
	for i := range s.Tabs {
		if s.Tabs[i].Language == "" {
			s.Tabs[i].Language = DefaultLanguage
		}
	}
	return s
}
