// Package mcp exposes a running presentation to AI agents as Model Context
// Protocol tools. Every tool goes through the presentation hub, so an agent
// and a room full of browsers always see the same slide.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/export"
)

// OutlineInput is the input for the deck_outline tool.
type OutlineInput struct{}

// OutlineOutput is the output for the deck_outline tool.
type OutlineOutput struct {
	Title  string         `json:"title"`
	Count  int            `json:"count"`
	Slides []export.Entry `json:"slides"`
}

// StateInput is the input for the deck_state tool.
type StateInput struct {
	Markdown bool `json:"markdown,omitempty" jsonschema:"description=Include the active slide rendered as Markdown"`
}

// NavigateInput is the input for deck_next and deck_previous.
type NavigateInput struct{}

// GoToInput is the input for the deck_goto tool.
type GoToInput struct {
	Index *int   `json:"index,omitempty" jsonschema:"description=Zero-based slide index"`
	Title string `json:"title,omitempty" jsonschema:"description=Exact slide title, used when index is not set"`
}

// SelectTabInput is the input for the deck_select_tab tool.
type SelectTabInput struct {
	Index int `json:"index" jsonschema:"required,description=Zero-based code tab index on the active slide"`
}

// StateOutput describes the slide on screen.
type StateOutput struct {
	Index     int       `json:"index"`
	Position  int       `json:"position"`
	Count     int       `json:"count"`
	Title     string    `json:"title"`
	Layout    string    `json:"layout"`
	Progress  float64   `json:"progress"`
	Bullets   []string  `json:"bullets,omitempty"`
	Tabs      []TabInfo `json:"tabs,omitempty"`
	ActiveTab int       `json:"active_tab"`
	Diagram   string    `json:"diagram,omitempty"`
	Footnote  string    `json:"footnote,omitempty"`
	Markdown  string    `json:"markdown,omitempty"`
}

// TabInfo describes one code tab.
type TabInfo struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Lines    int    `json:"lines"`
}

// RegisterAll registers every deck tool on srv. The hub must be running
// for navigation tools to answer.
func RegisterAll(srv *mcp.Server, hub *presentation.Hub, d *deck.Deck) {
	registerOutlineTool(srv, d)
	registerStateTool(srv, hub)
	registerNextTool(srv, hub)
	registerPreviousTool(srv, hub)
	registerGoToTool(srv, hub, d)
	registerSelectTabTool(srv, hub)
}

func registerOutlineTool(srv *mcp.Server, d *deck.Deck) {
	srv.Tool("deck_outline").
		Description("List every slide of the deck with its title, layout and code tabs.").
		ReadOnly().
		Handler(func(_ context.Context, _ OutlineInput) (*OutlineOutput, error) {
			return &OutlineOutput{
				Title:  d.Title(),
				Count:  d.Len(),
				Slides: export.Outline(d),
			}, nil
		})
}

func registerStateTool(srv *mcp.Server, hub *presentation.Hub) {
	srv.Tool("deck_state").
		Description("Get the slide currently on screen, limited to what its layout shows.").
		ReadOnly().
		Handler(func(ctx context.Context, in StateInput) (*StateOutput, error) {
			snap, err := hub.Snapshot(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to read presentation state: %w", err)
			}
			out := NewStateOutput(snap)
			if in.Markdown {
				out.Markdown = export.SlideMarkdown(snap.Slide, snap.Index, snap.Count)
			}
			return out, nil
		})
}

func registerNextTool(srv *mcp.Server, hub *presentation.Hub) {
	srv.Tool("deck_next").
		Description("Advance to the next slide. Wraps from the last slide to the first.").
		Handler(func(ctx context.Context, _ NavigateInput) (*StateOutput, error) {
			return apply(ctx, hub, func(c *presentation.Controller) error {
				c.Next()
				return nil
			})
		})
}

func registerPreviousTool(srv *mcp.Server, hub *presentation.Hub) {
	srv.Tool("deck_previous").
		Description("Go back to the previous slide. Wraps from the first slide to the last.").
		Handler(func(ctx context.Context, _ NavigateInput) (*StateOutput, error) {
			return apply(ctx, hub, func(c *presentation.Controller) error {
				c.Previous()
				return nil
			})
		})
}

func registerGoToTool(srv *mcp.Server, hub *presentation.Hub, d *deck.Deck) {
	srv.Tool("deck_goto").
		Description("Jump to a slide by zero-based index or by exact title.").
		Handler(func(ctx context.Context, in GoToInput) (*StateOutput, error) {
			index, err := ResolveGoToInput(&in, d)
			if err != nil {
				return nil, err
			}
			return apply(ctx, hub, func(c *presentation.Controller) error {
				if !c.GoTo(index) {
					return fmt.Errorf("slide index %d out of range (deck has %d slides)", index, d.Len())
				}
				return nil
			})
		})
}

func registerSelectTabTool(srv *mcp.Server, hub *presentation.Hub) {
	srv.Tool("deck_select_tab").
		Description("Show another code tab on the active slide. Leaving the slide resets the tab.").
		Handler(func(ctx context.Context, in SelectTabInput) (*StateOutput, error) {
			if err := ValidateSelectTabInput(&in); err != nil {
				return nil, err
			}
			return apply(ctx, hub, func(c *presentation.Controller) error {
				if !c.SelectTab(in.Index) {
					return fmt.Errorf("tab index %d out of range for slide %d", in.Index, c.Index()+1)
				}
				return nil
			})
		})
}

// apply runs fn on the hub goroutine and returns the resulting state, or
// the error fn reported.
func apply(ctx context.Context, hub *presentation.Hub, fn func(*presentation.Controller) error) (*StateOutput, error) {
	var fnErr error
	snap, err := hub.Do(ctx, func(c *presentation.Controller) { fnErr = fn(c) })
	if err != nil {
		return nil, fmt.Errorf("failed to reach presentation: %w", err)
	}
	if fnErr != nil {
		return nil, fnErr
	}
	return NewStateOutput(snap), nil
}

// NewStateOutput converts a snapshot.
func NewStateOutput(s presentation.Snapshot) *StateOutput {
	out := &StateOutput{
		Index:     s.Index,
		Position:  s.Position(),
		Count:     s.Count,
		Title:     s.Slide.Title,
		Layout:    s.Layout.String(),
		Progress:  s.Progress,
		ActiveTab: s.Tab,
		Footnote:  s.Slide.Footnote,
	}
	if s.Layout.ShowsBullets() {
		out.Bullets = s.Slide.Bullets
	}
	if s.Layout.ShowsCode() {
		for _, tab := range s.Tabs {
			out.Tabs = append(out.Tabs, TabInfo{
				Title:    export.PanelTitle(tab),
				Language: tab.Language,
				Lines:    countLines(tab.Source),
			})
		}
	}
	if s.Layout.ShowsDiagram() {
		out.Diagram = s.Slide.Diagram
	}
	return out
}

func countLines(source string) int {
	if source == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(source, "\n"), "\n") + 1
}
