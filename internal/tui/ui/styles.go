// Package ui provides the presenter's styles, key bindings and messages.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#cba6f7"} // Mauve
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError     = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	ColorText      = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"} // Text
	ColorSurface   = lipgloss.AdaptiveColor{Light: "#e6e9ef", Dark: "#313244"} // Surface0
	ColorCode      = lipgloss.AdaptiveColor{Light: "#dce0e8", Dark: "#181825"} // Mantle
)

// Styles contains the presenter's lipgloss styles.
type Styles struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Counter   lipgloss.Style
	Title     lipgloss.Style
	Bullets   lipgloss.Style
	Footnote  lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style

	// Code panel
	CodePanel  lipgloss.Style
	CodeTitle  lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	ScrollHint lipgloss.Style

	// Diagram placeholder
	Diagram      lipgloss.Style
	DiagramLabel lipgloss.Style

	// Indicator strip
	Dot       lipgloss.Style
	DotActive lipgloss.Style

	Help lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Counter: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),

		Bullets: lipgloss.NewStyle().
			Foreground(ColorText),

		Footnote: lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted).
			MarginTop(1),

		Status: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		StatusErr: lipgloss.NewStyle().
			Foreground(ColorError),

		CodePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Background(ColorCode).
			Padding(0, 1),

		CodeTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary),

		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted),

		TabActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorSurface),

		ScrollHint: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Diagram: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2).
			Align(lipgloss.Center),

		DiagramLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary),

		Dot: lipgloss.NewStyle().
			Foreground(ColorMuted),

		DotActive: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// WithWidth returns styles adapted for a specific terminal width.
func (s Styles) WithWidth(width int) Styles {
	s.App = s.App.Width(width)
	return s
}
