package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap contains the presenter's key bindings.
type KeyMap struct {
	// Slide navigation
	Next     key.Binding
	Previous key.Binding
	VimNext  key.Binding
	VimPrev  key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding

	// Code panel
	NextTab    key.Binding
	PrevTab    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Copy       key.Binding

	// Actions
	Print key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("→/space", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		VimNext: key.NewBinding(
			key.WithKeys("l", "n", "pgdown"),
			key.WithHelp("l/n", "next"),
		),
		VimPrev: key.NewBinding(
			key.WithKeys("h", "pgup"),
			key.WithHelp("h", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to slide"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab/]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab/[", "previous tab"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll code up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll code down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy code"),
		),

		Print: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "print"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.NextTab, k.Print, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.VimNext, k.VimPrev},
		{k.First, k.Last, k.Jump},
		{k.NextTab, k.PrevTab, k.ScrollUp, k.ScrollDown, k.Copy},
		{k.Print, k.Help, k.Quit},
	}
}

// IsNext returns true for any forward navigation key.
func (k KeyMap) IsNext(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Next) || key.Matches(msg, k.VimNext)
}

// IsPrevious returns true for any backward navigation key.
func (k KeyMap) IsPrevious(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Previous) || key.Matches(msg, k.VimPrev)
}

// JumpTarget returns the 0-based slide for a number key.
func (k KeyMap) JumpTarget(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, k.Jump) {
		return 0, false
	}
	return int(msg.String()[0] - '1'), true
}
