package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/ports"
	"github.com/felixgeelhaar/lectern/internal/tui/ui"
)

// presenterModel presents a deck full-screen. All navigation goes through
// the controller; the model only adds terminal concerns such as scrolling,
// mouse gestures and the status line.
type presenterModel struct {
	ctrl        *presentation.Controller
	tracker     *gesture.Tracker
	highlighter ports.Highlighter
	clipboard   ports.Clipboard
	markdown    *glamour.TermRenderer
	plain       bool

	styles   ui.Styles
	keys     ui.KeyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	scroll    int
	status    string
	statusErr bool
	quitting  bool
}

func newPresenterModel(ctrl *presentation.Controller, opts PresentOptions) presenterModel {
	highlighter := opts.Highlighter
	if highlighter == nil {
		highlighter = ports.PlainHighlighter{}
	}

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = ui.DefaultWidth - 4

	m := presenterModel{
		ctrl:        ctrl,
		tracker:     opts.Tracker,
		highlighter: highlighter,
		clipboard:   opts.Clipboard,
		plain:       opts.PlainMarkdown,
		styles:      ui.DefaultStyles(),
		keys:        ui.DefaultKeyMap(),
		help:        help.New(),
		progress:    prog,
		width:       ui.DefaultWidth,
		height:      ui.DefaultHeight,
	}
	m.markdown = m.newMarkdownRenderer()
	return m
}

// newMarkdownRenderer builds a glamour renderer for the current width. A nil
// renderer means bullets are drawn without glamour.
func (m presenterModel) newMarkdownRenderer() *glamour.TermRenderer {
	if m.plain {
		return nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.bulletWidth()),
	)
	if err != nil {
		return nil
	}
	return r
}

func (m presenterModel) Init() tea.Cmd {
	return nil
}

func (m presenterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styles = m.styles.WithWidth(msg.Width)
		m.help.Width = msg.Width
		m.progress.Width = max(10, msg.Width-4)
		m.markdown = m.newMarkdownRenderer()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ui.CopiedMsg:
		if msg.Err != nil {
			m.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus("Copied "+msg.What, false)
		}
		return m, nil

	case ui.StatusMsg:
		m.setStatus(msg.Text, msg.Err)
		return m, nil
	}

	return m, nil
}

func (m presenterModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.ctrl.Snapshot()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The controller's own mapping comes first: arrows, space and print.
	k := presentation.ParseKey(msg.String())
	if m.ctrl.HandleKey(k) {
		if k == presentation.KeyPrint || k == presentation.KeyPrintUpper {
			m.setStatus("Sent to printer", false)
		}
		m.afterNavigation(before)
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.keys.IsNext(msg):
		m.ctrl.Next()
	case m.keys.IsPrevious(msg):
		m.ctrl.Previous()
	case key.Matches(msg, m.keys.First):
		m.ctrl.First()
	case key.Matches(msg, m.keys.Last):
		m.ctrl.Last()
	case key.Matches(msg, m.keys.NextTab):
		m.ctrl.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.ctrl.PreviousTab()
	case key.Matches(msg, m.keys.ScrollDown):
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
	case key.Matches(msg, m.keys.ScrollUp):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(msg, m.keys.Copy):
		cmd = m.copyCode()
	default:
		if idx, ok := m.keys.JumpTarget(msg); ok {
			m.ctrl.GoTo(idx)
		}
	}

	m.afterNavigation(before)
	return m, cmd
}

// handleMouseMsg feeds left-button presses, drags and releases through the
// gesture tracker. A drag is a swipe; a click on the outer thirds of the
// screen acts as the previous and next buttons.
func (m presenterModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tracker == nil {
		return m, nil
	}
	before := m.ctrl.Snapshot()
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.tracker.Down(x)
		case tea.MouseButtonWheelDown:
			if m.scroll < m.maxScroll() {
				m.scroll++
			}
		case tea.MouseButtonWheelUp:
			if m.scroll > 0 {
				m.scroll--
			}
		}
	case tea.MouseActionMotion:
		m.tracker.Move(x)
	case tea.MouseActionRelease:
		r := m.tracker.Up(x)
		switch r.Kind {
		case gesture.KindSwipe:
			m.ctrl.HandleSwipe(r.StartX, r.EndX)
		case gesture.KindTap:
			third := m.width / 3
			switch {
			case msg.X < third:
				m.ctrl.Previous()
			case msg.X >= m.width-third:
				m.ctrl.Next()
			}
		}
	}

	m.afterNavigation(before)
	return m, nil
}

// afterNavigation resets the code scroll when the slide or tab changed.
func (m *presenterModel) afterNavigation(before presentation.Snapshot) {
	if !m.ctrl.Snapshot().SameView(before) {
		m.scroll = 0
	}
}

func (m *presenterModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m presenterModel) copyCode() tea.Cmd {
	tab, ok := m.ctrl.Snapshot().ActiveTab()
	if !ok {
		return func() tea.Msg { return ui.StatusMsg{Text: "No code on this slide", Err: true} }
	}
	if m.clipboard == nil {
		return func() tea.Msg { return ui.StatusMsg{Text: "Clipboard unavailable", Err: true} }
	}
	clip := m.clipboard
	what := panelTitle(tab)
	return func() tea.Msg {
		return ui.CopiedMsg{What: what, Err: clip.Copy(tab.Source)}
	}
}

func (m presenterModel) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Index returns the slide the presenter ended on.
func (m presenterModel) Index() int {
	return m.ctrl.Index()
}
