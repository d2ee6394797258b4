package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/testutil/mocks"
	"github.com/felixgeelhaar/lectern/internal/tui/ui"
)

func longSource(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line_%02d = %d", i, i)
	}
	return strings.Join(lines, "\n")
}

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d, err := deck.New("Talk", []deck.Slide{
		{Title: "Intro", Bullets: []string{"first point", "second point"}, Footnote: "Use arrows"},
		{
			Title:   "Code",
			Bullets: []string{"why"},
			Tabs: []deck.CodeTab{
				{Filename: "main.go", Language: "go", Source: longSource(40)},
				{Filename: "util.go", Language: "go", Source: "package util"},
			},
		},
		{Title: "Picture", Diagram: "/diagrams/flow.svg"},
	})
	require.NoError(t, err)
	return d
}

func newTestModel(t *testing.T, opts PresentOptions) presenterModel {
	t.Helper()
	opts = opts.WithPlainMarkdown(true)
	if opts.DragThreshold == 0 {
		opts.DragThreshold = ui.DefaultDragThreshold
	}
	return newPresenterModel(newController(testDeck(t), opts), opts)
}

func press(m presenterModel, msgs ...tea.Msg) (presenterModel, tea.Cmd) {
	var cmd tea.Cmd
	var updated tea.Model = m
	for _, msg := range msgs {
		updated, cmd = updated.Update(msg)
	}
	return updated.(presenterModel), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPresenterModel_Init(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions())
	assert.Nil(t, m.Init())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, ui.DefaultWidth, m.width)
}

func TestPresenterModel_WindowSize(t *testing.T) {
	t.Parallel()

	m, cmd := press(newTestModel(t, NewPresentOptions()), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 116, m.progress.Width)
}

func TestPresenterModel_ArrowKeysWrap(t *testing.T) {
	t.Parallel()

	m, _ := press(newTestModel(t, NewPresentOptions()), tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Index())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Index())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 1, m.Index())
}

func TestPresenterModel_SupplementaryNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions())

	m, _ = press(m, keyRunes("l"))
	assert.Equal(t, 1, m.Index())
	m, _ = press(m, keyRunes("h"))
	assert.Equal(t, 0, m.Index())
	m, _ = press(m, keyRunes("G"))
	assert.Equal(t, 2, m.Index())
	m, _ = press(m, keyRunes("g"))
	assert.Equal(t, 0, m.Index())
	m, _ = press(m, keyRunes("3"))
	assert.Equal(t, 2, m.Index())
	m, _ = press(m, keyRunes("9"))
	assert.Equal(t, 2, m.Index(), "jump past the deck is ignored")
}

func TestPresenterModel_PrintKey(t *testing.T) {
	t.Parallel()

	printer := &mocks.Printer{}
	m := newTestModel(t, NewPresentOptions().WithPrinter(printer).WithStartAt(1))

	m, cmd := press(m, keyRunes("p"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, printer.Calls())
	assert.Equal(t, 1, m.Index())
	assert.Contains(t, m.View(), "Sent to printer")

	press(m, keyRunes("P"))
	assert.Equal(t, 2, printer.Calls())
}

func TestPresenterModel_Tabs(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions().WithStartAt(1))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.ctrl.Tab())
	m, _ = press(m, keyRunes("]"))
	assert.Equal(t, 0, m.ctrl.Tab())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.ctrl.Tab())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.ctrl.Tab(), "returning to a slide starts on its first tab")
}

func TestPresenterModel_ScrollCode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions().WithStartAt(1))
	assert.Contains(t, m.View(), ScrollHint)

	m, _ = press(m, keyRunes("j"), keyRunes("j"))
	assert.Equal(t, 2, m.scroll)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.scroll)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.scroll, "switching tabs resets scrolling")
	assert.NotContains(t, m.View(), ScrollHint)

	m, _ = press(m, keyRunes("k"))
	assert.Equal(t, 0, m.scroll)
}

func TestPresenterModel_ScrollStopsAtEnd(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions().WithStartAt(1))
	for i := 0; i < 100; i++ {
		m, _ = press(m, keyRunes("j"))
	}
	assert.Equal(t, m.maxScroll(), m.scroll)
	assert.NotContains(t, m.View(), ScrollHint)
	assert.Contains(t, m.View(), "line_39")
}

func TestPresenterModel_Copy(t *testing.T) {
	t.Parallel()

	clip := &mocks.Clipboard{}
	m := newTestModel(t, NewPresentOptions().WithClipboard(clip).WithStartAt(1))

	m, cmd := press(m, keyRunes("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, longSource(40), clip.Last())

	m, _ = press(m, msg)
	assert.Contains(t, m.View(), "Copied main.go")

	clip.Err = errors.New("no xclip")
	_, cmd = press(m, keyRunes("y"))
	m, _ = press(m, cmd())
	assert.Contains(t, m.View(), "Copy failed: no xclip")
}

func TestPresenterModel_CopyWithoutCode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions().WithClipboard(&mocks.Clipboard{}))
	_, cmd := press(m, keyRunes("y"))
	require.NotNil(t, cmd)
	status, ok := cmd().(ui.StatusMsg)
	require.True(t, ok)
	assert.True(t, status.Err)
}

func TestPresenterModel_MouseSwipe(t *testing.T) {
	t.Parallel()

	tracker, err := gesture.NewTracker()
	require.NoError(t, err)
	defer tracker.Close()

	m := newTestModel(t, NewPresentOptions().WithTracker(tracker))

	m, _ = press(m,
		tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 50, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.Equal(t, 1, m.Index(), "drag to the left advances")

	m, _ = press(m,
		tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 44, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 45, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.Equal(t, 1, m.Index(), "short drag is ignored")
}

func TestPresenterModel_MouseClickThirds(t *testing.T) {
	t.Parallel()

	tracker, err := gesture.NewTracker()
	require.NoError(t, err)
	defer tracker.Close()

	m := newTestModel(t, NewPresentOptions().WithTracker(tracker))
	click := func(m presenterModel, x int) presenterModel {
		m, _ = press(m,
			tea.MouseMsg{X: x, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			tea.MouseMsg{X: x, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		)
		return m
	}

	m = click(m, 75)
	assert.Equal(t, 1, m.Index())
	m = click(m, 40)
	assert.Equal(t, 1, m.Index())
	m = click(m, 2)
	assert.Equal(t, 0, m.Index())
}

func TestPresenterModel_MouseWithoutTracker(t *testing.T) {
	t.Parallel()

	m, cmd := press(newTestModel(t, NewPresentOptions()),
		tea.MouseMsg{X: 75, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())
}

func TestPresenterModel_View(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, NewPresentOptions())

	view := m.View()
	assert.Contains(t, view, "Talk")
	assert.Contains(t, view, "1 / 3")
	assert.Contains(t, view, "Intro")
	assert.Contains(t, view, "• first point")
	assert.Contains(t, view, "Use arrows")
	assert.Contains(t, view, "● ○ ○")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	view = m.View()
	assert.Contains(t, view, "main.go")
	assert.Contains(t, view, "util.go")
	assert.Contains(t, view, "line_00")
	assert.Contains(t, view, "• why")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	view = m.View()
	assert.Contains(t, view, "Diagram")
	assert.Contains(t, view, "/diagrams/flow.svg")
	assert.Contains(t, view, "3 / 3")
}

func TestPresenterModel_SingleCodeTitle(t *testing.T) {
	t.Parallel()

	d := deck.MustNew("t", []deck.Slide{{Title: "Only code", Code: &deck.CodeBlock{Source: "print(1)"}}})
	opts := NewPresentOptions().WithPlainMarkdown(true)
	m := newPresenterModel(newController(d, opts), opts)

	view := m.View()
	assert.Contains(t, view, "Code Example")
	assert.Contains(t, view, "Python")
	assert.Contains(t, view, "print(1)")
}

func TestPresenterModel_HelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := press(newTestModel(t, NewPresentOptions()), keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "jump to slide")
}

func TestPresenterModel_Quit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := press(newTestModel(t, NewPresentOptions()), msg)
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	}
}

func TestPresentOptions(t *testing.T) {
	t.Parallel()

	opts := NewPresentOptions()
	assert.True(t, opts.AltScreen)
	assert.Equal(t, ui.DefaultDragThreshold, opts.DragThreshold)

	opts = opts.WithAltScreen(false).WithDragThreshold(3).WithStartAt(2)
	assert.False(t, opts.AltScreen)
	assert.Equal(t, 3, opts.DragThreshold)

	ctrl := newController(testDeck(t), opts)
	assert.Equal(t, 2, ctrl.Index())
	assert.Equal(t, 3.0, ctrl.SwipeThreshold())
}
