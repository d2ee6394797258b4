package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/export"
	"github.com/felixgeelhaar/lectern/internal/tui/ui"
)

// ScrollHint is shown under code that continues below the panel.
const ScrollHint = "Scroll for more ↓"

// Lines used by everything around the slide body: padding, header, title,
// footnote, progress bar, indicator dots, status and help.
const chromeLines = 14

func (m presenterModel) innerWidth() int {
	return max(20, m.width-4)
}

func (m presenterModel) bulletWidth() int {
	return min(m.innerWidth(), ui.MaxColumnWidth)
}

// codeLines is how many source lines fit in the code panel.
func (m presenterModel) codeLines() int {
	return max(3, m.height-chromeLines-4)
}

func (m presenterModel) maxScroll() int {
	tab, ok := m.ctrl.Snapshot().ActiveTab()
	if !ok {
		return 0
	}
	return max(0, lineCount(tab.Source)-m.codeLines())
}

func lineCount(src string) int {
	return strings.Count(strings.TrimRight(src, "\n"), "\n") + 1
}

func panelTitle(tab deck.CodeTab) string {
	return export.PanelTitle(tab)
}

func (m presenterModel) render() string {
	s := m.ctrl.Snapshot()
	inner := m.innerWidth()

	parts := []string{
		m.renderHeader(s, inner),
		m.styles.Title.Render(s.Slide.Title),
	}
	if body := m.renderBody(s, inner); body != "" {
		parts = append(parts, body)
	}
	if s.Slide.Footnote != "" {
		parts = append(parts, m.styles.Footnote.Width(inner).Render(s.Slide.Footnote))
	}

	parts = append(parts, "", m.progress.ViewAs(s.Progress), m.renderDots(s))

	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusErr
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m presenterModel) renderHeader(s presentation.Snapshot, inner int) string {
	left := m.styles.Header.Render(s.DeckTitle)
	right := m.styles.Counter.Render(fmt.Sprintf("%d / %d", s.Position(), s.Count))
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderBody arranges the slide content according to its layout.
func (m presenterModel) renderBody(s presentation.Snapshot, inner int) string {
	half := (inner - 2) / 2

	switch s.Layout {
	case deck.LayoutBullets:
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.renderBullets(s.Slide.Bullets, m.bulletWidth()))
	case deck.LayoutCode:
		return m.renderCode(s, inner)
	case deck.LayoutDiagram:
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.renderDiagram(s.Slide.Diagram, min(inner, 60)))
	case deck.LayoutBulletsCode:
		return m.sideBySide(inner, m.renderBullets(s.Slide.Bullets, half), m.renderCode(s, half))
	case deck.LayoutBulletsDiagram:
		return m.sideBySide(inner, m.renderDiagram(s.Slide.Diagram, half), m.renderBullets(s.Slide.Bullets, half))
	case deck.LayoutCodeDiagram:
		return m.sideBySide(inner, m.renderCode(s, half), m.renderDiagram(s.Slide.Diagram, half))
	default:
		return ""
	}
}

// sideBySide joins two panels horizontally, or stacks them when the
// terminal is too narrow for both.
func (m presenterModel) sideBySide(inner int, left, right string) string {
	if inner < 2*ui.MinPanelWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m presenterModel) renderBullets(bullets []string, width int) string {
	if m.markdown != nil {
		out, err := m.markdown.Render(export.BulletsMarkdown(bullets))
		if err == nil {
			return lipgloss.NewStyle().Width(width).Render(strings.Trim(out, "\n"))
		}
	}

	lines := make([]string, len(bullets))
	for i, b := range bullets {
		lines[i] = "• " + b
	}
	return m.styles.Bullets.Width(width).Render(strings.Join(lines, "\n"))
}

func (m presenterModel) renderCode(s presentation.Snapshot, width int) string {
	tab, ok := s.ActiveTab()
	if !ok {
		return ""
	}

	var header string
	if len(s.Tabs) > 1 {
		names := make([]string, len(s.Tabs))
		for i, t := range s.Tabs {
			style := m.styles.Tab
			if i == s.Tab {
				style = m.styles.TabActive
			}
			names[i] = style.Render(panelTitle(t))
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, names...)
	} else {
		header = m.styles.CodeTitle.Render(panelTitle(tab)) + " " +
			m.styles.Help.Render(export.LanguageLabel(tab.Language))
	}

	total := lineCount(tab.Source)
	lines := strings.Split(strings.TrimRight(m.highlighter.Highlight(tab.Source, tab.Language), "\n"), "\n")
	if len(lines) > total {
		lines = lines[:total]
	}

	start := min(m.scroll, max(0, total-1), len(lines))
	end := min(len(lines), start+m.codeLines())
	body := []string{header, ""}
	body = append(body, lines[start:end]...)
	if end < total {
		body = append(body, m.styles.ScrollHint.Render(ScrollHint))
	}

	return m.styles.CodePanel.Width(max(10, width-2)).Render(strings.Join(body, "\n"))
}

func (m presenterModel) renderDiagram(ref string, width int) string {
	label := m.styles.DiagramLabel.Render("◇ Diagram")
	return m.styles.Diagram.Width(max(10, width-2)).Render(label + "\n" + ref)
}

func (m presenterModel) renderDots(s presentation.Snapshot) string {
	dots := make([]string, len(s.Indicators))
	for i, active := range s.Indicators {
		if active {
			dots[i] = m.styles.DotActive.Render("●")
		} else {
			dots[i] = m.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
