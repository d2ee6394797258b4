package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *deck.Deck {
	return deck.MustNew("Agents", []deck.Slide{
		{Title: "Intro", Bullets: []string{"one", "two"}, Footnote: "Press P to print"},
		{
			Title:   "Code",
			Bullets: []string{"why"},
			Tabs: []deck.CodeTab{
				{Filename: "graph.py", Language: "python", Source: "graph = build()\n"},
				{Filename: "cfg.json", Language: "json", Source: "{}"},
			},
		},
		{Title: "All three", Bullets: []string{"dropped"}, Code: &deck.CodeBlock{Source: "x = 1"}, Diagram: "/d.svg"},
		{Title: "End"},
	})
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown(sample())

	assert.True(t, strings.HasPrefix(md, "# Agents\n\n## Intro\n"))
	assert.Contains(t, md, "_Slide 2 of 4_")
	assert.Contains(t, md, "- one\n- two\n")
	assert.Contains(t, md, "**graph.py**\n\n```python\ngraph = build()\n```")
	assert.Contains(t, md, "> Press P to print")
	assert.Contains(t, md, "**Code Example**")
	assert.Contains(t, md, "![All three](/d.svg)")
	assert.NotContains(t, md, "- dropped", "code+diagram layout drops bullets")
	assert.Equal(t, 3, strings.Count(md, "---\n"))
}

func TestText(t *testing.T) {
	t.Parallel()

	txt := Text(sample())

	assert.True(t, strings.HasPrefix(txt, "AGENTS\n"))
	assert.Contains(t, txt, "[1/4] Intro")
	assert.Contains(t, txt, "  • one")
	assert.Contains(t, txt, "graph.py (Python)")
	assert.Contains(t, txt, "cfg.json (JSON)")
	assert.Contains(t, txt, "    graph = build()\n")
	assert.Contains(t, txt, "Diagram: /d.svg")
}

func TestOutline(t *testing.T) {
	t.Parallel()

	out := Outline(sample())
	require.Len(t, out, 4)

	assert.Equal(t, "bullets", out[0].Layout)
	assert.Equal(t, "bullets-code", out[1].Layout)
	assert.Equal(t, []string{"graph.py", "cfg.json"}, out[1].Tabs)
	assert.Equal(t, "code-diagram", out[2].Layout)
	assert.Equal(t, []string{SingleCodeTitle}, out[2].Tabs)
	assert.Equal(t, "empty", out[3].Layout)
	assert.Equal(t, 3, out[3].Index)
}

func TestRender(t *testing.T) {
	t.Parallel()

	d := sample()
	for _, f := range Formats() {
		data, err := Render(d, f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, data)
	}

	data, err := Render(d, FormatJSON)
	require.NoError(t, err)
	var entries []Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, 4)

	_, err = Render(d, "pdf")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"": FormatMarkdown, "Markdown": FormatMarkdown, "txt": FormatText, "JSON": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestLanguageLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Python", LanguageLabel("python"))
	assert.Equal(t, "Go", LanguageLabel("go"))
	assert.Equal(t, "JSON", LanguageLabel("json"))
	assert.Equal(t, "", LanguageLabel(""))
}
