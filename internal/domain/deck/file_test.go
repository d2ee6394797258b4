package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDeck = `format: v1
title: Demo
slides:
  - title: Intro
    bullets: [one, two]
    footnote: hello
  - title: Tabs
    layout: bullets-left-code-right
    bullets: [why]
    tabs:
      - filename: main.go
        language: go
        source: |
          package main
      - filename: run.sh
        source: echo hi
  - title: Picture
    diagram: /diagrams/flow.svg
`

const tomlDeck = `format = "v1.2"
title = "Demo"

[[slides]]
title = "Intro"
bullets = ["one"]

[[slides]]
title = "Code"
diagram = "/d.svg"

[slides.code]
language = "go"
source = "fmt.Println()"
`

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(yamlDeck), EncodingYAML, "demo.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Demo", d.Title())
	require.Equal(t, 3, d.Len())

	tabs, _ := d.Slide(1)
	assert.Equal(t, HintBulletsLeftCodeRight, tabs.Layout)
	require.Len(t, tabs.Tabs, 2)
	assert.Equal(t, "go", tabs.Tabs[0].Language)
	assert.Equal(t, DefaultLanguage, tabs.Tabs[1].Language)

	assert.Equal(t, []Layout{LayoutBullets, LayoutBulletsCode, LayoutDiagram}, d.Layouts())
}

func TestParse_TOML(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(tomlDeck), EncodingTOML, "demo.toml")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	s, _ := d.Slide(1)
	require.NotNil(t, s.Code)
	assert.Equal(t, "go", s.Code.Language)
	assert.Equal(t, LayoutCodeDiagram, SelectLayout(s))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want error
	}{
		{"bad yaml", "slides: [", ErrParse},
		{"wrong format", "format: v2\nslides:\n  - title: a\n", ErrFormat},
		{"garbage format", "format: latest\nslides:\n  - title: a\n", ErrFormat},
		{"no slides", "format: v1\ntitle: x\n", ErrEmpty},
		{"invalid slide", "slides:\n  - title: a\n    layout: diagonal\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data), EncodingYAML, "talk.yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "talk.yaml")
		})
	}
}

func TestEncodingFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EncodingTOML, EncodingFor("deck.TOML"))
	assert.Equal(t, EncodingYAML, EncodingFor("deck.yml"))
	assert.Equal(t, EncodingYAML, EncodingFor("deck"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "talk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDeck), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDemo(t *testing.T) {
	t.Parallel()

	d, err := LoadOrDemo("")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Len())

	layouts := d.Layouts()
	assert.Equal(t, LayoutBullets, layouts[0])
	assert.Equal(t, LayoutBulletsDiagram, layouts[2])
	assert.Equal(t, LayoutCodeDiagram, layouts[3])
	assert.Equal(t, LayoutBulletsCode, layouts[4])
	assert.Equal(t, LayoutEmpty, layouts[9])
}

func TestMarshal_PreservesSlides(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(yamlDeck), EncodingYAML, "")
	require.NoError(t, err)

	for _, enc := range []Encoding{EncodingYAML, EncodingTOML} {
		data, err := Marshal(d, enc)
		require.NoError(t, err)

		back, err := Parse(data, enc, "")
		require.NoError(t, err, string(data))
		assert.Equal(t, d.Slides(), back.Slides())
	}
}
