package deck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// CurrentFormat is the deck file format this build reads.
const CurrentFormat = "v1"

// Encoding identifies the syntax of a deck file.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// EncodingFor picks the encoding from a file extension; YAML is the default.
func EncodingFor(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return EncodingTOML
	default:
		return EncodingYAML
	}
}

type fileDeck struct {
	Format string      `yaml:"format" toml:"format"`
	Title  string      `yaml:"title" toml:"title"`
	Slides []fileSlide `yaml:"slides" toml:"slides"`
}

type fileSlide struct {
	Title    string    `yaml:"title" toml:"title"`
	Bullets  []string  `yaml:"bullets,omitempty" toml:"bullets,omitempty"`
	Code     *fileCode `yaml:"code,omitempty" toml:"code,omitempty"`
	Tabs     []fileTab `yaml:"tabs,omitempty" toml:"tabs,omitempty"`
	Diagram  string    `yaml:"diagram,omitempty" toml:"diagram,omitempty"`
	Footnote string    `yaml:"footnote,omitempty" toml:"footnote,omitempty"`
	Layout   string    `yaml:"layout,omitempty" toml:"layout,omitempty"`
}

type fileCode struct {
	Language string `yaml:"language,omitempty" toml:"language,omitempty"`
	Source   string `yaml:"source" toml:"source"`
}

type fileTab struct {
	Filename string `yaml:"filename" toml:"filename"`
	Language string `yaml:"language,omitempty" toml:"language,omitempty"`
	Source   string `yaml:"source" toml:"source"`
}

// Parse decodes a deck document. The path is only used for error context.
func Parse(data []byte, enc Encoding, path string) (*Deck, error) {
	var raw fileDeck
	var err error
	switch enc {
	case EncodingTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, NewParseError(path, err)
	}

	if err := checkFormat(raw.Format); err != nil {
		return nil, NewFormatError(path, raw.Format)
	}

	slides := make([]Slide, len(raw.Slides))
	for i, fs := range raw.Slides {
		slides[i] = fs.toSlide()
	}

	d, err := New(raw.Title, slides)
	if err != nil {
		return nil, withPath(err, path)
	}
	return d, nil
}

// checkFormat accepts an empty format or any v1.x version.
func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	if !semver.IsValid(format) || semver.Major(format) != CurrentFormat {
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

func (fs fileSlide) toSlide() Slide {
	s := Slide{
		Title:    fs.Title,
		Bullets:  fs.Bullets,
		Diagram:  fs.Diagram,
		Footnote: fs.Footnote,
		Layout:   LayoutHint(fs.Layout),
	}
	if fs.Code != nil {
		s.Code = &CodeBlock{Language: fs.Code.Language, Source: fs.Code.Source}
	}
	for _, t := range fs.Tabs {
		s.Tabs = append(s.Tabs, CodeTab(t))
	}
	return s
}

// withPath prefixes the file path onto validation error locations.
func withPath(err error, path string) error {
	if path == "" {
		return err
	}
	switch e := err.(type) {
	case *Error:
		return prefixed(e, path)
	case *ErrorList:
		out := &ErrorList{}
		for _, item := range e.errors {
			out.Add(prefixed(item, path))
		}
		return out
	default:
		return err
	}
}

func prefixed(e *Error, path string) *Error {
	cp := *e
	if cp.Context == "" {
		cp.Context = path
	} else {
		cp.Context = path + ": " + cp.Context
	}
	return &cp
}

// Marshal encodes a deck back into its file form.
func Marshal(d *Deck, enc Encoding) ([]byte, error) {
	raw := fileDeck{Format: CurrentFormat, Title: d.Title()}
	for _, s := range d.Slides() {
		fs := fileSlide{
			Title:    s.Title,
			Bullets:  s.Bullets,
			Diagram:  s.Diagram,
			Footnote: s.Footnote,
			Layout:   string(s.Layout),
		}
		if s.Code != nil {
			fs.Code = &fileCode{Language: s.Code.Language, Source: s.Code.Source}
		}
		for _, t := range s.Tabs {
			fs.Tabs = append(fs.Tabs, fileTab(t))
		}
		raw.Slides = append(raw.Slides, fs)
	}

	if enc == EncodingTOML {
		return toml.Marshal(raw)
	}
	return yaml.Marshal(raw)
}
