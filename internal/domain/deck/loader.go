package deck

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed embedded/*.yaml
var embeddedFS embed.FS

const demoPath = "embedded/demo.yaml"

// Load reads a deck from disk.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(path)
		}
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}
	return Parse(data, EncodingFor(path), path)
}

// LoadOrDemo loads the deck at path, or the built-in demo deck when path
// is empty.
func LoadOrDemo(path string) (*Deck, error) {
	if path == "" {
		return Demo()
	}
	return Load(path)
}

// Demo returns the deck shipped with the binary.
func Demo() (*Deck, error) {
	data, err := embeddedFS.ReadFile(demoPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded deck: %w", err)
	}
	return Parse(data, EncodingYAML, demoPath)
}
