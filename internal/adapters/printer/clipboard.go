package printer

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// ErrClipboardUnsupported is returned when no clipboard tool is available.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct {
	supported bool
	write     func(string) error
}

// NewSystemClipboard creates a clipboard backed by atotto/clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		supported: !clipboard.Unsupported,
		write:     clipboard.WriteAll,
	}
}

// Copy puts text on the clipboard.
func (c *SystemClipboard) Copy(text string) error {
	if !c.supported {
		return ErrClipboardUnsupported
	}
	return c.write(text)
}

var _ ports.Clipboard = (*SystemClipboard)(nil)
