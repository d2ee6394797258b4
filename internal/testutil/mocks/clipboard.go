package mocks

import (
	"sync"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// Clipboard records copied text. Setting Err makes every copy fail.
type Clipboard struct {
	mu     sync.Mutex
	copies []string
	Err    error
}

// Copy implements ports.Clipboard.
func (c *Clipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.copies = append(c.copies, text)
	return nil
}

// Last returns the most recent copy, or "" when nothing was copied.
func (c *Clipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.copies) == 0 {
		return ""
	}
	return c.copies[len(c.copies)-1]
}

// Copies returns how many copies succeeded.
func (c *Clipboard) Copies() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.copies)
}

var _ ports.Clipboard = (*Clipboard)(nil)
