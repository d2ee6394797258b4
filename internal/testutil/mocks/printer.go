package mocks

import (
	"sync/atomic"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// Printer counts print requests.
type Printer struct {
	calls atomic.Int64
}

// Print implements ports.Printer.
func (p *Printer) Print() {
	p.calls.Add(1)
}

// Calls returns how many times Print was called.
func (p *Printer) Calls() int {
	return int(p.calls.Load())
}

var _ ports.Printer = (*Printer)(nil)
