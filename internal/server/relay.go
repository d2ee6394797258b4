package server

import (
	"sync"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// PrintRelay is the printer for browser audiences: Print asks every
// connected page to open its print dialog.
type PrintRelay struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

// NewPrintRelay creates a relay with no listeners.
func NewPrintRelay() *PrintRelay {
	return &PrintRelay{subs: make(map[int]chan struct{})}
}

// Print notifies every listener without waiting. A listener that has not
// yet taken the previous request gets only one.
func (r *PrintRelay) Print() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a listener; call the returned func to release it.
func (r *PrintRelay) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	r.mu.Lock()
	id := r.next
	r.next++
	r.subs[id] = ch
	r.mu.Unlock()

	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

var _ ports.Printer = (*PrintRelay)(nil)
