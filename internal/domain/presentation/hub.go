package presentation

import (
	"context"
	"errors"
	"sync"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// ErrHubClosed is returned by Do once the hub has stopped.
var ErrHubClosed = errors.New("presentation hub closed")

// Hub serializes events from concurrent hosts onto a single Controller.
// Only the Run goroutine touches the controller; events are applied in
// submission order and subscribers see each resulting view change.
type Hub struct {
	ctrl   *Controller
	logger ports.Logger
	events chan request
	done   chan struct{}

	mu     sync.Mutex
	subs   map[int]chan Snapshot
	nextID int
	closed bool
}

type request struct {
	apply func(*Controller)
	reply chan Snapshot
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithHubLogger sets the logger for applied events.
func WithHubLogger(logger ports.Logger) HubOption {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHub wraps ctrl. Call Run before Do.
func NewHub(ctrl *Controller, opts ...HubOption) *Hub {
	h := &Hub{
		ctrl:   ctrl,
		logger: nopLogger{},
		events: make(chan request),
		done:   make(chan struct{}),
		subs:   make(map[int]chan Snapshot),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run applies events until ctx is cancelled, then closes every
// subscription. It returns nil on cancellation.
func (h *Hub) Run(ctx context.Context) error {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-h.events:
			before := h.ctrl.Snapshot()
			if req.apply != nil {
				req.apply(h.ctrl)
			}
			after := h.ctrl.Snapshot()
			req.reply <- after

			if !after.SameView(before) {
				h.logger.Debug(ctx, "slide view changed",
					ports.F("index", after.Index),
					ports.F("tab", after.Tab),
					ports.F("layout", after.Layout.String()))
				h.broadcast(after)
			}
		}
	}
}

// Do applies fn to the controller on the hub goroutine and returns the
// snapshot taken right after it. A nil fn just reads the current state.
func (h *Hub) Do(ctx context.Context, fn func(*Controller)) (Snapshot, error) {
	req := request{apply: fn, reply: make(chan Snapshot, 1)}

	select {
	case h.events <- req:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-h.done:
		return Snapshot{}, ErrHubClosed
	}

	select {
	case s := <-req.reply:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Snapshot returns the current state.
func (h *Hub) Snapshot(ctx context.Context) (Snapshot, error) {
	return h.Do(ctx, nil)
}

// Subscribe registers for view changes. The channel keeps only the latest
// snapshot a slow reader has not taken yet. The returned func releases the
// subscription and is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) broadcast(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- s:
		default:
			// Drop the stale snapshot the reader has not taken.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...ports.Field) {}
func (nopLogger) Info(context.Context, string, ...ports.Field)  {}
func (nopLogger) Warn(context.Context, string, ...ports.Field)  {}
func (nopLogger) Error(context.Context, string, ...ports.Field) {}
func (l nopLogger) With(...ports.Field) ports.Logger            { return l }
func (nopLogger) Level() ports.Level                            { return ports.LevelInfo }
func (nopLogger) SetLevel(ports.Level)                          {}
