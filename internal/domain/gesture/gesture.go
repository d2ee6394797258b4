// Package gesture turns pointer and touch events into taps and horizontal
// swipes. A pointer goes down, optionally moves, then comes up; the tracker
// reports where it started and where it ended.
package gesture

import (
	"fmt"
	"math"

	"github.com/felixgeelhaar/statekit"
)

// State represents the tracker state.
type State string

const (
	stateIdle     = "idle"
	statePressed  = "pressed"
	stateDragging = "dragging"
)

const (
	// StateIdle means no pointer is down.
	StateIdle State = stateIdle
	// StatePressed means a pointer is down and has not moved.
	StatePressed State = statePressed
	// StateDragging means a pointer is down and has moved.
	StateDragging State = stateDragging
)

// Event types for the tracker state machine.
const (
	EventPointerDown   = "POINTER_DOWN"
	EventPointerMove   = "POINTER_MOVE"
	EventPointerUp     = "POINTER_UP"
	EventPointerCancel = "POINTER_CANCEL"
)

// Kind classifies a completed gesture.
type Kind int

const (
	// KindNone is reported for an up without a matching down.
	KindNone Kind = iota
	// KindTap is a press and release at the same position without moves.
	KindTap
	// KindSwipe is a press followed by moves or by a release elsewhere.
	KindSwipe
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindSwipe:
		return "swipe"
	default:
		return "none"
	}
}

// Release is the outcome of a pointer coming up.
type Release struct {
	Kind   Kind
	StartX float64
	EndX   float64
}

// Distance is the signed horizontal travel, positive to the right.
func (r Release) Distance() float64 {
	return r.EndX - r.StartX
}

// Trace is the machine context: the horizontal positions of the gesture.
type Trace struct {
	StartX float64
	LastX  float64
}

// Tracker follows one pointer. It is not safe for concurrent use; each
// input source owns its own tracker.
type Tracker struct {
	interp *statekit.Interpreter[Trace]
	trace  *Trace
}

// NewTracker builds and starts a tracker in the idle state.
func NewTracker() (*Tracker, error) {
	trace := &Trace{}
	interp, err := buildMachine(trace)
	if err != nil {
		return nil, fmt.Errorf("failed to build gesture machine: %w", err)
	}
	interp.Start()
	return &Tracker{interp: interp, trace: trace}, nil
}

// buildMachine captures trace in the actions so they update the tracker's
// own copy rather than the interpreter's.
func buildMachine(trace *Trace) (*statekit.Interpreter[Trace], error) {
	machine, err := statekit.NewMachine[Trace]("pointer-gesture").
		WithInitial(stateIdle).
		WithContext(Trace{}).
		WithAction("begin", func(_ *Trace, event statekit.Event) {
			if x, ok := event.Payload.(float64); ok {
				trace.StartX, trace.LastX = x, x
			}
		}).
		WithAction("follow", func(_ *Trace, event statekit.Event) {
			if x, ok := event.Payload.(float64); ok {
				trace.LastX = x
			}
		}).
		State(stateIdle).
		On(EventPointerDown).Target(statePressed).Done().
		State(statePressed).
		OnEntry("begin").
		On(EventPointerMove).Target(stateDragging).
		On(EventPointerUp).Target(stateIdle).
		On(EventPointerCancel).Target(stateIdle).Done().
		State(stateDragging).
		OnEntry("follow").
		On(EventPointerUp).Target(stateIdle).
		On(EventPointerCancel).Target(stateIdle).Done().
		Build()
	if err != nil {
		return nil, err
	}
	return statekit.NewInterpreter(machine), nil
}

// State returns the current state.
func (t *Tracker) State() State {
	return State(t.interp.State().Value)
}

// Down starts a gesture at x. A second down while tracking is ignored.
func (t *Tracker) Down(x float64) {
	t.interp.Send(statekit.Event{Type: EventPointerDown, Payload: x})
}

// Move records the pointer at x.
func (t *Tracker) Move(x float64) {
	switch t.State() {
	case StatePressed:
		t.interp.Send(statekit.Event{Type: EventPointerMove, Payload: x})
	case StateDragging:
		t.trace.LastX = x
	}
}

// Up ends the gesture at x and reports what it was.
func (t *Tracker) Up(x float64) Release {
	from := t.State()
	start := t.trace.StartX
	t.interp.Send(statekit.Event{Type: EventPointerUp, Payload: x})

	switch from {
	case StatePressed:
		if x != start {
			// Hosts may deliver no moves at all; the end position decides.
			return Release{Kind: KindSwipe, StartX: start, EndX: x}
		}
		return Release{Kind: KindTap, StartX: start, EndX: x}
	case StateDragging:
		return Release{Kind: KindSwipe, StartX: start, EndX: x}
	default:
		return Release{Kind: KindNone, StartX: x, EndX: x}
	}
}

// Cancel abandons the gesture in progress.
func (t *Tracker) Cancel() {
	t.interp.Send(statekit.Event{Type: EventPointerCancel})
}

// Trace returns the positions recorded so far.
func (t *Tracker) Trace() Trace {
	return *t.trace
}

// Close stops the underlying interpreter.
func (t *Tracker) Close() {
	t.interp.Stop()
}

// Classify turns a horizontal distance into a swipe direction. Travel at or
// under threshold is not a swipe.
func Classify(startX, endX, threshold float64) Direction {
	d := endX - startX
	if math.Abs(d) <= threshold || math.IsNaN(d) {
		return DirectionNone
	}
	if d < 0 {
		return DirectionLeft
	}
	return DirectionRight
}

// Direction is the direction a swipe travelled.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionLeft moves to the next slide.
	DirectionLeft
	// DirectionRight moves to the previous slide.
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}
