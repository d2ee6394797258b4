package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// Message types sent to pages.
const (
	MessageHello = "hello"
	MessageState = "state"
	MessagePrint = "print"
	MessageError = "error"
)

// Message types accepted from pages.
const (
	MessageKey      = "key"
	MessageNext     = "next"
	MessagePrevious = "previous"
	MessageGoTo     = "goto"
	MessageTab      = "tab"
	MessagePointer  = "pointer"
)

// Pointer phases carried by pointer messages.
const (
	PhaseDown   = "down"
	PhaseMove   = "move"
	PhaseUp     = "up"
	PhaseCancel = "cancel"
)

// ServerMessage is pushed to a page.
type ServerMessage struct {
	Type   string     `json:"type"`
	Client string     `json:"client,omitempty"`
	State  *StateView `json:"state,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// ClientMessage is received from a page.
type ClientMessage struct {
	Type  string  `json:"type"`
	Key   string  `json:"key,omitempty"`
	Index int     `json:"index,omitempty"`
	Phase string  `json:"phase,omitempty"`
	X     float64 `json:"x,omitempty"`
}

// client is one websocket connection. Only writeLoop writes to conn.
type client struct {
	id      string
	conn    *websocket.Conn
	hub     *presentation.Hub
	tracker *gesture.Tracker
	logger  ports.Logger
	view    func(presentation.Snapshot) StateView
	replies chan ServerMessage
}

// GET /ws
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "websocket upgrade failed", ports.Err(err))
		return
	}

	tracker, err := gesture.NewTracker()
	if err != nil {
		s.logger.Error(r.Context(), "gesture tracker unavailable", ports.Err(err))
		_ = conn.Close()
		return
	}

	id := uuid.NewString()
	c := &client{
		id:      id,
		conn:    conn,
		hub:     s.hub,
		tracker: tracker,
		logger:  s.logger.With(ports.F("client", id)),
		view:    s.view,
		replies: make(chan ServerMessage, 8),
	}

	states, releaseStates := s.hub.Subscribe()
	prints, releasePrints := s.relay.Subscribe()

	ctx, cancel := context.WithCancel(r.Context())
	c.logger.Info(ctx, "client connected", ports.F("remote", r.RemoteAddr))

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Closing here unblocks readLoop when a write fails.
		defer c.conn.Close()
		c.writeLoop(ctx, states, prints, s.pingEvery)
	}()

	c.readLoop(ctx)

	cancel()
	releaseStates()
	releasePrints()
	<-done
	tracker.Close()
	c.logger.Info(r.Context(), "client disconnected")
}

func (c *client) readLoop(ctx context.Context) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug(ctx, "websocket read failed", ports.Err(err))
			}
			return
		}
		if err := c.dispatch(ctx, msg); err != nil {
			if errors.Is(err, presentation.ErrHubClosed) {
				return
			}
			c.reply(ServerMessage{Type: MessageError, Error: err.Error()})
		}
	}
}

var (
	errUnknownMessage = errors.New("unknown message type")
	errUnknownPhase   = errors.New("unknown pointer phase")
	errSlideRange     = errors.New("slide index out of range")
	errTabRange       = errors.New("tab index out of range")
)

func (c *client) dispatch(ctx context.Context, msg ClientMessage) error {
	switch msg.Type {
	case MessageKey:
		key := presentation.ParseKey(msg.Key)
		if key.Prints() {
			// The page that asked prints; the others keep presenting.
			c.reply(ServerMessage{Type: MessagePrint})
			return nil
		}
		return c.do(ctx, func(ctrl *presentation.Controller) { ctrl.HandleKey(key) })
	case MessageNext:
		return c.do(ctx, func(ctrl *presentation.Controller) { ctrl.Next() })
	case MessagePrevious:
		return c.do(ctx, func(ctrl *presentation.Controller) { ctrl.Previous() })
	case MessageGoTo:
		ok := false
		if err := c.do(ctx, func(ctrl *presentation.Controller) { ok = ctrl.GoTo(msg.Index) }); err != nil {
			return err
		}
		if !ok {
			return errSlideRange
		}
		return nil
	case MessageTab:
		ok := false
		if err := c.do(ctx, func(ctrl *presentation.Controller) { ok = ctrl.SelectTab(msg.Index) }); err != nil {
			return err
		}
		if !ok {
			return errTabRange
		}
		return nil
	case MessagePointer:
		return c.pointer(ctx, msg.Phase, msg.X)
	default:
		return errUnknownMessage
	}
}

func (c *client) pointer(ctx context.Context, phase string, x float64) error {
	switch phase {
	case PhaseDown:
		c.tracker.Down(x)
	case PhaseMove:
		c.tracker.Move(x)
	case PhaseCancel:
		c.tracker.Cancel()
	case PhaseUp:
		rel := c.tracker.Up(x)
		if rel.Kind != gesture.KindSwipe {
			return nil
		}
		return c.do(ctx, func(ctrl *presentation.Controller) { ctrl.HandleSwipe(rel.StartX, rel.EndX) })
	default:
		return errUnknownPhase
	}
	return nil
}

func (c *client) do(ctx context.Context, fn func(*presentation.Controller)) error {
	_, err := c.hub.Do(ctx, fn)
	return err
}

// reply queues a message for this page only, dropping it when the queue is full.
func (c *client) reply(msg ServerMessage) {
	select {
	case c.replies <- msg:
	default:
	}
}

func (c *client) writeLoop(ctx context.Context, states <-chan presentation.Snapshot, prints <-chan struct{}, pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	if err := c.write(ServerMessage{Type: MessageHello, Client: c.id}); err != nil {
		return
	}
	if snap, err := c.hub.Snapshot(ctx); err == nil {
		if err := c.writeState(snap); err != nil {
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case snap, ok := <-states:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "presentation ended"),
					time.Now().Add(writeWait))
				return
			}
			if err := c.writeState(snap); err != nil {
				return
			}
		case <-prints:
			if err := c.write(ServerMessage{Type: MessagePrint}); err != nil {
				return
			}
		case msg := <-c.replies:
			if err := c.write(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) writeState(snap presentation.Snapshot) error {
	view := c.view(snap)
	return c.write(ServerMessage{Type: MessageState, State: &view})
}

func (c *client) write(msg ServerMessage) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.logger.Debug(context.Background(), "websocket write failed", ports.Err(err))
		return err
	}
	return nil
}
