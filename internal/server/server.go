// Package server hosts a presentation for browser audiences. Every page
// shares one navigation state through the presentation hub; changes are
// pushed over a websocket.
package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/adapters/logging"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

//go:embed static
var staticFiles embed.FS

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Server serves the deck, its navigation API and the live websocket.
type Server struct {
	hub       *presentation.Hub
	deck      *deck.Deck
	relay     *PrintRelay
	logger    ports.Logger
	highlight ports.Highlighter
	upgrader  websocket.Upgrader
	pingEvery time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHighlighter renders code tabs as HTML in state updates. The
// highlighter must emit HTML and return the source unchanged when it cannot
// highlight it.
func WithHighlighter(h ports.Highlighter) Option {
	return func(s *Server) {
		s.highlight = h
	}
}

// WithPrintRelay sets the relay whose print requests are forwarded to
// connected pages.
func WithPrintRelay(relay *PrintRelay) Option {
	return func(s *Server) {
		if relay != nil {
			s.relay = relay
		}
	}
}

// New creates a server for the deck driven by hub. The hub must be running.
func New(hub *presentation.Hub, d *deck.Deck, opts ...Option) *Server {
	s := &Server{
		hub:       hub,
		deck:      d,
		relay:     NewPrintRelay(),
		logger:    logging.NewNopLogger(),
		pingEvery: pingPeriod,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// view converts a snapshot for pages and API clients.
func (s *Server) view(snap presentation.Snapshot) StateView {
	return NewStateView(snap, s.highlight)
}

// Relay returns the print relay pages listen on.
func (s *Server) Relay() *PrintRelay {
	return s.relay
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/deck", s.handleDeck).Methods(http.MethodGet)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	api.HandleFunc("/next", s.handleNext).Methods(http.MethodPost)
	api.HandleFunc("/previous", s.handlePrevious).Methods(http.MethodPost)
	api.HandleFunc("/goto/{index:[0-9]+}", s.handleGoTo).Methods(http.MethodPost)
	api.HandleFunc("/tab/{index:[0-9]+}", s.handleTab).Methods(http.MethodPost)
	api.HandleFunc("/key", s.handleKey).Methods(http.MethodPost)
	api.HandleFunc("/swipe", s.handleSwipe).Methods(http.MethodPost)

	r.HandleFunc("/ws", s.handleWebSocket)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	static, _ := fs.Sub(staticFiles, "static")
	r.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)

	return r
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "serving presentation", ports.F("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info(shutdownCtx, "server stopped")
	return nil
}

