package main

import (
	"context"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/domain/presentation"
	"github.com/felixgeelhaar/lectern/internal/ports"
	"github.com/felixgeelhaar/lectern/internal/server"
)

// session is one shared presentation: a running hub whose print key is
// relayed to browser pages.
type session struct {
	deck   *deck.Deck
	hub    *presentation.Hub
	relay  *server.PrintRelay
	logger ports.Logger
	stop   func()
}

// startSession runs a hub for d until stop is called or ctx is cancelled.
func startSession(ctx context.Context, d *deck.Deck, logger ports.Logger) *session {
	relay := server.NewPrintRelay()
	ctrl := presentation.NewController(d,
		presentation.WithSwipeThreshold(settings.Presentation.SwipeThreshold),
		presentation.WithPrinter(relay),
	)
	hub := presentation.NewHub(ctrl, presentation.WithHubLogger(logger.With(ports.F("component", "hub"))))

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()

	return &session{
		deck:   d,
		hub:    hub,
		relay:  relay,
		logger: logger,
		stop: func() {
			cancel()
			<-done
		},
	}
}

// server returns the browser presenter for the session.
func (s *session) server() *server.Server {
	return server.New(s.hub, s.deck,
		server.WithPrintRelay(s.relay),
		server.WithHighlighter(newHTMLHighlighter()),
		server.WithLogger(s.logger.With(ports.F("component", "server"))),
	)
}
