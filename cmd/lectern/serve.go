package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve [deck]",
	Short: "Present a deck in the browser",
	Long: `Serve a deck over HTTP. Every open page shows the same slide: a key
press, swipe or dot click on one page moves them all.

Pressing p on a page opens that page's print dialog. A POST of the p key
to /api/key (a remote clicker, say) opens it on every page.

Endpoints:
  GET  /                 presenter page
  GET  /ws               live state (websocket)
  GET  /api/deck         deck outline
  GET  /api/state        current slide
  POST /api/next         next slide
  POST /api/previous     previous slide
  POST /api/goto/{i}     jump to slide i (0-based)
  POST /api/tab/{i}      select code tab i
  POST /api/key          {"key": "ArrowRight"}
  POST /api/swipe        {"startX": 300, "endX": 100}`,
	Example: `  lectern serve
  lectern serve talk.yaml --addr 127.0.0.1:3000`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from settings, :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	addr := settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	return serve(ctx, d, addr, logger)
}

// serve runs a session and its HTTP server until ctx is cancelled.
func serve(ctx context.Context, d *deck.Deck, addr string, logger ports.Logger) error {
	sess := startSession(ctx, d, logger)
	defer sess.stop()
	return sess.server().Run(ctx, addr)
}
