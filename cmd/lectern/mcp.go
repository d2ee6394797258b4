package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/spf13/cobra"

	mcptools "github.com/felixgeelhaar/lectern/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [deck]",
	Short: "Start MCP server for AI agent integration",
	Long: `Start a Model Context Protocol (MCP) server so an AI agent can read
and drive a presentation.

Available tools:
  - deck_outline      List every slide with its layout
  - deck_state        Get the slide on screen
  - deck_next         Next slide (wraps)
  - deck_previous     Previous slide (wraps)
  - deck_goto         Jump to a slide by index or title
  - deck_select_tab   Show another code tab

With --serve the browser presenter runs alongside, so the agent and the
audience share one presentation. MCP then uses stdio, or HTTP when --http
is also given.`,
	Example: `  lectern mcp                          # stdio MCP server on the demo deck
  lectern mcp talk.yaml --http :8081   # HTTP MCP server
  lectern mcp talk.yaml --serve :8080  # MCP over stdio plus the browser presenter
  lectern mcp talk.yaml --http :8081 --serve :8080`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runMCP,
}

var (
	mcpHTTP  string
	mcpServe string
)

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTP, "http", "", "Start HTTP server on address (e.g., :8081)")
	mcpCmd.Flags().StringVar(&mcpServe, "serve", "", "Also serve the browser presenter on address")

	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	// stdout carries the protocol; logs go to stderr.
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	sess := startSession(ctx, d, logger)
	defer sess.stop()
	serveMCP := mcpTransport(newMCPServer(sess), mcpHTTP)

	if mcpServe != "" {
		return serveMCPWithBrowser(ctx, sess, serveMCP, mcpServe)
	}
	return serveMCP(ctx)
}

// mcpTransport serves srv over HTTP on httpAddr, or over stdio when
// httpAddr is empty.
func mcpTransport(srv *mcp.Server, httpAddr string) func(context.Context) error {
	if httpAddr != "" {
		return func(ctx context.Context) error { return mcp.ServeHTTP(ctx, srv, httpAddr) }
	}
	return func(ctx context.Context) error { return mcp.ServeStdio(ctx, srv) }
}

func newMCPServer(sess *session) *mcp.Server {
	srv := mcp.NewServer(mcp.ServerInfo{
		Name:    "lectern",
		Version: version,
	})
	mcptools.RegisterAll(srv, sess.hub, sess.deck)
	return srv
}

// serveMCPWithBrowser runs serveMCP while the browser presenter runs on
// addr. Either one stopping stops both.
func serveMCPWithBrowser(ctx context.Context, sess *session, serveMCP func(context.Context) error, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpErr := make(chan error, 1)
	go func() {
		defer cancel()
		httpErr <- sess.server().Run(ctx, addr)
	}()

	err := serveMCP(ctx)
	cancel()
	return errors.Join(err, <-httpErr)
}
